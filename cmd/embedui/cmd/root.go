// Package cmd implements the embedui commands.
//
// Commands share a project environment: the directory holding the nearest
// go.mod (or --dir), its optional embedui.yaml and the theme it names.
//
//	embedui trace scenarios/toggle.yaml
//	embedui render -o out scenarios/toggle.yaml
//	embedui demo
package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	uierrors "github.com/go-drift/embedui/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalFlags struct {
	verbose bool
	dir     string
}

// Execute runs the CLI until the command finishes or ctx is done. demo
// backs the demo command.
func Execute(ctx context.Context, demo DemoFunc) error {
	return newRootCmd(demo).ExecuteContext(ctx)
}

func newRootCmd(demo DemoFunc) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "embedui",
		Short: "embedui - touch buttons for small displays",
		Long: `embedui replays scripted button sessions on a simulated display.

Scenario files place buttons and list pointer and key steps. trace prints
the button states after every step, render writes PNG frames and demo opens
an interactive window.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if g.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			uierrors.SetHandler(&uierrors.LogHandler{Verbose: g.verbose, Logger: logger})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("embedui %s (built %s)\n", Version, BuildTime))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.dir, "dir", "C", "", "project directory (default: nearest go.mod)")

	root.AddCommand(newTraceCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newDemoCmd(g, demo))
	return root
}
