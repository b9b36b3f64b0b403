package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-drift/embedui/cmd/embedui/internal/scenario"
)

// DemoFunc opens an interactive window titled title showing f's buttons and
// blocks until it is closed or ctx is done.
type DemoFunc func(ctx context.Context, title string, f *scenario.File, opts scenario.Options) error

func newDemoCmd(g *globalFlags, run DemoFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [scenario.yaml]",
		Short: "Open an interactive window with a scenario's buttons",
		Long: `Open a window showing the buttons of a scenario, or a plain and a toggle
button when no file is given. Steps in the file are ignored.

Mouse or touch presses the buttons. Tab and Shift+Tab move focus, Enter
and Space click, arrow keys switch toggle buttons.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if run == nil {
				return errors.New("demo is not available in this build")
			}
			ctx := cmd.Context()
			e, err := loadEnv(ctx, g.dir)
			if err != nil {
				return err
			}
			f := scenario.Default(e.cfg.Width, e.cfg.Height)
			if len(args) == 1 {
				if f, err = scenario.Load(args[0]); err != nil {
					return err
				}
			}
			loggerFromContext(ctx).Info("Opening demo", "app", e.cfg.AppName, "buttons", len(f.Buttons))
			return run(ctx, e.cfg.AppName, f, e.options(ctx))
		},
	}
}
