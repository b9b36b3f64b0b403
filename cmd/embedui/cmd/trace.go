package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/embedui/cmd/embedui/internal/scenario"
)

func newTraceCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <scenario.yaml>",
		Short: "Replay a scenario and print button states after every step",
		Long: `Replay a scenario on a stepped clock and print one row per step.

Each button column shows the state, a focus marker and the action counts:
p=press c=click l=long press r=long press repeat.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := loadEnv(ctx, g.dir)
			if err != nil {
				return err
			}
			f, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			res, err := scenario.Run(ctx, f, e.options(ctx))
			if err != nil {
				return err
			}
			writeTrace(cmd.OutOrStdout(), filepath.Base(args[0]), f, res)
			return nil
		},
	}
}

func writeTrace(w io.Writer, title string, f *scenario.File, res *scenario.Result) {
	headers := []string{"#", "t", "step"}
	for _, b := range f.Buttons {
		headers = append(headers, b.Name)
	}
	headers = append(headers, "ripple")

	rows := make([][]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		row := []string{fmt.Sprint(r.Index), r.Elapsed.String(), r.Step.String()}
		for _, b := range r.Buttons {
			row = append(row, buttonCell(b))
		}
		row = append(row, r.Ripple)
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col < 2 {
				return styleDim
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, styleTitle.Render(title))
	fmt.Fprintln(w, t.Render())
	if len(res.Rows) == 0 {
		fmt.Fprintln(w, styleWarning.Render("no steps"))
	}
}

func buttonCell(b scenario.ButtonRow) string {
	focus := " "
	if b.Focused {
		focus = iconFocus
	}
	c := b.Counts
	return fmt.Sprintf("%s %s %s", focus, stateStyle(b.State).Render(b.State.String()),
		styleDim.Render(fmt.Sprintf("p%d c%d l%d r%d", c.Press, c.Click, c.LongPress, c.LongPressRepeat)))
}
