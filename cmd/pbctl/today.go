package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/limbo/placebetween/internal/app"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/spf13/cobra"
)

var todayPhase string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the frozen Today-Set with progress and points",
	RunE:  runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayPhase, "phase", "p", "", "Force day or night instead of the clock phase")
}

func runToday(cmd *cobra.Command, args []string) error {
	var phase entity.Phase
	if todayPhase != "" {
		p, err := entity.ParsePhase(todayPhase)
		if err != nil {
			return err
		}
		phase = p
	}
	return withApp(cmd.Context(), func(a *app.App) error {
		view, err := a.Engine.Today(cmd.Context(), scope(), phase)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, view)
		}

		fmt.Fprintf(out, "Date:     %s (%s)\n", view.Date, view.Phase)
		fmt.Fprintf(out, "Progress: %d/%d (%d%%)\n", view.Progress.Completed, view.Progress.Total, view.Progress.Percent)
		fmt.Fprintf(out, "Points:   %d\n\n", view.PointsToday)

		done := make(map[string]bool, len(view.Completed))
		for _, id := range view.Completed {
			done[id] = true
		}
		tw := newTabWriter(out)
		fmt.Fprintln(tw, "SLOT\tID\tTITLE\tBRANCH\tDONE")
		if view.Recommended != nil {
			writeTodayRow(tw, "recommended", view.Recommended, done)
		}
		for _, p := range view.Pillars {
			writeTodayRow(tw, "pillar", p, done)
		}
		return tw.Flush()
	})
}

func writeTodayRow(w io.Writer, slot string, a *entity.Activity, done map[string]bool) {
	mark := ""
	if done[a.ID] {
		mark = "x"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", slot, a.ID, strings.TrimSpace(a.Title), a.Branch, mark)
}
