package main

import (
	"fmt"
	"slices"

	"github.com/limbo/placebetween/internal/app"
	"github.com/spf13/cobra"
)

var pointsDate string

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show the points ledger for a day",
	RunE:  runPoints,
}

func init() {
	pointsCmd.Flags().StringVarP(&pointsDate, "date", "d", "", "Day as YYYY-MM-DD, today when empty")
}

func runPoints(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app.App) error {
		state, err := a.Engine.Points(cmd.Context(), scope(), pointsDate)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, state)
		}
		ids := make([]string, 0, len(state.Ledger))
		for id := range state.Ledger {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		fmt.Fprintf(out, "Date: %s\n\n", state.Date)
		tw := newTabWriter(out)
		fmt.Fprintln(tw, "ACTIVITY\tPOINTS")
		for _, id := range ids {
			fmt.Fprintf(tw, "%s\t%d\n", id, state.Ledger[id])
		}
		fmt.Fprintf(tw, "total\t%d\n", state.Total)
		return tw.Flush()
	})
}
