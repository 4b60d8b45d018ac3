package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/limbo/placebetween/internal/app"
	"github.com/spf13/cobra"
)

var olderThan time.Duration

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete stored sets, completions and points not written recently",
	RunE:  runPurge,
}

func init() {
	purgeCmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Remove entries last written before now minus this duration")
}

func runPurge(cmd *cobra.Command, args []string) error {
	if olderThan <= 0 {
		return errors.New("--older-than must be positive")
	}
	cutoff := time.Now().Add(-olderThan)
	return withApp(cmd.Context(), func(a *app.App) error {
		removed, err := a.Maintenance.Purge(cmd.Context(), cutoff)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"removed": removed,
				"cutoff":  cutoff.Format(time.RFC3339),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries written before %s\n", removed, cutoff.Format(time.RFC3339))
		return nil
	})
}
