package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/limbo/placebetween/internal/app"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/cleanup"
	"github.com/limbo/placebetween/pkg/config"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	userFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "pbctl",
	Short:         "Inspect and maintain the Place Between local store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User id (subject); anonymous when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
	rootCmd.AddCommand(todayCmd, pointsCmd, purgeCmd, tokenCmd)
}

// withApp builds the services against the configured store and releases
// them when fn returns.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	a, err := app.Build(ctx, config.New(), logger)
	if err != nil {
		return err
	}
	defer cleanup.CleanUp()
	return fn(a)
}

func scope() string {
	return service.UserScope(userFlag)
}

func printJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
