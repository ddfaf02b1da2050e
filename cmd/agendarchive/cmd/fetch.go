package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/civicdocs/agendarchive/internal/pipeline"
)

var (
	fetchYear int
	fetchOut  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download meeting documents",
	Long: `Download agenda, minutes, and packet files for the configured year
range, writing them under <root>/<year>/. Files already present are skipped,
so re-running only fetches what is missing.

Examples:
  # Fetch the configured year range
  agendarchive fetch

  # Fetch a single year into a specific directory
  agendarchive fetch --year 2023 --out ./council_docs`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVar(&fetchYear, "year", 0, "fetch a single year instead of the configured range")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "output root directory (overrides config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := GetConfig()
	if fetchYear != 0 {
		cfg.Archive.FromYear = fetchYear
		cfg.Archive.ToYear = fetchYear
	}
	if fetchOut != "" {
		cfg.Archive.Root = fetchOut
	}
	if cfg.Archive.FromYear > cfg.Archive.ToYear {
		return fmt.Errorf("invalid year range %d..%d", cfg.Archive.FromYear, cfg.Archive.ToYear)
	}

	slog.Debug("fetch starting", "from", cfg.Archive.FromYear, "to", cfg.Archive.ToYear, "root", cfg.Archive.Root)

	p := pipeline.New(cfg)
	result := p.Run(ctx)

	fmt.Printf("\nTotal: %d meetings, %d files saved, %d skipped\n",
		result.MeetingsFound, result.FilesSaved, result.FilesSkipped)
	if len(result.Errors) > 0 {
		fmt.Printf("Completed with %d errors (see log)\n", len(result.Errors))
	}

	return ctx.Err()
}
