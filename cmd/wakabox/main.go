// Package main is the entry point for wakabox.
// It renders the last 7 days of WakaTime language stats into a GitHub gist.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/j-veylop/waka-box/internal/chart"
	"github.com/j-veylop/waka-box/internal/config"
	"github.com/j-veylop/waka-box/internal/logger"
	"github.com/j-veylop/waka-box/internal/models"
	"github.com/j-veylop/waka-box/internal/services"
	"github.com/j-veylop/waka-box/internal/services/wakatime"
	"github.com/j-veylop/waka-box/internal/stats"
	"github.com/j-veylop/waka-box/internal/ui/components"
	"github.com/j-veylop/waka-box/internal/ui/styles"
	"github.com/j-veylop/waka-box/internal/version"
)

const (
	trendWidth  = 50
	trendHeight = 8

	// HTTP calls per command, each allowed HTTP_TIMEOUT.
	updateCalls = 3
	statsCalls  = 1
	trendCalls  = 2
)

type rootOptions struct {
	dryRun bool
	notify bool
}

type previewOptions struct {
	trend bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("wakabox failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wakabox",
		Short: "Update a GitHub gist with your weekly WakaTime language breakdown",
		Long: `wakabox fetches the last 7 days of coding stats from WakaTime, renders the
top languages as a text bar chart and writes it into an existing GitHub gist.

Environment Variables:
  GIST_ID            ID of the gist to update (required, not for preview)
  GH_TOKEN           GitHub token with gist scope (required, not for preview)
  WAKATIME_API_KEY   WakaTime API key (required)
  HTTP_TIMEOUT       Per-request timeout (default: 30s)
  LOG_LEVEL          debug, info, warn or error (default: info)
  WAKABOX_CONFIG     TOML config path (default: $XDG_CONFIG_HOME/wakabox/config.toml)

A .env file in the current directory, $XDG_CONFIG_HOME/wakabox or ~/.wakabox
is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd, opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render and print the chart without updating the gist")
	rootCmd.Flags().BoolVar(&opts.notify, "notify", false, "send a desktop notification when the update fails")

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the chart in the terminal without touching the gist",
		Long: `preview renders the chart that would be written to the gist and prints it.
Only WAKATIME_API_KEY is required.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.trend, "trend", false, "also plot hours per day")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

func applyLogLevel(cfg *config.Config) {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("ignoring LOG_LEVEL", "error", err)
	}
}

// commandContext cancels on SIGINT/SIGTERM and once calls requests' worth of
// timeout has elapsed. A non-positive timeout leaves only the signal
// cancellation.
func commandContext(parent context.Context, timeout time.Duration, calls int) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if timeout <= 0 || calls <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout*time.Duration(calls))
	return ctx, func() {
		cancel()
		stop()
	}
}

func runUpdate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyLogLevel(cfg)

	ctx, cancel := commandContext(cmd.Context(), cfg.HTTPTimeout, updateCalls)
	defer cancel()

	runner := services.New(cfg, opts.dryRun)
	if opts.notify {
		runner.SetNotifier(services.DesktopNotifier{})
	}

	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if opts.dryRun && !result.Skipped {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningStyle.Render("Dry run: gist "+cfg.GistID+" was not updated"))
		fmt.Fprintln(cmd.OutOrStdout(), result.Title)
		fmt.Fprintln(cmd.OutOrStdout(), result.Content)
	}
	return nil
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	cfg, err := config.LoadStatsOnly()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyLogLevel(cfg)

	calls := statsCalls
	if opts.trend {
		calls = trendCalls
	}
	ctx, cancel := commandContext(cmd.Context(), cfg.HTTPTimeout, calls)
	defer cancel()

	client := wakatime.New(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.WakaTimeURL, cfg.WakaTimeAPIKey)

	var (
		report models.StatsReport
		days   []models.DailyTotal
	)
	fetch := func() error {
		var err error
		report, err = client.FetchWeeklyReport(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}
		if opts.trend {
			days, err = client.FetchDailyTotals(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch daily totals: %w", err)
			}
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		err = components.RunWithSpinner(ctx, out, "Fetching WakaTime stats...", fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styles.TitleStyle.Render(cfg.Title))

	content, ok := chart.Render(report, chart.Options{MergeRules: cfg.MergeRules, TopN: stats.DefaultTopN})
	if ok {
		fmt.Fprintln(out, styles.CardStyle.Render(content))
	} else {
		fmt.Fprintln(out, styles.WarningStyle.Render("No language stats for the last 7 days"))
	}

	if opts.trend {
		fmt.Fprintln(out, styles.SubTitleStyle.Render("Daily activity"))
		fmt.Fprintln(out, chart.RenderTrend(days, trendWidth, trendHeight))
	}

	return nil
}

// isTerminal reports whether w is a terminal, so animated output is only
// drawn for interactive use.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
