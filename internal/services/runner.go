// Package services wires the stats source and gist store into a single update run.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/j-veylop/waka-box/internal/chart"
	"github.com/j-veylop/waka-box/internal/config"
	"github.com/j-veylop/waka-box/internal/logger"
	"github.com/j-veylop/waka-box/internal/models"
	"github.com/j-veylop/waka-box/internal/services/gist"
	"github.com/j-veylop/waka-box/internal/services/wakatime"
	"github.com/j-veylop/waka-box/internal/stats"
)

// StatsSource provides the weekly language report.
type StatsSource interface {
	FetchWeeklyReport(ctx context.Context) (models.StatsReport, error)
}

// DocumentStore reads and writes the target gist.
type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (models.Document, error)
	UpdateDocument(ctx context.Context, id, filename, title, content string) error
}

// Options controls a single run.
type Options struct {
	GistID string
	Title  string
	Render chart.Options
	DryRun bool
}

// Result describes what a run did.
type Result struct {
	Content  string
	Filename string
	Title    string
	Updated  bool
	Skipped  bool
}

// Runner performs one fetch-render-update cycle.
type Runner struct {
	source   StatsSource
	store    DocumentStore
	notifier Notifier
	opts     Options
}

// NewRunner creates a runner from explicit collaborators.
func NewRunner(source StatsSource, store DocumentStore, opts Options) *Runner {
	if opts.Title == "" {
		opts.Title = config.DefaultTitle
	}
	if opts.Render.TopN <= 0 {
		opts.Render.TopN = stats.DefaultTopN
	}
	return &Runner{
		source: source,
		store:  store,
		opts:   opts,
	}
}

// New creates a runner backed by the WakaTime and GitHub APIs.
func New(cfg *config.Config, dryRun bool) *Runner {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return NewRunner(
		wakatime.New(httpClient, cfg.WakaTimeURL, cfg.WakaTimeAPIKey),
		gist.New(httpClient, cfg.GitHubURL, cfg.GitHubToken),
		Options{
			GistID: cfg.GistID,
			Title:  cfg.Title,
			Render: chart.Options{
				MergeRules: cfg.MergeRules,
				TopN:       stats.DefaultTopN,
			},
			DryRun: dryRun,
		},
	)
}

// SetNotifier enables failure notifications.
func (r *Runner) SetNotifier(n Notifier) {
	r.notifier = n
}

// Run fetches the weekly stats, renders them and writes the gist.
// Nothing is written when any read fails or there is nothing to render.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger.Info("fetching weekly stats")
	report, err := r.source.FetchWeeklyReport(ctx)
	if err != nil {
		return nil, r.fail("failed to fetch stats", err)
	}

	doc, err := r.store.GetDocument(ctx, r.opts.GistID)
	if err != nil {
		return nil, r.fail("failed to get gist", err)
	}

	result := &Result{Filename: doc.Filename, Title: r.opts.Title}

	content, ok := chart.Render(report, r.opts.Render)
	if !ok {
		logger.Info("no language stats to render, skipping update")
		result.Skipped = true
		return result, nil
	}
	result.Content = content

	if r.opts.DryRun {
		logger.Info("dry run, not updating gist", "gist", r.opts.GistID, "file", doc.Filename)
		return result, nil
	}

	if err := r.store.UpdateDocument(ctx, r.opts.GistID, doc.Filename, r.opts.Title, content); err != nil {
		return nil, r.fail("failed to update gist", err)
	}
	result.Updated = true

	logger.Info("updated gist", "gist", r.opts.GistID, "file", doc.Filename, "title", r.opts.Title)
	return result, nil
}

func (r *Runner) fail(msg string, err error) error {
	err = fmt.Errorf("%s: %w", msg, err)
	if r.notifier != nil {
		if nerr := r.notifier.Notify("wakabox update failed", err.Error()); nerr != nil {
			logger.Warn("failed to send notification", "error", nerr)
		}
	}
	return err
}
