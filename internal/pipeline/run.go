// Package pipeline drives the per-year scrape: yearly listing page, meeting
// pages, document downloads.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civicdocs/agendarchive/internal/agendacenter"
	"github.com/civicdocs/agendarchive/internal/archive"
	"github.com/civicdocs/agendarchive/internal/config"
	"github.com/civicdocs/agendarchive/internal/portal"
	"github.com/civicdocs/agendarchive/pkg/models"
)

// Result holds execution results.
type Result struct {
	MeetingsFound int
	FilesSaved    int
	FilesSkipped  int
	Errors        []error
}

// Pipeline orchestrates fetching, extraction, and download across the
// configured year range. Execution is strictly sequential: one page or one
// file at a time, with the configured delay between downloads. Each unit of
// work (one meeting, one file) fails independently.
type Pipeline struct {
	client *portal.Client
	store  *archive.Store
	cfg    config.Config
}

// New creates a Pipeline with the given configuration.
func New(cfg config.Config) *Pipeline {
	return &Pipeline{
		client: portal.New(cfg.Portal, cfg.Fetcher),
		store:  archive.New(cfg.Archive.Root),
		cfg:    cfg,
	}
}

// Run scrapes every year in the configured range. A failed year is recorded
// and the following years still proceed.
func (p *Pipeline) Run(ctx context.Context) *Result {
	total := &Result{}
	for year := p.cfg.Archive.FromYear; year <= p.cfg.Archive.ToYear; year++ {
		if ctx.Err() != nil {
			break
		}
		res, err := p.ScrapeYear(ctx, year)
		if err != nil {
			slog.Error("year failed", "year", year, "error", err)
			total.Errors = append(total.Errors, err)
			continue
		}
		total.MeetingsFound += res.MeetingsFound
		total.FilesSaved += res.FilesSaved
		total.FilesSkipped += res.FilesSkipped
		total.Errors = append(total.Errors, res.Errors...)
	}
	return total
}

// ScrapeYear fetches one year's listing page and works through its meetings.
// Only a listing fetch failure aborts the year; a broken meeting page or a
// failed download is logged and the loop continues.
func (p *Pipeline) ScrapeYear(ctx context.Context, year int) (*Result, error) {
	res := &Result{}
	slog.Info("scraping year", "year", year)

	listHTML, err := p.client.FetchPage(ctx, p.client.ListingURL(year))
	if err != nil {
		return nil, fmt.Errorf("listing for %d: %w", year, err)
	}

	ids := agendacenter.ExtractMeetingIDs(listHTML)
	if len(ids) == 0 {
		slog.Warn("no meetings found", "year", year)
		return res, nil
	}
	res.MeetingsFound = len(ids)

	if err := p.store.EnsureYearDir(year); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if err := p.scrapeMeeting(ctx, year, id, res); err != nil {
			slog.Warn("skipping meeting", "year", year, "meeting", id, "error", err)
			res.Errors = append(res.Errors, err)
		}
	}
	return res, nil
}

// scrapeMeeting fetches one meeting page and downloads its document links.
func (p *Pipeline) scrapeMeeting(ctx context.Context, year, id int, res *Result) error {
	pageHTML, err := p.client.FetchPage(ctx, p.client.MeetingURL(id, year))
	if err != nil {
		return fmt.Errorf("meeting %d: %w", id, err)
	}

	meeting := models.Meeting{ID: id, Date: agendacenter.ExtractMeetingDate(pageHTML)}
	links := agendacenter.ExtractFileLinks(pageHTML, p.cfg.Portal.BaseURL)
	slog.Debug("meeting scraped", "meeting", id, "label", meeting.Label(), "links", len(links))

	for _, fl := range links {
		if ctx.Err() != nil {
			break
		}

		dest := p.store.Path(year, archive.BuildFilename(meeting.Label(), fl.Type, fl.URL))
		if p.store.Has(dest) {
			res.FilesSkipped++
			continue
		}

		if err := p.client.DownloadFile(ctx, fl.URL, dest); err != nil {
			slog.Warn("download failed", "url", fl.URL, "error", err)
			res.Errors = append(res.Errors, fmt.Errorf("download %s: %w", fl.URL, err))
			continue
		}
		res.FilesSaved++
		slog.Info("saved file", "path", dest)

		p.pause(ctx)
	}
	return nil
}

// pause waits the politeness delay between downloads, returning early on
// cancellation.
func (p *Pipeline) pause(ctx context.Context) {
	if p.cfg.Fetcher.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.cfg.Fetcher.Delay):
	}
}
