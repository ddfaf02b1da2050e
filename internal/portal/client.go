// Package portal handles all HTTP traffic against the agenda portal.
package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocolly/colly/v2"

	"github.com/civicdocs/agendarchive/internal/config"
)

// Client fetches portal pages and streams document files to disk.
//
// Page fetches go through a colly collector so the user agent, request
// timeout, and per-domain politeness delay apply uniformly. File downloads
// use a dedicated http.Client with the longer download timeout and stream
// the body straight to disk instead of buffering it.
type Client struct {
	portal    config.Portal
	userAgent string

	pages *colly.Collector
	files *http.Client

	// mu serializes page fetches; ctx and body belong to the fetch in
	// flight, since the collector's handlers are registered once.
	mu   sync.Mutex
	ctx  context.Context
	body []byte
}

// New creates a Client from the portal endpoints and fetcher settings.
func New(portal config.Portal, fetcher config.Fetcher) *Client {
	c := colly.NewCollector(
		colly.UserAgent(fetcher.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(fetcher.PageTimeout)

	// Rate limiting between page requests
	c.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      fetcher.Delay,
	})

	cl := &Client{
		portal:    portal,
		userAgent: fetcher.UserAgent,
		pages:     c,
		files:     &http.Client{Timeout: fetcher.DownloadTimeout},
	}

	c.OnRequest(func(r *colly.Request) {
		if cl.ctx != nil && cl.ctx.Err() != nil {
			r.Abort()
		}
	})
	c.OnResponse(func(r *colly.Response) {
		cl.body = r.Body
	})

	return cl
}

// ListingURL returns the yearly listing page URL.
func (cl *Client) ListingURL(year int) string {
	return cl.portal.BaseURL + fmt.Sprintf(cl.portal.ListingPath, year)
}

// MeetingURL returns the detail page URL for one meeting.
func (cl *Client) MeetingURL(id, year int) string {
	return cl.portal.BaseURL + fmt.Sprintf(cl.portal.MeetingPath, id, year)
}

// FetchPage GETs a page and returns its HTML. Transport errors and non-2xx
// statuses surface as errors; nothing is retried.
func (cl *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.ctx = ctx
	cl.body = nil
	if err := cl.pages.Visit(pageURL); err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(cl.body), nil
}

// DownloadFile streams the file at url into dest, creating parent
// directories as needed. A partially written file from an interrupted
// stream is left in place.
func (cl *Client) DownloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", cl.userAgent)

	resp, err := cl.files.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, resp.Body)
	return err
}
