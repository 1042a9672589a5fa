// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape fetches the publisher's search page and extracts the
// candidate articles that pass the topic and date filters.
package scrape

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/qml-harvester/internal/httputil"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

// Fetcher retrieves the publisher's search page.
type Fetcher struct {
	Client *http.Client
	Pacer  *httputil.Pacer
}

// FetchSearchPage waits the politeness delay, issues a single GET against the
// configured search URL, and parses the response markup. The publisher serves
// a reduced page to unknown clients, so the request carries browser-style
// headers. Any failure here is fatal to the run; nothing downstream can
// proceed without the page.
func (f *Fetcher) FetchSearchPage(ctx context.Context, cfg types.ScrapeConfig) (*goquery.Document, error) {
	if err := f.Pacer.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.SearchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}
	return doc, nil
}
