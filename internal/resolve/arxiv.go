// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve locates open-access preprint copies of articles by
// querying the arXiv API with an exact title match.
package resolve

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/qml-harvester/internal/httputil"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

// defaultAPIBase is the public arXiv query endpoint. Tests point
// ResolveConfig.APIBase at an httptest server instead.
const defaultAPIBase = "https://export.arxiv.org/api/query"

// ErrNoMatch reports that the archive has no entry whose title matches.
// Callers treat it as "no open-access copy", not as a failure of the run.
var ErrNoMatch = errors.New("no matching preprint")

// Resolver queries the arXiv API for preprint PDFs.
type Resolver struct {
	Client *http.Client
	Pacer  *httputil.Pacer
}

// ResolvePDF waits the politeness delay, queries arXiv for the exact title
// sorted by submission date descending, and derives the PDF URL of the most
// recent match. Exact-title matching means punctuation or wording
// differences between the news headline and the preprint title produce
// false negatives; fuzzy matching would be the place to improve this.
func (r *Resolver) ResolvePDF(ctx context.Context, title string, cfg types.ResolveConfig) (string, error) {
	if err := r.Pacer.Wait(ctx); err != nil {
		return "", err
	}

	base := cfg.APIBase
	if base == "" {
		base = defaultAPIBase
	}

	q := url.Values{}
	q.Set("search_query", fmt.Sprintf("ti:%q", title))
	q.Set("start", "0")
	q.Set("max_results", "1")
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("parsing arXiv response: %w", err)
	}

	if len(feed.Entries) == 0 {
		return "", ErrNoMatch
	}
	return pdfURLFromEntryID(feed.Entries[0].ID)
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
}

// pdfURLFromEntryID derives the document URL from an entry's abstract URL by
// substituting the path segment and appending the file suffix
// (".../abs/2301.07041v1" becomes ".../pdf/2301.07041v1.pdf").
func pdfURLFromEntryID(id string) (string, error) {
	if !strings.Contains(id, "/abs/") {
		return "", ErrNoMatch
	}
	return strings.Replace(id, "/abs/", "/pdf/", 1) + ".pdf", nil
}
