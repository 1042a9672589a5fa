// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the scrape, resolve, download, and report stages
// into one sequential run: fetch the search page, filter candidates by topic
// and date, look up an open-access copy for each accepted article, download
// it, and write the plain-text report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/qml-harvester/internal/download"
	"github.com/pdiddy/qml-harvester/internal/httputil"
	"github.com/pdiddy/qml-harvester/internal/report"
	"github.com/pdiddy/qml-harvester/internal/resolve"
	"github.com/pdiddy/qml-harvester/internal/scrape"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

// Summary holds the outcome counters of one run.
type Summary struct {
	Candidates int
	Accepted   int
	Resolved   int
	Downloaded int
}

// Run executes the whole pipeline once, anchoring the date window to the
// wall clock. Progress lines are written to out.
//
// The error policy is two-tier: a failed search fetch or a failed report
// write aborts the run, everything else (an article without a preprint
// match, a failed download) is logged and the run continues.
func Run(ctx context.Context, cfg types.PipelineConfig, out io.Writer) (Summary, error) {
	window := scrape.NewDateWindow(time.Now(), windowDays(cfg))
	return run(ctx, cfg, window, out)
}

// run is the testable core; the window is passed in so tests can pin "today".
func run(ctx context.Context, cfg types.PipelineConfig, window scrape.DateWindow, out io.Writer) (Summary, error) {
	fetcher := &scrape.Fetcher{
		Client: &http.Client{Timeout: cfg.Scrape.Timeout},
		Pacer:  httputil.NewPacer(cfg.Scrape.RequestDelay),
	}
	resolver := &resolve.Resolver{
		Client: &http.Client{Timeout: cfg.Resolve.Timeout},
		Pacer:  httputil.NewPacer(cfg.Resolve.RequestDelay),
	}
	downloader := &download.Downloader{
		Client: &http.Client{Timeout: cfg.Download.Timeout},
		Pacer:  httputil.NewPacer(cfg.Download.RequestDelay),
	}
	topic := scrape.TopicFilter{Primary: cfg.Scrape.PrimaryTerm, Secondary: cfg.Scrape.SecondaryTerms}
	rep := &report.Reporter{}

	var sum Summary

	doc, err := fetcher.FetchSearchPage(ctx, cfg.Scrape)
	if err != nil {
		return sum, fmt.Errorf("fetching search page: %w", err)
	}

	candidates := scrape.ExtractCandidates(doc)
	sum.Candidates = len(candidates)
	fmt.Fprintf(out, "found %d candidate article(s)\n", len(candidates))

	for _, c := range candidates {
		if !topic.Matches(c.Title) {
			continue
		}
		date, err := window.ParseDate(c.DateAttr)
		if err != nil || !window.Contains(date) {
			continue
		}

		article := types.Article{
			Title: c.Title,
			Date:  date,
			URL:   scrape.CanonicalURL(cfg.Scrape.SearchURL, c.Href),
		}
		fmt.Fprintf(out, "✔ %s (%s)\n", article.Title, article.Date.Format("2006-01-02"))

		pdfURL, err := resolver.ResolvePDF(ctx, c.Title, cfg.Resolve)
		switch {
		case errors.Is(err, resolve.ErrNoMatch):
			fmt.Fprintf(out, "  ✘ no open-access copy found\n")
		case err != nil:
			fmt.Fprintf(out, "  ✘ preprint lookup failed: %v\n", err)
		default:
			article.PDFURL = pdfURL
			sum.Resolved++
			name := download.SafeFilename(c.Title)
			if err := downloader.Fetch(ctx, pdfURL, name, cfg.Download); err != nil {
				fmt.Fprintf(out, "  ✘ download failed for %s: %v\n", pdfURL, err)
			} else {
				rep.MarkDownloaded()
				sum.Downloaded++
				fmt.Fprintf(out, "  ↓ saved %s\n", name)
			}
		}

		rep.AddArticle(article)
		sum.Accepted = rep.Accepted()
		fmt.Fprintf(out, "  running total: %d accepted, %d downloaded\n", rep.Accepted(), rep.Downloaded())
	}

	if err := rep.Write(cfg.Report.OutputPath); err != nil {
		return sum, err
	}
	fmt.Fprintf(out, "\n%s\n", rep.Summary())
	return sum, nil
}

func windowDays(cfg types.PipelineConfig) int {
	if cfg.Scrape.WindowDays > 0 {
		return cfg.Scrape.WindowDays
	}
	return 7
}
