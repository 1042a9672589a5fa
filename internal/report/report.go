// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report accumulates the run's plain-text log and counters.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/qml-harvester/pkg/types"
)

const (
	separator = "--------------------------------------------------"
	dateFmt   = "2006-01-02"

	// notFound is the notation written when no open-access copy exists.
	notFound = "not found"
)

// Reporter collects one fixed-format block per accepted article and writes
// the whole log at the end of the run, replacing any previous file. An
// article is added whether or not a PDF was located; the absence of a
// document is itself recorded.
type Reporter struct {
	blocks     strings.Builder
	accepted   int
	downloaded int
}

// AddArticle appends the article's metadata block and bumps the accepted count.
func (r *Reporter) AddArticle(a types.Article) {
	r.accepted++
	fmt.Fprintf(&r.blocks, "Title: %s\n", a.Title)
	fmt.Fprintf(&r.blocks, "Date: %s\n", a.Date.Format(dateFmt))
	fmt.Fprintf(&r.blocks, "URL: %s\n", a.URL)
	pdf := a.PDFURL
	if pdf == "" {
		pdf = notFound
	}
	fmt.Fprintf(&r.blocks, "PDF: %s\n", pdf)
	fmt.Fprintf(&r.blocks, "%s\n\n", separator)
}

// MarkDownloaded bumps the successful-download count.
func (r *Reporter) MarkDownloaded() { r.downloaded++ }

// Accepted returns the number of articles added so far.
func (r *Reporter) Accepted() int { return r.accepted }

// Downloaded returns the number of successful downloads so far.
func (r *Reporter) Downloaded() int { return r.downloaded }

// Write replaces the file at path with this run's accumulated log.
func (r *Reporter) Write(path string) error {
	if err := os.WriteFile(path, []byte(r.blocks.String()), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Summary returns the end-of-run counter line.
func (r *Reporter) Summary() string {
	return fmt.Sprintf("%d article(s) accepted, %d PDF(s) downloaded", r.accepted, r.downloaded)
}
