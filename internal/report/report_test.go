// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/qml-harvester/pkg/types"
)

func sampleArticle(pdf string) types.Article {
	return types.Article{
		Title:  "Quantum machine learning breakthrough",
		Date:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		URL:    "https://phys.org/news/2026-08-quantum-ml.html",
		PDFURL: pdf,
	}
}

func TestReporterBlockFormat(t *testing.T) {
	var r Reporter
	r.AddArticle(sampleArticle("https://arxiv.org/pdf/2301.07041v1.pdf"))

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := r.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	for _, want := range []string{
		"Title: Quantum machine learning breakthrough\n",
		"Date: 2026-08-20\n",
		"URL: https://phys.org/news/2026-08-quantum-ml.html\n",
		"PDF: https://arxiv.org/pdf/2301.07041v1.pdf\n",
		separator,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReporterNotFoundNotation(t *testing.T) {
	var r Reporter
	r.AddArticle(sampleArticle(""))

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := r.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "PDF: not found\n") {
		t.Error("report should carry the not-found notation")
	}
}

func TestReporterCounters(t *testing.T) {
	var r Reporter
	r.AddArticle(sampleArticle(""))
	r.AddArticle(sampleArticle("https://arxiv.org/pdf/1.pdf"))
	r.MarkDownloaded()

	if r.Accepted() != 2 {
		t.Errorf("Accepted = %d, want 2", r.Accepted())
	}
	if r.Downloaded() != 1 {
		t.Errorf("Downloaded = %d, want 1", r.Downloaded())
	}
	if got := r.Summary(); !strings.Contains(got, "2 article(s)") || !strings.Contains(got, "1 PDF(s)") {
		t.Errorf("Summary = %q", got)
	}
}

func TestReporterWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("previous run content"), 0o644); err != nil {
		t.Fatal(err)
	}

	var r Reporter
	r.AddArticle(sampleArticle(""))
	if err := r.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "previous run content") {
		t.Error("Write must replace prior content, not append")
	}
}
