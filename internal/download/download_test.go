// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/qml-harvester/internal/httputil"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

const fakePDFContent = "%PDF-1.4 fake"

func downloadConfig(dir string) types.DownloadConfig {
	return types.DownloadConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "qml-harvester-test/0.1",
		},
		Dir: dir,
	}
}

func newDownloader(client *http.Client) *Downloader {
	return &Downloader{Client: client, Pacer: httputil.NewPacer(0)}
}

func TestFetchWritesPDF(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/pdf" {
			t.Errorf("Accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	dir := filepath.Join(t.TempDir(), "downloads")
	d := newDownloader(ts.Client())
	if err := d.Fetch(context.Background(), ts.URL+"/pdf/x.pdf", "Quantum paper.pdf", downloadConfig(dir)); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Quantum paper.pdf"))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	if string(data) != fakePDFContent {
		t.Errorf("content = %q, want %q", string(data), fakePDFContent)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestFetchOverwritesExisting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "paper.pdf"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := newDownloader(ts.Client())
	if err := d.Fetch(context.Background(), ts.URL, "paper.pdf", downloadConfig(dir)); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "paper.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	// Rerunning replaces the previous copy rather than skipping it.
	if string(data) != fakePDFContent {
		t.Errorf("content = %q, want overwritten copy", string(data))
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	dir := t.TempDir()
	d := newDownloader(ts.Client())
	err := d.Fetch(context.Background(), ts.URL, "missing.pdf", downloadConfig(dir))
	if err == nil {
		t.Fatal("expected error for HTTP 404")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "missing.pdf")); !os.IsNotExist(statErr) {
		t.Error("no file should be written on failure")
	}
}

func TestFetchCreatesDirectory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	dir := filepath.Join(t.TempDir(), "a", "b", "downloads")
	d := newDownloader(ts.Client())
	if err := d.Fetch(context.Background(), ts.URL, "p.pdf", downloadConfig(dir)); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "p.pdf")); err != nil {
		t.Errorf("PDF missing: %v", err)
	}
}
