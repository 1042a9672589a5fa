// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download streams resolved preprint PDFs to the downloads directory.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/qml-harvester/internal/httputil"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

// Downloader fetches PDF documents.
type Downloader struct {
	Client *http.Client
	Pacer  *httputil.Pacer
}

// Fetch waits the politeness delay, then streams pdfURL into the downloads
// directory under filename, creating the directory if missing. The body is
// streamed through a temp file and renamed into place, so an interrupted
// download never leaves a partial PDF and a rerun overwrites the previous
// copy of the same name.
func (d *Downloader) Fetch(ctx context.Context, pdfURL, filename string, cfg types.DownloadConfig) error {
	if err := d.Pacer.Wait(ctx); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", cfg.Dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, pdfURL)
	}

	destPath := filepath.Join(cfg.Dir, filename)
	tmpFile, err := os.CreateTemp(cfg.Dir, ".download-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
