// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import "strings"

const (
	// maxStemLen caps the filename stem, excluding the extension.
	maxStemLen = 100
	fileExt    = ".pdf"
)

// SafeFilename turns an article title into a filename: characters common
// filesystems reject are removed, surrounding whitespace is trimmed, the
// stem is capped at maxStemLen runes, and the PDF extension is appended.
// There is no collision handling; two titles that sanitize to the same stem
// overwrite one another on disk.
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			continue
		}
		b.WriteRune(r)
	}

	stem := strings.TrimSpace(b.String())
	if runes := []rune(stem); len(runes) > maxStemLen {
		stem = strings.TrimSpace(string(runes[:maxStemLen]))
	}
	return stem + fileExt
}
