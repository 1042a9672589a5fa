// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads optional credentials from a directory of plain-text
// files: the filename is the key and the trimmed file contents are the value.
//
// The harvester itself needs no API keys; the one recognized file is
// contact-email, appended to the arXiv User-Agent so the archive operators
// can reach out about traffic.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContactEmailKey is the filename of the polite-contact email secret.
const ContactEmailKey = "contact-email"

// Load reads every regular file in dir into a key/value map. A missing
// directory is not an error; Load returns an empty map so the pipeline runs
// without any secrets present. Unreadable files warn on stderr and are
// skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			out[entry.Name()] = v
		}
	}
	return out, nil
}

// ContactEmail returns the contact email from the loaded secrets, or an
// empty string when none was provided.
func ContactEmail(secrets map[string]string) string {
	return secrets[ContactEmailKey]
}
