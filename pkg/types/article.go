// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Article holds what one scrape pass learned about an accepted news article.
// Records are transient: they exist for the duration of a run and are
// flattened into the plain-text report, never persisted as structured data.
type Article struct {
	// Title is the article headline as it appears on the search page.
	Title string

	// Date is the publication date, truncated to the calendar day.
	Date time.Time

	// URL is the canonical article URL resolved against the search page.
	URL string

	// PDFURL is the open-access preprint PDF, empty when no match was found.
	PDFURL string
}
