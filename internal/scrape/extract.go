// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is one article node lifted off the search page before filtering.
// All three fields are guaranteed non-empty; nodes missing any of them are
// dropped during extraction so partial records never reach the filters.
type Candidate struct {
	Title    string
	DateAttr string // raw machine-readable date attribute, e.g. "2026-08-21T10:30:00Z"
	Href     string // site-relative link target
}

// selectorStrategy names one known layout of the search page. The site has
// shipped markup changes before, so extraction is an ordered list of
// strategies rather than a single hard-coded selector set.
type selectorStrategy struct {
	name    string
	article string
	title   string
	date    string
}

// strategies are tried in order; the first one that selects at least one
// article node wins. Adding a new layout is a new entry here.
var strategies = []selectorStrategy{
	{name: "current", article: "article.sorted-article", title: "h3 a", date: "time[datetime]"},
	{name: "legacy", article: "div.sorted-article", title: "a.news-link", date: "[datetime]"},
}

// ExtractCandidates selects article nodes from the search page and extracts
// title, date attribute, and the first site-relative link from each.
// Candidates missing any of the three parts are skipped silently.
func ExtractCandidates(doc *goquery.Document) []Candidate {
	for _, s := range strategies {
		nodes := doc.Find(s.article)
		if nodes.Length() == 0 {
			continue
		}

		var out []Candidate
		nodes.Each(func(_ int, sel *goquery.Selection) {
			title := strings.TrimSpace(sel.Find(s.title).First().Text())
			if title == "" {
				return
			}

			dateAttr, ok := sel.Find(s.date).First().Attr("datetime")
			if !ok || strings.TrimSpace(dateAttr) == "" {
				return
			}

			href := firstRelativeLink(sel)
			if href == "" {
				return
			}

			out = append(out, Candidate{Title: title, DateAttr: dateAttr, Href: href})
		})
		return out
	}
	return nil
}

// firstRelativeLink returns the href of the first link whose target is
// site-relative. Protocol-relative ("//host/...") and absolute links are
// passed over.
func firstRelativeLink(sel *goquery.Selection) string {
	href := ""
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		h, _ := a.Attr("href")
		if strings.HasPrefix(h, "/") && !strings.HasPrefix(h, "//") {
			href = h
			return false
		}
		return true
	})
	return href
}

// CanonicalURL resolves a site-relative href against the search page URL.
// It returns an empty string when either part fails to parse.
func CanonicalURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(h).String()
}
