// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"strings"
	"time"
)

// dateFmt is the calendar format of the date portion of the datetime attribute.
const dateFmt = "2006-01-02"

// TopicFilter decides relevance by conjunctive keyword matching: the primary
// term must appear in the lowercased title together with at least one
// secondary term. This is literal substring matching, not NLP; paraphrased
// titles produce false negatives, which is accepted.
type TopicFilter struct {
	Primary   string
	Secondary []string
}

// Matches reports whether the title is on topic. Matching is
// case-insensitive on both the title and the vocabulary.
func (f TopicFilter) Matches(title string) bool {
	t := strings.ToLower(title)
	if !strings.Contains(t, strings.ToLower(f.Primary)) {
		return false
	}
	for _, term := range f.Secondary {
		if strings.Contains(t, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// DateWindow is the trailing acceptance range for publication dates,
// inclusive on both ends. It is anchored once at run start, so a run that
// spans midnight keeps a stable window.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// NewDateWindow anchors a window of the given number of days ending at
// midnight of now's calendar day, in now's location.
func NewDateWindow(now time.Time, days int) DateWindow {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateWindow{From: today.AddDate(0, 0, -days), To: today}
}

// ParseDate takes the date portion before any time component of a datetime
// attribute and strict-parses it in the window's location.
func (w DateWindow) ParseDate(attr string) (time.Time, error) {
	datePart, _, _ := strings.Cut(attr, "T")
	return time.ParseInLocation(dateFmt, strings.TrimSpace(datePart), w.From.Location())
}

// Contains reports whether d falls inside the window, bounds included.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.From) && !d.After(w.To)
}
