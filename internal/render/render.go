// Package render turns filtered, sorted record sequences into the row
// representations the frontend tables consume, plus the trailing summary
// (result count and empty-state flag). Formatters are pure: each one maps
// raw fields to a display value for its row and nothing else. Every call
// renders the full set; there is no delta patching at this data scale.
package render

import (
	"strconv"
	"strings"

	"pickandtip/backend/internal/config"
)

// Badge is a colored label cell (tax level, legal framework, licensing).
type Badge struct {
	Label   string `json:"label"`
	Level   string `json:"level"`
	Color   string `json:"color,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Notes is note text, truncated for the cell with the full text moved
// into a tooltip when it exceeds the preview length.
type Notes struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Summary trails every rendered table. Count is a string because the
// frontend drops it verbatim into a text node.
type Summary struct {
	Count     string `json:"count"`
	NoResults bool   `json:"noResults"`
}

// Rows maps records through a row builder.
func Rows[T, R any](records []T, build func(T) R) []R {
	rows := make([]R, len(records))
	for i, r := range records {
		rows[i] = build(r)
	}
	return rows
}

// Summarize builds the trailing summary for a rendered set.
func Summarize(count int) Summary {
	return Summary{Count: strconv.Itoa(count), NoResults: count == 0}
}

// NotesCell truncates note text at the preview length; the untruncated
// text becomes the tooltip. Length counts runes, never bytes: the cut
// must not split a multi-byte character.
func NotesCell(text string) Notes {
	runes := []rune(text)
	if len(runes) <= config.NotesPreviewLength {
		return Notes{Text: text}
	}
	return Notes{
		Text:    strings.TrimSpace(string(runes[:config.NotesPreviewLength])) + "...",
		Tooltip: text,
	}
}

// Percent formats a rate for display ("20%", "5.5%").
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Range formats a numeric min-max span ("3-5").
func Range(min, max float64) string {
	return strconv.FormatFloat(min, 'f', -1, 64) + "-" + strconv.FormatFloat(max, 'f', -1, 64)
}
