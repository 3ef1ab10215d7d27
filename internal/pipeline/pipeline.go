// Package pipeline implements the generic filter/sort core shared by every
// topic table. A topic describes itself through a Table of field accessors
// (which localized fields free-text search scans, how each sortable column
// reads its value, which categorical and bucket filters exist) and the
// pipeline applies a FilterState and SortState to any record slice.
package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pickandtip/backend/internal/models"
)

// Column extracts the sortable value of one table column. Exactly one of
// String or Number is set; String columns compare with locale-aware
// collation in the active language, Number columns by subtraction.
// Accessors must treat missing data as neutral ("" or 0), never panic.
type Column[T any] struct {
	String func(record T, lang string) string
	Number func(record T) float64
}

// Bucket is a threshold filter: the record's numeric field is tested
// against fixed, topic-defined cut points. Levels maps a level name
// ("none", "low", ...) to its predicate over the extracted value.
type Bucket[T any] struct {
	Value  func(record T) float64
	Levels map[string]func(v float64) bool
}

// Table is the accessor table describing one topic's records to the
// pipeline.
type Table[T any] struct {
	// Columns maps column identifiers to their value accessors.
	Columns map[string]Column[T]
	// DefaultColumn sorts the table when the requested column is unknown.
	DefaultColumn string
	// SearchFields are the localized fields free-text search scans.
	SearchFields []func(record T, lang string) string
	// Categories maps filter names to the record value they match exactly.
	Categories map[string]func(record T) string
	// Buckets maps filter names to their threshold definitions.
	Buckets map[string]Bucket[T]
}

// Apply filters and sorts records for display. The input slice is never
// mutated and the output is always a subset of it: predicates only narrow.
// An empty query, an "all" categorical selection and an "all" (or unknown)
// bucket level each pass every record through.
func Apply[T any](records []T, table Table[T], filter models.FilterState, sortState models.SortState, lang string) []T {
	filtered := make([]T, 0, len(records))
	filtered = append(filtered, records...)

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		filtered = keep(filtered, func(r T) bool {
			for _, field := range table.SearchFields {
				if strings.Contains(strings.ToLower(field(r, lang)), query) {
					return true
				}
			}
			return false
		})
	}

	for name, value := range table.Categories {
		selected := filter.Category(name)
		if selected == models.FilterAll {
			continue
		}
		filtered = keep(filtered, func(r T) bool { return value(r) == selected })
	}

	for name, bucket := range table.Buckets {
		selected := filter.Bucket(name)
		if selected == models.FilterAll {
			continue
		}
		match, ok := bucket.Levels[selected]
		if !ok {
			continue
		}
		filtered = keep(filtered, func(r T) bool { return match(bucket.Value(r)) })
	}

	sortRecords(filtered, table, sortState, lang)
	return filtered
}

func keep[T any](records []T, match func(T) bool) []T {
	kept := records[:0]
	for _, r := range records {
		if match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// sortRecords orders records by the active column. The sort is stable:
// records comparing equal keep their prior relative order, which for a
// freshly merged set is the dataset's publication order.
func sortRecords[T any](records []T, table Table[T], state models.SortState, lang string) {
	column, ok := table.Columns[state.Column]
	if !ok {
		column, ok = table.Columns[table.DefaultColumn]
		if !ok {
			return
		}
	}

	desc := state.Direction == "desc"

	if column.Number != nil {
		sort.SliceStable(records, func(i, j int) bool {
			a, b := column.Number(records[i]), column.Number(records[j])
			if desc {
				return b < a
			}
			return a < b
		})
		return
	}

	coll := collatorFor(lang)
	sort.SliceStable(records, func(i, j int) bool {
		cmp := coll.CompareString(column.String(records[i], lang), column.String(records[j], lang))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// collatorFor builds a collator for the display language. Collators keep
// internal buffers, so each sort gets its own instead of sharing one
// across requests.
func collatorFor(lang string) *collate.Collator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.French
	}
	return collate.New(tag, collate.Loose)
}
