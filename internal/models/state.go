package models

// FilterAll is the sentinel that turns a categorical or bucket filter off.
const FilterAll = "all"

// SortState is the active sort column and direction. Exactly one column is
// active at a time; toggling the same column flips the direction, picking a
// new column resets to ascending.
type SortState struct {
	Column    string `json:"column" form:"sort"`
	Direction string `json:"direction" form:"dir"` // "asc" or "desc"
}

// Toggled returns the sort state after a click on the given column.
func (s SortState) Toggled(column string) SortState {
	if s.Column == column {
		if s.Direction == "desc" {
			return SortState{Column: column, Direction: "asc"}
		}
		return SortState{Column: column, Direction: "desc"}
	}
	return SortState{Column: column, Direction: "asc"}
}

// FilterState is a free-text query plus named categorical/bucket filter
// selections. A missing or "all" selection passes everything through.
type FilterState struct {
	Query      string
	Categories map[string]string
	Buckets    map[string]string
}

// Category returns the selection for a categorical filter, FilterAll when
// unset or blank.
func (f FilterState) Category(name string) string {
	return f.selection(f.Categories, name)
}

// Bucket returns the selection for a bucket filter, FilterAll when unset
// or blank.
func (f FilterState) Bucket(name string) string {
	return f.selection(f.Buckets, name)
}

func (f FilterState) selection(m map[string]string, name string) string {
	if m == nil {
		return FilterAll
	}
	v := m[name]
	if v == "" {
		return FilterAll
	}
	return v
}
