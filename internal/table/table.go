// Package table derives filtered, sorted and paged views of the admin
// usage-per-user rows. Every function is pure: inputs are never mutated and
// results never alias the source slice.
package table

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-xref/models"
)

// SortKey selects the column rows are ordered by.
type SortKey string

const (
	SortBySearchCount SortKey = "search_count"
	SortByName        SortKey = "user__full_name"
	SortByEmail       SortKey = "user__email"
)

// Direction is the sort order.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Filter returns the rows whose name or email contains text, compared
// case-insensitively after trimming. Blank text keeps every row.
func Filter(rows []models.UsageRow, text string) []models.UsageRow {
	q := strings.ToLower(strings.TrimSpace(text))
	out := make([]models.UsageRow, 0, len(rows))
	for _, r := range rows {
		if q == "" ||
			strings.Contains(strings.ToLower(r.UserName), q) ||
			strings.Contains(strings.ToLower(r.UserEmail), q) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a stably sorted copy of rows. SearchCount compares
// numerically; name and email compare as lowercase strings. Equal keys keep
// their input order in both directions.
func Sort(rows []models.UsageRow, key SortKey, dir Direction) []models.UsageRow {
	out := slices.Clone(rows)
	if out == nil {
		out = []models.UsageRow{}
	}

	slices.SortStableFunc(out, func(a, b models.UsageRow) int {
		c := compare(a, b, key)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

func compare(a, b models.UsageRow, key SortKey) int {
	switch key {
	case SortByName:
		return strings.Compare(strings.ToLower(a.UserName), strings.ToLower(b.UserName))
	case SortByEmail:
		return strings.Compare(strings.ToLower(a.UserEmail), strings.ToLower(b.UserEmail))
	default:
		switch {
		case a.SearchCount < b.SearchCount:
			return -1
		case a.SearchCount > b.SearchCount:
			return 1
		}
		return 0
	}
}

// TotalPages is ceil(n/size), never less than 1. A non-positive size counts as 1.
func TotalPages(n, size int) int {
	size = max(size, 1)
	return max(1, (n+size-1)/size)
}

// ClampPage moves page into [1, TotalPages(n, size)].
func ClampPage(page, n, size int) int {
	return min(max(page, 1), TotalPages(n, size))
}

// Paginate returns the rows of page (clamped) and the clamped page number.
// The returned slice is a copy.
func Paginate(rows []models.UsageRow, page, size int) ([]models.UsageRow, int) {
	size = max(size, 1)
	page = ClampPage(page, len(rows), size)

	start := (page - 1) * size
	end := min(start+size, len(rows))
	if start >= end {
		return []models.UsageRow{}, page
	}
	return slices.Clone(rows[start:end]), page
}

// TotalSearches sums SearchCount over rows.
func TotalSearches(rows []models.UsageRow) int {
	total := 0
	for _, r := range rows {
		total += r.SearchCount
	}
	return total
}
