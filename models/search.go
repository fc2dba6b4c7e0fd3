package models

import "strings"

// DefaultSearchPageSize is used when a query does not ask for a page size.
const DefaultSearchPageSize = 10

// MaxSearchPageSize caps the page size sent to the backend.
const MaxSearchPageSize = 100

// SearchQuery is the input of a catalog search. Page resets to 1 whenever
// Text or Manufacturer changes and is preserved across next/prev navigation.
type SearchQuery struct {
	Text         string
	Manufacturer string
	Page         int
	PageSize     int
}

// SearchRequest is the wire body of POST /catalog/search/.
type SearchRequest struct {
	PartNumber   string `json:"partNumber"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
}

// SearchResponse is the wire body returned by POST /catalog/search/.
type SearchResponse struct {
	Success *bool        `json:"success"`
	Data    []SearchItem `json:"data"`
	Count   int          `json:"count"`
	Meta    SearchMeta   `json:"meta"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
}

// SearchMeta carries the backend's pagination metadata.
type SearchMeta struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// SearchItem is one raw catalog row as returned by the backend.
type SearchItem struct {
	PartNumber   string      `json:"part_number"`
	Description  string      `json:"description"`
	ToolType     string      `json:"tool_type"`
	Manufacturer string      `json:"manufacturer"`
	Size         string      `json:"size"`
	Finish       string      `json:"finish"`
	Crossovers   []Crossover `json:"crossovers"`
	MatchInfo    *MatchInfo  `json:"match_info"`
}

// Crossover is an equivalent part from another brand.
type Crossover struct {
	Brand      string `json:"brand"`
	PartNumber string `json:"part_number"`
}

// MatchInfo explains why a row matched the query.
type MatchInfo struct {
	MatchedField     string `json:"matched_field"`
	IsCrossoverMatch bool   `json:"is_crossover_match"`
}

// MatchStatus classifies a search row.
type MatchStatus string

const (
	MatchExact     MatchStatus = "Exact"
	MatchCrossover MatchStatus = "Crossover"
	MatchRelated   MatchStatus = "Related"
)

// Status derives the row classification from the match info.
func (m *MatchInfo) Status() MatchStatus {
	if m == nil {
		return MatchRelated
	}
	if m.IsCrossoverMatch {
		return MatchCrossover
	}
	if strings.HasPrefix(m.MatchedField, "primary") {
		return MatchExact
	}
	return MatchRelated
}

// PartMatch is a renderable search row.
type PartMatch struct {
	PartNumber   string
	Description  string
	Category     string
	Status       MatchStatus
	Manufacturer string
	Size         string
	Finish       string
	Crossovers   string
}

// SearchResultPage is one page of search results. It is replaced wholesale
// on every successful fetch.
type SearchResultPage struct {
	Rows        []PartMatch
	TotalCount  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// Range returns the 1-based inclusive bounds of the rows on this page
// within the whole result set. Both are 0 for an empty result.
func (p SearchResultPage) Range() (from, to int) {
	if p.TotalCount == 0 || len(p.Rows) == 0 {
		return 0, 0
	}
	from = (p.CurrentPage-1)*p.PageSize + 1
	to = min(from+len(p.Rows)-1, p.TotalCount)
	return from, to
}

// HasPrev reports whether a previous page exists.
func (p SearchResultPage) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p SearchResultPage) HasNext() bool {
	return p.TotalPages > 0 && p.CurrentPage < p.TotalPages
}

// ManufacturersResponse is the wire body of GET /catalog/manufacturers/.
type ManufacturersResponse struct {
	Data []string `json:"data"`
}
