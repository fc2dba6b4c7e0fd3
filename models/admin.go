package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Dashboard is the admin overview returned by POST /admin/dashboard/.
// Counts are pointers because the backend may omit any of them.
type Dashboard struct {
	TotalUsers          *int         `json:"total_users"`
	VerifiedUsers       *int         `json:"verified_users"`
	ActiveSubscriptions *int         `json:"active_subscriptions"`
	WeeklySearches      *int         `json:"weekly_searches"`
	MonthlySearches     *int         `json:"monthly_searches"`
	Graph               SearchGraph  `json:"graph"`
	TopSearches         []SearchStat `json:"top_searches_list"`
	FailedSearches      []SearchStat `json:"failed_searcher_list"`
	Usage               []UsageRow   `json:"usage_pr_user"`
}

// DashboardResponse is the envelope of POST /admin/dashboard/.
type DashboardResponse struct {
	Data Dashboard `json:"data"`
}

// SearchGraph holds daily success and failure counts.
type SearchGraph struct {
	Success []DailyCount `json:"success_searches"`
	Failed  []DailyCount `json:"failed_searcher"`
}

// DailyCount is a search volume for a single ISO date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SeriesPoint is one date of the merged success/failed series.
type SeriesPoint struct {
	Date    string
	Success int
	Failed  int
}

// SearchStat is a query string with the number of times it was searched.
type SearchStat struct {
	Query string `json:"search_query"`
	Count int    `json:"count"`
}

// UsageRow is one user's search volume. Rows are read-only snapshots.
type UsageRow struct {
	UserName    string `json:"user__full_name"`
	UserEmail   string `json:"user__email"`
	SearchCount int    `json:"search_count"`
}

// Part is a catalog row as presented to admins. Columns are dynamic,
// so every value except the id is kept as a display string.
type Part struct {
	ID     string
	Fields map[string]string
}

// UnmarshalJSON flattens an arbitrary JSON object into a Part.
func (p *Part) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Fields = make(map[string]string, len(raw))
	for k, v := range raw {
		s := rawToString(v)
		if k == "id" {
			p.ID = s
			continue
		}
		p.Fields[k] = s
	}
	return nil
}

// Keys returns the part's column names in sorted order.
func (p Part) Keys() []string {
	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func rawToString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return strconv.FormatBool(b)
	}
	if string(v) == "null" {
		return ""
	}
	var anyV any
	if err := json.Unmarshal(v, &anyV); err == nil {
		return fmt.Sprint(anyV)
	}
	return string(v)
}

// PartsPage is one page of the admin catalog listing.
type PartsPage struct {
	Results []Part   `json:"results"`
	Columns []string `json:"columns"`
	Page    int      `json:"page"`
	Pages   int      `json:"pages"`
	Count   int      `json:"count"`
}

// PartsResponse is the envelope of POST /admin/parts/.
type PartsResponse struct {
	Data *PartsPage `json:"data"`
}

// PartEdit is the editable subset of a catalog part, keyed by form field.
type PartEdit struct {
	PartNumber      string `json:"part_number"`
	Description     string `json:"description"`
	Manufacturer    string `json:"manufacturer"`
	Size            string `json:"size"`
	Crossovers      string `json:"crossovers"`
	SchB            string `json:"sch_b"`
	DistributorInfo string `json:"distributor_info"`
}

// PartEditColumns maps edit form fields to the catalog column they originate from.
var PartEditColumns = []struct {
	Field  string
	Column string
}{
	{"part_number", "PART NUMBER"},
	{"description", "DESCRIPTION"},
	{"manufacturer", "MANUFACTURE"},
	{"size", "SIZE"},
	{"crossovers", "CROSSOVERS"},
	{"sch_b", "SCH B"},
	{"distributor_info", "DISTRIBUTOR INFO"},
}

// Values returns the edit as a field -> value map.
func (e PartEdit) Values() map[string]string {
	return map[string]string{
		"part_number":      e.PartNumber,
		"description":      e.Description,
		"manufacturer":     e.Manufacturer,
		"size":             e.Size,
		"crossovers":       e.Crossovers,
		"sch_b":            e.SchB,
		"distributor_info": e.DistributorInfo,
	}
}

// EditFromPart pre-fills an edit form from the part's current columns.
func EditFromPart(p Part) PartEdit {
	return PartEdit{
		PartNumber:      p.Fields["PART NUMBER"],
		Description:     p.Fields["DESCRIPTION"],
		Manufacturer:    p.Fields["MANUFACTURE"],
		Size:            p.Fields["SIZE"],
		Crossovers:      p.Fields["CROSSOVERS"],
		SchB:            p.Fields["SCH B"],
		DistributorInfo: p.Fields["DISTRIBUTOR INFO"],
	}
}
