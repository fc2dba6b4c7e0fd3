package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart_UnmarshalJSON(t *testing.T) {
	var page PartsPage
	err := json.Unmarshal([]byte(`{
		"results": [{"id": 17, "PART NUMBER": "J72", "SIZE": 8.5, "ACTIVE": true, "NOTES": null, "TAGS": ["a"]}],
		"columns": ["PART NUMBER", "SIZE"],
		"page": 1, "pages": 4, "count": 31
	}`), &page)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	p := page.Results[0]
	assert.Equal(t, "17", p.ID)
	assert.Equal(t, "J72", p.Fields["PART NUMBER"])
	assert.Equal(t, "8.5", p.Fields["SIZE"])
	assert.Equal(t, "true", p.Fields["ACTIVE"])
	assert.Equal(t, "", p.Fields["NOTES"])
	assert.Equal(t, "[a]", p.Fields["TAGS"])
	assert.NotContains(t, p.Fields, "id")
	assert.Equal(t, []string{"ACTIVE", "NOTES", "PART NUMBER", "SIZE", "TAGS"}, p.Keys())
	assert.Equal(t, 4, page.Pages)
}

func TestPart_UnmarshalJSON_NotObject(t *testing.T) {
	var p Part
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &p))
}

func TestEditFromPart_RoundTrip(t *testing.T) {
	p := Part{ID: "1", Fields: map[string]string{"PART NUMBER": "J72", "SCH B": "8481"}}
	edit := EditFromPart(p)
	values := edit.Values()

	assert.Equal(t, "J72", values["part_number"])
	assert.Equal(t, "8481", values["sch_b"])
	assert.Len(t, values, len(PartEditColumns))
}

func TestMatchInfo_Status(t *testing.T) {
	tests := []struct {
		name string
		info *MatchInfo
		want MatchStatus
	}{
		{name: "missing", info: nil, want: MatchRelated},
		{name: "primary field", info: &MatchInfo{MatchedField: "primary_part_number"}, want: MatchExact},
		{name: "crossover wins over primary", info: &MatchInfo{MatchedField: "primary", IsCrossoverMatch: true}, want: MatchCrossover},
		{name: "other field", info: &MatchInfo{MatchedField: "description"}, want: MatchRelated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Status())
		})
	}
}

func TestSearchResultPage_Range(t *testing.T) {
	page := SearchResultPage{Rows: make([]PartMatch, 5), TotalCount: 25, TotalPages: 3, CurrentPage: 3, PageSize: 10}
	from, to := page.Range()
	assert.Equal(t, 21, from)
	assert.Equal(t, 25, to)
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())

	from, to = SearchResultPage{CurrentPage: 1, PageSize: 10}.Range()
	assert.Zero(t, from)
	assert.Zero(t, to)
}

func TestRole(t *testing.T) {
	assert.Equal(t, "Access-Token", RoleUser.TokenKey())
	assert.Equal(t, "AdminToken", RoleAdmin.TokenKey())
	assert.Equal(t, "login", RoleUser.LoginPage())
	assert.Equal(t, "admin_login", RoleAdmin.LoginPage())
	assert.Equal(t, "ready", SessionReady.String())
	assert.Equal(t, "uninitialized", SessionStatus(99).String())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" v1.2.0 ", "", "abc123")
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}
