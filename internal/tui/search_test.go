package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/mock"
	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resultPage(n, page, total int) models.SearchResultPage {
	rows := make([]models.PartMatch, n)
	for i := range rows {
		rows[i] = models.PartMatch{
			PartNumber:  fmt.Sprintf("PN-%d-%02d", page, i),
			Description: "Bearing",
			Status:      models.MatchExact,
		}
	}
	return models.SearchResultPage{
		Rows:        rows,
		TotalCount:  total,
		TotalPages:  (total + 9) / 10,
		CurrentPage: page,
		PageSize:    10,
	}
}

func newSearchForTest(t *testing.T) (*SearchModel, *mock.MockSearchService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	search := mock.NewMockSearchService(ctrl)
	m := NewSearchModel(t.Context(), search, 10)
	m.Init()
	return m, search
}

func TestSearchModel_SubmitAndPage(t *testing.T) {
	m, search := newSearchForTest(t)

	_, _ = m.Update(keyRunes("6204"))

	search.EXPECT().
		Search(gomock.Any(), models.SearchQuery{Text: "6204", Page: 1, PageSize: 10}).
		Return(resultPage(10, 1, 25), nil)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Searching...")

	_, _ = m.Update(cmd())
	view := m.View()
	assert.Contains(t, view, "PN-1-00")
	assert.Contains(t, view, "Showing 1-10 of 25 · page 1/3")

	_, _ = m.Update(keyOf(tea.KeyTab))
	search.EXPECT().
		Search(gomock.Any(), models.SearchQuery{Text: "6204", Page: 2, PageSize: 10}).
		Return(resultPage(10, 2, 25), nil)

	_, cmd = m.Update(keyRunes("n"))
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	assert.Contains(t, m.View(), "Showing 11-20 of 25 · page 2/3")
}

func TestSearchModel_NoResults(t *testing.T) {
	m, search := newSearchForTest(t)
	_, _ = m.Update(keyRunes("zzz"))

	search.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(models.SearchResultPage{CurrentPage: 1, PageSize: 10}, nil)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())
	assert.Contains(t, m.View(), "No results found.")
}

func TestSearchModel_FailureKeepsPageAndOffersRetry(t *testing.T) {
	m, search := newSearchForTest(t)
	_, _ = m.Update(keyRunes("6204"))

	gomock.InOrder(
		search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resultPage(3, 1, 3), nil),
		search.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(models.SearchResultPage{}, fmt.Errorf("search: %w", adapter.ErrNetwork)),
		search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resultPage(1, 1, 1), nil),
	)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())

	_, cmd = m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, "Network error. Please try again.")
	assert.Contains(t, view, "ctrl+r retry")
	assert.Contains(t, view, "PN-1-02", "previous page stays visible")

	_, cmd = m.Update(keyOf(tea.KeyCtrlR))
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	view = m.View()
	assert.NotContains(t, view, "ctrl+r retry")
	assert.Contains(t, view, "Showing 1-1 of 1")
}

func TestSearchModel_ValidationErrorInline(t *testing.T) {
	m, search := newSearchForTest(t)

	search.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(models.SearchResultPage{}, &service.ValidationError{Message: "Please enter a part number.", Kind: service.ErrEmptyQuery})

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, "Error: Please enter a part number.")
	assert.NotContains(t, view, "ctrl+r retry")
}

func TestSearchModel_StaleResponseIgnored(t *testing.T) {
	m, _ := newSearchForTest(t)
	m.loading = true

	_, cmd := m.Update(searchDoneMsg{err: service.ErrStaleResponse})
	assert.Nil(t, cmd)
	assert.Nil(t, m.overlay)
	assert.Empty(t, m.errMsg)
	assert.True(t, m.loading, "a newer fetch is still in flight")
}

func TestSearchModel_ManufacturerCycle(t *testing.T) {
	m, search := newSearchForTest(t)
	_, _ = m.Update(manufacturersMsg{names: []string{"SKF", "NSK"}})
	_, _ = m.Update(keyRunes("6204"))
	_, _ = m.Update(keyOf(tea.KeyTab))

	search.EXPECT().Search(gomock.Any(), models.SearchQuery{Text: "6204", Manufacturer: "SKF", Page: 1, PageSize: 10}).
		Return(resultPage(1, 1, 1), nil)
	search.EXPECT().Search(gomock.Any(), models.SearchQuery{Text: "6204", Manufacturer: "NSK", Page: 1, PageSize: 10}).
		Return(resultPage(1, 1, 1), nil)
	search.EXPECT().Search(gomock.Any(), models.SearchQuery{Text: "6204", Page: 1, PageSize: 10}).
		Return(resultPage(1, 1, 1), nil)

	// The text was typed but never submitted, so cycling does not search yet.
	_, cmd := m.Update(keyRunes("m"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "SKF")

	_, _ = m.Update(keyOf(tea.KeyTab))
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())
	_, _ = m.Update(keyOf(tea.KeyTab))

	_, cmd = m.Update(keyRunes("m"))
	_, _ = m.Update(cmd())
	assert.Contains(t, m.View(), "NSK")

	_, cmd = m.Update(keyRunes("m"))
	_, _ = m.Update(cmd())
	assert.Contains(t, m.View(), "(all)")
}

func TestSearchModel_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, search := newSearchForTest(t)
	_, _ = m.Update(keyRunes("6204"))
	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resultPage(3, 1, 3), nil)
	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, _ = m.Update(cmd())

	_, _ = m.Update(keyOf(tea.KeyTab))
	_, _ = m.Update(keyOf(tea.KeyDown))
	_, cmd = m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "PN-1-01", copied)

	_, _ = m.Update(msg)
	assert.Contains(t, m.View(), "Copied PN-1-01.")

	_, _ = m.Update(copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.View(), "Could not copy to clipboard.")
}
