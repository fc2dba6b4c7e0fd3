package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/models"
)

const placeholder = "-"

type searchService struct {
	adapter       adapter.ServerAdapter
	session       SessionManager
	logger        *logger.Logger
	reloadTimeout time.Duration
}

// NewSearchService returns a SearchService that searches as the identity of
// session, or anonymously when it holds no token. A [SearchSession] built on
// it reloads the session's profile in the background once a fresh result is
// applied, to pick up the new quota; reloadTimeout bounds that call.
func NewSearchService(serverAdapter adapter.ServerAdapter, session SessionManager, logger *logger.Logger, reloadTimeout time.Duration) SearchService {
	return &searchService{
		adapter:       serverAdapter,
		session:       session,
		logger:        logger,
		reloadTimeout: reloadTimeout,
	}
}

func (s *searchService) Search(ctx context.Context, q models.SearchQuery) (models.SearchResultPage, error) {
	q, err := NormalizeQuery(q)
	if err != nil {
		return models.SearchResultPage{}, err
	}

	token := s.token()
	resp, err := s.adapter.Search(ctx, token, models.SearchRequest{
		PartNumber:   q.Text,
		Manufacturer: q.Manufacturer,
		Page:         q.Page,
		PerPage:      q.PageSize,
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.Search").
			Str("query", q.Text).
			Int("page", q.Page).
			Msg("search failed")
		return models.SearchResultPage{}, fmt.Errorf("search: %w", err)
	}

	return mapSearchResponse(q, resp), nil
}

func (s *searchService) Manufacturers(ctx context.Context) ([]string, error) {
	names, err := s.adapter.Manufacturers(ctx, s.token())
	if err != nil {
		return nil, fmt.Errorf("manufacturers: %w", err)
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *searchService) token() string {
	if s.session == nil {
		return ""
	}
	return s.session.Snapshot().Token
}

// quotaRefresher is implemented by search services whose results consume
// the caller's search quota.
type quotaRefresher interface {
	refreshQuota(ctx context.Context)
}

// refreshQuota reloads the profile without blocking the caller. Anonymous
// sessions have no quota to refresh. Its outcome never affects the search
// result.
func (s *searchService) refreshQuota(ctx context.Context) {
	if s.token() == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if s.reloadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.reloadTimeout)
			defer cancel()
		}
		if snap := s.session.Reload(ctx); snap.Err != nil {
			s.logger.Debug().Err(snap.Err).Msg("quota refresh after search failed")
		}
	}()
}

func mapSearchResponse(q models.SearchQuery, resp models.SearchResponse) models.SearchResultPage {
	items := resp.Data
	if len(items) > q.PageSize {
		items = items[:q.PageSize]
	}

	rows := make([]models.PartMatch, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.PartMatch{
			PartNumber:   orPlaceholder(item.PartNumber),
			Description:  orPlaceholder(item.Description),
			Category:     orPlaceholder(item.ToolType),
			Status:       item.MatchInfo.Status(),
			Manufacturer: orPlaceholder(item.Manufacturer),
			Size:         orPlaceholder(item.Size),
			Finish:       orPlaceholder(item.Finish),
			Crossovers:   formatCrossovers(item.Crossovers),
		})
	}

	page := models.SearchResultPage{
		Rows:        rows,
		TotalCount:  resp.Count,
		TotalPages:  resp.Meta.TotalPages,
		CurrentPage: resp.Meta.Page,
		PageSize:    q.PageSize,
	}
	if page.CurrentPage < 1 {
		page.CurrentPage = q.Page
	}
	if page.TotalPages == 0 && page.TotalCount > 0 {
		page.TotalPages = (page.TotalCount + q.PageSize - 1) / q.PageSize
	}
	return page
}

func formatCrossovers(list []models.Crossover) string {
	if len(list) == 0 {
		return placeholder
	}
	parts := make([]string, 0, len(list))
	for _, c := range list {
		parts = append(parts, orPlaceholder(c.Brand)+": "+orPlaceholder(c.PartNumber))
	}
	return strings.Join(parts, " • ")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// SearchSession is the search state of one screen: the current query and
// the page last displayed. Only the response to the most recently issued
// Fetch is applied; a failed fetch leaves the displayed page untouched.
type SearchSession struct {
	search SearchService

	mu      sync.Mutex
	query   models.SearchQuery
	current models.SearchResultPage
	// shown is the query that produced current.
	shown  models.SearchQuery
	loaded bool
	seq    uint64
}

// NewSearchSession starts an empty session with the given page size.
func NewSearchSession(search SearchService, pageSize int) *SearchSession {
	if pageSize < 1 {
		pageSize = models.DefaultSearchPageSize
	}
	return &SearchSession{
		search: search,
		query:  models.SearchQuery{Page: 1, PageSize: pageSize},
	}
}

// Query returns the query the next Fetch will send.
func (s *SearchSession) Query() models.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Current returns the displayed page and whether any fetch has succeeded yet.
func (s *SearchSession) Current() (models.SearchResultPage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loaded
}

// SetText replaces the search text and resets to page 1.
func (s *SearchSession) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Text = text
	s.query.Page = 1
}

// SetManufacturer replaces the manufacturer filter and resets to page 1.
func (s *SearchSession) SetManufacturer(manufacturer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Manufacturer = manufacturer
	s.query.Page = 1
}

// Next advances one page, keeping the filters. It reports false when the
// displayed page is known to be the last.
func (s *SearchSession) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && !s.current.HasNext() {
		return false
	}
	s.query.Page++
	return true
}

// Prev goes back one page, keeping the filters. It reports false on page 1.
func (s *SearchSession) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query.Page <= 1 {
		return false
	}
	s.query.Page--
	return true
}

// GoTo jumps to page, keeping the filters. Pages below 1 become 1.
func (s *SearchSession) GoTo(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Page = max(page, 1)
}

// Fetch runs the current query. When another Fetch was issued after this
// one, the result is discarded and ErrStaleResponse is returned. A failed
// page move rolls the query back to the displayed page.
func (s *SearchSession) Fetch(ctx context.Context) (models.SearchResultPage, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	q := s.query
	s.mu.Unlock()

	page, err := s.search.Search(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return models.SearchResultPage{}, ErrStaleResponse
	}
	if err != nil {
		if s.loaded && s.query == q && sameFilters(q, s.shown) {
			s.query.Page = s.shown.Page
		}
		return models.SearchResultPage{}, err
	}

	s.current = page
	s.shown = q
	s.loaded = true
	if r, ok := s.search.(quotaRefresher); ok {
		r.refreshQuota(ctx)
	}
	return page, nil
}

func sameFilters(a, b models.SearchQuery) bool {
	return a.Text == b.Text && a.Manufacturer == b.Manufacturer && a.PageSize == b.PageSize
}
