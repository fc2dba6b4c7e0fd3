package service

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/models"
)

type adminService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger
}

// NewAdminService returns the admin operations. session must be the
// admin-role manager; its token authorises every call.
func NewAdminService(serverAdapter adapter.ServerAdapter, session SessionManager, logger *logger.Logger) AdminService {
	return &adminService{adapter: serverAdapter, session: session, logger: logger}
}

func (s *adminService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	token, err := s.token()
	if err != nil {
		return models.Dashboard{}, err
	}

	dashboard, err := s.adapter.AdminDashboard(ctx, token)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return dashboard, nil
}

func (s *adminService) Parts(ctx context.Context, page int, search string) (models.PartsPage, error) {
	token, err := s.token()
	if err != nil {
		return models.PartsPage{}, err
	}

	parts, err := s.adapter.AdminParts(ctx, token, max(page, 1), strings.TrimSpace(search))
	if err != nil {
		return models.PartsPage{}, fmt.Errorf("parts: %w", err)
	}
	return parts, nil
}

func (s *adminService) EditPart(ctx context.Context, original models.Part, edit models.PartEdit) error {
	if original.ID == "" {
		return ErrNoPartID
	}

	changed := ChangedFields(original, edit)
	if len(changed) == 0 {
		return ErrNothingChanged
	}

	token, err := s.token()
	if err != nil {
		return err
	}

	if err = s.adapter.EditPart(ctx, token, original.ID, changed); err != nil {
		s.logger.Err(err).
			Str("func", "adminService.EditPart").
			Str("part_id", original.ID).
			Strs("fields", slices.Sorted(maps.Keys(changed))).
			Msg("edit failed")
		return fmt.Errorf("edit part: %w", err)
	}
	return nil
}

func (s *adminService) DeletePart(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNoPartID
	}

	token, err := s.token()
	if err != nil {
		return err
	}

	if err = s.adapter.DeletePart(ctx, token, id); err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func (s *adminService) UploadCatalog(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := validateCatalogFile(fileName); err != nil {
		return "", err
	}

	token, err := s.token()
	if err != nil {
		return "", err
	}

	msg, err := s.adapter.UploadCatalog(ctx, token, fileName, r)
	if err != nil {
		return "", fmt.Errorf("upload catalog: %w", err)
	}
	return msg, nil
}

func (s *adminService) token() (string, error) {
	token := s.session.Snapshot().Token
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// ChangedFields returns the fields of edit whose value differs from the
// part's current column. A missing column compares as empty.
func ChangedFields(original models.Part, edit models.PartEdit) map[string]string {
	before := models.EditFromPart(original).Values()
	changed := make(map[string]string)
	for field, value := range edit.Values() {
		if value != before[field] {
			changed[field] = value
		}
	}
	return changed
}

// MergeSeries joins daily success and failure counts on date, ascending.
// A date missing from one side counts as zero there.
func MergeSeries(graph models.SearchGraph) []models.SeriesPoint {
	byDate := make(map[string]*models.SeriesPoint)
	point := func(date string) *models.SeriesPoint {
		p, ok := byDate[date]
		if !ok {
			p = &models.SeriesPoint{Date: date}
			byDate[date] = p
		}
		return p
	}

	for _, c := range graph.Success {
		if c.Date != "" {
			point(c.Date).Success = c.Count
		}
	}
	for _, c := range graph.Failed {
		if c.Date != "" {
			point(c.Date).Failed = c.Count
		}
	}

	out := make([]models.SeriesPoint, 0, len(byDate))
	for _, date := range slices.Sorted(maps.Keys(byDate)) {
		out = append(out, *byDate[date])
	}
	return out
}
