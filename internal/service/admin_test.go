package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/app"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/mock"
	"github.com/MKhiriev/go-xref/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (AdminService, *mock.MockServerAdapter, *mock.MockSessionManager) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockSessionManager(ctrl)
	return NewAdminService(serverAdapter, session, logger.Nop()), serverAdapter, session
}

func testPart() models.Part {
	return models.Part{ID: "17", Fields: map[string]string{
		"PART NUMBER": "J72",
		"DESCRIPTION": "Hex bolt",
		"MANUFACTURE": "Acme",
		"SIZE":        "M8",
	}}
}

func TestAdminService_RequiresAdminToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session := newTestAdminSvc(t, ctrl)
	session.EXPECT().Snapshot().Return(models.Session{}).AnyTimes()

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = svc.Parts(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrNoToken)

	assert.ErrorIs(t, svc.DeletePart(context.Background(), "1"), ErrNoToken)
	assert.Equal(t, app.MsgSignInFirst, UserMessage(ErrNoToken))
}

func TestAdminService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	users := 12
	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().AdminDashboard(gomock.Any(), "admin").Return(models.Dashboard{TotalUsers: &users}, nil)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, *d.TotalUsers)
}

func TestAdminService_Parts_ClampsAndTrims(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().AdminParts(gomock.Any(), "admin", 1, "J72").Return(models.PartsPage{Page: 1, Pages: 1}, nil)

	_, err := svc.Parts(context.Background(), 0, "  J72 ")
	require.NoError(t, err)
}

func TestAdminService_EditPart_SendsOnlyChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	part := testPart()
	edit := models.EditFromPart(part)
	edit.Size = "M10"
	edit.SchB = "8481.80"

	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().EditPart(gomock.Any(), "admin", "17", map[string]string{
		"size":  "M10",
		"sch_b": "8481.80",
	}).Return(nil)

	require.NoError(t, svc.EditPart(context.Background(), part, edit))
}

func TestAdminService_EditPart_NothingChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAdminSvc(t, ctrl)

	part := testPart()
	err := svc.EditPart(context.Background(), part, models.EditFromPart(part))
	assert.ErrorIs(t, err, ErrNothingChanged)
	assert.Equal(t, app.MsgNoChanges, UserMessage(err))

	err = svc.EditPart(context.Background(), models.Part{}, models.PartEdit{Size: "x"})
	assert.ErrorIs(t, err, ErrNoPartID)
}

func TestAdminService_EditPart_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	part := testPart()
	edit := models.EditFromPart(part)
	edit.Description = "Hex bolt, zinc"

	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().EditPart(gomock.Any(), "admin", "17", gomock.Any()).
		Return(&adapter.APIError{Status: 404, Message: "Part not found"})

	err := svc.EditPart(context.Background(), part, edit)
	assert.Equal(t, "Part not found", UserMessage(err))
}

func TestAdminService_DeletePart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	assert.ErrorIs(t, svc.DeletePart(context.Background(), " "), ErrNoPartID)

	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().DeletePart(gomock.Any(), "admin", "17").Return(nil)
	require.NoError(t, svc.DeletePart(context.Background(), "17"))
}

func TestAdminService_UploadCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAdminSvc(t, ctrl)

	_, err := svc.UploadCatalog(context.Background(), "parts.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Equal(t, "Only .csv, .xlsx and .xls files are supported.", UserMessage(err))

	body := strings.NewReader("PART NUMBER,SIZE\nJ72,M8\n")
	session.EXPECT().Snapshot().Return(models.Session{Token: "admin"})
	serverAdapter.EXPECT().UploadCatalog(gomock.Any(), "admin", "Parts.CSV", body).Return("Uploaded 1 rows", nil)

	msg, err := svc.UploadCatalog(context.Background(), "Parts.CSV", body)
	require.NoError(t, err)
	assert.Equal(t, "Uploaded 1 rows", msg)
}

func TestChangedFields(t *testing.T) {
	part := models.Part{ID: "1", Fields: map[string]string{"PART NUMBER": "A"}}

	changed := ChangedFields(part, models.PartEdit{PartNumber: "A"})
	assert.Empty(t, changed)

	changed = ChangedFields(part, models.PartEdit{PartNumber: "", Crossovers: "X"})
	assert.Equal(t, map[string]string{"part_number": "", "crossovers": "X"}, changed)
}

func TestMergeSeries(t *testing.T) {
	graph := models.SearchGraph{
		Success: []models.DailyCount{{Date: "2026-01-03", Count: 5}, {Date: "2026-01-01", Count: 2}},
		Failed:  []models.DailyCount{{Date: "2026-01-02", Count: 1}, {Date: "2026-01-03", Count: 4}, {Count: 9}},
	}

	got := MergeSeries(graph)
	assert.Equal(t, []models.SeriesPoint{
		{Date: "2026-01-01", Success: 2},
		{Date: "2026-01-02", Failed: 1},
		{Date: "2026-01-03", Success: 5, Failed: 4},
	}, got)

	assert.Empty(t, MergeSeries(models.SearchGraph{}))
}
