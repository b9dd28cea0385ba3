package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type stubReviewStore struct {
	records map[string]*models.TeamProgress
	list    []models.TeamProgress
	log     []models.SessionLogEntry
}

func (s *stubReviewStore) Get(_ context.Context, teamID string) (*models.TeamProgress, error) {
	record, ok := s.records[teamID]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return record, nil
}

func (s *stubReviewStore) ListAll(context.Context) ([]models.TeamProgress, error) {
	return s.list, nil
}

func (s *stubReviewStore) ReadSessionLog(context.Context) ([]models.SessionLogEntry, error) {
	return s.log, nil
}

func TestReviewServicePartitionsAndSorts(t *testing.T) {
	store := &stubReviewStore{list: []models.TeamProgress{
		{TeamID: "a", TeamName: "Zorros", ApprovalStatus: models.ApprovalPending},
		{TeamID: "b", TeamName: "ajolotes", ApprovalStatus: models.ApprovalPending},
		{TeamID: "c", TeamName: "Colibries", ApprovalStatus: models.ApprovalApproved},
		{TeamID: "d", TeamName: "Tlaloques", ApprovalStatus: models.ApprovalNone},
		{TeamID: "e", TeamName: "Nutrias", ApprovalStatus: models.ApprovalRejected},
	}}
	svc := NewReviewService(store, nil)

	buckets, err := svc.ListByApprovalStatus(context.Background())
	require.NoError(t, err)

	require.Len(t, buckets.Pending, 2)
	assert.Equal(t, "ajolotes", buckets.Pending[0].TeamName)
	assert.Equal(t, "Zorros", buckets.Pending[1].TeamName)
	require.Len(t, buckets.Approved, 1)
	require.Len(t, buckets.Other, 2)
	assert.Equal(t, "Nutrias", buckets.Other[0].TeamName)
}

func TestReviewServiceEmptyBucketsAreNotNil(t *testing.T) {
	svc := NewReviewService(&stubReviewStore{}, nil)

	buckets, err := svc.ListByApprovalStatus(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, buckets.Pending)
	assert.NotNil(t, buckets.Approved)
	assert.NotNil(t, buckets.Other)
}

func TestReviewServiceSessionHistoryNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	store := &stubReviewStore{log: []models.SessionLogEntry{
		{ID: "1", SavedAt: base},
		{ID: "2", SavedAt: base.Add(2 * time.Hour)},
		{ID: "3", SavedAt: base.Add(time.Hour)},
	}}
	svc := NewReviewService(store, nil)

	history, err := svc.SessionHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history.Entries, 3)
	assert.Equal(t, "2", history.Entries[0].ID)
	assert.Equal(t, "3", history.Entries[1].ID)
	assert.Equal(t, "1", history.Entries[2].ID)
}

func TestReviewServiceTeamDetailJoinsCatalog(t *testing.T) {
	store := &stubReviewStore{records: map[string]*models.TeamProgress{
		"5A-1": {
			TeamID:           "5A-1",
			TeamName:         "Tlaloques",
			CompletedModules: 1,
			ApprovalStatus:   models.ApprovalNone,
			ProjectID:        "project1",
			Data: map[int]models.ModuleData{
				1: {"pregunta_1": models.TextValue("cuantos litros se estancan?")},
			},
		},
	}}
	svc := NewReviewService(store, nil)

	detail, err := svc.TeamDetail(context.Background(), "5A-1")
	require.NoError(t, err)
	require.Greater(t, len(detail.Answers), 3)
	assert.Equal(t, 1, detail.Answers[0].Module.ID)
	assert.Equal(t, models.ModuleCompleted, detail.Answers[0].Status)
	assert.Equal(t, models.TextValue("cuantos litros se estancan?"), detail.Answers[0].Data["pregunta_1"])
	assert.Equal(t, models.ModuleActive, detail.Answers[1].Status)
	assert.Nil(t, detail.Answers[2].Data)
}

func TestReviewServiceExportCSV(t *testing.T) {
	store := &stubReviewStore{log: []models.SessionLogEntry{
		{
			ID:               "1",
			TeamName:         "Tlaloques",
			GroupID:          "5A",
			CompletedModules: 2,
			ApprovalStatus:   models.ApprovalPending,
			ProjectID:        "project1",
			SavedAt:          time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewReviewService(store, nil)

	file, err := svc.ExportSessionHistory(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.FileName, "sesiones-"))

	body := string(file.Content)
	assert.Contains(t, body, "Equipo,Grupo,Misiones completadas,Estado,Proyecto,Guardado")
	assert.Contains(t, body, "Tlaloques,5A,2,pending,project1,2026-03-02T10:00:00Z")
}

func TestReviewServiceExportPDF(t *testing.T) {
	svc := NewReviewService(&stubReviewStore{log: []models.SessionLogEntry{{ID: "1", TeamName: "Tlaloques", SavedAt: time.Now()}}}, nil)

	file, err := svc.ExportSessionHistory(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.NotEmpty(t, file.Content)
}

func TestReviewServiceExportUnknownFormat(t *testing.T) {
	svc := NewReviewService(&stubReviewStore{}, nil)

	_, err := svc.ExportSessionHistory(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
