package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/export"
)

type reviewStore interface {
	Get(ctx context.Context, teamID string) (*models.TeamProgress, error)
	ListAll(ctx context.Context) ([]models.TeamProgress, error)
	ReadSessionLog(ctx context.Context) ([]models.SessionLogEntry, error)
}

// ExportFormat selects the rendering of a session-history export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered export ready for download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ReviewService is the teacher-side read model: it scans every progress
// record, partitions by approval status and serves session history with
// tabular exports. It never mutates records.
type ReviewService struct {
	store  reviewStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	now    func() time.Time
}

// NewReviewService constructs a ReviewService.
func NewReviewService(store reviewStore, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		now:    time.Now,
	}
}

// ListByApprovalStatus partitions every team record into pending, approved
// and everything else, each bucket sorted by team display name.
func (s *ReviewService) ListByApprovalStatus(ctx context.Context) (*dto.ReviewBuckets, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := &dto.ReviewBuckets{
		Pending:  []models.TeamProgress{},
		Approved: []models.TeamProgress{},
		Other:    []models.TeamProgress{},
	}
	for _, record := range records {
		switch record.ApprovalStatus {
		case models.ApprovalPending:
			buckets.Pending = append(buckets.Pending, record)
		case models.ApprovalApproved:
			buckets.Approved = append(buckets.Approved, record)
		default:
			buckets.Other = append(buckets.Other, record)
		}
	}
	sortByTeamName(buckets.Pending)
	sortByTeamName(buckets.Approved)
	sortByTeamName(buckets.Other)
	return buckets, nil
}

func sortByTeamName(records []models.TeamProgress) {
	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].TeamName) < strings.ToLower(records[j].TeamName)
	})
}

// TeamDetail joins one team's record with the catalog so the review screen
// can show each module's answers next to its definition.
func (s *ReviewService) TeamDetail(ctx context.Context, teamID string) (*dto.TeamDetailResponse, error) {
	progress, err := s.store.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	modules := ModulesFor(*progress)
	statuses := ComputeModuleStatus(modules, *progress)
	answers := make([]dto.ReviewModuleAnswer, len(modules))
	for i, module := range modules {
		answers[i] = dto.ReviewModuleAnswer{
			Module: module,
			Status: statuses[i],
			Data:   progress.Data[module.ID],
		}
	}
	return &dto.TeamDetailResponse{Progress: *progress, Answers: answers}, nil
}

// SessionHistory returns the logged session snapshots newest first.
func (s *ReviewService) SessionHistory(ctx context.Context) (*dto.SessionHistoryResponse, error) {
	entries, err := s.store.ReadSessionLog(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]models.SessionLogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SavedAt.After(sorted[j].SavedAt)
	})
	return &dto.SessionHistoryResponse{Entries: sorted}, nil
}

var sessionExportHeaders = []string{"Equipo", "Grupo", "Misiones completadas", "Estado", "Proyecto", "Guardado"}

// ExportSessionHistory renders the session history as CSV or PDF, newest
// entries first.
func (s *ReviewService) ExportSessionHistory(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	history, err := s.SessionHistory(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: sessionExportHeaders}
	for _, entry := range history.Entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Equipo":               entry.TeamName,
			"Grupo":                entry.GroupID,
			"Misiones completadas": strconv.Itoa(entry.CompletedModules),
			"Estado":               string(entry.ApprovalStatus),
			"Proyecto":             entry.ProjectID,
			"Guardado":             entry.SavedAt.Format(time.RFC3339),
		})
	}

	stamp := s.now().Format("20060102-150405")
	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render session csv: %w", err)
		}
		return &ExportFile{
			FileName:    fmt.Sprintf("sesiones-%s.csv", stamp),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Historial de sesiones")
		if err != nil {
			return nil, fmt.Errorf("render session pdf: %w", err)
		}
		return &ExportFile{
			FileName:    fmt.Sprintf("sesiones-%s.pdf", stamp),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
