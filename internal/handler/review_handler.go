package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	"github.com/mentoraqua/guardianes-api/internal/service"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

type reviewService interface {
	ListByApprovalStatus(ctx context.Context) (*dto.ReviewBuckets, error)
	TeamDetail(ctx context.Context, teamID string) (*dto.TeamDetailResponse, error)
	SessionHistory(ctx context.Context) (*dto.SessionHistoryResponse, error)
	ExportSessionHistory(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
}

type reviewDecider interface {
	Approve(ctx context.Context, teamID string) (*models.TeamProgress, error)
	Reject(ctx context.Context, teamID, feedback string) (*models.TeamProgress, error)
	VerifyCode(code string) bool
}

type reviewMetrics interface {
	IncReviewDecision(outcome string)
}

// ReviewHandler exposes the teacher dashboard endpoints. All routes behind
// the access-code middleware except Verify, which checks the code itself.
type ReviewHandler struct {
	service reviewService
	decider reviewDecider
	metrics reviewMetrics
}

// NewReviewHandler builds a new handler. metrics may be nil.
func NewReviewHandler(svc reviewService, decider reviewDecider, metrics reviewMetrics) *ReviewHandler {
	return &ReviewHandler{service: svc, decider: decider, metrics: metrics}
}

// Verify godoc
// @Summary Verify the teacher access code
// @Tags Review
// @Accept json
// @Produce json
// @Param payload body dto.VerifyCodeRequest true "Access code"
// @Success 200 {object} response.Envelope
// @Router /review/verify [post]
func (h *ReviewHandler) Verify(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid verify payload"))
		return
	}
	if !h.decider.VerifyCode(req.Code) {
		response.Error(c, appErrors.ErrInvalidAccessCode)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"verified": true})
}

// Teams godoc
// @Summary List every team partitioned by approval status
// @Tags Review
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /review/teams [get]
func (h *ReviewHandler) Teams(c *gin.Context) {
	buckets, err := h.service.ListByApprovalStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, buckets)
}

// TeamDetail godoc
// @Summary Full answers of one team for review
// @Tags Review
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /review/teams/{teamId} [get]
func (h *ReviewHandler) TeamDetail(c *gin.Context) {
	detail, err := h.service.TeamDetail(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Approve godoc
// @Summary Approve a pending plan
// @Tags Review
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /review/teams/{teamId}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	progress, err := h.decider.Approve(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncReviewDecision("approved")
	}
	response.JSON(c, http.StatusOK, progress)
}

// Reject godoc
// @Summary Reject a plan with feedback
// @Tags Review
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param payload body dto.RejectRequest true "Rejection feedback"
// @Success 200 {object} response.Envelope
// @Router /review/teams/{teamId}/reject [post]
func (h *ReviewHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "rejection requires feedback"))
		return
	}
	progress, err := h.decider.Reject(c.Request.Context(), c.Param("teamId"), req.Feedback)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncReviewDecision("rejected")
	}
	response.JSON(c, http.StatusOK, progress)
}

// Sessions godoc
// @Summary Session history, newest first
// @Tags Review
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /review/sessions [get]
func (h *ReviewHandler) Sessions(c *gin.Context) {
	history, err := h.service.SessionHistory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, history)
}

// ExportSessions godoc
// @Summary Download the session history as CSV or PDF
// @Tags Review
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /review/sessions/export [get]
func (h *ReviewHandler) ExportSessions(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	file, err := h.service.ExportSessionHistory(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
