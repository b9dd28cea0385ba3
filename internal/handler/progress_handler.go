package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

type progressService interface {
	Journey(ctx context.Context, teamID string) (*models.TeamProgress, []models.ModuleDefinition, []models.ModuleStatus, error)
	SaveDraft(ctx context.Context, teamID string, moduleID int, data models.ModuleData) (*models.TeamProgress, error)
	CompleteModule(ctx context.Context, teamID string, moduleID int, data models.ModuleData) (*models.TeamProgress, error)
	SubmitForReview(ctx context.Context, teamID string) (*models.TeamProgress, error)
	SelectProject(ctx context.Context, teamID, projectID, overrideCode string) (*models.TeamProgress, error)
	FinishSession(ctx context.Context, teamID string) (*models.SessionLogEntry, error)
}

type progressMetrics interface {
	IncCompletion()
	IncSubmission()
}

// ProgressHandler exposes the team journey endpoints.
type ProgressHandler struct {
	service progressService
	metrics progressMetrics
}

// NewProgressHandler builds a new handler. metrics may be nil.
func NewProgressHandler(service progressService, metrics progressMetrics) *ProgressHandler {
	return &ProgressHandler{service: service, metrics: metrics}
}

// Get godoc
// @Summary Get a team's progress with module statuses
// @Tags Progress
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	progress, modules, statuses, err := h.service.Journey(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ProgressResponse{
		Progress: *progress,
		Modules:  modules,
		Statuses: statuses,
	})
}

// SaveDraft godoc
// @Summary Save draft answers for one module
// @Tags Progress
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param moduleId path int true "Module ID"
// @Param payload body dto.ModuleDataRequest true "Module answers"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/modules/{moduleId}/draft [put]
func (h *ProgressHandler) SaveDraft(c *gin.Context) {
	moduleID, req, ok := h.bindModuleRequest(c)
	if !ok {
		return
	}
	progress, err := h.service.SaveDraft(c.Request.Context(), c.Param("teamId"), moduleID, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, progress)
}

// Complete godoc
// @Summary Complete one module and advance the journey
// @Tags Progress
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param moduleId path int true "Module ID"
// @Param payload body dto.ModuleDataRequest true "Module answers"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/modules/{moduleId}/complete [post]
func (h *ProgressHandler) Complete(c *gin.Context) {
	moduleID, req, ok := h.bindModuleRequest(c)
	if !ok {
		return
	}
	progress, err := h.service.CompleteModule(c.Request.Context(), c.Param("teamId"), moduleID, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncCompletion()
	}
	response.JSON(c, http.StatusOK, progress)
}

// Submit godoc
// @Summary Submit the completed plan for teacher review
// @Tags Progress
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/submit [post]
func (h *ProgressHandler) Submit(c *gin.Context) {
	progress, err := h.service.SubmitForReview(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncSubmission()
	}
	response.JSON(c, http.StatusOK, progress)
}

// SelectProject godoc
// @Summary Select or change the team's project track
// @Tags Progress
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param payload body dto.SelectProjectRequest true "Project selection"
// @Success 200 {object} response.Envelope
// @Router /teams/{teamId}/project [post]
func (h *ProgressHandler) SelectProject(c *gin.Context) {
	var req dto.SelectProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid project payload"))
		return
	}
	progress, err := h.service.SelectProject(c.Request.Context(), c.Param("teamId"), req.ProjectID, req.OverrideCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, progress)
}

// FinishSession godoc
// @Summary Log an end-of-session snapshot for the team
// @Tags Progress
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 201 {object} response.Envelope
// @Router /teams/{teamId}/session/finish [post]
func (h *ProgressHandler) FinishSession(c *gin.Context) {
	entry, err := h.service.FinishSession(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SessionFinishResponse{Entry: *entry})
}

func (h *ProgressHandler) bindModuleRequest(c *gin.Context) (int, *dto.ModuleDataRequest, bool) {
	moduleID, err := strconv.Atoi(c.Param("moduleId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "module id must be numeric"))
		return 0, nil, false
	}
	var req dto.ModuleDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload"))
		return 0, nil, false
	}
	return moduleID, &req, true
}
