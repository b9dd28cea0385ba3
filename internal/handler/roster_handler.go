package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

type rosterService interface {
	Groups(ctx context.Context) (*dto.GroupsResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// RosterHandler exposes the login flow endpoints.
type RosterHandler struct {
	service rosterService
}

// NewRosterHandler builds a new handler.
func NewRosterHandler(service rosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// Groups godoc
// @Summary List roster groups
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster/groups [get]
func (h *RosterHandler) Groups(c *gin.Context) {
	groups, err := h.service.Groups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups)
}

// Login godoc
// @Summary Resolve a student to their team and hydrated progress
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Router /roster/login [post]
func (h *RosterHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
