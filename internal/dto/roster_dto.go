package dto

import (
	"github.com/mentoraqua/guardianes-api/internal/catalog"
	"github.com/mentoraqua/guardianes-api/internal/models"
)

// LoginRequest identifies a student against the roster. TeamName is an
// optional display name the team picks for itself on first login.
type LoginRequest struct {
	GroupID    string `json:"groupId" validate:"required"`
	MemberName string `json:"memberName" validate:"required,min=2"`
	TeamName   string `json:"teamName"`
}

// LoginResponse carries everything the journey screen needs to render.
type LoginResponse struct {
	Team                  models.Team                 `json:"team"`
	Progress              models.TeamProgress         `json:"progress"`
	Modules               []models.ModuleDefinition   `json:"modules"`
	Statuses              []models.ModuleStatus       `json:"statuses"`
	NeedsProjectSelection bool                        `json:"needsProjectSelection"`
	Projects              []catalog.ProjectDefinition `json:"projects,omitempty"`
}

// GroupsResponse lists the groups available on the login screen.
type GroupsResponse struct {
	Groups []string `json:"groups"`
}
