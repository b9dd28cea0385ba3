package dto

import "github.com/mentoraqua/guardianes-api/internal/models"

// ModuleDataRequest carries the answers for one module, either as a draft
// save or a completion.
type ModuleDataRequest struct {
	Data models.ModuleData `json:"data" validate:"required"`
}

// SelectProjectRequest picks or changes the team's project track. Changing
// an already selected project requires the teacher override code.
type SelectProjectRequest struct {
	ProjectID    string `json:"projectId" validate:"required"`
	OverrideCode string `json:"overrideCode"`
}

// ProgressResponse is the journey view: the record plus the module list and
// the computed unlock status for each module, index-aligned with Modules.
type ProgressResponse struct {
	Progress models.TeamProgress       `json:"progress"`
	Modules  []models.ModuleDefinition `json:"modules"`
	Statuses []models.ModuleStatus     `json:"statuses"`
}

// SessionFinishResponse acknowledges a logged session snapshot.
type SessionFinishResponse struct {
	Entry models.SessionLogEntry `json:"entry"`
}
