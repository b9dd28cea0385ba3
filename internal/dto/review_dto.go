package dto

import "github.com/mentoraqua/guardianes-api/internal/models"

// VerifyCodeRequest checks the teacher access code before showing the
// review dashboard.
type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// RejectRequest carries the mandatory feedback attached to a rejection.
type RejectRequest struct {
	Feedback string `json:"feedback" validate:"required,min=3"`
}

// ReviewBuckets partitions every team record for the dashboard: plans
// waiting for review, approved plans, and everything else still in flight.
type ReviewBuckets struct {
	Pending  []models.TeamProgress `json:"pending"`
	Approved []models.TeamProgress `json:"approved"`
	Other    []models.TeamProgress `json:"other"`
}

// ReviewModuleAnswer joins one module definition with the answers the team
// recorded for it, for the detail view.
type ReviewModuleAnswer struct {
	Module models.ModuleDefinition `json:"module"`
	Status models.ModuleStatus     `json:"status"`
	Data   models.ModuleData       `json:"data,omitempty"`
}

// TeamDetailResponse is the full review view of one team.
type TeamDetailResponse struct {
	Progress models.TeamProgress  `json:"progress"`
	Answers  []ReviewModuleAnswer `json:"answers"`
}

// SessionHistoryResponse lists logged session snapshots newest first.
type SessionHistoryResponse struct {
	Entries []models.SessionLogEntry `json:"entries"`
}
