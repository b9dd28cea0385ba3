package models

import "time"

// ApprovalStatus is the primary review state of a team's plan.
type ApprovalStatus string

const (
	ApprovalNone     ApprovalStatus = "none"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ModuleStatus is the computed unlock state of one module for a team.
type ModuleStatus string

const (
	ModuleLocked    ModuleStatus = "LOCKED"
	ModuleActive    ModuleStatus = "ACTIVE"
	ModuleCompleted ModuleStatus = "COMPLETED"
)

// TeamProgress is the central mutable record for a team. CompletedModules
// counts fully finished modules and never decreases outside an explicit
// project reset. Data is keyed by module ID.
type TeamProgress struct {
	TeamID           string             `json:"teamId"`
	TeamName         string             `json:"teamName"`
	GroupID          string             `json:"groupId"`
	CompletedModules int                `json:"completedModules"`
	ApprovalStatus   ApprovalStatus     `json:"approvalStatus"`
	TeacherFeedback  string             `json:"teacherFeedback,omitempty"`
	ProjectID        string             `json:"projectId,omitempty"`
	Data             map[int]ModuleData `json:"data"`
	LastUpdated      time.Time          `json:"lastUpdated"`
}

// Frozen reports whether the record blocks edits: while a plan waits for
// review or after it has been approved, no module may change.
func (p TeamProgress) Frozen() bool {
	return p.ApprovalStatus == ApprovalPending || p.ApprovalStatus == ApprovalApproved
}

// Clone deep-copies the record so transitions can return fresh values.
func (p TeamProgress) Clone() TeamProgress {
	out := p
	if p.Data != nil {
		out.Data = make(map[int]ModuleData, len(p.Data))
		for id, data := range p.Data {
			out.Data[id] = data.Clone()
		}
	}
	return out
}

// SessionLogEntry is an immutable snapshot appended when a team explicitly
// ends a working session. Never mutated after append.
type SessionLogEntry struct {
	ID               string         `json:"id"`
	TeamID           string         `json:"teamId"`
	TeamName         string         `json:"teamName"`
	GroupID          string         `json:"groupId"`
	CompletedModules int            `json:"completedModules"`
	ApprovalStatus   ApprovalStatus `json:"approvalStatus"`
	ProjectID        string         `json:"projectId,omitempty"`
	SavedAt          time.Time      `json:"savedAt"`
}
