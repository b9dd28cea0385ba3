package dto

// FeedbackRequest asks the mentor service to evaluate a student's answer to
// one field. Task and Prompt come from the field definition and steer the
// evaluation template.
type FeedbackRequest struct {
	FieldLabel  string `json:"fieldLabel" validate:"required"`
	StudentText string `json:"studentText" validate:"required,min=10"`
	Task        string `json:"task"`
	Prompt      string `json:"prompt"`
	ModuleTitle string `json:"moduleTitle"`
}

// FeedbackResult is the parsed mentor verdict. Approved reflects the
// APROBADO/RECHAZADO first line of the raw reply.
type FeedbackResult struct {
	Approved    bool     `json:"approved"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions,omitempty"`
}
