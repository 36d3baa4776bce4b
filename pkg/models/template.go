package model

import (
	"time"

	"handoff-tracker.com/handoff-tracker/internal/constants"
)

// WorkflowTemplate is a reusable handoff checklist: which statuses are
// reachable from which, and what data each status requires on entry.
type WorkflowTemplate struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `gorm:"size:36;not null" json:"owner_id"`
	Steps       []TemplateStep `gorm:"serializer:json" json:"steps"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TemplateStep holds one status's rules. An empty AllowedTransitions list
// marks a terminal status.
type TemplateStep struct {
	Status             constants.Status   `json:"status"`
	RequiredFields     []TemplateField    `json:"required_fields"`
	AllowedTransitions []constants.Status `json:"allowed_transitions"`
}

// TemplateField declares one dynamically-typed field a step may require.
// Options is only meaningful for select fields.
type TemplateField struct {
	Name     string              `json:"name"`
	Label    string              `json:"label"`
	Type     constants.FieldType `json:"type"`
	Required bool                `json:"required"`
	Options  []string            `json:"options,omitempty"`
}

// StepFor returns the first step declared for the given status, or nil.
// Templates should declare at most one step per status; if a template
// carries duplicates, the first declaration wins.
func (t *WorkflowTemplate) StepFor(status constants.Status) *TemplateStep {
	for i := range t.Steps {
		if t.Steps[i].Status == status {
			return &t.Steps[i]
		}
	}
	return nil
}
