package dto

import (
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

type CreateTaskRequest struct {
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description"`
	Priority     string         `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	TemplateID   *string        `json:"template_id"`
	AssigneeID   *string        `json:"assignee_id"`
	CustomFields map[string]any `json:"custom_fields"`
}

// UpdateTaskRequest carries one mutation. Nil members are left unchanged; a
// present custom_fields object replaces the stored set wholesale.
type UpdateTaskRequest struct {
	Status       *string        `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS READY_FOR_REVIEW DONE"`
	Priority     *string        `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	CustomFields map[string]any `json:"custom_fields"`
	AssigneeID   *string        `json:"assignee_id"`
}

type TemplateRequest struct {
	Name        string               `json:"name" validate:"required,min=3"`
	Description string               `json:"description"`
	Steps       []model.TemplateStep `json:"steps"`
}
