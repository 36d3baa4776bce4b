package model

import (
	"time"

	"handoff-tracker.com/handoff-tracker/internal/constants"
)

type Task struct {
	ID           string             `gorm:"primaryKey;size:36" json:"id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `json:"description"`
	Status       constants.Status   `gorm:"type:varchar(20);not null" json:"status"`
	Priority     constants.Priority `gorm:"type:varchar(10);not null" json:"priority"`
	TemplateID   *string            `gorm:"size:36" json:"template_id,omitempty"`
	CustomFields map[string]any     `gorm:"serializer:json" json:"custom_fields"`
	AssigneeID   *string            `gorm:"size:36" json:"assignee_id,omitempty"`
	CreatorID    string             `gorm:"size:36;not null" json:"creator_id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
