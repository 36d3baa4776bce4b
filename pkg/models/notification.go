package model

import "time"

// Notification is a fire-and-forget side record produced when a mutation
// changes who is responsible for a task. It is never load-bearing: a failed
// notification must not roll back the mutation that produced it.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	TaskID    string    `gorm:"size:36;not null" json:"task_id"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
