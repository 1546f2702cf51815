package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskComment belongs to exactly one task. The timestamp is set once at
// creation and never updated afterwards.
type TaskComment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	TaskID      string    `json:"taskId" gorm:"type:uuid;not null;index"`
	Content     string    `json:"content" gorm:"not null"`
	AuthorEmail string    `json:"authorEmail" gorm:"not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime"`

	// Relations
	Task Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for TaskComment model
func (TaskComment) TableName() string {
	return "task_comments"
}

// BeforeCreate assigns the ID when not supplied
func (c *TaskComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
