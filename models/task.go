package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task belongs to exactly one project. Title is unique within the project.
// The owning organization is always resolved through the project, never
// stored on the task itself.
type Task struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID     string     `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:idx_tasks_project_title"`
	Title         string     `json:"title" gorm:"size:200;not null;uniqueIndex:idx_tasks_project_title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(20);default:'TODO'"`
	AssigneeEmail string     `json:"assigneeEmail"`
	DueDate       *time.Time `json:"dueDate" gorm:"default:null"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Relations
	Project  Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments []TaskComment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the ID when not supplied
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
