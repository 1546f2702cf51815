package dto

import (
	"time"
)

// CreateTaskRequest is the structure for task creation requests.
// DueDate is an RFC 3339 date-time.
type CreateTaskRequest struct {
	ProjectID     string `json:"projectId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	AssigneeEmail string `json:"assigneeEmail"`
	DueDate       string `json:"dueDate"`
}

// UpdateTaskStatusRequest is the structure for task status updates
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskResponse is the structure for task responses. The comment count and
// overdue flag are computed at read time; the organization is resolved
// through the owning project.
type TaskResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        string              `json:"status"`
	AssigneeEmail string              `json:"assigneeEmail"`
	DueDate       *time.Time          `json:"dueDate"`
	CommentCount  int                 `json:"commentCount"`
	IsOverdue     bool                `json:"isOverdue"`
	ProjectID     string              `json:"projectId"`
	Organization  OrganizationSummary `json:"organization"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// TaskListResponse wraps a list of tasks
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskMutationResponse is the uniform result envelope for task mutations
type TaskMutationResponse struct {
	Task    *TaskResponse `json:"task"`
	Success bool          `json:"success"`
	Errors  []string      `json:"errors"`
}
