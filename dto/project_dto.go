package dto

import (
	"time"
)

// CreateProjectRequest is the structure for project creation requests.
// DueDate is a calendar date in YYYY-MM-DD format.
type CreateProjectRequest struct {
	OrganizationSlug string `json:"organizationSlug" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	DueDate          string `json:"dueDate"`
}

// ProjectResponse is the structure for project responses. Task counts, the
// completion rate and the overdue flag are computed at read time.
type ProjectResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Status             string              `json:"status"`
	DueDate            *string             `json:"dueDate"`
	TaskCount          int                 `json:"taskCount"`
	CompletedTaskCount int                 `json:"completedTaskCount"`
	CompletionRate     float64             `json:"completionRate"`
	IsOverdue          bool                `json:"isOverdue"`
	Organization       OrganizationSummary `json:"organization"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ProjectListResponse wraps a list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ProjectMutationResponse is the uniform result envelope for project mutations
type ProjectMutationResponse struct {
	Project *ProjectResponse `json:"project"`
	Success bool             `json:"success"`
	Errors  []string         `json:"errors"`
}
