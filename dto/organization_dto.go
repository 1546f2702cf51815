package dto

import (
	"time"
)

// CreateOrganizationRequest is the structure for organization creation requests
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}

// UpdateOrganizationRequest is the structure for organization update requests.
// Both fields are overwritten; the slug is never recomputed.
type UpdateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}

// OrganizationResponse is the structure for organization responses. Project
// counts are computed from current child rows at read time.
type OrganizationResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	ContactEmail       string    `json:"contactEmail"`
	ProjectCount       int       `json:"projectCount"`
	ActiveProjectCount int       `json:"activeProjectCount"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// OrganizationSummary is the compact organization reference embedded in
// project and task responses
type OrganizationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// OrganizationListResponse wraps a list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// OrganizationMutationResponse is the uniform result envelope for
// organization mutations
type OrganizationMutationResponse struct {
	Organization *OrganizationResponse `json:"organization"`
	Success      bool                  `json:"success"`
	Errors       []string              `json:"errors"`
}
