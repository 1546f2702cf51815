package dto

// OrganizationStatsResponse is the organization-wide statistics summary.
// It is a read-only projection computed from current rows; an unresolved
// organization yields the zero value.
type OrganizationStatsResponse struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	CompletionRate    float64 `json:"completionRate"`
}

// DeleteMutationResponse is the uniform result envelope for delete mutations
type DeleteMutationResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}
