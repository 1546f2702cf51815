package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Organization endpoints
	organizationGroup := router.Group("/organizations")
	{
		organizationGroup.GET("", ListOrganizations)
		organizationGroup.POST("", CreateOrganization)
		organizationGroup.GET("/:slug", GetOrganization)
		organizationGroup.GET("/:slug/projects", ListOrganizationProjects)
		organizationGroup.GET("/:slug/stats", GetOrganizationStats)
		organizationGroup.PUT("/:id", UpdateOrganization)
		organizationGroup.DELETE("/:id", DeleteOrganization)
	}

	// Project endpoints
	projectGroup := router.Group("/projects")
	{
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.GET("/:id/tasks", ListProjectTasks)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Task endpoints
	taskGroup := router.Group("/tasks")
	{
		taskGroup.POST("", CreateTask)
		taskGroup.GET("/:id", GetTask)
		taskGroup.PATCH("/:id/status", UpdateTaskStatus)
		taskGroup.GET("/:id/comments", ListTaskComments)
		taskGroup.POST("/:id/comments", CreateTaskComment)
		taskGroup.DELETE("/:id", DeleteTask)
	}
}
