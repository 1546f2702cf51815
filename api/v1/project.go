package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/services"
)

var projectService = services.NewProjectService()

// ListOrganizationProjects godoc
// @Summary List projects of an organization
// @Description Projects of the organization identified by slug, newest first; an unknown slug yields an empty list
// @Tags projects
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} dto.ProjectListResponse
// @Router /organizations/{slug}/projects [get]
func ListOrganizationProjects(c *gin.Context) {
	response, err := projectService.ListProjects(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject godoc
// @Summary Get a project by ID
// @Description Get one project with computed aggregates; an unknown ID yields null data
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	project, err := projectService.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a project under the organization identified by slug
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} dto.ProjectMutationResponse
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid due date, expected YYYY-MM-DD: " + err.Error(),
			})
			return
		}
		dueDate = &parsed
	}

	result := projectService.CreateProject(req, dueDate)
	c.JSON(mutationStatus(result.Success, http.StatusCreated), result)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Remove the project and all its tasks and comments
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.DeleteMutationResponse
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	result := projectService.DeleteProject(c.Param("id"))
	c.JSON(http.StatusOK, result)
}
