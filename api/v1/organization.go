package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/services"
)

var organizationService = services.NewOrganizationService()
var statsService = services.NewStatsService()

// ListOrganizations godoc
// @Summary List all organizations
// @Description Get all organizations ordered by name with computed project counts
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.OrganizationListResponse
// @Router /organizations [get]
func ListOrganizations(c *gin.Context) {
	response, err := organizationService.ListOrganizations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve organizations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetOrganization godoc
// @Summary Get an organization by slug
// @Description Get one organization; an unknown slug yields null data, not an error
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} dto.OrganizationResponse
// @Router /organizations/{slug} [get]
func GetOrganization(c *gin.Context) {
	slug := c.Param("slug")

	organization, err := organizationService.GetOrganization(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve organization: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   organization,
	})
}

// GetOrganizationStats godoc
// @Summary Get the statistics summary of an organization
// @Description Computed fresh from current rows; an unknown slug yields a zero-valued summary
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} dto.OrganizationStatsResponse
// @Router /organizations/{slug}/stats [get]
func GetOrganizationStats(c *gin.Context) {
	slug := c.Param("slug")

	stats, err := statsService.OrganizationStats(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute organization stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// CreateOrganization godoc
// @Summary Create a new organization
// @Description Create an organization with a slug derived from its name
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization Data"
// @Success 201 {object} dto.OrganizationMutationResponse
// @Router /organizations [post]
func CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	result := organizationService.CreateOrganization(req)
	c.JSON(mutationStatus(result.Success, http.StatusCreated), result)
}

// UpdateOrganization godoc
// @Summary Update an existing organization
// @Description Overwrite name and contact email; the slug stays as created
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "Organization Data"
// @Success 200 {object} dto.OrganizationMutationResponse
// @Router /organizations/{id} [put]
func UpdateOrganization(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	result := organizationService.UpdateOrganization(id, req)
	c.JSON(http.StatusOK, result)
}

// DeleteOrganization godoc
// @Summary Delete an organization
// @Description Remove the organization and all its projects, tasks and comments
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.DeleteMutationResponse
// @Router /organizations/{id} [delete]
func DeleteOrganization(c *gin.Context) {
	result := organizationService.DeleteOrganization(c.Param("id"))
	c.JSON(http.StatusOK, result)
}

// mutationStatus picks the HTTP status for a create-style mutation result.
// Failed mutations still answer 200: the envelope, not the status code,
// carries the outcome.
func mutationStatus(success bool, successCode int) int {
	if success {
		return successCode
	}
	return http.StatusOK
}
