package repositories

import (
	"github.com/tracklite-api/database"
	"github.com/tracklite-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByOrganizationID retrieves all projects of an organization, newest first
func (r *ProjectRepository) FindByOrganizationID(organizationID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("organization_id = ?", organizationID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// ExistsByNameAndOrganization checks if a project with the given name exists in an organization
func (r *ProjectRepository) ExistsByNameAndOrganization(name string, organizationID string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("name = ? AND organization_id = ?", name, organizationID).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// CountByOrganizationID counts the projects of an organization
func (r *ProjectRepository) CountByOrganizationID(organizationID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("organization_id = ?", organizationID).Count(&count)
	return count, result.Error
}

// CountByOrganizationIDAndStatus counts the projects of an organization with a given status
func (r *ProjectRepository) CountByOrganizationIDAndStatus(organizationID string, status models.ProjectStatus) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("organization_id = ? AND status = ?", organizationID, status).Count(&count)
	return count, result.Error
}

// Delete removes a project and its tasks and comments in a single transaction
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", taskIDs).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}
