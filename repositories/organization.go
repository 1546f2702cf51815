package repositories

import (
	"github.com/tracklite-api/database"
	"github.com/tracklite-api/models"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct{}

// NewOrganizationRepository creates a new organization repository instance
func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{}
}

// FindAll retrieves all organizations ordered by name
func (r *OrganizationRepository) FindAll() ([]models.Organization, error) {
	var organizations []models.Organization
	result := database.DB.Order("name asc").Find(&organizations)
	return organizations, result.Error
}

// FindByID retrieves an organization by its ID
func (r *OrganizationRepository) FindByID(id string) (models.Organization, error) {
	var organization models.Organization
	result := database.DB.First(&organization, "id = ?", id)
	return organization, result.Error
}

// FindBySlug retrieves an organization by its slug
func (r *OrganizationRepository) FindBySlug(slug string) (models.Organization, error) {
	var organization models.Organization
	result := database.DB.First(&organization, "slug = ?", slug)
	return organization, result.Error
}

// ExistsByName checks if an organization with the given name exists
func (r *OrganizationRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Organization{}).Where("name = ?", name).Count(&count)
	return count > 0, result.Error
}

// ExistsBySlug checks if an organization with the given slug exists
func (r *OrganizationRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Organization{}).Where("slug = ?", slug).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new organization into the database
func (r *OrganizationRepository) Create(organization models.Organization) (models.Organization, error) {
	result := database.DB.Create(&organization)
	return organization, result.Error
}

// Update modifies an existing organization
func (r *OrganizationRepository) Update(organization models.Organization) error {
	result := database.DB.Save(&organization)
	return result.Error
}

// Delete removes an organization and its whole subtree of projects, tasks
// and comments in a single transaction. Either everything goes or nothing
// does.
func (r *OrganizationRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var projectIDs []string
		if err := tx.Model(&models.Project{}).Where("organization_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			var taskIDs []string
			if err := tx.Model(&models.Task{}).Where("project_id IN ?", projectIDs).Pluck("id", &taskIDs).Error; err != nil {
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

			if err := tx.Where("id IN ?", projectIDs).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Organization{}, "id = ?", id)
		return result.Error
	})
}
