package repositories

import (
	"github.com/tracklite-api/database"
	"github.com/tracklite-api/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "id = ?", id)
	return task, result.Error
}

// FindByProjectID retrieves all tasks of a project, newest first
func (r *TaskRepository) FindByProjectID(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&tasks)
	return tasks, result.Error
}

// ExistsByTitleAndProject checks if a task with the given title exists in a project
func (r *TaskRepository) ExistsByTitleAndProject(title string, projectID string) (bool, error) {
	var count int64
	result := database.DB.Model(&models.Task{}).Where("title = ? AND project_id = ?", title, projectID).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := database.DB.Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(task models.Task) error {
	result := database.DB.Save(&task)
	return result.Error
}

// CountByProjectID counts the tasks of a project
func (r *TaskRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

// CountByProjectIDAndStatus counts the tasks of a project with a given status
func (r *TaskRepository) CountByProjectIDAndStatus(projectID string, status models.TaskStatus) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Task{}).Where("project_id = ? AND status = ?", projectID, status).Count(&count)
	return count, result.Error
}

// Delete removes a task and its comments in a single transaction
func (r *TaskRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Task{}, "id = ?", id)
		return result.Error
	})
}
