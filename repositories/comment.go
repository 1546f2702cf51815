package repositories

import (
	"github.com/tracklite-api/database"
	"github.com/tracklite-api/models"
)

// CommentRepository handles database operations for task comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindByTaskID retrieves all comments of a task, oldest first
func (r *CommentRepository) FindByTaskID(taskID string) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	result := database.DB.Where("task_id = ?", taskID).Order("timestamp asc").Find(&comments)
	return comments, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.TaskComment) (models.TaskComment, error) {
	result := database.DB.Create(&comment)
	return comment, result.Error
}

// CountByTaskID counts the comments of a task
func (r *CommentRepository) CountByTaskID(taskID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.TaskComment{}).Where("task_id = ?", taskID).Count(&count)
	return count, result.Error
}
