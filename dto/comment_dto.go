package dto

import (
	"time"
)

// CreateCommentRequest is the structure for task comment creation requests
type CreateCommentRequest struct {
	Content     string `json:"content" binding:"required"`
	AuthorEmail string `json:"authorEmail" binding:"required,email"`
}

// CommentResponse is the structure for task comment responses
type CommentResponse struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"authorEmail"`
	Timestamp   time.Time `json:"timestamp"`
}

// CommentListResponse wraps a list of task comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// CommentMutationResponse is the uniform result envelope for comment mutations
type CommentMutationResponse struct {
	Comment *CommentResponse `json:"comment"`
	Success bool             `json:"success"`
	Errors  []string         `json:"errors"`
}
