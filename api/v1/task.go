package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/services"
)

var taskService = services.NewTaskService()

// ListProjectTasks godoc
// @Summary List tasks of a project
// @Description Tasks of the project identified by ID, newest first; an unknown ID yields an empty list
// @Tags tasks
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.TaskListResponse
// @Router /projects/{id}/tasks [get]
func ListProjectTasks(c *gin.Context) {
	response, err := taskService.ListTasks(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tasks: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetTask godoc
// @Summary Get a task by ID
// @Description Get one task with computed aggregates; an unknown ID yields null data
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Router /tasks/{id} [get]
func GetTask(c *gin.Context) {
	task, err := taskService.GetTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve task: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateTask godoc
// @Summary Create a new task
// @Description Create a task under a project
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task Data"
// @Success 201 {object} dto.TaskMutationResponse
// @Router /tasks [post]
func CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid due date, expected RFC 3339: " + err.Error(),
			})
			return
		}
		dueDate = &parsed
	}

	result := taskService.CreateTask(req, dueDate)
	c.JSON(mutationStatus(result.Success, http.StatusCreated), result)
}

// UpdateTaskStatus godoc
// @Summary Update the status of a task
// @Description Set the status field and re-save the task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param status body dto.UpdateTaskStatusRequest true "Status Data"
// @Success 200 {object} dto.TaskMutationResponse
// @Router /tasks/{id}/status [patch]
func UpdateTaskStatus(c *gin.Context) {
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	result := taskService.UpdateTaskStatus(c.Param("id"), req.Status)
	c.JSON(http.StatusOK, result)
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Remove the task and all its comments
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.DeleteMutationResponse
// @Router /tasks/{id} [delete]
func DeleteTask(c *gin.Context) {
	result := taskService.DeleteTask(c.Param("id"))
	c.JSON(http.StatusOK, result)
}

// ListTaskComments godoc
// @Summary List comments of a task
// @Description Comments of the task identified by ID, oldest first; an unknown ID yields an empty list
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.CommentListResponse
// @Router /tasks/{id}/comments [get]
func ListTaskComments(c *gin.Context) {
	response, err := taskService.ListComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateTaskComment godoc
// @Summary Add a comment to a task
// @Description Create a comment on an existing task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param comment body dto.CreateCommentRequest true "Comment Data"
// @Success 201 {object} dto.CommentMutationResponse
// @Router /tasks/{id}/comments [post]
func CreateTaskComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	result := taskService.CreateComment(c.Param("id"), req)
	c.JSON(mutationStatus(result.Success, http.StatusCreated), result)
}
