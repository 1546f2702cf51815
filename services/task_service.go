package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/models"
	"github.com/tracklite-api/repositories"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks and their comments
type TaskService struct {
	organizationRepo *repositories.OrganizationRepository
	projectRepo      *repositories.ProjectRepository
	taskRepo         *repositories.TaskRepository
	commentRepo      *repositories.CommentRepository
	statsService     *StatsService
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		organizationRepo: repositories.NewOrganizationRepository(),
		projectRepo:      repositories.NewProjectRepository(),
		taskRepo:         repositories.NewTaskRepository(),
		commentRepo:      repositories.NewCommentRepository(),
		statsService:     NewStatsService(),
	}
}

// ListTasks retrieves all tasks of a project, newest first. An unresolved
// project ID yields an empty list, not an error.
func (s *TaskService) ListTasks(projectID string) (dto.TaskListResponse, error) {
	response := dto.TaskListResponse{Tasks: make([]dto.TaskResponse, 0)}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, nil
		}
		return response, err
	}

	organization, err := s.organizationRepo.FindByID(project.OrganizationID)
	if err != nil {
		return response, err
	}

	tasks, err := s.taskRepo.FindByProjectID(project.ID)
	if err != nil {
		return response, err
	}

	for _, task := range tasks {
		item, err := s.toResponse(task, organization)
		if err != nil {
			return response, err
		}
		response.Tasks = append(response.Tasks, item)
	}
	return response, nil
}

// GetTask retrieves a task by ID. An unresolved ID yields nil, not an error.
func (s *TaskService) GetTask(id string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	organization, err := s.taskOrganization(task)
	if err != nil {
		return nil, err
	}

	response, err := s.toResponse(task, organization)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateTask creates a task under a project. Fails when the project ID does
// not resolve or the title is already taken within the project.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest, dueDate *time.Time) dto.TaskMutationResponse {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskFailure("project not found")
		}
		return taskFailure(err.Error())
	}

	exists, err := s.taskRepo.ExistsByTitleAndProject(req.Title, project.ID)
	if err != nil {
		return taskFailure(err.Error())
	}
	if exists {
		return taskFailure(fmt.Sprintf("task %q already exists in project %q", req.Title, project.Name))
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}

	task, err := s.taskRepo.Create(models.Task{
		ProjectID:     project.ID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       dueDate,
	})
	if err != nil {
		return taskFailure(err.Error())
	}

	return s.taskSuccess(task)
}

// UpdateTaskStatus sets the status of an existing task and re-saves it.
// The status string is stored as sent; only store-level column constraints
// apply.
func (s *TaskService) UpdateTaskStatus(taskID string, status string) dto.TaskMutationResponse {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskFailure("task not found")
		}
		return taskFailure(err.Error())
	}

	task.Status = models.TaskStatus(status)
	if err := s.taskRepo.Update(task); err != nil {
		return taskFailure(err.Error())
	}

	return s.taskSuccess(task)
}

// DeleteTask removes a task and its comments
func (s *TaskService) DeleteTask(id string) dto.DeleteMutationResponse {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteMutationResponse{Success: false, Errors: []string{"task not found"}}
		}
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}
	return dto.DeleteMutationResponse{Success: true, Errors: []string{}}
}

// ListComments retrieves all comments of a task, oldest first. An unresolved
// task ID yields an empty list, not an error.
func (s *TaskService) ListComments(taskID string) (dto.CommentListResponse, error) {
	response := dto.CommentListResponse{Comments: make([]dto.CommentResponse, 0)}

	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, nil
		}
		return response, err
	}

	comments, err := s.commentRepo.FindByTaskID(taskID)
	if err != nil {
		return response, err
	}

	for _, comment := range comments {
		response.Comments = append(response.Comments, commentToResponse(comment))
	}
	return response, nil
}

// CreateComment adds a comment to an existing task. Fails when the task ID
// does not resolve.
func (s *TaskService) CreateComment(taskID string, req dto.CreateCommentRequest) dto.CommentMutationResponse {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commentFailure("task not found")
		}
		return commentFailure(err.Error())
	}

	comment, err := s.commentRepo.Create(models.TaskComment{
		TaskID:      taskID,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
	})
	if err != nil {
		return commentFailure(err.Error())
	}

	response := commentToResponse(comment)
	return dto.CommentMutationResponse{
		Comment: &response,
		Success: true,
		Errors:  []string{},
	}
}

// taskOrganization resolves the owning organization through the project
func (s *TaskService) taskOrganization(task models.Task) (models.Organization, error) {
	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return models.Organization{}, err
	}
	return s.organizationRepo.FindByID(project.OrganizationID)
}

func (s *TaskService) taskSuccess(task models.Task) dto.TaskMutationResponse {
	organization, err := s.taskOrganization(task)
	if err != nil {
		return taskFailure(err.Error())
	}

	response, err := s.toResponse(task, organization)
	if err != nil {
		return taskFailure(err.Error())
	}
	return dto.TaskMutationResponse{
		Task:    &response,
		Success: true,
		Errors:  []string{},
	}
}

func (s *TaskService) toResponse(task models.Task, organization models.Organization) (dto.TaskResponse, error) {
	commentCount, err := s.statsService.TaskCommentCount(task.ID)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	return dto.TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        string(task.Status),
		AssigneeEmail: task.AssigneeEmail,
		DueDate:       task.DueDate,
		CommentCount:  int(commentCount),
		IsOverdue:     TaskIsOverdue(task),
		ProjectID:     task.ProjectID,
		Organization: dto.OrganizationSummary{
			ID:   organization.ID,
			Name: organization.Name,
			Slug: organization.Slug,
		},
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}, nil
}

func commentToResponse(comment models.TaskComment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:          comment.ID,
		TaskID:      comment.TaskID,
		Content:     comment.Content,
		AuthorEmail: comment.AuthorEmail,
		Timestamp:   comment.Timestamp,
	}
}

func taskFailure(messages ...string) dto.TaskMutationResponse {
	return dto.TaskMutationResponse{
		Task:    nil,
		Success: false,
		Errors:  messages,
	}
}

func commentFailure(messages ...string) dto.CommentMutationResponse {
	return dto.CommentMutationResponse{
		Comment: nil,
		Success: false,
		Errors:  messages,
	}
}
