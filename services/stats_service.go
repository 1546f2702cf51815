package services

import (
	"errors"
	"math"
	"time"

	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/models"
	"github.com/tracklite-api/repositories"
	"gorm.io/gorm"
)

// StatsService computes derived values from current child rows. Nothing in
// here is ever persisted or cached, so repeated reads of an unchanged entity
// always return the same numbers.
type StatsService struct {
	organizationRepo *repositories.OrganizationRepository
	projectRepo      *repositories.ProjectRepository
	taskRepo         *repositories.TaskRepository
	commentRepo      *repositories.CommentRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{
		organizationRepo: repositories.NewOrganizationRepository(),
		projectRepo:      repositories.NewProjectRepository(),
		taskRepo:         repositories.NewTaskRepository(),
		commentRepo:      repositories.NewCommentRepository(),
	}
}

// CompletionRate returns done/total as a percentage rounded to one decimal
// place. A total of zero yields 0 rather than a division by zero.
func CompletionRate(done, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}

// ProjectIsOverdue reports whether the current date is strictly after the
// project due date. Due dates carry calendar-day precision at UTC
// midnight, so the comparison happens on UTC calendar days; a project is
// never overdue on its due date itself.
func ProjectIsOverdue(project models.Project) bool {
	if project.DueDate == nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := project.DueDate.UTC()
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return today.After(dueDay)
}

// TaskIsOverdue reports whether the current instant is strictly after the
// task due date-time
func TaskIsOverdue(task models.Task) bool {
	if task.DueDate == nil {
		return false
	}
	return time.Now().After(*task.DueDate)
}

// OrganizationProjectCounts returns the total and ACTIVE project counts of
// an organization
func (s *StatsService) OrganizationProjectCounts(organizationID string) (total int64, active int64, err error) {
	total, err = s.projectRepo.CountByOrganizationID(organizationID)
	if err != nil {
		return 0, 0, err
	}
	active, err = s.projectRepo.CountByOrganizationIDAndStatus(organizationID, models.ProjectStatusActive)
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// ProjectTaskCounts returns the total and DONE task counts of a project
func (s *StatsService) ProjectTaskCounts(projectID string) (total int64, done int64, err error) {
	total, err = s.taskRepo.CountByProjectID(projectID)
	if err != nil {
		return 0, 0, err
	}
	done, err = s.taskRepo.CountByProjectIDAndStatus(projectID, models.TaskStatusDone)
	if err != nil {
		return 0, 0, err
	}
	return total, done, nil
}

// TaskCommentCount returns the number of comments on a task
func (s *StatsService) TaskCommentCount(taskID string) (int64, error) {
	return s.commentRepo.CountByTaskID(taskID)
}

// OrganizationStats computes the organization-wide statistics summary for a
// slug. An unresolved slug yields the zero-valued summary, not an error.
func (s *StatsService) OrganizationStats(slug string) (dto.OrganizationStatsResponse, error) {
	var stats dto.OrganizationStatsResponse

	organization, err := s.organizationRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, nil
		}
		return stats, err
	}

	totalProjects, activeProjects, err := s.OrganizationProjectCounts(organization.ID)
	if err != nil {
		return stats, err
	}

	completedProjects, err := s.projectRepo.CountByOrganizationIDAndStatus(organization.ID, models.ProjectStatusCompleted)
	if err != nil {
		return stats, err
	}

	// Sum task counts across all projects of the organization
	projects, err := s.projectRepo.FindByOrganizationID(organization.ID)
	if err != nil {
		return stats, err
	}

	var totalTasks, completedTasks int64
	for _, project := range projects {
		total, done, err := s.ProjectTaskCounts(project.ID)
		if err != nil {
			return stats, err
		}
		totalTasks += total
		completedTasks += done
	}

	stats = dto.OrganizationStatsResponse{
		TotalProjects:     int(totalProjects),
		ActiveProjects:    int(activeProjects),
		CompletedProjects: int(completedProjects),
		TotalTasks:        int(totalTasks),
		CompletedTasks:    int(completedTasks),
		CompletionRate:    CompletionRate(completedTasks, totalTasks),
	}
	return stats, nil
}
