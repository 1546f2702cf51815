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

// ProjectService handles business logic for projects
type ProjectService struct {
	organizationRepo *repositories.OrganizationRepository
	projectRepo      *repositories.ProjectRepository
	statsService     *StatsService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		organizationRepo: repositories.NewOrganizationRepository(),
		projectRepo:      repositories.NewProjectRepository(),
		statsService:     NewStatsService(),
	}
}

// ListProjects retrieves all projects of the organization identified by
// slug, newest first. An unresolved slug yields an empty list, not an error.
func (s *ProjectService) ListProjects(organizationSlug string) (dto.ProjectListResponse, error) {
	response := dto.ProjectListResponse{Projects: make([]dto.ProjectResponse, 0)}

	organization, err := s.organizationRepo.FindBySlug(organizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, nil
		}
		return response, err
	}

	projects, err := s.projectRepo.FindByOrganizationID(organization.ID)
	if err != nil {
		return response, err
	}

	for _, project := range projects {
		item, err := s.toResponse(project, organization)
		if err != nil {
			return response, err
		}
		response.Projects = append(response.Projects, item)
	}
	return response, nil
}

// GetProject retrieves a project by ID. An unresolved ID yields nil, not an
// error.
func (s *ProjectService) GetProject(id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	organization, err := s.organizationRepo.FindByID(project.OrganizationID)
	if err != nil {
		return nil, err
	}

	response, err := s.toResponse(project, organization)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateProject creates a project under the organization identified by slug.
// Fails when the slug does not resolve or the name is already taken within
// the organization.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, dueDate *time.Time) dto.ProjectMutationResponse {
	organization, err := s.organizationRepo.FindBySlug(req.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectFailure("organization not found")
		}
		return projectFailure(err.Error())
	}

	exists, err := s.projectRepo.ExistsByNameAndOrganization(req.Name, organization.ID)
	if err != nil {
		return projectFailure(err.Error())
	}
	if exists {
		return projectFailure(fmt.Sprintf("project %q already exists in organization %q", req.Name, organization.Name))
	}

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}

	project, err := s.projectRepo.Create(models.Project{
		OrganizationID: organization.ID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		DueDate:        dueDate,
	})
	if err != nil {
		return projectFailure(err.Error())
	}

	response, err := s.toResponse(project, organization)
	if err != nil {
		return projectFailure(err.Error())
	}
	return dto.ProjectMutationResponse{
		Project: &response,
		Success: true,
		Errors:  []string{},
	}
}

// DeleteProject removes a project and its tasks and comments
func (s *ProjectService) DeleteProject(id string) dto.DeleteMutationResponse {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteMutationResponse{Success: false, Errors: []string{"project not found"}}
		}
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}
	return dto.DeleteMutationResponse{Success: true, Errors: []string{}}
}

func (s *ProjectService) toResponse(project models.Project, organization models.Organization) (dto.ProjectResponse, error) {
	total, done, err := s.statsService.ProjectTaskCounts(project.ID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	var dueDate *string
	if project.DueDate != nil {
		formatted := project.DueDate.Format("2006-01-02")
		dueDate = &formatted
	}

	return dto.ProjectResponse{
		ID:                 project.ID,
		Name:               project.Name,
		Description:        project.Description,
		Status:             string(project.Status),
		DueDate:            dueDate,
		TaskCount:          int(total),
		CompletedTaskCount: int(done),
		CompletionRate:     CompletionRate(done, total),
		IsOverdue:          ProjectIsOverdue(project),
		Organization: dto.OrganizationSummary{
			ID:   organization.ID,
			Name: organization.Name,
			Slug: organization.Slug,
		},
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}, nil
}

func projectFailure(messages ...string) dto.ProjectMutationResponse {
	return dto.ProjectMutationResponse{
		Project: nil,
		Success: false,
		Errors:  messages,
	}
}
