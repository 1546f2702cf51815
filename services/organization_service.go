package services

import (
	"errors"
	"fmt"

	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/models"
	"github.com/tracklite-api/repositories"
	"github.com/tracklite-api/utils"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	organizationRepo *repositories.OrganizationRepository
	statsService     *StatsService
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService() *OrganizationService {
	return &OrganizationService{
		organizationRepo: repositories.NewOrganizationRepository(),
		statsService:     NewStatsService(),
	}
}

// ListOrganizations retrieves all organizations ordered by name, with
// project counts computed from current rows
func (s *OrganizationService) ListOrganizations() (dto.OrganizationListResponse, error) {
	response := dto.OrganizationListResponse{Organizations: make([]dto.OrganizationResponse, 0)}

	organizations, err := s.organizationRepo.FindAll()
	if err != nil {
		return response, err
	}

	for _, organization := range organizations {
		item, err := s.toResponse(organization)
		if err != nil {
			return response, err
		}
		response.Organizations = append(response.Organizations, item)
	}
	return response, nil
}

// GetOrganization retrieves an organization by slug. An unresolved slug
// yields nil, not an error.
func (s *OrganizationService) GetOrganization(slug string) (*dto.OrganizationResponse, error) {
	organization, err := s.organizationRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response, err := s.toResponse(organization)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateOrganization creates an organization with a slug derived from the
// name. Duplicate names and slug collisions fail the mutation without
// touching the store.
func (s *OrganizationService) CreateOrganization(req dto.CreateOrganizationRequest) dto.OrganizationMutationResponse {
	exists, err := s.organizationRepo.ExistsByName(req.Name)
	if err != nil {
		return organizationFailure(err.Error())
	}
	if exists {
		return organizationFailure(fmt.Sprintf("organization with name %q already exists", req.Name))
	}

	slug := utils.Slugify(req.Name)
	slugTaken, err := s.organizationRepo.ExistsBySlug(slug)
	if err != nil {
		return organizationFailure(err.Error())
	}
	if slugTaken {
		return organizationFailure(fmt.Sprintf("slug %q is already taken", slug))
	}

	organization, err := s.organizationRepo.Create(models.Organization{
		Name:         req.Name,
		Slug:         slug,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return organizationFailure(err.Error())
	}

	response, err := s.toResponse(organization)
	if err != nil {
		return organizationFailure(err.Error())
	}
	return dto.OrganizationMutationResponse{
		Organization: &response,
		Success:      true,
		Errors:       []string{},
	}
}

// UpdateOrganization overwrites name and contact email of an existing
// organization. The slug is deliberately left untouched.
func (s *OrganizationService) UpdateOrganization(id string, req dto.UpdateOrganizationRequest) dto.OrganizationMutationResponse {
	organization, err := s.organizationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return organizationFailure("organization not found")
		}
		return organizationFailure(err.Error())
	}

	organization.Name = req.Name
	organization.ContactEmail = req.ContactEmail
	if err := s.organizationRepo.Update(organization); err != nil {
		return organizationFailure(err.Error())
	}

	response, err := s.toResponse(organization)
	if err != nil {
		return organizationFailure(err.Error())
	}
	return dto.OrganizationMutationResponse{
		Organization: &response,
		Success:      true,
		Errors:       []string{},
	}
}

// DeleteOrganization removes an organization and its whole subtree
func (s *OrganizationService) DeleteOrganization(id string) dto.DeleteMutationResponse {
	if _, err := s.organizationRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteMutationResponse{Success: false, Errors: []string{"organization not found"}}
		}
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}

	if err := s.organizationRepo.Delete(id); err != nil {
		return dto.DeleteMutationResponse{Success: false, Errors: []string{err.Error()}}
	}
	return dto.DeleteMutationResponse{Success: true, Errors: []string{}}
}

func (s *OrganizationService) toResponse(organization models.Organization) (dto.OrganizationResponse, error) {
	total, active, err := s.statsService.OrganizationProjectCounts(organization.ID)
	if err != nil {
		return dto.OrganizationResponse{}, err
	}

	return dto.OrganizationResponse{
		ID:                 organization.ID,
		Name:               organization.Name,
		Slug:               organization.Slug,
		ContactEmail:       organization.ContactEmail,
		ProjectCount:       int(total),
		ActiveProjectCount: int(active),
		CreatedAt:          organization.CreatedAt,
		UpdatedAt:          organization.UpdatedAt,
	}, nil
}

func organizationFailure(messages ...string) dto.OrganizationMutationResponse {
	return dto.OrganizationMutationResponse{
		Organization: nil,
		Success:      false,
		Errors:       messages,
	}
}
