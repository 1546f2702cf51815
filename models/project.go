package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

// Project belongs to exactly one organization. Name is unique within the
// organization.
type Project struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid"`
	OrganizationID string        `json:"organizationId" gorm:"type:uuid;not null;index;uniqueIndex:idx_projects_org_name"`
	Name           string        `json:"name" gorm:"size:200;not null;uniqueIndex:idx_projects_org_name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	DueDate        *time.Time    `json:"dueDate" gorm:"default:null"` // date precision
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	// Relations
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tasks        []Task       `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the ID when not supplied
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
