package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/tracklite-api/utils"
	"gorm.io/gorm"
)

// Organization is the tenant boundary. Every project, task and comment is
// reachable from exactly one organization.
type Organization struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug         string    `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	ContactEmail string    `json:"contactEmail" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the ID and derives the slug from the name when the
// caller did not supply one. The slug is never recomputed after creation.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Slug == "" {
		o.Slug = utils.Slugify(o.Name)
	}
	return nil
}
