package services

import (
	"testing"

	"github.com/tracklite-api/database"
	"github.com/tracklite-api/dto"
	"github.com/tracklite-api/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Organization{}, &models.Project{}, &models.Task{}, &models.TaskComment{}); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}

	database.DB = db
}

func createOrganization(t *testing.T, name, email string) dto.OrganizationResponse {
	t.Helper()
	result := NewOrganizationService().CreateOrganization(dto.CreateOrganizationRequest{
		Name:         name,
		ContactEmail: email,
	})
	if !result.Success {
		t.Fatalf("create organization %q: %v", name, result.Errors)
	}
	return *result.Organization
}

func createProject(t *testing.T, organizationSlug, name string) dto.ProjectResponse {
	t.Helper()
	result := NewProjectService().CreateProject(dto.CreateProjectRequest{
		OrganizationSlug: organizationSlug,
		Name:             name,
	}, nil)
	if !result.Success {
		t.Fatalf("create project %q: %v", name, result.Errors)
	}
	return *result.Project
}

func createTask(t *testing.T, projectID, title, status string) dto.TaskResponse {
	t.Helper()
	result := NewTaskService().CreateTask(dto.CreateTaskRequest{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	}, nil)
	if !result.Success {
		t.Fatalf("create task %q: %v", title, result.Errors)
	}
	return *result.Task
}
