package repositories

import (
	"testing"
	"time"

	"github.com/tracklite-api/database"
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

func mustCreateOrganization(t *testing.T, name string) models.Organization {
	t.Helper()
	organization, err := NewOrganizationRepository().Create(models.Organization{
		Name:         name,
		ContactEmail: "contact@example.com",
	})
	if err != nil {
		t.Fatalf("create organization %q: %v", name, err)
	}
	return organization
}

func mustCreateProject(t *testing.T, organizationID, name string) models.Project {
	t.Helper()
	project, err := NewProjectRepository().Create(models.Project{
		OrganizationID: organizationID,
		Name:           name,
		Status:         models.ProjectStatusActive,
	})
	if err != nil {
		t.Fatalf("create project %q: %v", name, err)
	}
	return project
}

func mustCreateTask(t *testing.T, projectID, title string, status models.TaskStatus) models.Task {
	t.Helper()
	task, err := NewTaskRepository().Create(models.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("create task %q: %v", title, err)
	}
	return task
}

func TestOrganizationNameUniqueness(t *testing.T) {
	setupTestDB(t)
	repo := NewOrganizationRepository()

	mustCreateOrganization(t, "Acme Corp")

	_, err := repo.Create(models.Organization{Name: "Acme Corp", Slug: "acme-corp-2", ContactEmail: "other@example.com"})
	if err == nil {
		t.Fatalf("expected uniqueness violation for duplicate organization name")
	}

	var count int64
	if err := database.DB.Model(&models.Organization{}).Where("name = ?", "Acme Corp").Count(&count).Error; err != nil {
		t.Fatalf("count organizations: %v", err)
	}
	if count != 1 {
		t.Fatalf("organizations named Acme Corp: want=1 got=%d", count)
	}
}

func TestOrganizationSlugDerivedOnCreate(t *testing.T) {
	setupTestDB(t)

	organization := mustCreateOrganization(t, "Acme Corp")
	if organization.Slug != "acme-corp" {
		t.Fatalf("derived slug: want=acme-corp got=%s", organization.Slug)
	}
}

func TestFindAllOrganizationsOrderedByName(t *testing.T) {
	setupTestDB(t)

	mustCreateOrganization(t, "Zenith")
	mustCreateOrganization(t, "Acme Corp")
	mustCreateOrganization(t, "Midway")

	organizations, err := NewOrganizationRepository().FindAll()
	if err != nil {
		t.Fatalf("find all organizations: %v", err)
	}

	got := make([]string, 0, len(organizations))
	for _, organization := range organizations {
		got = append(got, organization.Name)
	}
	want := []string{"Acme Corp", "Midway", "Zenith"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("organization order at %d: want=%s got=%s", i, want[i], got[i])
		}
	}
}

func TestProjectNameUniquePerOrganization(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	first := mustCreateOrganization(t, "First Org")
	second := mustCreateOrganization(t, "Second Org")

	mustCreateProject(t, first.ID, "Launch")

	// Same name in a different organization is fine
	if _, err := repo.Create(models.Project{OrganizationID: second.ID, Name: "Launch", Status: models.ProjectStatusActive}); err != nil {
		t.Fatalf("same project name in another organization: %v", err)
	}

	// Same name in the same organization violates the composite index
	if _, err := repo.Create(models.Project{OrganizationID: first.ID, Name: "Launch", Status: models.ProjectStatusActive}); err == nil {
		t.Fatalf("expected uniqueness violation for duplicate project name in organization")
	}
}

func TestTaskTitleUniquePerProject(t *testing.T) {
	setupTestDB(t)
	repo := NewTaskRepository()

	organization := mustCreateOrganization(t, "Acme Corp")
	launch := mustCreateProject(t, organization.ID, "Launch")
	rewrite := mustCreateProject(t, organization.ID, "Rewrite")

	mustCreateTask(t, launch.ID, "Design Homepage", models.TaskStatusTodo)

	if _, err := repo.Create(models.Task{ProjectID: rewrite.ID, Title: "Design Homepage", Status: models.TaskStatusTodo}); err != nil {
		t.Fatalf("same task title in another project: %v", err)
	}

	if _, err := repo.Create(models.Task{ProjectID: launch.ID, Title: "Design Homepage", Status: models.TaskStatusTodo}); err == nil {
		t.Fatalf("expected uniqueness violation for duplicate task title in project")
	}
}

func TestProjectsOrderedNewestFirst(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	organization := mustCreateOrganization(t, "Acme Corp")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Oldest", "Middle", "Newest"} {
		if _, err := repo.Create(models.Project{
			OrganizationID: organization.ID,
			Name:           name,
			Status:         models.ProjectStatusActive,
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("create project %q: %v", name, err)
		}
	}

	projects, err := repo.FindByOrganizationID(organization.ID)
	if err != nil {
		t.Fatalf("find projects: %v", err)
	}
	if projects[0].Name != "Newest" || projects[2].Name != "Oldest" {
		t.Fatalf("project order: want newest first, got %s .. %s", projects[0].Name, projects[2].Name)
	}
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	setupTestDB(t)
	repo := NewCommentRepository()

	organization := mustCreateOrganization(t, "Acme Corp")
	project := mustCreateProject(t, organization.ID, "Launch")
	task := mustCreateTask(t, project.ID, "Design Homepage", models.TaskStatusTodo)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		if _, err := repo.Create(models.TaskComment{
			TaskID:      task.ID,
			Content:     content,
			AuthorEmail: "author@example.com",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("create comment %q: %v", content, err)
		}
	}

	comments, err := repo.FindByTaskID(task.ID)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if comments[0].Content != "first" || comments[2].Content != "third" {
		t.Fatalf("comment order: want oldest first, got %s .. %s", comments[0].Content, comments[2].Content)
	}
}

func TestDeleteOrganizationCascadesWholeSubtree(t *testing.T) {
	setupTestDB(t)

	organization := mustCreateOrganization(t, "Acme Corp")
	keeper := mustCreateOrganization(t, "Keeper Org")

	project := mustCreateProject(t, organization.ID, "Launch")
	task := mustCreateTask(t, project.ID, "Design Homepage", models.TaskStatusTodo)
	if _, err := NewCommentRepository().Create(models.TaskComment{
		TaskID:      task.ID,
		Content:     "looks good",
		AuthorEmail: "author@example.com",
	}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	keeperProject := mustCreateProject(t, keeper.ID, "Untouched")

	if err := NewOrganizationRepository().Delete(organization.ID); err != nil {
		t.Fatalf("delete organization: %v", err)
	}

	counts := map[string]interface{}{
		"projects": &models.Project{},
		"tasks":    &models.Task{},
		"comments": &models.TaskComment{},
	}
	for name, model := range counts {
		var count int64
		column := "organization_id"
		value := organization.ID
		switch name {
		case "tasks":
			column, value = "project_id", project.ID
		case "comments":
			column, value = "task_id", task.ID
		}
		if err := database.DB.Model(model).Where(column+" = ?", value).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if count != 0 {
			t.Fatalf("%s left after cascade delete: want=0 got=%d", name, count)
		}
	}

	// The sibling organization and its project are untouched
	if _, err := NewOrganizationRepository().FindByID(keeper.ID); err != nil {
		t.Fatalf("keeper organization should survive: %v", err)
	}
	if _, err := NewProjectRepository().FindByID(keeperProject.ID); err != nil {
		t.Fatalf("keeper project should survive: %v", err)
	}
}

func TestDeleteProjectCascadesTasksAndComments(t *testing.T) {
	setupTestDB(t)

	organization := mustCreateOrganization(t, "Acme Corp")
	project := mustCreateProject(t, organization.ID, "Launch")
	sibling := mustCreateProject(t, organization.ID, "Sibling")

	task := mustCreateTask(t, project.ID, "Design Homepage", models.TaskStatusTodo)
	if _, err := NewCommentRepository().Create(models.TaskComment{
		TaskID:      task.ID,
		Content:     "note",
		AuthorEmail: "author@example.com",
	}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := NewProjectRepository().Delete(project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	var taskCount, commentCount int64
	database.DB.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&taskCount)
	database.DB.Model(&models.TaskComment{}).Where("task_id = ?", task.ID).Count(&commentCount)
	if taskCount != 0 || commentCount != 0 {
		t.Fatalf("cascade leftovers: tasks=%d comments=%d", taskCount, commentCount)
	}

	if _, err := NewProjectRepository().FindByID(sibling.ID); err != nil {
		t.Fatalf("sibling project should survive: %v", err)
	}
	if _, err := NewOrganizationRepository().FindByID(organization.ID); err != nil {
		t.Fatalf("organization should survive project delete: %v", err)
	}
}
