package checklist

import (
	"testing"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/models"
)

func TestUpdateProject(t *testing.T) {
	db := testDB(t)
	p, err := CreateProject(db, CreateProjectOpts{Name: "Site"})
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	launch := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	got, err := UpdateProject(db, p.ID, UpdateProjectOpts{
		Name:       "Site v2",
		Status:     models.ProjectReview,
		LaunchDate: &launch,
	})
	if err != nil {
		t.Fatalf("UpdateProject() error: %v", err)
	}
	if got.Name != "Site v2" {
		t.Errorf("Name = %q, want Site v2", got.Name)
	}
	if got.Status != models.ProjectReview {
		t.Errorf("Status = %q, want %q", got.Status, models.ProjectReview)
	}
	if got.LaunchDate == nil || !got.LaunchDate.Equal(launch) {
		t.Errorf("LaunchDate = %v, want %v", got.LaunchDate, launch)
	}
	// Untouched fields survive.
	if got.ClientName != "Default Client" {
		t.Errorf("ClientName = %q, want Default Client", got.ClientName)
	}
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	db := testDB(t)
	p, err := CreateProject(db, CreateProjectOpts{Name: "Site"})
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	_, err = UpdateProject(db, p.ID, UpdateProjectOpts{Status: "SHIPPED"})
	if !apperrors.IsValidation(err) {
		t.Errorf("error %v is not a validation error", err)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := UpdateProject(db, "missing-id", UpdateProjectOpts{Name: "X"})
	if !apperrors.IsNotFound(err) {
		t.Errorf("error %v is not a not-found error", err)
	}
}

func TestDeleteProject_Cascades(t *testing.T) {
	db := testDB(t)
	makeTemplate(t, db, "Pre", models.TemplatePreLaunch, 3)
	p, err := CreateProject(db, CreateProjectOpts{Name: "Site"})
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	if err := DeleteProject(db, p.ID); err != nil {
		t.Fatalf("DeleteProject() error: %v", err)
	}

	var projects, instances, items int64
	db.Model(&models.Project{}).Count(&projects)
	db.Model(&models.ChecklistInstance{}).Count(&instances)
	db.Model(&models.ChecklistItemInstance{}).Count(&items)
	if projects != 0 || instances != 0 || items != 0 {
		t.Errorf("after delete: projects=%d instances=%d items=%d, want all 0",
			projects, instances, items)
	}

	// Templates are shared definitions and must survive project deletion.
	var templates int64
	db.Model(&models.ChecklistTemplate{}).Count(&templates)
	if templates != 1 {
		t.Errorf("template count = %d, want 1", templates)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	db := testDB(t)
	err := DeleteProject(db, "missing-id")
	if !apperrors.IsNotFound(err) {
		t.Errorf("error %v is not a not-found error", err)
	}
}

func TestDeleteProject_LeavesOtherProjects(t *testing.T) {
	db := testDB(t)
	makeTemplate(t, db, "Pre", models.TemplatePreLaunch, 2)

	p1, err := CreateProject(db, CreateProjectOpts{Name: "Keep"})
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	p2, err := CreateProject(db, CreateProjectOpts{Name: "Drop"})
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	if err := DeleteProject(db, p2.ID); err != nil {
		t.Fatalf("DeleteProject() error: %v", err)
	}

	var instances int64
	db.Model(&models.ChecklistInstance{}).Where("project_id = ?", p1.ID).Count(&instances)
	if instances != 1 {
		t.Errorf("surviving project instances = %d, want 1", instances)
	}
}
