package checklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/gorm"
)

// CreateProjectOpts holds parameters for creating a new project.
type CreateProjectOpts struct {
	Name       string
	ClientName string
	Domain     string
	Status     string
	LaunchDate *time.Time
}

// CreateProject creates a project owned by the default user and materializes
// checklist instances from every active template.
func CreateProject(db *gorm.DB, opts CreateProjectOpts) (*models.Project, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		return nil, apperrors.Validationf("project name is required")
	}
	if opts.ClientName == "" {
		opts.ClientName = "Default Client"
	}
	if opts.Status == "" {
		opts.Status = models.ProjectInProgress
	}
	if !models.ValidProjectStatus(opts.Status) {
		return nil, apperrors.Validationf("invalid project status %q", opts.Status)
	}

	user, err := DefaultUser(db)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		ID:         models.NewID(),
		Name:       opts.Name,
		ClientName: opts.ClientName,
		Domain:     opts.Domain,
		Status:     opts.Status,
		LaunchDate: opts.LaunchDate,
		UserID:     user.ID,
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("checklist: create project: %w", err)
	}

	if _, err := EnsureInstances(db, project.ID); err != nil {
		return nil, err
	}
	return &project, nil
}

// EnsureInstances materializes a checklist instance for every active template
// the project does not yet have one for, each with the template's active
// items in NOT_STARTED. Idempotent: existing instances are never duplicated.
// Returns the number of instances created. This is the single creation path,
// callable from project creation or from first read.
func EnsureInstances(db *gorm.DB, projectID string) (int, error) {
	var count int64
	if err := db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("checklist: check project %s: %w", projectID, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}

	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var templates []models.ChecklistTemplate
		if err := tx.Preload("Items", func(q *gorm.DB) *gorm.DB {
			return q.Where("is_active = ?", true).Order("item_order ASC")
		}).Where("is_active = ?", true).Find(&templates).Error; err != nil {
			return fmt.Errorf("checklist: load active templates: %w", err)
		}

		for _, tmpl := range templates {
			var existing int64
			if err := tx.Model(&models.ChecklistInstance{}).
				Where("project_id = ? AND template_id = ?", projectID, tmpl.ID).
				Count(&existing).Error; err != nil {
				return fmt.Errorf("checklist: check instance for template %s: %w", tmpl.ID, err)
			}
			if existing > 0 {
				continue
			}

			instance := models.ChecklistInstance{
				ID:         models.NewID(),
				ProjectID:  projectID,
				TemplateID: tmpl.ID,
				Type:       tmpl.Type,
				StartedAt:  time.Now(),
			}
			for _, ti := range tmpl.Items {
				instance.Items = append(instance.Items, models.ChecklistItemInstance{
					ID:             models.NewID(),
					TemplateItemID: ti.ID,
					Status:         models.StatusNotStarted,
				})
			}
			if err := tx.Create(&instance).Error; err != nil {
				return fmt.Errorf("checklist: create instance for template %s: %w", tmpl.ID, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// UpdateProjectOpts holds optional fields for updating a project. Nil or
// empty fields are left unchanged.
type UpdateProjectOpts struct {
	Name       string
	ClientName string
	Domain     string
	Status     string
	LaunchDate *time.Time
}

// UpdateProject applies non-empty fields to an existing project.
func UpdateProject(db *gorm.DB, id string, opts UpdateProjectOpts) (*models.Project, error) {
	project, err := GetProject(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if v := strings.TrimSpace(opts.Name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(opts.ClientName); v != "" {
		updates["client_name"] = v
	}
	if v := strings.TrimSpace(opts.Domain); v != "" {
		updates["domain"] = v
	}
	if opts.Status != "" {
		if !models.ValidProjectStatus(opts.Status) {
			return nil, apperrors.Validationf("invalid project status %q", opts.Status)
		}
		updates["status"] = opts.Status
	}
	if opts.LaunchDate != nil {
		updates["launch_date"] = *opts.LaunchDate
	}

	if err := db.Model(&models.Project{}).Where("id = ?", project.ID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("checklist: update project %s: %w", id, err)
	}
	return GetProject(db, id)
}

// GetProject returns a project without associations.
func GetProject(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("checklist: get project %s: %w", id, err)
	}
	return &project, nil
}

// DeleteProject removes a project and cascades to its checklist instances
// and item instances in a single transaction.
func DeleteProject(db *gorm.DB, id string) error {
	if _, err := GetProject(db, id); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var instanceIDs []string
		if err := tx.Model(&models.ChecklistInstance{}).
			Where("project_id = ?", id).Pluck("id", &instanceIDs).Error; err != nil {
			return fmt.Errorf("checklist: list instances of %s: %w", id, err)
		}
		if len(instanceIDs) > 0 {
			if err := tx.Where("checklist_id IN ?", instanceIDs).
				Delete(&models.ChecklistItemInstance{}).Error; err != nil {
				return fmt.Errorf("checklist: delete items of %s: %w", id, err)
			}
			if err := tx.Where("project_id = ?", id).
				Delete(&models.ChecklistInstance{}).Error; err != nil {
				return fmt.Errorf("checklist: delete instances of %s: %w", id, err)
			}
		}
		if err := tx.Where("id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return fmt.Errorf("checklist: delete project %s: %w", id, err)
		}
		return nil
	})
}
