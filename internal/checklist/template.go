package checklist

import (
	"fmt"
	"strings"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/gorm"
)

// CreateTemplateOpts holds parameters for creating a checklist template.
type CreateTemplateOpts struct {
	Name        string
	Description string
	Type        string
}

// CreateTemplate creates an empty active template. Names are unique;
// creating a duplicate reports a conflict.
func CreateTemplate(db *gorm.DB, opts CreateTemplateOpts) (*models.ChecklistTemplate, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		return nil, apperrors.Validationf("template name is required")
	}
	opts.Type = models.NormalizeTemplateType(opts.Type)
	if !models.ValidTemplateType(opts.Type) {
		return nil, apperrors.Validationf("valid template type is required (%s or %s)",
			models.TemplatePreLaunch, models.TemplatePostLaunch)
	}

	var count int64
	if err := db.Model(&models.ChecklistTemplate{}).Where("name = ?", opts.Name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checklist: check template name %q: %w", opts.Name, err)
	}
	if count > 0 {
		return nil, apperrors.Conflictf("a template with this name already exists")
	}

	tmpl := models.ChecklistTemplate{
		ID:          models.NewID(),
		Name:        opts.Name,
		Description: strings.TrimSpace(opts.Description),
		Type:        opts.Type,
		IsActive:    true,
	}
	if err := db.Create(&tmpl).Error; err != nil {
		return nil, fmt.Errorf("checklist: create template %q: %w", opts.Name, err)
	}
	return &tmpl, nil
}

// ListTemplates returns all templates with their items ordered by position,
// templates ordered by type.
func ListTemplates(db *gorm.DB) ([]models.ChecklistTemplate, error) {
	var templates []models.ChecklistTemplate
	if err := db.Preload("Items", func(q *gorm.DB) *gorm.DB {
		return q.Order("item_order ASC")
	}).Order("type ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("checklist: list templates: %w", err)
	}
	return templates, nil
}
