package checklist

import (
	"errors"
	"fmt"
	"sort"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/progress"
	"gorm.io/gorm"
)

// ProjectSummary is a project row with aggregated checklist progress, as
// served by the project list endpoint.
type ProjectSummary struct {
	models.Project
	progress.Summary
}

// ProjectSummaries returns all projects newest first, each with done/total
// counts and the completion percentage over every checklist item.
func ProjectSummaries(db *gorm.DB) ([]ProjectSummary, error) {
	var projects []models.Project
	if err := db.Preload("User").Preload("ChecklistInstances.Items").
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("checklist: list projects: %w", err)
	}

	summaries := make([]ProjectSummary, len(projects))
	for i, p := range projects {
		var items []models.ChecklistItemInstance
		for _, inst := range p.ChecklistInstances {
			items = append(items, inst.Items...)
		}
		summaries[i] = ProjectSummary{Project: p, Summary: progress.Summarize(items)}
	}
	return summaries, nil
}

// ProjectDetail returns a project with its checklist instances, each
// instance carrying its template and its items ordered by template position
// with template-item joins. Instances are materialized on first read if the
// project has none yet.
func ProjectDetail(db *gorm.DB, id string) (*models.Project, error) {
	if _, err := EnsureInstances(db, id); err != nil {
		return nil, err
	}

	var project models.Project
	err := db.Preload("ChecklistInstances.Template").
		Preload("ChecklistInstances.Items.TemplateItem").
		Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("checklist: project detail %s: %w", id, err)
	}

	for i := range project.ChecklistInstances {
		sortItemsByTemplateOrder(project.ChecklistInstances[i].Items)
	}
	return &project, nil
}

// InstanceProgress returns the completion summary for one checklist instance.
func InstanceProgress(db *gorm.DB, instanceID string) (progress.Summary, error) {
	var items []models.ChecklistItemInstance
	if err := db.Where("checklist_id = ?", instanceID).Find(&items).Error; err != nil {
		return progress.Summary{}, fmt.Errorf("checklist: items of %s: %w", instanceID, err)
	}
	return progress.Summarize(items), nil
}

// sortItemsByTemplateOrder orders items by their template item's position.
// Items whose template join is missing sort last.
func sortItemsByTemplateOrder(items []models.ChecklistItemInstance) {
	orderOf := func(it models.ChecklistItemInstance) int {
		if it.TemplateItem == nil {
			return 1 << 30
		}
		return it.TemplateItem.Order
	}
	sort.SliceStable(items, func(i, j int) bool {
		return orderOf(items[i]) < orderOf(items[j])
	})
}
