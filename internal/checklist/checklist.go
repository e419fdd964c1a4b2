// Package checklist provides the checklist domain operations: project and
// template lifecycle, instance materialization, and item updates.
package checklist

import (
	"errors"
	"fmt"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/gorm"
)

// DefaultUserName and DefaultUserEmail identify the lazily created demo user.
const (
	DefaultUserName  = "Demo User"
	DefaultUserEmail = "demo@launchcheck.com"
)

// DefaultUser returns the first user, creating the demo user if none exists.
func DefaultUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.Order("created_at ASC").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checklist: find default user: %w", err)
	}

	user = models.User{
		ID:    models.NewID(),
		Name:  DefaultUserName,
		Email: DefaultUserEmail,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("checklist: create default user: %w", err)
	}
	return &user, nil
}

// ItemUpdate is a partial update to a checklist item instance. Nil fields
// are left unchanged.
type ItemUpdate struct {
	Status     *string `json:"status,omitempty"`
	Note       *string `json:"note,omitempty"`
	Assignee   *string `json:"assignee,omitempty"`
	RelatedURL *string `json:"relatedUrl,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u ItemUpdate) Empty() bool {
	return u.Status == nil && u.Note == nil && u.Assignee == nil && u.RelatedURL == nil
}

// GetItem returns an item instance with its template-item join fields.
func GetItem(db *gorm.DB, id string) (*models.ChecklistItemInstance, error) {
	var item models.ChecklistItemInstance
	err := db.Preload("TemplateItem").Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checklist item %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("checklist: get item %s: %w", id, err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to an item instance and returns the
// fully materialized item. Applying the same update twice yields the same
// end state. Completing or un-completing the last DONE item also maintains
// the owning instance's CompletedAt stamp.
func UpdateItem(db *gorm.DB, id string, upd ItemUpdate) (*models.ChecklistItemInstance, error) {
	if upd.Status != nil && !models.ValidItemStatus(*upd.Status) {
		return nil, apperrors.Validationf("invalid status %q, must be one of: %s %s %s %s",
			*upd.Status,
			models.StatusNotStarted, models.StatusInProgress, models.StatusDone, models.StatusNotApplicable)
	}

	item, err := GetItem(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.Note != nil {
		updates["note"] = *upd.Note
	}
	if upd.Assignee != nil {
		updates["assignee"] = *upd.Assignee
	}
	if upd.RelatedURL != nil {
		updates["related_url"] = *upd.RelatedURL
	}

	if err := db.Model(&models.ChecklistItemInstance{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("checklist: update item %s: %w", id, err)
	}

	if upd.Status != nil {
		if err := refreshInstanceCompletion(db, item.ChecklistID); err != nil {
			return nil, err
		}
	}

	return GetItem(db, id)
}

// refreshInstanceCompletion stamps or clears CompletedAt on an instance based
// on whether every item is DONE.
func refreshInstanceCompletion(db *gorm.DB, checklistID string) error {
	var total, done int64
	if err := db.Model(&models.ChecklistItemInstance{}).
		Where("checklist_id = ?", checklistID).Count(&total).Error; err != nil {
		return fmt.Errorf("checklist: count items of %s: %w", checklistID, err)
	}
	if err := db.Model(&models.ChecklistItemInstance{}).
		Where("checklist_id = ? AND status = ?", checklistID, models.StatusDone).Count(&done).Error; err != nil {
		return fmt.Errorf("checklist: count done items of %s: %w", checklistID, err)
	}

	updates := map[string]interface{}{"completed_at": nil}
	if total > 0 && done == total {
		updates["completed_at"] = time.Now()
	}
	if err := db.Model(&models.ChecklistInstance{}).Where("id = ?", checklistID).Updates(updates).Error; err != nil {
		return fmt.Errorf("checklist: stamp completion of %s: %w", checklistID, err)
	}
	return nil
}
