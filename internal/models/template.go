package models

import (
	"strings"
	"time"
)

// Template types. PRE_LAUNCH and POST_LAUNCH are canonical; the short
// PRE/POST forms seen in older seed data are normalized at the boundary.
const (
	TemplatePreLaunch  = "PRE_LAUNCH"
	TemplatePostLaunch = "POST_LAUNCH"
)

// Item priorities.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// ValidTemplateType reports whether t is a canonical template type.
func ValidTemplateType(t string) bool {
	return t == TemplatePreLaunch || t == TemplatePostLaunch
}

// NormalizeTemplateType maps legacy short forms (PRE, POST) to the canonical
// template types. Unknown values pass through unchanged for validation to catch.
func NormalizeTemplateType(t string) string {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "PRE", TemplatePreLaunch:
		return TemplatePreLaunch
	case "POST", TemplatePostLaunch:
		return TemplatePostLaunch
	}
	return t
}

// ValidItemPriority reports whether p is a defined item priority.
func ValidItemPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ChecklistTemplate is a reusable named checklist definition for either the
// pre-launch or post-launch phase.
type ChecklistTemplate struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Type        string    `gorm:"size:16;not null;index" json:"type"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Items []ChecklistItemTemplate `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// ChecklistItemTemplate is one task definition within a template. It holds
// the immutable task metadata; per-project state lives on ChecklistItemInstance.
type ChecklistItemTemplate struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TemplateID  string    `gorm:"size:36;index;not null" json:"templateId"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"size:16;default:MEDIUM" json:"priority"`
	Order       int       `gorm:"column:item_order;not null" json:"order"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Template *ChecklistTemplate `gorm:"foreignKey:TemplateID" json:"-"`
}
