package models

import "time"

// Checklist item statuses. These four values are the complete set; any
// other value is rejected at the API boundary.
const (
	StatusNotStarted    = "NOT_STARTED"
	StatusInProgress    = "IN_PROGRESS"
	StatusDone          = "DONE"
	StatusNotApplicable = "NOT_APPLICABLE"
)

// ItemStatuses lists every valid checklist item status.
var ItemStatuses = []string{
	StatusNotStarted,
	StatusInProgress,
	StatusDone,
	StatusNotApplicable,
}

// ValidItemStatus reports whether s is a defined checklist item status.
func ValidItemStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone, StatusNotApplicable:
		return true
	}
	return false
}

// ChecklistInstance binds one template to one project. At most one instance
// exists per (project, template) pair, enforced by a composite unique index.
type ChecklistInstance struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string     `gorm:"size:36;not null;uniqueIndex:idx_project_template" json:"projectId"`
	TemplateID  string     `gorm:"size:36;not null;uniqueIndex:idx_project_template" json:"templateId"`
	Type        string     `gorm:"size:16;not null" json:"type"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Project  *Project                `gorm:"foreignKey:ProjectID" json:"-"`
	Template *ChecklistTemplate      `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Items    []ChecklistItemInstance `gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// ChecklistItemInstance is the mutable per-project occurrence of a template
// item. It is the only entity mutated during day-to-day use.
type ChecklistItemInstance struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ChecklistID    string    `gorm:"size:36;index;not null" json:"checklistId"`
	TemplateItemID string    `gorm:"size:36;index;not null" json:"templateItemId"`
	Status         string    `gorm:"size:16;default:NOT_STARTED;index" json:"status"`
	Assignee       string    `gorm:"size:128" json:"assignee,omitempty"`
	Note           string    `gorm:"type:text" json:"note,omitempty"`
	RelatedURL     string    `gorm:"size:512" json:"relatedUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Checklist    *ChecklistInstance     `gorm:"foreignKey:ChecklistID" json:"-"`
	TemplateItem *ChecklistItemTemplate `gorm:"foreignKey:TemplateItemID" json:"templateItem,omitempty"`
}
