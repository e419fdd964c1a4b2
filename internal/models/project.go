package models

import "time"

// Project statuses. The full lifecycle runs planning through completed;
// ON_HOLD is reachable from any state.
const (
	ProjectPlanning       = "PLANNING"
	ProjectInProgress     = "IN_PROGRESS"
	ProjectReview         = "REVIEW"
	ProjectReadyForLaunch = "READY_FOR_LAUNCH"
	ProjectLive           = "LIVE"
	ProjectOnHold         = "ON_HOLD"
	ProjectCompleted      = "COMPLETED"
)

// ProjectStatuses lists every valid project status in lifecycle order.
var ProjectStatuses = []string{
	ProjectPlanning,
	ProjectInProgress,
	ProjectReview,
	ProjectReadyForLaunch,
	ProjectLive,
	ProjectOnHold,
	ProjectCompleted,
}

// ValidProjectStatus reports whether s is a defined project status.
func ValidProjectStatus(s string) bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project is a client engagement tracked against launch checklists.
type Project struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	ClientName     string     `gorm:"not null" json:"clientName"`
	Domain         string     `gorm:"size:255" json:"domain,omitempty"`
	Status         string     `gorm:"size:32;default:PLANNING;index" json:"status"`
	LaunchDate     *time.Time `json:"launchDate,omitempty"`
	ReminderSentAt *time.Time `json:"-"`
	UserID         string     `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	User               *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ChecklistInstances []ChecklistInstance `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"checklistInstances,omitempty"`
}
