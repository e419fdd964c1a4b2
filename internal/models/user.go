package models

import "time"

// User owns projects. A default user is created lazily on first access;
// users are never deleted by the system.
type User struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}
