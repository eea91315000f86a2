package entities

import "time"

// Project mirrors the Project Showcase rows owned by the web application.
// This service only reads projects to verify tool registrations.
type Project struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatorID string    `gorm:"size:64;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
