package models

import "time"

// Task is a dated note owned by a person, optionally linked to events and
// organizations it concerns.
type Task struct {
	BaseModel
	OwnerID uint       `gorm:"not null;index"` // persons.id FK
	Title   string     `gorm:"type:varchar(200);not null"`
	Note    string     `gorm:"type:text"`
	DueDate *time.Time `gorm:"index"`
	IsDone  bool       `gorm:"default:false;index"`

	Owner         Person         `gorm:"foreignKey:OwnerID"`
	Events        []Event        `gorm:"many2many:task_event_links;"`
	Organizations []Organization `gorm:"many2many:task_organization_links;"`
}
