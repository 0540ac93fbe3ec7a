package models

import (
	"unicode/utf8"

	"gorm.io/gorm"
)

// Campaign is structurally a project: a named container of tasks with a
// workflow status. It keeps its own foreign key on Task so campaign ids
// can never collide with project ids.
type Campaign struct {
	gorm.Model

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:50;default:planning" json:"status"`

	Tasks []Task `gorm:"foreignKey:CampaignID" json:"-"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = "planning"
	}
	return nil
}

func (c *Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(c.Name) > 255 {
		return &ValidationError{Field: "name", Reason: "is too long (maximum is 255 characters)"}
	}
	if c.Status != "" && !validStatus(c.Status) {
		return &ValidationError{Field: "status", Reason: "is not included in the list"}
	}
	return nil
}
