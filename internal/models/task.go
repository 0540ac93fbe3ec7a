package models

import (
	"unicode/utf8"

	"gorm.io/gorm"
)

// Task is a single checklist entry. It may be standalone or belong to
// either a project or a campaign, never both.
type Task struct {
	gorm.Model

	Title     string `gorm:"size:255;not null" json:"title"`
	Completed bool   `gorm:"default:false" json:"completed"`

	ProjectID  *uint `gorm:"index" json:"project_id"`
	CampaignID *uint `gorm:"index" json:"campaign_id"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(t.Title) > 255 {
		return &ValidationError{Field: "title", Reason: "is too long (maximum is 255 characters)"}
	}
	if t.ProjectID != nil && t.CampaignID != nil {
		return &ValidationError{Field: "task", Reason: "can't belong to both a project and a campaign"}
	}
	return nil
}
