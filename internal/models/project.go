package models

import (
	"unicode/utf8"

	"gorm.io/gorm"
)

// Project groups tasks under a name, description and workflow status.
type Project struct {
	gorm.Model

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:50;default:planning" json:"status"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"-"`
}

// BeforeCreate defaults the status so a bare create lands in "planning".
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "planning"
	}
	return nil
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(p.Name) > 255 {
		return &ValidationError{Field: "name", Reason: "is too long (maximum is 255 characters)"}
	}
	if p.Status != "" && !validStatus(p.Status) {
		return &ValidationError{Field: "status", Reason: "is not included in the list"}
	}
	return nil
}
