package models

import "gorm.io/gorm"

// Product is a named container of items with a workflow status.
type Product struct {
	gorm.Model

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:50;default:planning" json:"status"`

	Items []Item `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "planning"
	}
	return nil
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "can't be blank"}
	}
	if len(p.Name) > 255 {
		return &ValidationError{Field: "name", Reason: "is too long (maximum is 255 characters)"}
	}
	if p.Status != "" && !validStatus(p.Status) {
		return &ValidationError{Field: "status", Reason: "is not included in the list"}
	}
	return nil
}
