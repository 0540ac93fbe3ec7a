package models

import (
	"unicode/utf8"

	"gorm.io/gorm"
)

// Item is a checklist entry that always belongs to a product.
type Item struct {
	gorm.Model

	Title     string `gorm:"size:255;not null" json:"title"`
	Completed bool   `gorm:"default:false" json:"completed"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
}

func (i *Item) Validate() error {
	if i.Title == "" {
		return &ValidationError{Field: "title", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(i.Title) > 255 {
		return &ValidationError{Field: "title", Reason: "is too long (maximum is 255 characters)"}
	}
	return nil
}
