package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GalleryImage records one uploaded image. The binary itself lives in the
// blob store under Filename; Variants lists the size names (mobile, tablet,
// desktop, large) for which a resized copy was actually produced.
type GalleryImage struct {
	gorm.Model

	Title            string         `gorm:"size:255;not null" json:"title"`
	Filename         string         `gorm:"size:255;not null" json:"filename"`
	OriginalFilename string         `gorm:"size:255;not null" json:"original_filename"`
	Variants         pq.StringArray `gorm:"type:text[]" json:"-"`
}

func (g *GalleryImage) Validate() error {
	if g.Title == "" {
		return &ValidationError{Field: "title", Reason: "can't be blank"}
	}
	if g.Filename == "" {
		return &ValidationError{Field: "filename", Reason: "can't be blank"}
	}
	if g.OriginalFilename == "" {
		return &ValidationError{Field: "original_filename", Reason: "can't be blank"}
	}
	return nil
}
