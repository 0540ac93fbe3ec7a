package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

const (
	// MaxUserNameLength bounds the sender name on a chat message.
	MaxUserNameLength = 50
	// MaxMessageLength bounds the body of a chat message.
	MaxMessageLength = 500
)

// ChatMessage is one persisted line of the shared chat log. Rows are
// append-only: nothing in the application updates or deletes them.
// The embedded gorm.Model provides the auto-increment ID and the
// CreatedAt/UpdatedAt timestamps.
type ChatMessage struct {
	gorm.Model

	// UserName is the display name the sender supplied, max 50 chars.
	UserName string `gorm:"size:50;not null" json:"user_name"`
	// Message is the message body, max 500 chars.
	Message string `gorm:"type:text;not null" json:"message"`
}

// Normalize strips leading and trailing whitespace from both fields.
// Clients are expected to trim before sending, but the server trims again.
func (m *ChatMessage) Normalize() {
	m.UserName = strings.TrimSpace(m.UserName)
	m.Message = strings.TrimSpace(m.Message)
}

// Validate enforces the message constraints. Length limits count
// characters, not bytes. It does not touch the store.
func (m *ChatMessage) Validate() error {
	if m.UserName == "" {
		return &ValidationError{Field: "user_name", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(m.UserName) > MaxUserNameLength {
		return &ValidationError{Field: "user_name", Reason: fmt.Sprintf("is too long (maximum is %d characters)", MaxUserNameLength)}
	}
	if m.Message == "" {
		return &ValidationError{Field: "message", Reason: "can't be blank"}
	}
	if utf8.RuneCountInString(m.Message) > MaxMessageLength {
		return &ValidationError{Field: "message", Reason: fmt.Sprintf("is too long (maximum is %d characters)", MaxMessageLength)}
	}
	return nil
}

// ChatMessagePayload is the wire shape pushed to subscribers and returned
// by the history endpoint. CreatedAt is pre-formatted as HH:MM.
type ChatMessagePayload struct {
	ID        uint   `json:"id"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Payload converts a stored message to its wire shape.
func (m *ChatMessage) Payload() ChatMessagePayload {
	return ChatMessagePayload{
		ID:        m.ID,
		UserName:  m.UserName,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format("15:04"),
	}
}
