package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // required for pq.StringArray
	"gorm.io/gorm"
)

// ContactSubmission is one completed contact-form wizard, persisted in
// PostgreSQL. Topics holds the topic slugs the visitor ticked in step two.
type ContactSubmission struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	Topics    pq.StringArray `gorm:"type:text[]" json:"topics"`
	Language  string         `json:"language"` // two-letter tag the form was filled in
	Status    string         `json:"status"`   // "new", "read", "answered"
	CreatedAt time.Time      `json:"createdAt"`
}

// BeforeCreate is a GORM hook that assigns a UUID when none is set.
func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
