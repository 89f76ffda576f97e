package persona

import "time"

// Payload is what clients submit to create or replace a persona
type Payload struct {
	Title           string  `json:"title"`
	Locale          string  `json:"locale,omitempty"`
	IsPublic        *bool   `json:"isPublic,omitempty"`
	Data            Data    `json:"data"`
	SourcePersonaID *string `json:"sourcePersonaId,omitempty" validate:"omitempty,uuid"`
}

// Public reports the visibility, true when unset
func (p Payload) Public() bool { return p.IsPublic == nil || *p.IsPublic }

// Record is a stored persona with its provenance. Field order is the JSON export order
type Record struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	AuthorName      *string   `json:"authorName"`
	Title           string    `json:"title"`
	Locale          string    `json:"locale"`
	IsPublic        bool      `json:"isPublic"`
	SourcePersonaID *string   `json:"sourcePersonaId"`
	Data            Data      `json:"data"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the record
func (r Record) OwnedBy(userID string) bool { return userID != "" && r.UserID == userID }
