package models

import (
	"time"
)

// GuestSnapshot is a frozen copy of an additional guest's details as
// submitted with an RSVP. It is a value, not a reference: later edits to
// the additional-guest registry must not rewrite submitted history.
type GuestSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RSVPResponse is the single current response for a primary guest.
// Resubmission replaces the previous response, it never appends.
type RSVPResponse struct {
	ID                  string          `json:"id" gorm:"primaryKey"`
	GuestID             string          `json:"guestId" gorm:"index"`
	GuestName           string          `json:"guestName"`
	Attending           string          `json:"attending"`
	AdditionalGuests    []GuestSnapshot `json:"additionalGuests" gorm:"serializer:json"`
	DietaryRestrictions string          `json:"dietaryRestrictions,omitempty"`
	Message             string          `json:"message,omitempty"`
	SubmittedAt         time.Time       `json:"submittedAt"`
}
