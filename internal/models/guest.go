package models

import (
	"time"
)

type RSVPStatus string

const (
	RSVPPending      RSVPStatus = "pending"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not-attending"
)

// Guest is a primary guest: an invited person who owns a personalized
// RSVP link and may bring additional guests.
type Guest struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	RSVPStatus     RSVPStatus `json:"rsvpStatus"`
	InvitationSent bool       `json:"invitationSent"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// AdditionalGuest is a dependent of a primary guest. Attendance is
// tracked independently of the primary.
type AdditionalGuest struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	PrimaryGuestID string     `json:"primaryGuestId" gorm:"index"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	RSVPStatus     RSVPStatus `json:"rsvpStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
}
