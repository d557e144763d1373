// Package gate decides whether RSVP submission and photo uploads are
// currently open. Evaluation is pure: settings snapshot plus a clock
// reading in, decision out, recomputed fresh on every request.
package gate

import (
	"time"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

const (
	rsvpClosedMessage    = "RSVP submissions are currently closed."
	uploadClosedMessage  = "Photo uploads are currently closed."
	outsideWindowMessage = "Photo uploads are outside the scheduled window."

	// Deadlines and schedule bounds come from the admin UI as
	// datetime-local values, without a zone.
	layoutMinute = "2006-01-02T15:04"
	layoutSecond = "2006-01-02T15:04:05"
	layoutDate   = "2006-01-02"
)

// Decision is the outcome of a gate evaluation. Message is only
// meaningful when the gate is closed.
type Decision struct {
	Open    bool   `json:"open"`
	Message string `json:"message,omitempty"`
}

// RSVP evaluates the RSVP gate. The deadline is a naive Philippine-local
// timestamp: "now" is shifted to UTC+8 and compared without any further
// zone handling, matching how the deadline was entered. An unparseable
// deadline counts as no deadline.
func RSVP(s models.RSVPSettings, now time.Time) Decision {
	if !s.Enabled {
		return Decision{Open: false, Message: closedMessage(s.CustomMessage, rsvpClosedMessage)}
	}
	if s.Deadline != "" {
		if deadline, ok := parseNaive(s.Deadline); ok {
			nowPH := now.UTC().Add(8 * time.Hour)
			if nowPH.After(deadline) {
				return Decision{Open: false, Message: closedMessage(s.CustomMessage, rsvpClosedMessage)}
			}
		}
	}
	return Decision{Open: true}
}

// Upload evaluates the upload gate. Base state comes from Enabled; when
// both schedule bounds are set, being outside [start, end] forces the
// gate closed regardless of Enabled. Unlike the RSVP deadline, the
// schedule is compared against plain UTC "now" with no +8 shift.
func Upload(s models.UploadSettings, now time.Time) Decision {
	if s.ScheduleStart != "" && s.ScheduleEnd != "" {
		start, okStart := parseNaive(s.ScheduleStart)
		end, okEnd := parseNaive(s.ScheduleEnd)
		if okStart && okEnd {
			t := now.UTC()
			if t.Before(start) || t.After(end) {
				return Decision{Open: false, Message: closedMessage(s.Message, outsideWindowMessage)}
			}
		}
	}
	if !s.Enabled {
		return Decision{Open: false, Message: closedMessage(s.Message, uploadClosedMessage)}
	}
	return Decision{Open: true}
}

func closedMessage(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}

func parseNaive(value string) (time.Time, bool) {
	for _, layout := range []string{layoutMinute, layoutSecond, layoutDate} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
