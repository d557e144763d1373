package gate

import (
	"testing"
	"time"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

func TestRSVPGate(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		d := RSVP(models.RSVPSettings{Enabled: false}, time.Now())
		if d.Open {
			t.Error("expected closed gate when disabled")
		}
		if d.Message == "" {
			t.Error("expected a closed message")
		}
	})

	t.Run("EnabledNoDeadline", func(t *testing.T) {
		d := RSVP(models.RSVPSettings{Enabled: true}, time.Now())
		if !d.Open {
			t.Error("expected open gate")
		}
	})

	t.Run("DeadlineComparedInPhilippineTime", func(t *testing.T) {
		settings := models.RSVPSettings{Enabled: true, Deadline: "2025-09-01T10:00"}

		// 01:00 UTC shifts to 09:00 UTC+8, one hour before the deadline.
		before := time.Date(2025, 9, 1, 1, 0, 0, 0, time.UTC)
		if d := RSVP(settings, before); !d.Open {
			t.Errorf("expected open at PH 09:00, got closed (%s)", d.Message)
		}

		// 03:00 UTC shifts to 11:00 UTC+8, one hour past the deadline.
		after := time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC)
		if d := RSVP(settings, after); d.Open {
			t.Error("expected closed at PH 11:00")
		}
	})

	t.Run("CustomMessageWhenClosed", func(t *testing.T) {
		settings := models.RSVPSettings{Enabled: false, CustomMessage: "See you at the reception!"}
		d := RSVP(settings, time.Now())
		if d.Message != "See you at the reception!" {
			t.Errorf("expected custom message, got %q", d.Message)
		}
	})

	t.Run("UnparseableDeadlineIgnored", func(t *testing.T) {
		settings := models.RSVPSettings{Enabled: true, Deadline: "next tuesday"}
		if d := RSVP(settings, time.Now()); !d.Open {
			t.Error("expected open gate when deadline cannot be parsed")
		}
	})
}

func TestUploadGate(t *testing.T) {
	t.Run("EnabledNoSchedule", func(t *testing.T) {
		d := Upload(models.UploadSettings{Enabled: true}, time.Now())
		if !d.Open {
			t.Error("expected open gate")
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		d := Upload(models.UploadSettings{Enabled: false}, time.Now())
		if d.Open {
			t.Error("expected closed gate")
		}
	})

	t.Run("OutsideWindowOverridesEnabled", func(t *testing.T) {
		settings := models.UploadSettings{
			Enabled:       true,
			ScheduleStart: "2026-01-17T08:00",
			ScheduleEnd:   "2026-01-18T00:00",
		}

		// The window is compared against plain UTC, no +8 shift.
		before := time.Date(2026, 1, 17, 7, 0, 0, 0, time.UTC)
		d := Upload(settings, before)
		if d.Open {
			t.Error("expected closed before window start")
		}
		if d.Message != outsideWindowMessage {
			t.Errorf("expected outside-window message, got %q", d.Message)
		}

		during := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
		if d := Upload(settings, during); !d.Open {
			t.Error("expected open inside window")
		}

		after := time.Date(2026, 1, 18, 1, 0, 0, 0, time.UTC)
		if d := Upload(settings, after); d.Open {
			t.Error("expected closed after window end")
		}
	})

	t.Run("DisabledInsideWindowStaysClosed", func(t *testing.T) {
		settings := models.UploadSettings{
			Enabled:       false,
			ScheduleStart: "2026-01-17T08:00",
			ScheduleEnd:   "2026-01-18T00:00",
		}
		during := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
		if d := Upload(settings, during); d.Open {
			t.Error("expected closed: the window does not force the gate open")
		}
	})

	t.Run("CustomMessageWinsOutsideWindow", func(t *testing.T) {
		settings := models.UploadSettings{
			Enabled:       true,
			Message:       "Uploads open on the big day!",
			ScheduleStart: "2026-01-17T08:00",
			ScheduleEnd:   "2026-01-18T00:00",
		}
		before := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
		d := Upload(settings, before)
		if d.Open {
			t.Error("expected closed before window")
		}
		if d.Message != "Uploads open on the big day!" {
			t.Errorf("expected custom message, got %q", d.Message)
		}
	})
}
