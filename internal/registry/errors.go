package registry

import (
	"errors"

	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// ErrNotFound is the store sentinel, re-exported so callers can treat
// registry lookups uniformly.
var ErrNotFound = store.ErrNotFound

var (
	ErrDuplicateName     = errors.New("a guest with this name already exists")
	ErrMissingFields     = errors.New("required fields are missing")
	ErrMissingGuestInfo  = errors.New("guest id and guest name are required")
	ErrMissingAttendance = errors.New("attendance must be yes or no")
	ErrPhoneRequired     = errors.New("a phone number is required when attending")
	ErrInvalidEmail      = errors.New("email address is not valid")
	ErrInvalidRequest    = errors.New("uploader name and at least one file are required")
	ErrUploadFailed      = errors.New("none of the uploaded files could be stored")
)
