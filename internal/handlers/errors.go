package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/delacruz-wedding/wedding-api/internal/registry"
)

// domainError maps registry errors onto HTTP status errors. Anything
// not in the domain taxonomy is an infrastructure failure and surfaces
// as a generic 500; the caller logs the detail.
func domainError(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return huma.Error404NotFound("Not found")
	case errors.Is(err, registry.ErrDuplicateName):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, registry.ErrMissingFields),
		errors.Is(err, registry.ErrMissingGuestInfo),
		errors.Is(err, registry.ErrMissingAttendance),
		errors.Is(err, registry.ErrPhoneRequired),
		errors.Is(err, registry.ErrInvalidEmail),
		errors.Is(err, registry.ErrInvalidRequest):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, registry.ErrUploadFailed):
		return huma.Error502BadGateway(err.Error())
	default:
		return huma.Error500InternalServerError("Something went wrong, please try again")
	}
}
