package settings

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes used by settings error envelopes.
const (
	TextCodeInvalidSettings = "TRAILS_INVALID_SETTINGS"
	TextCodeInternal        = "TRAILS_INTERNAL"
)

var (
	// ErrRepositoryRequired is returned when the service is built without storage.
	ErrRepositoryRequired = errors.New("settings: repository is required")
	// ErrInvalidBaseURL is returned when the submitted base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("settings: invalid base url")
)

func validationError(field, message string) error {
	return goerrors.NewValidation("settings: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextCodeInvalidSettings)
}

func internalError(err error, message string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, message).
		WithCode(http.StatusInternalServerError).
		WithTextCode(TextCodeInternal)
}
