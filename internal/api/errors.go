package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/session"
)

var (
	errInvalidID    = errors.New("invalid session id")
	errMissingFile  = errors.New("missing file")
	errTooLarge     = errors.New("upload too large")
	errPageNotFound = errors.New("page not found")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, errInvalidID),
		errors.Is(err, errMissingFile),
		errors.Is(err, cards.ErrUnreadableInput),
		errors.Is(err, fonts.ErrUnknownFont):
		return http.StatusBadRequest

	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, errPageNotFound):
		return http.StatusNotFound

	case errors.Is(err, session.ErrStaleLoad):
		return http.StatusConflict

	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, cards.ErrNoUsableRows):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns a stable machine-readable code for err.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, errInvalidID):
		return "invalid_id"
	case errors.Is(err, errMissingFile):
		return "missing_file"
	case errors.Is(err, cards.ErrUnreadableInput):
		return "unreadable_input"
	case errors.Is(err, cards.ErrNoUsableRows):
		return "no_usable_rows"
	case errors.Is(err, fonts.ErrUnknownFont):
		return "unknown_font"
	case errors.Is(err, session.ErrNotFound):
		return "session_not_found"
	case errors.Is(err, errPageNotFound):
		return "page_not_found"
	case errors.Is(err, session.ErrStaleLoad):
		return "stale_load"
	case errors.Is(err, errTooLarge):
		return "too_large"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "internal"
	}
}

// SafeMessage returns a user-facing message that leaks no internal detail.
func SafeMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, errInvalidID):
		return "Invalid session id"
	case errors.Is(err, errMissingFile):
		return "No file uploaded; send the spreadsheet in the \"file\" form field"
	case errors.Is(err, cards.ErrUnreadableInput):
		return "The file could not be read. Upload a valid .xlsx, .xls or .csv file"
	case errors.Is(err, cards.ErrNoUsableRows):
		return "No usable rows found. Make sure the sheet has two columns: term and definition"
	case errors.Is(err, fonts.ErrUnknownFont):
		return "Unknown font"
	case errors.Is(err, session.ErrNotFound):
		return "Session not found"
	case errors.Is(err, errPageNotFound):
		return "Page not found"
	case errors.Is(err, session.ErrStaleLoad):
		return "The upload was superseded by a newer upload or a reset"
	case errors.Is(err, errTooLarge):
		return "The file is too large"
	case errors.Is(err, context.DeadlineExceeded):
		return "Reading the file took too long"
	default:
		return "An unexpected error occurred"
	}
}
