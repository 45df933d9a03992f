package cards

import "errors"

var (
	// ErrUnreadableInput is returned when the source could not be decoded
	// at all. No partial result is produced.
	ErrUnreadableInput = errors.New("unreadable input")

	// ErrNoUsableRows is returned when decoding succeeded but no row
	// produced a card.
	ErrNoUsableRows = errors.New("no usable rows")
)
