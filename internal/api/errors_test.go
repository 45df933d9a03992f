package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/session"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: zip: not a valid zip file", cards.ErrUnreadableInput), http.StatusBadRequest, "unreadable_input"},
		{fmt.Errorf("x.csv: %w", cards.ErrNoUsableRows), http.StatusUnprocessableEntity, "no_usable_rows"},
		{session.ErrNotFound, http.StatusNotFound, "session_not_found"},
		{session.ErrStaleLoad, http.StatusConflict, "stale_load"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, MapErrorToStatusCode(tt.err), tt.err.Error())
		assert.Equal(t, tt.code, ErrorCode(tt.err), tt.err.Error())
	}
}

func TestSafeMessage_DistinguishesInputFailures(t *testing.T) {
	unreadable := SafeMessage(cards.ErrUnreadableInput)
	noRows := SafeMessage(cards.ErrNoUsableRows)
	assert.NotEqual(t, unreadable, noRows)
	assert.Contains(t, noRows, "two columns")
	assert.NotContains(t, SafeMessage(errors.New("pq: secret table")), "secret")
	assert.Equal(t, "An unexpected error occurred", SafeMessage(nil))
}
