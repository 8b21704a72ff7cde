package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermination(t *testing.T) {
	testCases := []struct {
		name        string
		termination Termination
		sentinel    error
		message     string
		str         string
	}{
		{name: "exhausted", termination: ExhaustedTermination(), sentinel: nil, message: "", str: "exhausted"},
		{name: "not found", termination: NotFoundTermination(), sentinel: ErrNotFound, message: "USER NOT FOUND!", str: "not_found"},
		{name: "rate limited", termination: RateLimitedTermination(), sentinel: ErrRateLimited, message: "RATE LIMIT EXCEEDED!", str: "rate_limited"},
		{name: "remote error", termination: RemoteErrorTermination(502), sentinel: ErrRemote, message: "ERROR: 502", str: "remote_error(502)"},
		{name: "timed out", termination: TimedOutTermination(), sentinel: ErrTimedOut, message: "REQUEST TIMED OUT", str: "timed_out"},
		{name: "transport error", termination: TransportErrorTermination("connection refused"), sentinel: ErrTransport, message: "REQUEST FAILED: connection refused", str: "transport_error(connection refused)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.termination.Err()
			if tc.sentinel == nil {
				assert.NoError(t, err)
				assert.True(t, tc.termination.Complete())
			} else {
				assert.True(t, errors.Is(err, tc.sentinel))
				assert.False(t, tc.termination.Complete())
			}
			assert.Equal(t, tc.message, tc.termination.Message())
			assert.Equal(t, tc.str, tc.termination.String())
		})
	}
}

func TestTermination_RemoteErrorCarriesCode(t *testing.T) {
	err := RemoteErrorTermination(500).Err()
	assert.Contains(t, err.Error(), "status 500")
}
