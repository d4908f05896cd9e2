package uploader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{"signup required", errors.New("googleapi: Error 401: youtubeSignupRequired, youtubeSignupRequired"), ReasonSignupRequired},
		{"quota exceeded", errors.New("googleapi: Error 403: quotaExceeded"), ReasonQuotaExceeded},
		{"unrelated api error", errors.New("googleapi: Error 500: backendError"), ReasonUnknown},
		{"plain network error", errors.New("dial tcp: connection refused"), ReasonUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("quotaExceeded")
	err := &Error{Reason: ReasonQuotaExceeded, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quotaExceeded")
}
