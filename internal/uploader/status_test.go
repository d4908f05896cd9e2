package uploader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapUploadStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"uploaded", StatusUploaded},
		{"processed", StatusProcessed},
		{"failed", StatusFailed},
		{"rejected", StatusRejected},
		{"deleted", StatusDeleted},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := mapUploadStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapUploadStatusUnknown(t *testing.T) {
	_, err := mapUploadStatus("transcoding")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
