package uploader

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

var ErrUnknownStatus = errors.New("unknown video status")

// Processing status constants reported by CheckStatus.
const (
	StatusUploaded  = "uploaded"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
	StatusDeleted   = "deleted"
)

// CheckStatus looks up the processing status of a previously uploaded
// video.
func CheckStatus(ctx context.Context, svc *youtube.Service, videoID string) (string, error) {
	resp, err := youtube.NewVideosService(svc).List([]string{"snippet", "status"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("listing video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("video %s not found", videoID)
	}
	return mapUploadStatus(resp.Items[0].Status.UploadStatus)
}

func mapUploadStatus(s string) (string, error) {
	switch s {
	case "uploaded":
		return StatusUploaded, nil
	case "processed":
		return StatusProcessed, nil
	case "failed":
		return StatusFailed, nil
	case "rejected":
		return StatusRejected, nil
	case "deleted":
		return StatusDeleted, nil
	default:
		return "", ErrUnknownStatus
	}
}
