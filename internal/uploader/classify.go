package uploader

import "strings"

// Reason is the classified cause of a failed upload.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonSignupRequired
	ReasonQuotaExceeded
)

// Error is a classified resumable-upload failure. It always maps to exit
// code 1 at the process boundary.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string { return "upload failed: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Classify inspects the textual content of an upload error for the known
// failure families the remote service reports.
func Classify(err error) Reason {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "youtubeSignupRequired"):
		return ReasonSignupRequired
	case strings.Contains(msg, "quotaExceeded"):
		return ReasonQuotaExceeded
	default:
		return ReasonUnknown
	}
}

// remediation returns operator guidance for a classified failure.
func remediation(r Reason) string {
	switch r {
	case ReasonSignupRequired:
		return `This error typically means:
  - Your Google account doesn't have a YouTube channel
  - Please visit https://youtube.com and create a channel
  - Then try uploading again`
	case ReasonQuotaExceeded:
		return `This error means:
  - YouTube API quota has been exceeded
  - Please try again later or request a quota increase`
	default:
		return `For troubleshooting, check:
  - YouTube channel exists and is active
  - OAuth credentials have YouTube upload permissions
  - Video file is in a supported format`
	}
}
