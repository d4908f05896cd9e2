// Package uploader drives one resumable video upload: it loads the JSON
// metadata, streams the media file chunk by chunk while reporting
// progress, and classifies the small set of known terminal errors.
package uploader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"google.golang.org/api/youtube/v3"
)

// Uploader performs a single upload per call.
type Uploader struct {
	svc         Service
	out         io.Writer
	mode        Mode
	deleteAfter bool
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithOutput sets the writer for progress and status text.
func WithOutput(w io.Writer) Option {
	return func(u *Uploader) { u.out = w }
}

// WithMode selects the progress rendering mode.
func WithMode(m Mode) Option {
	return func(u *Uploader) { u.mode = m }
}

// WithDeleteAfter removes the media file after a successful upload.
func WithDeleteAfter(del bool) Option {
	return func(u *Uploader) { u.deleteAfter = del }
}

// New creates an Uploader on top of the given upload service.
func New(svc Service, opts ...Option) *Uploader {
	u := &Uploader{
		svc:  svc,
		out:  os.Stdout,
		mode: ModePercent,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload sends videoPath to the platform with the metadata document at
// metadataPath as the request body.
//
// The metadata document is loaded fully before any network call; its
// errors (and media file errors) propagate unclassified. A failure from
// the upload itself prints a failure banner plus remediation guidance and
// comes back as *Error. On success the final response is pretty-printed.
func (u *Uploader) Upload(videoPath, metadataPath string) error {
	video, err := LoadMetadata(metadataPath)
	if err != nil {
		return err
	}

	f, err := os.Open(videoPath)
	if err != nil {
		return fmt.Errorf("opening video file: %w", err)
	}
	defer f.Close()

	var media io.Reader = f
	var rep Reporter = percentReporter{out: u.out}
	if u.mode == ModeBar {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("inspecting video file: %w", err)
		}
		bar := pb.Full.Start64(info.Size())
		media = bar.NewProxyReader(f)
		rep = barReporter{bar: bar}
	}

	fmt.Fprintf(u.out, "Uploading %s ...\n", videoPath)

	resp, err := u.drive(u.svc.Resumable(video, media), rep)
	if err != nil {
		reason := Classify(err)
		fmt.Fprintf(u.out, "\nUpload failed: %v\n\n%s\n", err, remediation(reason))
		return &Error{Reason: reason, Err: err}
	}
	rep.Finish()

	fmt.Fprintln(u.out, "Upload successful!")
	pretty, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering response: %w", err)
	}
	fmt.Fprintln(u.out, string(pretty))

	if u.deleteAfter {
		if err := os.Remove(videoPath); err != nil {
			return fmt.Errorf("removing video file: %w", err)
		}
	}
	return nil
}

// drive polls the session until it yields a final result, reporting each
// intermediate fraction along the way.
func (u *Uploader) drive(sess Session, rep Reporter) (*youtube.Video, error) {
	for {
		frac, done, err := sess.NextChunk()
		if err != nil {
			return nil, err
		}
		if done != nil {
			return done, nil
		}
		rep.Update(frac)
	}
}
