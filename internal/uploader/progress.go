package uploader

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Mode selects how upload progress is rendered.
type Mode string

const (
	// ModePercent overwrites a single "Progress: NN%" line per chunk.
	ModePercent Mode = "percent"
	// ModeBar renders a byte-level progress bar over the media reader.
	ModeBar Mode = "bar"
)

// Reporter receives fractional chunk progress during an upload.
type Reporter interface {
	Update(frac float64)
	Finish()
}

// percentReporter renders the carriage-return-prefixed percentage line.
// The percentage is the floor of frac*100.
type percentReporter struct {
	out io.Writer
}

func (p percentReporter) Update(frac float64) {
	fmt.Fprintf(p.out, "\rProgress: %d%%", int(frac*100))
}

func (p percentReporter) Finish() {
	fmt.Fprintln(p.out)
}

// barReporter owns a byte-level bar fed by a proxy reader wrapped around
// the media file, so chunk fractions are ignored here.
type barReporter struct {
	bar *pb.ProgressBar
}

func (b barReporter) Update(float64) {}

func (b barReporter) Finish() {
	b.bar.Finish()
}
