package types

import "fmt"

// Dimensions holds a width/height pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// String formats dimensions as "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Outcome classifies how processing ended for a single file.
type Outcome int

const (
	// OutcomeCompleted means an output image was written.
	OutcomeCompleted Outcome = iota
	// OutcomeSkipped means the image had no non-transparent content.
	OutcomeSkipped
	// OutcomeErrored means decoding or encoding failed.
	OutcomeErrored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Result is the per-file record of a batch run.
type Result struct {
	File    string
	Content Dimensions
	Target  Dimensions
	Outcome Outcome
	Err     error
}
