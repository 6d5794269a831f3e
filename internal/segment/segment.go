// Package segment computes the fixed-length window plan that covers an
// audio track from 0 to its duration with no gaps or overlaps.
package segment

import "math"

// DefaultLengthSeconds is the nominal window length.
const DefaultLengthSeconds = 5.0

// Window is one planned audio slice. Start is an exact multiple of the
// plan's window length; the final window may be shorter than Length of
// its predecessors when the duration is not an exact multiple.
type Window struct {
	Start  float64
	Length float64
}

// Plan returns the ordered windows covering [0, duration). A zero or
// negative duration yields an empty plan. A non-positive length falls
// back to DefaultLengthSeconds.
func Plan(duration, length float64) []Window {
	if length <= 0 {
		length = DefaultLengthSeconds
	}
	if duration <= 0 {
		return nil
	}

	count := int(math.Ceil(duration / length))
	windows := make([]Window, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * length
		l := length
		if start+l > duration {
			l = duration - start
		}
		windows = append(windows, Window{Start: start, Length: l})
	}
	return windows
}
