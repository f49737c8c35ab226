// Package filter rebuilds transcript text restricted to a subset of speakers.
package filter

import (
	"strings"

	"github.com/theantichris/speakercut/internal/segment"
)

// Render returns the transcript text for the active speakers.
//
// An empty active set renders nothing. When every known speaker is active the
// original text is returned untouched, including any lines that belong to no
// segment. Otherwise the original lines of each matching segment are emitted in
// document order, segments separated by a blank line.
func Render(segments []segment.Segment, speakers, active segment.Speakers, original string) string {
	if len(active) == 0 {
		return ""
	}

	if len(active) == len(speakers) {
		return original
	}

	blocks := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !active.Has(seg.Speaker) {
			continue
		}
		blocks = append(blocks, strings.Join(seg.OriginalLines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// Toggle returns a copy of active with the membership of name flipped.
func Toggle(active segment.Speakers, name string) segment.Speakers {
	next := active.Clone()
	if next.Has(name) {
		next.Remove(name)
	} else {
		next.Add(name)
	}

	return next
}

// All returns the active set that shows every speaker.
func All(speakers segment.Speakers) segment.Speakers {
	return speakers.Clone()
}
