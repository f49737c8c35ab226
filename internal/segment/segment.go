// Package segment splits bracketed-timecode transcript exports into speaker turns.
package segment

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// markerRegex matches a trimmed marker line: [HH:MM:SS:FF - HH:MM:SS:FF]
	markerRegex = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2}:\d{2})\s*-\s*(\d{2}:\d{2}:\d{2}:\d{2})\]$`)

	// lineBreakRegex treats CRLF as one break, plus every single-character
	// line or paragraph separator (LF, VT, FF, CR, NEL, LS, PS).
	lineBreakRegex = regexp.MustCompile(`\r\n|[\n\v\f\r\x{0085}\x{2028}\x{2029}]`)
)

// Segment represents one speaker turn in a transcript.
type Segment struct {
	ID            string   `yaml:"id"`
	Timecode      string   `yaml:"timecode"`
	StartTime     string   `yaml:"start"`
	EndTime       string   `yaml:"end"`
	Speaker       string   `yaml:"speaker"`
	Text          string   `yaml:"text"`
	OriginalLines []string `yaml:"lines"`
}

// Valid reports whether the segment collected both a speaker and some text.
func (s Segment) Valid() bool {
	return s.Speaker != "" && s.Text != ""
}

// IsMarker reports whether line, once trimmed, is a timecode marker.
func IsMarker(line string) bool {
	return markerRegex.MatchString(strings.TrimSpace(line))
}

// state is the scanner between two lines. A nil partial means no segment is
// being accumulated.
type state struct {
	partial  *Segment
	segments []Segment
}

// finalize closes the partial segment, keeping it only when it is valid.
func (s state) finalize() state {
	if s.partial != nil && s.partial.Valid() {
		s.segments = append(s.segments, *s.partial)
	}
	s.partial = nil

	return s
}

// step consumes one physical line.
func (s state) step(line string) state {
	trimmed := strings.TrimSpace(line)

	if match := markerRegex.FindStringSubmatch(trimmed); match != nil {
		s = s.finalize()
		s.partial = &Segment{
			ID:            uuid.NewString(),
			Timecode:      trimmed,
			StartTime:     match[1],
			EndTime:       match[2],
			OriginalLines: []string{trimmed},
		}

		return s
	}

	// Lines before the first marker have nowhere to go.
	if s.partial == nil {
		return s
	}

	s.partial.OriginalLines = append(s.partial.OriginalLines, line)

	switch {
	case trimmed == "":
	case s.partial.Speaker == "":
		s.partial.Speaker = trimmed
	case s.partial.Text == "":
		s.partial.Text = trimmed
	default:
		s.partial.Text += " " + trimmed
	}

	return s
}

// Parse scans raw transcript text and returns its segments in document order
// together with the set of speakers that own at least one segment. Incomplete
// fragments are dropped silently; Parse never fails.
func Parse(raw string) ([]Segment, Speakers) {
	speakers := Speakers{}

	if strings.TrimSpace(raw) == "" {
		return nil, speakers
	}

	var s state
	for _, line := range lineBreakRegex.Split(raw, -1) {
		s = s.step(line)
	}
	s = s.finalize()

	for _, seg := range s.segments {
		speakers.Add(seg.Speaker)
	}

	return s.segments, speakers
}
