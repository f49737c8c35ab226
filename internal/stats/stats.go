// Package stats derives counts and the time span of a transcript.
package stats

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/theantichris/speakercut/internal/segment"
)

// NoTimeRange is reported when there are no segments.
const NoTimeRange = "--:--:-- - --:--:--"

// Stats holds the figures shown for the current transcript text.
type Stats struct {
	Characters int    `yaml:"characters"`
	Words      int    `yaml:"words"`
	TimeRange  string `yaml:"time_range"`
}

// Compute counts characters and words in text and takes the time range from
// the first and last segments by position, not by timecode value.
func Compute(text string, segments []segment.Segment) Stats {
	return Stats{
		Characters: uniseg.GraphemeClusterCount(text),
		Words:      len(strings.Fields(text)),
		TimeRange:  TimeRange(segments),
	}
}

// TimeRange formats "<first start> - <last end>" or NoTimeRange.
func TimeRange(segments []segment.Segment) string {
	if len(segments) == 0 {
		return NoTimeRange
	}

	return segments[0].StartTime + " - " + segments[len(segments)-1].EndTime
}
