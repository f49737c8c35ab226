// Package report renders transcript summaries for the terminal and YAML dumps.
package report

import (
	"fmt"
	"strings"

	"github.com/theantichris/speakercut/internal/transcript"
)

// SpeakerCounts returns the number of segments per speaker.
func SpeakerCounts(view transcript.View) map[string]int {
	counts := make(map[string]int, len(view.Speakers))
	for _, seg := range view.Segments {
		counts[seg.Speaker]++
	}

	return counts
}

// Summary formats the speaker list and stats of a transcript view.
func Summary(title string, view transcript.View) string {
	var builder strings.Builder

	// Header
	builder.WriteString(strings.Repeat("=", 80))
	builder.WriteString("\n")

	if title != "" {
		builder.WriteString(title)
		builder.WriteString("\n")
	}

	builder.WriteString(fmt.Sprintf("Segments: %d\n", len(view.Segments)))

	if view.Filtered() {
		builder.WriteString(fmt.Sprintf("Filter: %d of %d speakers\n", len(view.Active), len(view.Speakers)))
	}

	builder.WriteString(strings.Repeat("=", 80))
	builder.WriteString("\n")

	// Speakers section
	builder.WriteString("\n## Speakers\n\n")
	if len(view.Speakers) > 0 {
		counts := SpeakerCounts(view)
		for _, name := range view.Speakers.Sorted() {
			mark := " "
			if view.Active.Has(name) {
				mark = "x"
			}
			builder.WriteString(fmt.Sprintf("[%s] %s (%d)\n", mark, name, counts[name]))
		}
	} else {
		builder.WriteString("(No speakers)\n")
	}

	// Stats section
	builder.WriteString("\n## Stats\n\n")
	builder.WriteString(fmt.Sprintf("Characters: %d\n", view.Stats.Characters))
	builder.WriteString(fmt.Sprintf("Words: %d\n", view.Stats.Words))
	builder.WriteString(fmt.Sprintf("Time range: %s\n", view.Stats.TimeRange))

	return builder.String()
}
