package report

import (
	"fmt"

	"github.com/theantichris/speakercut/internal/segment"
	"github.com/theantichris/speakercut/internal/stats"
	"github.com/theantichris/speakercut/internal/transcript"
	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a transcript view.
type Document struct {
	Speakers []string          `yaml:"speakers"`
	Active   []string          `yaml:"active"`
	Stats    stats.Stats       `yaml:"stats"`
	Segments []segment.Segment `yaml:"segments"`
}

// ToYAML marshals the speakers, stats and active segments of a view.
// Segments of hidden speakers are left out.
func ToYAML(view transcript.View) (string, error) {
	doc := Document{
		Speakers: view.Speakers.Sorted(),
		Active:   view.Active.Sorted(),
		Stats:    view.Stats,
		Segments: []segment.Segment{},
	}

	for _, seg := range view.Segments {
		if view.Active.Has(seg.Speaker) {
			doc.Segments = append(doc.Segments, seg)
		}
	}

	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transcript: %w", err)
	}

	return string(yamlBytes), nil
}
