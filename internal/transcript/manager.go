// Package transcript owns the loaded transcript and its speaker filter.
package transcript

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/theantichris/speakercut/internal/filter"
	"github.com/theantichris/speakercut/internal/segment"
	"github.com/theantichris/speakercut/internal/stats"
)

// View is a consistent snapshot of the transcript after the last mutation.
type View struct {
	Segments     []segment.Segment
	Speakers     segment.Speakers
	Active       segment.Speakers
	FilteredText string
	Stats        stats.Stats
}

// Filtered reports whether some known speakers are hidden.
func (v View) Filtered() bool {
	return len(v.Active) < len(v.Speakers)
}

// Manager holds the transcript state. Mutations are serialized; readers get
// snapshots taken under the read lock.
type Manager struct {
	mu       sync.RWMutex
	original string
	segments []segment.Segment
	speakers segment.Speakers
	active   segment.Speakers
	// unparsed is set when the last load yielded no segments. The raw text is
	// then shown as is until the next filter event.
	unparsed bool
	logger   *log.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *log.Logger) *Manager {
	return &Manager{
		speakers: segment.Speakers{},
		active:   segment.Speakers{},
		logger:   logger,
	}
}

// Load replaces the transcript with content and activates every speaker.
func (m *Manager) Load(content string) {
	segments, speakers := segment.Parse(content)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.original = content
	m.segments = segments
	m.speakers = speakers
	m.active = filter.All(speakers)
	m.unparsed = len(segments) == 0

	m.logger.Debug("loaded transcript", "segments", len(segments), "speakers", len(speakers))
}

// ToggleSpeaker flips whether name is shown. Names that own no segment are
// ignored, though the call still ends the raw view of an unparsed load.
func (m *Manager) ToggleSpeaker(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unparsed = false

	if !m.speakers.Has(name) {
		m.logger.Debug("ignoring unknown speaker", "speaker", name)
		return
	}

	m.active = filter.Toggle(m.active, name)
	m.logger.Debug("toggled speaker", "speaker", name, "active", m.active.Has(name))
}

// IsActive reports whether name is currently shown.
func (m *Manager) IsActive(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active.Has(name)
}

// ClearFilters shows every speaker again.
func (m *Manager) ClearFilters() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = filter.All(m.speakers)
	m.unparsed = false
}

// Clear drops the transcript entirely.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.original = ""
	m.segments = nil
	m.speakers = segment.Speakers{}
	m.active = segment.Speakers{}
	m.unparsed = false

	m.logger.Debug("cleared transcript")
}

// SegmentCount returns how many segments belong to speaker.
func (m *Manager) SegmentCount(speaker string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, seg := range m.segments {
		if seg.Speaker == speaker {
			count++
		}
	}

	return count
}

// FilteredText renders the transcript for the active speakers.
func (m *Manager) FilteredText() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.render()
}

// render must be called with the lock held.
func (m *Manager) render() string {
	if m.unparsed {
		return m.original
	}

	return filter.Render(m.segments, m.speakers, m.active, m.original)
}

// Snapshot returns the current state with its derived text and stats.
func (m *Manager) Snapshot() View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	text := m.render()

	return View{
		Segments:     append([]segment.Segment(nil), m.segments...),
		Speakers:     m.speakers.Clone(),
		Active:       m.active.Clone(),
		FilteredText: text,
		Stats:        stats.Compute(text, m.segments),
	}
}
