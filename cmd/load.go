package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theantichris/speakercut/internal/segment"
	"github.com/theantichris/speakercut/internal/source"
	"github.com/theantichris/speakercut/internal/transcript"
)

// ErrLoadFailed is used when the transcript file cannot be loaded.
var ErrLoadFailed = errors.New("failed to load transcript")

// selection holds the speaker filter flags shared by several commands.
type selection struct {
	only    []string
	exclude []string
}

// addSelectionFlags registers --speaker and --exclude on cmd.
func addSelectionFlags(cmd *cobra.Command) *selection {
	sel := &selection{}
	cmd.Flags().StringSliceVarP(&sel.only, "speaker", "s", nil, "Only keep these speakers (repeatable)")
	cmd.Flags().StringSliceVarP(&sel.exclude, "exclude", "x", nil, "Hide these speakers (repeatable)")

	return sel
}

// apply toggles speakers off in m until only the selected ones remain active.
func (sel *selection) apply(m *transcript.Manager, logger *log.Logger) {
	speakers := m.Snapshot().Speakers

	if len(sel.only) > 0 {
		keep := segment.NewSpeakers(sel.only...)
		for _, name := range keep.Sorted() {
			if !speakers.Has(name) {
				logger.Warn("speaker not found in transcript", "speaker", name)
			}
		}

		for _, name := range speakers.Sorted() {
			if !keep.Has(name) {
				m.ToggleSpeaker(name)
			}
		}
	}

	for _, name := range sel.exclude {
		if !speakers.Has(name) {
			logger.Warn("speaker not found in transcript", "speaker", name)
			continue
		}

		if m.IsActive(name) {
			m.ToggleSpeaker(name)
		}
	}
}

// loadTranscript reads the file at path (or stdin for "-") into a new manager.
func loadTranscript(cmd *cobra.Command, path string, logger *log.Logger) (*transcript.Manager, error) {
	if path != source.Stdin {
		resolved, err := resolvePath(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoadFailed, err)
		}
		path = resolved
	}

	logger.Info("Reading transcript", "file", path)
	content, err := source.Read(appFS, path, cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, err)
	}

	m := transcript.NewManager(logger)
	m.Load(content)

	return m, nil
}
