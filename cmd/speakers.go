package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewSpeakersCmd creates a command that lists the speakers of a transcript.
func NewSpeakersCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakers <file>",
		Short: "List the speakers of a transcript.",
		Long:  "List every speaker found in a DaVinci Resolve transcript export together with the number of segments they own.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSpeakers(cmd, args[0], logger)
		},
	}

	return cmd
}

// listSpeakers prints one "name<TAB>segments" line per speaker.
func listSpeakers(cmd *cobra.Command, path string, logger *log.Logger) error {
	m, err := loadTranscript(cmd, path, logger)
	if err != nil {
		return err
	}

	view := m.Snapshot()
	logger.Info("Loaded transcript", "segments", len(view.Segments), "speakers", len(view.Speakers))

	out := cmd.OutOrStdout()
	for _, name := range view.Speakers.Sorted() {
		fmt.Fprintf(out, "%s\t%d\n", name, m.SegmentCount(name))
	}

	return nil
}
