package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theantichris/speakercut/internal/report"
)

// ErrSegmentsDump is used when the segment dump cannot be produced.
var ErrSegmentsDump = errors.New("failed to dump segments")

// NewSegmentsCmd creates a command that dumps parsed segments as YAML.
func NewSegmentsCmd(logger *log.Logger) *cobra.Command {
	var sel *selection

	cmd := &cobra.Command{
		Use:   "segments <file>",
		Short: "Dump parsed segments as YAML.",
		Long:  "Parse a transcript and print its speakers, stats and the segments of the selected speakers as YAML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadTranscript(cmd, args[0], logger)
			if err != nil {
				return err
			}

			sel.apply(m, logger)

			out, err := report.ToYAML(m.Snapshot())
			if err != nil {
				return fmt.Errorf("%w: %s", ErrSegmentsDump, err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	sel = addSelectionFlags(cmd)

	return cmd
}
