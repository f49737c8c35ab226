package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theantichris/speakercut/internal/report"
	"github.com/theantichris/speakercut/internal/source"
)

// NewStatsCmd creates a command that prints the summary of a transcript.
func NewStatsCmd(logger *log.Logger) *cobra.Command {
	var sel *selection

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show speaker and word statistics.",
		Long:  "Show the speakers, character count, word count and time range of a transcript, optionally limited to some speakers.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadTranscript(cmd, args[0], logger)
			if err != nil {
				return err
			}

			sel.apply(m, logger)

			title := "stdin"
			if args[0] != source.Stdin {
				title = filepath.Base(args[0])
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), report.Summary(title, m.Snapshot()))
			return err
		},
	}

	sel = addSelectionFlags(cmd)

	return cmd
}
