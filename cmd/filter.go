package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theantichris/speakercut/internal/export"
)

var (
	ErrFilterCmdInit = errors.New("failed to initialize the filter command")
	ErrFilterExport  = errors.New("failed to export transcript")
)

// now is replaced in tests.
var now = time.Now

// NewFilterCmd creates a new filter command and binds its flags.
func NewFilterCmd(logger *log.Logger) *cobra.Command {
	var sel *selection
	var exportFile bool

	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "Rebuild a transcript for selected speakers.",
		Long: `Rebuild a DaVinci Resolve transcript keeping only the selected speakers.

With no --speaker or --exclude flags the original text is printed unchanged.
Otherwise the original lines of every matching segment are printed in document
order, separated by blank lines. Use --export to write the result to a file named
<prefix>_<timestamp>_full.txt or <prefix>_<timestamp>_filtered_<N>speakers.txt.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
				return fmt.Errorf("%w: %s", ErrFilterCmdInit, err)
			}
			if err := viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix")); err != nil {
				return fmt.Errorf("%w: %s", ErrFilterCmdInit, err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args[0], sel, exportFile, logger)
		},
	}

	sel = addSelectionFlags(cmd)
	cmd.Flags().BoolVarP(&exportFile, "export", "e", false, "Write the result to a file instead of stdout")

	var output string
	cmd.Flags().StringVar(&output, "output", ".", "Output directory for exported files")

	var prefix string
	cmd.Flags().StringVar(&prefix, "prefix", export.DefaultPrefix, "Filename prefix for exported files")

	return cmd
}

// runFilter loads the transcript, applies the speaker selection, and prints or exports the result.
func runFilter(cmd *cobra.Command, path string, sel *selection, exportFile bool, logger *log.Logger) error {
	m, err := loadTranscript(cmd, path, logger)
	if err != nil {
		return err
	}

	sel.apply(m, logger)
	view := m.Snapshot()

	logger.Info("Filtered transcript",
		"active", len(view.Active),
		"speakers", len(view.Speakers),
		"words", view.Stats.Words)

	if !exportFile {
		_, err := fmt.Fprint(cmd.OutOrStdout(), view.FilteredText)
		return err
	}

	outputDir, err := resolvePath(viper.GetString("output"))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFilterExport, err)
	}
	if outputDir == "" {
		outputDir = "."
	}

	filename := export.Filename(viper.GetString("prefix"), now(), len(view.Active), len(view.Speakers))

	logger.Info("Writing transcript", "output", outputDir, "file", filename)
	filePath, err := export.Write(appFS, outputDir, filename, view.FilteredText)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFilterExport, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Transcript exported to %s\n", filePath)
	logger.Info("Export completed successfully", "file", filePath)

	return nil
}
