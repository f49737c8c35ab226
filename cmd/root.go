// Package cmd implements the CLI commands for the speakercut application.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theantichris/speakercut/internal/export"
)

var appFS = afero.NewOsFs()

var ErrRootCmd = errors.New("failed to initialize the root command")

// NewRootCmd creates a new root command with the provided logger and binds flags.
func NewRootCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakercut",
		Short: "An application for filtering DaVinci Resolve transcripts by speaker.",
		Long:  "An application for splitting DaVinci Resolve transcript exports into speaker segments and rebuilding them for a subset of speakers.",
	}

	var configFile string
	var debug bool

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.speakercut.toml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	// Bound here rather than in a pre-run hook so initConfig sees --config.
	cobra.CheckErr(bindRootFlags(cmd))

	cmd.AddCommand(NewSpeakersCmd(logger))
	cmd.AddCommand(NewStatsCmd(logger))
	cmd.AddCommand(NewFilterCmd(logger))
	cmd.AddCommand(NewSegmentsCmd(logger))

	return cmd
}

// bindRootFlags binds the persistent config and debug flags to viper.
func bindRootFlags(cmd *cobra.Command) error {
	for _, name := range []string{"config", "debug"} {
		if err := viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("%w: %s", ErrRootCmd, err)
		}
	}

	return nil
}

// Execute creates the logger, initializes configuration, and returns the root command.
func Execute() *cobra.Command {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})

	cobra.OnInitialize(func() {
		initConfig(logger)
	})

	cmd := NewRootCmd(logger)

	return cmd
}

// initConfig loads env variables and the config file, then updates the logger level if debug mode is enabled.
func initConfig(logger *log.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, using environment variables")
	} else {
		logger.Debug(".env file loaded successfully")
	}

	configFile := viper.GetString("config")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".speakercut")
		viper.SetConfigType("toml")
	}

	viper.SetDefault("prefix", export.DefaultPrefix)
	viper.SetDefault("output", ".")

	viper.AutomaticEnv()
	_ = viper.BindEnv("debug", "DEBUG_MODE")
	_ = viper.BindEnv("prefix", "EXPORT_PREFIX")
	_ = viper.BindEnv("output", "EXPORT_OUTPUT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug("config file not found")
		} else {
			logger.Error("error loading config file", "error", err)
		}
	} else {
		logger.Debug("using config file", "file", viper.ConfigFileUsed())
	}

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
}
