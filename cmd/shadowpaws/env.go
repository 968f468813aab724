package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoAudio    bool
)

// addGameFlags registers the tuning flags of commands that run the game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// addAudioFlag registers --no-audio for commands that play locally.
func addAudioFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound for this run")
}

// newLogger builds the CLI logger. Debug level with --verbose.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shadowpaws",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.shadowpaws/shadowpaws.log for the interactive
// commands, which own the terminal. The caller closes the file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".shadowpaws")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "shadowpaws.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// profileName returns the selected profile.
func profileName() string {
	if flagProfile == "" {
		return storage.DefaultProfile
	}
	return flagProfile
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	return store
}
