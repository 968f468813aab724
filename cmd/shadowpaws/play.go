package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shadow-paws/internal/audio"
	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/platform/tui"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start a session in the given mode, skipping the main menu.
Without a mode, Endless is played.

Controls:
  Arrows/WASD  - Move the cat
  Mouse        - The cat follows the pointer
  1/2/3, Q/E/R - Pounce, Night Vision, Nine Lives
  P            - Pause
  Esc          - Back to the menu
  Ctrl+C       - Quit

Difficulty options:
  easy   - Slower fall, fewer bad items
  normal - Default tuning
  hard   - Faster fall, more bad items

Examples:
  shadowpaws play
  shadowpaws play story
  shadowpaws play challenge --seed 42
  shadowpaws play endless --difficulty hard --no-audio
  shadowpaws play --config ./my-night.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := "endless"
		if len(args) == 1 {
			mode = strings.ToLower(args[0])
		}
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'shadowpaws modes' to see available modes.")
			os.Exit(1)
		}
		runInteractive(cmd, mode)
	},
}

func init() {
	addGameFlags(playCmd)
	addAudioFlag(playCmd)
}

// runInteractive runs the terminal UI. An empty mode opens the main menu.
func runInteractive(_ *cobra.Command, mode string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The UI owns the terminal, so logs go to a file
	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	profile := profileName()

	// Open storage; without it the game still runs but forgets everything
	var backend storage.Backend
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
		logger.Warn("profile database unavailable", "path", flagDBPath, "err", err)
		backend = storage.NewMemory()
	} else {
		defer store.Close()
		backend = store
	}

	var tones core.ToneSink = audio.Silent{}
	if !flagNoAudio {
		if speaker, spkErr := audio.OpenSpeaker(); spkErr != nil {
			logger.Warn("audio unavailable", "err", spkErr)
		} else {
			tones = speaker
		}
	}

	opts := tui.Options{
		Env: registry.Env{
			Config: gameCfg,
			Store:  storage.NewNamespace(backend, profile, logger),
			Tones:  tones,
			Logger: logger,
		},
		Profile: profile,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		StartMode: mode,
	}
	if store != nil {
		opts.History = store
	}

	logger.Debug("starting", "mode", mode, "profile", profile, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
