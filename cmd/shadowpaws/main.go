// shadowpaws is a terminal arcade game: guide a black cat through the
// night, catch lucky charms and dodge bad luck.
//
// Usage:
//
//	shadowpaws                  - Open the main menu
//	shadowpaws play [mode]      - Play a mode directly (endless, story, challenge, tutorial)
//	shadowpaws modes            - List game modes
//	shadowpaws scores [mode]    - Show top scores
//	shadowpaws stats            - Show lifetime statistics
//	shadowpaws achievements     - Show achievements
//	shadowpaws serve            - Host sessions over SSH
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.shadowpaws/shadowpaws.db)
//	--profile <name>   - Player profile (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadowpaws",
	Short: "Shadow Paws - a lucky black cat arcade game for your terminal",
	Long: `Shadow Paws is a terminal arcade game. Guide the shadow cat through the
night, catch lucky charms and dodge bad luck. Build combos, unlock
achievements and take on the daily challenge.

Available commands:
  play          - Play a mode directly
  modes         - Show all game modes
  scores        - View top scores
  stats         - View lifetime statistics
  achievements  - View achievements
  serve         - Start SSH server for remote play

Examples:
  shadowpaws
  shadowpaws play story
  shadowpaws play --difficulty hard
  shadowpaws serve --ssh :2222
  shadowpaws scores endless`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runInteractive(cmd, "")
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shadowpaws/shadowpaws.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Player profile name (default: local)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	addGameFlags(rootCmd)
	addAudioFlag(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(serveCmd)
}
