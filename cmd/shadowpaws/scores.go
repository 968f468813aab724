package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

const topScoresLimit = 10

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show top scores",
	Long: `Display the top 10 scores of a profile, for one mode or for every mode.

Examples:
  shadowpaws scores
  shadowpaws scores story
  shadowpaws scores --profile alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	var modes []registry.ModeInfo
	if len(args) == 1 {
		info, ok := registry.Info(strings.ToLower(args[0]))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'shadowpaws modes' to see available modes.")
			os.Exit(1)
		}
		modes = append(modes, info)
	} else {
		for _, info := range registry.List() {
			if !info.Hidden {
				modes = append(modes, info)
			}
		}
	}

	store := mustOpenStore()
	defer store.Close()

	profile := profileName()
	for i, info := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printTopScores(store, profile, info); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
	}

	// The profile's high score spans every mode
	fmt.Println()
	p := shadowpaws.LoadProfile(storage.NewNamespace(store, profile, nil))
	fmt.Printf("Best: %d\n", p.HighScore)
}

func printTopScores(store *storage.Store, profile string, info registry.ModeInfo) error {
	scores, err := store.TopScores(profile, info.ID, topScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Top Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Printf("  Play 'shadowpaws play %s' to set the first one!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Combo", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.MaxCombo, dateStr)
	}
	return nil
}
