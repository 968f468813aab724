package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Display the lifetime statistics of a profile and a per-mode summary
of its recorded games.

Examples:
  shadowpaws stats
  shadowpaws stats --profile alice`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements",
	Long:  `Display every achievement and whether the profile has unlocked it.`,
	Args:  cobra.NoArgs,
	Run:   runAchievements,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List stored profiles",
	Long:  `Shows every profile with saved progress, including SSH users.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func loadProfile(store *storage.Store) (string, *shadowpaws.Profile) {
	name := profileName()
	return name, shadowpaws.LoadProfile(storage.NewNamespace(store, name, nil))
}

func runStats(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	name, p := loadProfile(store)

	fmt.Printf("Statistics - %s\n", name)
	fmt.Println()
	for _, line := range p.Stats() {
		fmt.Printf("  %-16s %s\n", line.Label, line.Value)
	}

	stats, err := store.GetModeStats(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving mode stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-12s  %-5s  %-8s  %-8s  %-5s  %s\n", "Mode", "Games", "Best", "Average", "Level", "Last Played")
	fmt.Printf("  %-12s  %-5s  %-8s  %-8s  %-5s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		ms := stats[mode]
		title := mode
		if info, ok := registry.Info(mode); ok {
			title = info.Title
		}
		fmt.Printf("  %-12s  %-5d  %-8d  %-8.0f  %-5d  %s\n",
			title, ms.GamesCount, ms.HighScore, ms.AvgScore, ms.BestLevel,
			ms.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runAchievements(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	name, p := loadProfile(store)

	fmt.Printf("Achievements - %s (%d/%d)\n", name, p.Achievements.Len(), len(shadowpaws.Achievements))
	fmt.Println()
	for _, a := range shadowpaws.Achievements {
		mark := " "
		if p.Achievements.Has(a.Key) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s %-16s %s\n", mark, a.Icon, a.Name, a.Description)
	}
}

func runProfiles(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	profiles, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		return
	}

	for _, name := range profiles {
		p := shadowpaws.LoadProfile(storage.NewNamespace(store, name, nil))
		fmt.Printf("  %-16s  high %-8d  games %d\n", name, p.HighScore, p.TotalGames)
	}
}
