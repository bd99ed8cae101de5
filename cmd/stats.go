package cmd

import (
	"fmt"

	"github.com/arjunm/dsamaster/internal/progress"
	"github.com/arjunm/dsamaster/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.StatsRepo().Load()
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Total points:     %d\n", stats.TotalPoints)
		fmt.Printf("Correct answers:  %d\n", stats.CorrectAnswers)
		fmt.Printf("Current streak:   %d\n", stats.Streak)
		fmt.Printf("Level:            %d (%d/%d XP to next)\n",
			stats.Level, stats.LevelProgress(), progress.ExperiencePerLevel)

		recent, err := st.EventRepo().RecentSessions(cmd.Context(), 10)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent quizzes:")
		for _, rec := range recent {
			fmt.Printf("  %s  %d/%d correct  %d pts",
				rec.Timestamp.Format("2006-01-02 15:04"),
				rec.Correct, rec.Questions, rec.Points)
			if rec.StreakBonus > 0 {
				fmt.Printf("  (+%d bonus)", rec.StreakBonus)
			}
			fmt.Println()
		}
		return nil
	},
}
