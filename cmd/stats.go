package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/prepdrill/internal/config"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		attempts, err := s.Attempts().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-9s  %-8s  %5s  %6s  %s\n",
			"ID", "When", "Mode", "Level", "Score", "Time", "Skill")
		fmt.Println(strings.Repeat("─", 72))

		for _, a := range attempts {
			fmt.Printf("%-5d  %-16s  %-9s  %-8s  %5.0f  %3d:%02d  %s\n",
				a.ID,
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.AssessmentType,
				a.Difficulty,
				a.Score,
				a.TimeTakenSeconds/60, a.TimeTakenSeconds%60,
				a.SkillArea,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
