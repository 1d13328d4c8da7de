package cmd

import (
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepdrill",
	Short: "Timed, adaptive interview preparation in the terminal",
	Long:  "Prepdrill — terminal app for mock interviews, practice drills, and coding challenges, graded by an LLM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides configured path)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then config/env, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
