package cmd

import (
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Start a timed mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppMode(cmd, "interview")
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an untimed-feel practice drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppMode(cmd, "practice")
	},
}

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Start a coding challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppMode(cmd, "code")
	},
}
