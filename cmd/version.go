package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepdrill/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("prepdrill", version)

		// Best-effort update check; offline is not an error.
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(5 * time.Second))
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return
		}
		if res.UpdateAvailable {
			fmt.Printf("Update available: %s (run `prepdrill update`)\n", res.LatestVersion)
		}
	},
}
