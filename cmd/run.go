package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/prepdrill/internal/app"
	"github.com/abhisek/prepdrill/internal/config"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/screens/home"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads configuration, opens the store, builds the LLM provider,
// and launches the TUI at the home menu.
func runApp(cmd *cobra.Command) error {
	return runAppMode(cmd, "")
}

// runAppMode launches the TUI directly into one feature.
func runAppMode(cmd *cobra.Command, mode string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := home.Deps{
		Store:  st,
		Config: cfg,
	}

	llmCfg := cfg.LLM
	if err := llmCfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		}
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Interview, practice, and coding features will be unavailable.")
	} else {
		deps.Provider = provider
	}

	if mode != "" && deps.Provider == nil {
		return fmt.Errorf("%s mode needs an LLM provider; set PREPDRILL_LLM_PROVIDER and an API key", mode)
	}

	return app.Run(deps, mode)
}
