package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/prepdrill/internal/config"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider status and request log",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		llmCfg := cfg.LLM
		if err := llmCfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				llmCfg = discovered
				fmt.Println("(provider discovered from standard API key env vars)")
			} else {
				fmt.Println("No LLM provider configured.")
				fmt.Println(err)
				return nil
			}
		}

		fmt.Printf("Provider:  %s\n", llmCfg.Provider)
		switch llmCfg.Provider {
		case "anthropic":
			fmt.Printf("Model:     %s\n", llmCfg.Anthropic.Model)
		case "openai":
			fmt.Printf("Model:     %s\n", llmCfg.OpenAI.Model)
			if llmCfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", llmCfg.OpenAI.BaseURL)
			}
		case "gemini":
			fmt.Printf("Model:     %s\n", llmCfg.Gemini.Model)
		}
		fmt.Printf("Rate:      %d requests/minute\n", llmCfg.RequestsPerMinute)
		fmt.Printf("Retries:   %d attempts\n", llmCfg.Retry.MaxAttempts)
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

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

		events, err := s.Events().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-16s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-16s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-gen, interview-eval, code-eval)")

	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmListCmd)
}
