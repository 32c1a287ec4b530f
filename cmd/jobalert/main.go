package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobalert/internal/assistant"
	"jobalert/internal/config"
	"jobalert/internal/llm"
	"jobalert/internal/llmclient"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "jobalert",
		Short:   "jobalert — AI assistant core for the job alert bot",
		Version: version,
	}

	root.AddCommand(
		newAskCmd(),
		newStatsCmd(),
		newCategoriesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildBroker wires provider clients and the broker from config. Only
// providers the configured cascade actually references get a client.
func buildBroker(ctx context.Context, configPath string) (*llm.Broker, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	providers := map[string]struct{}{}
	for _, d := range cfg.Descriptors() {
		providers[d.Provider] = struct{}{}
	}

	clients := map[string]llmclient.Client{}
	if _, ok := providers["openrouter"]; ok {
		cli, err := llmclient.NewOpenRouterClient(cfg.OpenRouterAPIKey)
		if err != nil {
			return nil, nil, err
		}
		clients["openrouter"] = cli
	}
	if _, ok := providers["gemini"]; ok {
		cli, err := llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, nil, err
		}
		clients["gemini"] = cli
	}

	opts := cfg.BrokerOptions()
	opts.SystemPrompt = assistant.SystemPrompt()
	broker, err := llm.NewBroker(clients, cfg.Descriptors(), opts)
	if err != nil {
		return nil, nil, err
	}
	return broker, cfg, nil
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the job categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range assistant.Categories {
				fmt.Printf("%-27s %s\n", c.Name, c.Description)
			}
			return nil
		},
	}
}
