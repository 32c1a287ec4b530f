package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jobalert/internal/assistant"
	"jobalert/internal/llm"
)

func newAskCmd() *cobra.Command {
	var (
		configPath    string
		interest      string
		balance       int
		showReasoning bool
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the AI assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			broker, _, err := buildBroker(ctx, configPath)
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			var uctx *llm.UserContext
			if interest != "" || balance != 0 {
				uctx = &llm.UserContext{Interest: interest, Balance: balance}
			}

			a := assistant.New(broker, nil)
			ans := a.Answer(ctx, question, uctx)
			if showReasoning && ans.Reasoning != "" {
				fmt.Println("--- reasoning ---")
				fmt.Println(ans.Reasoning)
				fmt.Println("--- answer ---")
			}
			fmt.Println(ans.Content)
			if ans.Model != "" {
				fmt.Printf("\n[model: %s, cached: %v]\n", ans.Model, ans.Cached)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	cmd.Flags().StringVar(&interest, "interest", "", "user's job category interest")
	cmd.Flags().IntVar(&balance, "balance", 0, "user's credit balance")
	cmd.Flags().BoolVar(&showReasoning, "reasoning", false, "print the model's reasoning text when present")
	return cmd
}
