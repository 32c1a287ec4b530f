package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobalert/internal/assistant"
)

func newStatsCmd() *cobra.Command {
	var (
		configPath string
		formatted  bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show AI model usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			broker, _, err := buildBroker(ctx, configPath)
			if err != nil {
				return err
			}

			report := broker.Stats()
			if formatted {
				fmt.Println(assistant.FormatModelStats(report))
				return nil
			}

			fmt.Printf("day %s: requests=%d cache_hits=%d model_switches=%d\n",
				report.Daily.Date, report.Daily.Requests, report.Daily.CacheHits, report.Daily.ModelSwitches)
			if len(report.Models) == 0 {
				fmt.Println("no model usage recorded")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tATTEMPTS\tSUCCESSES")
			for _, m := range report.Models {
				fmt.Fprintf(w, "%s\t%d\t%d\n", m.Model, m.Attempts, m.Successes)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	cmd.Flags().BoolVar(&formatted, "chat", false, "render as the bot's chat reply")
	return cmd
}
