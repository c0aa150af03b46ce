package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.store.EventRepo().ListLLMRequests(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, e := range records {
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
			fmt.Printf("%-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose, model, e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (profile, roadmap, justification)")

	llmCmd.AddCommand(llmListCmd)
}
