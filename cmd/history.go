package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <journey-id>",
	Short: "Show a journey's event history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journeyID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid journey ID %q: %w", args[0], err)
		}
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		events, err := a.store.EventRepo().ListProgress(cmd.Context(), journeyID, limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events recorded for this journey.")
			return nil
		}

		fmt.Printf("%-19s  %-18s  %-5s  %s\n", "Timestamp", "Event", "Step", "Detail")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range events {
			step := ""
			if e.StepNumber > 0 {
				step = fmt.Sprintf("%d", e.StepNumber)
			}
			fmt.Printf("%-19s  %-18s  %-5s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Kind, step, e.Detail)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 50, "Number of events to show")
}
