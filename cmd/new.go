package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/guidance"
)

var newCmd = &cobra.Command{
	Use:   "new <target-role>",
	Short: "Start a journey toward a target role",
	Long: "Analyzes your background, authors a step-by-step roadmap for the target\n" +
		"role and starts tracking progress against it.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intake, _ := cmd.Flags().GetString("intake")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		j, err := a.service.CreateJourney(cmd.Context(), guidance.CreateRequest{
			TargetRole: strings.Join(args, " "),
			Intake:     intake,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Journey %s created: %s (%d steps)\n\n", j.ID, j.TargetRole, j.TotalSteps)
		for _, step := range j.Steps {
			fmt.Printf("  %2d. %s (~%.0fh)\n", step.Number, step.Title, step.EstimatedHours)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringP("intake", "i", "", "Your background: experience, skills, interests")
}
