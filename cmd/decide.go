package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var decideCmd = &cobra.Command{
	Use:   "decide <journey-id>",
	Short: "Decide a pending plan reevaluation",
	Long: "Answer an open reevaluation: --continue keeps the current plan,\n" +
		"--switch <role> reroutes to one of the proposed alternatives. Skills\n" +
		"already earned carry over to the new plan.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journeyID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid journey ID %q: %w", args[0], err)
		}
		keep, _ := cmd.Flags().GetBool("continue")
		role, _ := cmd.Flags().GetString("switch")
		if keep == (role != "") {
			return fmt.Errorf("specify exactly one of --continue or --switch <role>")
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		j, err := a.service.Get(ctx, journeyID)
		if err != nil {
			return err
		}
		pending := j.PendingReevaluation()
		if pending == nil {
			return fmt.Errorf("journey %s has no pending reevaluation", journeyID)
		}

		if keep {
			if err := a.service.Continue(ctx, journeyID, pending.ID); err != nil {
				return err
			}
			fmt.Printf("Staying the course toward %s.\n", j.TargetRole)
			return nil
		}

		res, err := a.service.Reroute(ctx, journeyID, pending.ID, role)
		if err != nil {
			return err
		}

		fmt.Printf("Rerouted: %s -> %s\n", res.Record.FromRole, res.Record.ToRole)
		if len(res.RetainedSkills) > 0 {
			fmt.Printf("Carried over %d skills: %v\n", len(res.RetainedSkills), res.RetainedSkills)
		}
		fmt.Printf("\nNew plan (%d steps):\n", len(res.NewPlan))
		for _, step := range res.NewPlan {
			fmt.Printf("  %2d. %s (~%.0fh)\n", step.Number, step.Title, step.EstimatedHours)
		}
		return nil
	},
}

func init() {
	decideCmd.Flags().Bool("continue", false, "Keep the current plan")
	decideCmd.Flags().String("switch", "", "Switch to this alternative role")
}
