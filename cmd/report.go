package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/guidance"
	"github.com/abhisek/pathwise/internal/journey"
)

var reportCmd = &cobra.Command{
	Use:   "report <journey-id> <step-number>",
	Short: "Report progress on a step",
	Long: "Report starting, completing or getting stuck on a step. Completing a step\n" +
		"banks its skills; reporting a blocker may trigger a plan reevaluation.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		journeyID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid journey ID %q: %w", args[0], err)
		}
		var stepNumber int
		if _, err := fmt.Sscanf(args[1], "%d", &stepNumber); err != nil {
			return fmt.Errorf("invalid step number %q: %w", args[1], err)
		}

		update, err := updateFromFlags(cmd, stepNumber)
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.service.ReportProgress(cmd.Context(), journeyID, update)
		if err != nil {
			return err
		}

		fmt.Printf("Step %d: %s. Progress %.0f%% (%d/%d steps), motivation %.1f\n",
			res.Step.Number, res.Step.Status,
			res.ProgressPercent, res.Journey.CompletedSteps, res.Journey.TotalSteps,
			res.Journey.Motivation)

		if res.Journey.Status == journey.StatusCompleted {
			fmt.Printf("\nJourney complete. You are ready for %s.\n", res.Journey.TargetRole)
		}
		if res.Reevaluation != nil {
			printReevaluation(res.Journey, res.Reevaluation)
		}
		return nil
	},
}

// updateFromFlags maps exactly one of --start/--done/--blocked to an update.
func updateFromFlags(cmd *cobra.Command, stepNumber int) (guidance.ProgressUpdate, error) {
	start, _ := cmd.Flags().GetBool("start")
	done, _ := cmd.Flags().GetBool("done")
	blocked, _ := cmd.Flags().GetString("blocked")
	hours, _ := cmd.Flags().GetFloat64("hours")

	update := guidance.ProgressUpdate{StepNumber: stepNumber, HoursSpent: hours}
	set := 0
	if start {
		update.Status = journey.StepInProgress
		set++
	}
	if done {
		update.Status = journey.StepCompleted
		set++
	}
	if blocked != "" {
		update.Status = journey.StepBlocked
		update.BlockerReason = blocked
		set++
	}
	if set != 1 {
		return update, fmt.Errorf("specify exactly one of --start, --done or --blocked")
	}
	return update, nil
}

func printReevaluation(j *journey.Journey, r *journey.Reevaluation) {
	fmt.Printf("\n⚠ Plan reevaluation triggered (%s, severity %s)\n", r.Trigger, r.Severity)

	if r.Decision == journey.DecisionContinue {
		fmt.Println("No alternative roles available right now; staying the course.")
		return
	}

	fmt.Println("\nAlternatives worth considering:")
	for i, alt := range r.Alternatives {
		fmt.Printf("\n%d. %s (score %.2f)\n", i+1, alt.Role, alt.Score)
		fmt.Printf("   Jobs: %d  Skill match: %.0f%%  Entry barrier: %.0f%%\n",
			alt.ActiveJobs, alt.SkillOverlap*100, alt.EntryBarrier*100)
		if alt.SalaryRange != "" {
			fmt.Printf("   Salary: %s\n", alt.SalaryRange)
		}
		if alt.Justification != "" {
			fmt.Printf("   %s\n", alt.Justification)
		}
	}
	fmt.Printf("\nDecide with:\n  pathwise decide %s --continue\n  pathwise decide %s --switch <role>\n", j.ID, j.ID)
}

func init() {
	reportCmd.Flags().Bool("start", false, "Mark the step started")
	reportCmd.Flags().Bool("done", false, "Mark the step completed")
	reportCmd.Flags().StringP("blocked", "b", "", "Report a blocker with the given reason")
	reportCmd.Flags().Float64("hours", 0, "Hours spent since the last report")
}
