package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/journey"
)

var statusCmd = &cobra.Command{
	Use:   "status [journey-id]",
	Short: "Show journey status",
	Long:  "Without an ID, lists all journeys. With an ID, shows the full plan, blockers and history.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			return listJourneys(cmd, a)
		}

		journeyID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid journey ID %q: %w", args[0], err)
		}
		j, err := a.service.Get(cmd.Context(), journeyID)
		if err != nil {
			return err
		}
		printJourney(j)
		return nil
	},
}

func listJourneys(cmd *cobra.Command, a *app) error {
	summaries, err := a.service.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No journeys yet. Start one with: pathwise new <target-role>")
		return nil
	}

	fmt.Printf("%-36s  %-24s  %-10s  %s\n", "ID", "Target Role", "Status", "Updated")
	fmt.Println(strings.Repeat("─", 90))
	for _, s := range summaries {
		fmt.Printf("%-36s  %-24s  %-10s  %s\n",
			s.ID, s.TargetRole, s.Status, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printJourney(j *journey.Journey) {
	fmt.Printf("Journey:    %s\n", j.ID)
	fmt.Printf("Target:     %s", j.TargetRole)
	if j.DesiredRole != j.TargetRole {
		fmt.Printf(" (originally %s)", j.DesiredRole)
	}
	fmt.Println()
	fmt.Printf("Status:     %s\n", j.Status)
	fmt.Printf("Progress:   %.0f%% (%d/%d steps)\n", j.ProgressPercent(), j.CompletedSteps, j.TotalSteps)
	fmt.Printf("Motivation: %.1f\n", j.Motivation)
	if j.RerouteCount > 0 {
		fmt.Printf("Reroutes:   %d\n", j.RerouteCount)
	}

	fmt.Println("\nPlan:")
	for _, step := range j.Steps {
		fmt.Printf("  %s %2d. %s", stepMark(step.Status), step.Number, step.Title)
		if step.HoursSpent > 0 {
			fmt.Printf(" (%.0fh)", step.HoursSpent)
		}
		fmt.Println()
	}

	if blockers := j.ActiveBlockers(); len(blockers) > 0 {
		fmt.Println("\nActive blockers:")
		for _, b := range blockers {
			fmt.Printf("  step %d: %s (attempt %d)\n", b.StepNumber, b.Reason, b.Attempts)
		}
	}

	if skills := j.SkillNames(); len(skills) > 0 {
		fmt.Printf("\nSkills earned: %s\n", strings.Join(skills, ", "))
	}

	if pending := j.PendingReevaluation(); pending != nil {
		fmt.Printf("\n⚠ Pending reevaluation (%s). Decide with: pathwise decide %s\n", pending.Trigger, j.ID)
	}
}

func stepMark(s journey.StepStatus) string {
	switch s {
	case journey.StepCompleted:
		return "✓"
	case journey.StepInProgress:
		return "▸"
	case journey.StepBlocked:
		return "✗"
	default:
		return "·"
	}
}
