package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause <journey-id>",
	Short: "Pause an active journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle(cmd, args[0], "paused", func(a *app, id uuid.UUID) error {
			return a.service.Pause(cmd.Context(), id)
		})
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <journey-id>",
	Short: "Resume a paused journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle(cmd, args[0], "resumed", func(a *app, id uuid.UUID) error {
			return a.service.Resume(cmd.Context(), id)
		})
	},
}

var abandonCmd = &cobra.Command{
	Use:   "abandon <journey-id>",
	Short: "Abandon a journey (the record is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle(cmd, args[0], "abandoned", func(a *app, id uuid.UUID) error {
			return a.service.Abandon(cmd.Context(), id)
		})
	},
}

func lifecycle(cmd *cobra.Command, rawID, verb string, fn func(*app, uuid.UUID) error) error {
	journeyID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid journey ID %q: %w", rawID, err)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(a, journeyID); err != nil {
		return err
	}
	fmt.Printf("Journey %s %s.\n", journeyID, verb)
	return nil
}
