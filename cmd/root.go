package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Career journey tracker with automatic reroute suggestions",
	Long: "Pathwise tracks a learner's progress toward a target role, watches for\n" +
		"signals that the plan has stopped working (repeated blockers, stalling\n" +
		"motivation) and proposes ranked alternative roles when it has.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(abandonCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
