package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"palabritas/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "palabritas",
	Short: "Spanish-English vocabulary game for kids",
	Long:  "Palabritas — a terminal game that teaches children English words from Spanish, with flashcards, quizzes and translation rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for save files (overrides PALABRITAS_DATA env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to the TOML config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using the --data-dir flag
// (highest priority), then the PALABRITAS_DATA env var, then the XDG
// default.
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data-dir"); p != "" {
		return p
	}
	if p := os.Getenv("PALABRITAS_DATA"); p != "" {
		return p
	}
	return config.DefaultDataDir()
}

// resolveConfigPath returns the config path from the --config flag or the
// XDG default.
func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}
