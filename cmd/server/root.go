package main

import (
	"alcyxob/workout-sessions/internal/config"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "workoutd",
	Short: "workoutd serves workout sessions and calendar days",
	Long:  "workoutd is the HTTP service behind workout sessions, admin templates and per-user workout days.",
	// plain `workoutd` starts the server
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, ensureIndexesCmd)
}

// loadConfig applies the dotenv file, then reads config.yaml and the environment.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
