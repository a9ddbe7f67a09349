package main

import (
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-quiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "quizd",
	Short:         "Quiz server",
	Long:          "quizd serves a fixed question set and scores submitted answers.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Question dataset file, .json or .yaml (overrides QUESTIONS_FILE)")
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver: sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().String("db-dsn", "", "Database DSN (overrides DB_DSN)")

	serveCmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDR)")
	serveCmd.Flags().String("source", "", "Question source: file or sql (overrides QUESTIONS_SOURCE)")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	if v, _ := cmd.Flags().GetString("questions"); v != "" {
		cfg.QuestionsFile = v
	}
	if v, _ := cmd.Flags().GetString("db-driver"); v != "" {
		cfg.DBDriver = v
	}
	if v, _ := cmd.Flags().GetString("db-dsn"); v != "" {
		cfg.DBDSN = v
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Value.String() != "" {
		cfg.HTTPAddr = f.Value.String()
	}
	if f := cmd.Flags().Lookup("source"); f != nil && f.Value.String() != "" {
		cfg.QuestionsSource = config.Source(f.Value.String())
	}
	return cfg
}
