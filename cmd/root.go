package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmpquiz/internal/app"
	"github.com/abhisek/pmpquiz/internal/config"
	"github.com/abhisek/pmpquiz/internal/logger"
	"github.com/abhisek/pmpquiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "pmpquiz",
	Short: "PMP practice quiz in the terminal",
	Long:  "pmpquiz is a full-screen terminal app for working through PMP-style multiple-choice question sets stored as JSON files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		dir := resolveQuestionsDir(cmd, cfg)
		return app.Run(cfg, log, dir)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Folder to browse for question files (overrides config)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveQuestionsDir returns the initial browse directory using the
// --questions flag (highest priority), then the config file, then the
// default "questions" folder next to the executable.
func resolveQuestionsDir(cmd *cobra.Command, cfg *config.Config) string {
	if dir, _ := cmd.Flags().GetString("questions"); dir != "" {
		return dir
	}
	if cfg.QuestionsDir != "" {
		return cfg.QuestionsDir
	}
	return quiz.DefaultQuestionsDir()
}
