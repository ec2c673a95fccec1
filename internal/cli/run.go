package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"victorine/internal/config"
	"victorine/internal/infra/cache"
	"victorine/internal/infra/jsonfile"
	"victorine/internal/ui"
)

// NewRunCmd builds the subcommand that starts the interactive console.
func NewRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive quiz console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(*configPath)
		},
	}
}

func runConsole(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	users := jsonfile.NewUserStore(cfg.Stores.Users)
	bank := cache.NewBankCache(
		jsonfile.NewQuestionStore(cfg.Stores.Questions),
		config.TTLDuration(cfg.Quiz.BankCacheTTL, time.Minute),
	)

	console := ui.New(os.Stdin, os.Stdout, users, bank, cfg.Quiz.QuestionsPerQuiz, cfg.Quiz.LeaderboardSize)
	return console.Run()
}
