package cli

import (
	"log"

	"github.com/spf13/cobra"

	"victorine/internal/domain"
	"victorine/internal/infra/jsonfile"
)

// NewSeedCmd initializes the two JSON documents so `run` works out of the box.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the user and question documents, with a sample bank if empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(*configPath)
		},
	}
}

func runSeed(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	users := jsonfile.NewUserStore(cfg.Stores.Users)
	if _, err := users.All(); err != nil {
		return err
	}

	store := jsonfile.NewQuestionStore(cfg.Stores.Questions)
	questions, err := store.Load()
	if err != nil {
		return err
	}
	if len(questions) > 0 {
		log.Printf("question bank already has %d questions, leaving it alone", len(questions))
		return nil
	}

	sample := sampleBank()
	if err := store.Save(sample); err != nil {
		return err
	}
	log.Printf("seeded question bank with %d sample questions", len(sample))
	return nil
}

func sampleBank() []domain.Question {
	return []domain.Question{
		{
			Category:       "math",
			Text:           "What is 2 + 2?",
			Options:        []string{"3", "4", "5"},
			CorrectAnswers: []string{"4"},
		},
		{
			Category:       "math",
			Text:           "Which of these are prime numbers?",
			Options:        []string{"2", "4", "7", "9"},
			CorrectAnswers: []string{"2", "7"},
		},
		{
			Category:       "science",
			Text:           "What does water consist of?",
			Options:        []string{"Hydrogen", "Oxygen", "Carbon"},
			CorrectAnswers: []string{"Hydrogen", "Oxygen"},
		},
		{
			Category:       "science",
			Text:           "Which planet is closest to the sun?",
			Options:        []string{"Venus", "Mercury", "Mars"},
			CorrectAnswers: []string{"Mercury"},
		},
		{
			Category:       "history",
			Text:           "In which year did the Second World War end?",
			Options:        []string{"1943", "1945", "1947"},
			CorrectAnswers: []string{"1945"},
		},
	}
}
