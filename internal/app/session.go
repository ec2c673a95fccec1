package app

import (
	"fmt"
	"math/rand"
	"time"

	"victorine/internal/domain"
)

// QuestionSource loads the full question bank.
type QuestionSource interface {
	Load() ([]domain.Question, error)
}

// ResultRecorder appends one finished attempt to a user's history.
type ResultRecorder interface {
	AppendResult(login, category string, score int, date string) error
}

// Prompter is the console collaborator a session blocks on. Ask presents one
// question and returns the user's raw comma-separated label submission.
type Prompter interface {
	Shortage(category string, available int)
	Ask(number int, q domain.Question) (string, error)
	Feedback(correct bool)
	Summary(score, total int)
}

// Runner drives one quiz attempt end to end: select questions, loop over
// them blocking on the prompter, accumulate the score, record the result.
type Runner struct {
	questions QuestionSource
	results   ResultRecorder
	prompter  Prompter
	limit     int
	rng       *rand.Rand
	now       func() time.Time
}

func NewRunner(questions QuestionSource, results ResultRecorder, prompter Prompter, limit int) *Runner {
	return &Runner{
		questions: questions,
		results:   results,
		prompter:  prompter,
		limit:     limit,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

// Run executes one attempt for login and returns the recorded result. A
// selection failure or an aborted submission ends the session with nothing
// recorded. The recorded category is the requested spec, not a canonical
// form, so history keys line up with leaderboard lookups.
func (r *Runner) Run(login string, spec CategorySpec) (domain.QuizResult, error) {
	all, err := r.questions.Load()
	if err != nil {
		return domain.QuizResult{}, err
	}

	selection, err := SelectQuestions(all, spec, r.limit, r.rng)
	if err != nil {
		return domain.QuizResult{}, err
	}
	if selection.Shortage > 0 {
		r.prompter.Shortage(spec.String(), selection.Shortage)
	}

	score := 0
	for i, q := range selection.Questions {
		raw, err := r.prompter.Ask(i+1, q)
		if err != nil {
			return domain.QuizResult{}, fmt.Errorf("read answer: %w", err)
		}
		correct := IsCorrect(q, ParseLabels(raw))
		if correct {
			score++
		}
		r.prompter.Feedback(correct)
	}
	r.prompter.Summary(score, len(selection.Questions))

	result := domain.QuizResult{
		Category: spec.String(),
		Score:    score,
		Date:     r.now().Format(domain.DateTimeFormat),
	}
	if err := r.results.AppendResult(login, result.Category, result.Score, result.Date); err != nil {
		return domain.QuizResult{}, fmt.Errorf("record result: %w", err)
	}
	return result, nil
}
