package domain

// DateTimeFormat is the layout used for result timestamps in the user document.
const DateTimeFormat = "2006-01-02 15:04:05"

// Question is one entry of the question bank. CorrectAnswers holds option
// text, not positions; every entry must match one of Options exactly.
type Question struct {
	Category       string   `json:"category"`
	Text           string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
}

// QuizResult is one finished attempt. It is appended to the owning user's
// history at session end and never mutated afterwards.
type QuizResult struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}

// ResultHistory maps a category spec, exactly as requested at session start,
// to the chronological list of results recorded under it.
type ResultHistory map[string][]QuizResult

// UserRecord is the per-login entry of the user document. The password is
// stored and compared in plain text; the credential check is pluggable, not
// a security contract.
type UserRecord struct {
	Password    string        `json:"password"`
	BirthDate   string        `json:"birth_date"`
	QuizResults ResultHistory `json:"quiz_results"`
}

// LeaderboardEntry is a display view derived from stored results; it is
// never persisted.
type LeaderboardEntry struct {
	Login string
	Score int
	Date  string
}
