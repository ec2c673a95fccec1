package app

import (
	"sort"

	"victorine/internal/domain"
)

// HistorySource exposes the persisted user records the aggregator reads.
type HistorySource interface {
	History(login string) (domain.ResultHistory, error)
	All() (map[string]domain.UserRecord, error)
}

// Aggregator answers history and leaderboard queries over stored results.
// It only reads; results are appended by the session runner.
type Aggregator struct {
	users HistorySource
	topN  int
}

func NewAggregator(users HistorySource, topN int) *Aggregator {
	if topN <= 0 {
		topN = 20
	}
	return &Aggregator{users: users, topN: topN}
}

// UserHistory returns login's stored history verbatim. An unknown login has
// an empty history rather than an error; validity of the login is the
// caller's concern.
func (a *Aggregator) UserHistory(login string) (domain.ResultHistory, error) {
	return a.users.History(login)
}

// TopN flattens stored results into a leaderboard of at most topN entries
// sorted by score descending. The Mixed spec merges every category; a
// specific spec matches the stored category key exactly. Unlike selection,
// the comparison is case-sensitive. Ties keep encounter order: logins in
// lexical order, then each history list in insertion order.
func (a *Aggregator) TopN(spec CategorySpec) ([]domain.LeaderboardEntry, error) {
	users, err := a.users.All()
	if err != nil {
		return nil, err
	}

	logins := make([]string, 0, len(users))
	for login := range users {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	entries := []domain.LeaderboardEntry{}
	for _, login := range logins {
		history := users[login].QuizResults
		if spec.IsMixed() {
			categories := make([]string, 0, len(history))
			for category := range history {
				categories = append(categories, category)
			}
			sort.Strings(categories)
			for _, category := range categories {
				entries = appendEntries(entries, login, history[category])
			}
		} else {
			entries = appendEntries(entries, login, history[spec.name])
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > a.topN {
		entries = entries[:a.topN]
	}
	return entries, nil
}

func appendEntries(entries []domain.LeaderboardEntry, login string, results []domain.QuizResult) []domain.LeaderboardEntry {
	for _, result := range results {
		entries = append(entries, domain.LeaderboardEntry{
			Login: login,
			Score: result.Score,
			Date:  result.Date,
		})
	}
	return entries
}
