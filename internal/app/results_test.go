package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"victorine/internal/app"
	"victorine/internal/domain"
)

type fakeUsers map[string]domain.UserRecord

func (f fakeUsers) History(login string) (domain.ResultHistory, error) {
	if record, ok := f[login]; ok && record.QuizResults != nil {
		return record.QuizResults, nil
	}
	return domain.ResultHistory{}, nil
}

func (f fakeUsers) All() (map[string]domain.UserRecord, error) {
	return f, nil
}

func result(score int, date string) domain.QuizResult {
	return domain.QuizResult{Score: score, Date: date}
}

func TestUserHistory(t *testing.T) {
	users := fakeUsers{
		"u1": {QuizResults: domain.ResultHistory{
			"math": {result(80, "2024-01-01 10:00:00"), result(90, "2024-01-02 10:00:00")},
		}},
	}
	agg := app.NewAggregator(users, 20)

	history, err := agg.UserHistory("u1")
	require.NoError(t, err)
	require.Len(t, history["math"], 2)
	require.Equal(t, 80, history["math"][0].Score)
	require.Equal(t, 90, history["math"][1].Score)

	history, err = agg.UserHistory("nobody")
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
}

func TestTopN(t *testing.T) {
	users := fakeUsers{
		"u1": {QuizResults: domain.ResultHistory{
			"math": {result(80, "2024-01-01 10:00:00"), result(90, "2024-01-02 10:00:00")},
		}},
		"u2": {QuizResults: domain.ResultHistory{
			"science": {result(85, "2024-01-03 10:00:00")},
		}},
	}
	agg := app.NewAggregator(users, 20)

	t.Run("specific category", func(t *testing.T) {
		entries, err := agg.TopN(app.Specific("math"))
		require.NoError(t, err)
		require.Equal(t, []domain.LeaderboardEntry{
			{Login: "u1", Score: 90, Date: "2024-01-02 10:00:00"},
			{Login: "u1", Score: 80, Date: "2024-01-01 10:00:00"},
		}, entries)
	})

	t.Run("mixed merges every category", func(t *testing.T) {
		entries, err := agg.TopN(app.Mixed())
		require.NoError(t, err)
		scores := make([]int, len(entries))
		for i, entry := range entries {
			scores[i] = entry.Score
		}
		require.Equal(t, []int{90, 85, 80}, scores)
	})

	// Documented quirk: unlike question selection, the leaderboard matches
	// the stored category key case-sensitively.
	t.Run("case sensitive category match", func(t *testing.T) {
		entries, err := agg.TopN(app.Specific("Math"))
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("truncates to n", func(t *testing.T) {
		entries, err := app.NewAggregator(users, 2).TopN(app.Mixed())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, 90, entries[0].Score)
		require.Equal(t, 85, entries[1].Score)
	})

	t.Run("empty store yields empty leaderboard", func(t *testing.T) {
		entries, err := app.NewAggregator(fakeUsers{}, 20).TopN(app.Mixed())
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

func TestTopNTiesKeepEncounterOrder(t *testing.T) {
	users := fakeUsers{
		"bob":   {QuizResults: domain.ResultHistory{"math": {result(50, "2024-01-02 10:00:00")}}},
		"alice": {QuizResults: domain.ResultHistory{"math": {result(50, "2024-01-01 10:00:00")}}},
	}

	entries, err := app.NewAggregator(users, 20).TopN(app.Specific("math"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "alice", entries[0].Login)
	require.Equal(t, "bob", entries[1].Login)
}
