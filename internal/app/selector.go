package app

import (
	"math/rand"
	"sort"
	"strings"

	"victorine/internal/domain"
)

// MixedCategory is the distinguished spec value that selects the whole bank.
const MixedCategory = "Mixed"

// CategorySpec names the question selection for a session: either one
// specific category or the mixed, all-categories variant.
type CategorySpec struct {
	mixed bool
	name  string
}

// Mixed returns the all-categories spec.
func Mixed() CategorySpec {
	return CategorySpec{mixed: true}
}

// Specific returns the spec for a single named category.
func Specific(name string) CategorySpec {
	return CategorySpec{name: name}
}

func (c CategorySpec) IsMixed() bool {
	return c.mixed
}

// String is the value recorded in result histories and used by leaderboard
// lookups. It is the original requested spec, never a canonicalized form.
func (c CategorySpec) String() string {
	if c.mixed {
		return MixedCategory
	}
	return c.name
}

// Selection is the outcome of sampling the bank for one session. Shortage is
// the number of eligible questions when a specific category had fewer than
// requested; zero means no shortage.
type Selection struct {
	Questions []domain.Question
	Shortage  int
}

// SelectQuestions samples the question set for one session: the whole bank
// for Mixed, otherwise the questions whose category matches the spec
// case-insensitively. At most limit questions are returned, drawn uniformly
// at random without replacement.
func SelectQuestions(all []domain.Question, spec CategorySpec, limit int, rng *rand.Rand) (Selection, error) {
	if len(all) == 0 {
		return Selection{}, domain.ErrEmptyQuestionSet
	}

	eligible := all
	if !spec.IsMixed() {
		eligible = nil
		for _, q := range all {
			if strings.EqualFold(q.Category, spec.name) {
				eligible = append(eligible, q)
			}
		}
		if len(eligible) == 0 {
			return Selection{}, domain.ErrEmptyCategoryResult
		}
	}

	selection := Selection{Questions: sample(eligible, limit, rng)}
	if !spec.IsMixed() && len(eligible) < limit {
		selection.Shortage = len(eligible)
	}
	return selection, nil
}

// sample returns min(limit, len(questions)) questions drawn uniformly
// without replacement: shuffle a copy, take the prefix.
func sample(questions []domain.Question, limit int, rng *rand.Rand) []domain.Question {
	shuffled := make([]domain.Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	return shuffled[:limit]
}

// Categories returns the sorted unique category names present in the bank.
func Categories(questions []domain.Question) []string {
	seen := make(map[string]struct{}, len(questions))
	var names []string
	for _, q := range questions {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		names = append(names, q.Category)
	}
	sort.Strings(names)
	return names
}
