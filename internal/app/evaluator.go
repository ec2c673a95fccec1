package app

import (
	"strconv"
	"strings"

	"victorine/internal/domain"
)

// LabelSet is a set of option labels, each the 1-based position of an option
// as displayed, rendered as a string.
type LabelSet map[string]struct{}

// ParseLabels splits a raw comma-separated submission into a label set.
// Blank pieces are dropped, so an empty line yields the empty set.
func ParseLabels(raw string) LabelSet {
	labels := LabelSet{}
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		labels[piece] = struct{}{}
	}
	return labels
}

// correctLabels maps the question's correct answer texts to the 1-based
// position labels of the matching options.
func correctLabels(q domain.Question) LabelSet {
	labels := LabelSet{}
	for i, option := range q.Options {
		for _, correct := range q.CorrectAnswers {
			if option == correct {
				labels[strconv.Itoa(i+1)] = struct{}{}
				break
			}
		}
	}
	return labels
}

// IsCorrect reports whether the submitted label set equals the correct label
// set exactly. Extra, missing or partially overlapping selections are all
// wrong; there is no partial credit.
func IsCorrect(q domain.Question, submitted LabelSet) bool {
	want := correctLabels(q)
	if len(submitted) != len(want) {
		return false
	}
	for label := range submitted {
		if _, ok := want[label]; !ok {
			return false
		}
	}
	return true
}
