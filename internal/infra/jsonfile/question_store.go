package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"victorine/internal/domain"
)

// QuestionStore persists the flat question bank as a single JSON document of
// the form {"questions": [...]}. Writes replace the whole document; there is
// no locking, the last writer wins.
type QuestionStore struct {
	path string
}

func NewQuestionStore(path string) *QuestionStore {
	return &QuestionStore{path: path}
}

type bankDocument struct {
	Questions []domain.Question `json:"questions"`
}

// Load returns every question in the bank. A missing file is an empty bank;
// a document that fails to parse is a hard failure.
func (s *QuestionStore) Load() ([]domain.Question, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", s.path, err)
	}

	var doc bankDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptQuestionBank, err)
	}
	return doc.Questions, nil
}

// Save rewrites the whole bank document.
func (s *QuestionStore) Save(questions []domain.Question) error {
	doc := bankDocument{Questions: questions}
	if doc.Questions == nil {
		doc.Questions = []domain.Question{}
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal question bank: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write question bank %s: %w", s.path, err)
	}
	return nil
}
