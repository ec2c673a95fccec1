package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"victorine/internal/domain"
)

// UserStore persists user records, including their nested quiz results, as a
// single JSON document keyed by login. Every operation is a whole-document
// read-modify-write with no locking; a concurrent second writer loses.
type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// load reads the whole user document. A missing file is created empty; a
// document that cannot be parsed is rewritten empty with a warning, so a
// broken file never wedges the application.
func (s *UserStore) load() (map[string]domain.UserRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		users := map[string]domain.UserRecord{}
		if err := s.save(users); err != nil {
			return nil, err
		}
		return users, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user store %s: %w", s.path, err)
	}

	users := map[string]domain.UserRecord{}
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("user store %s is malformed, rewriting it empty: %v", s.path, err)
		users = map[string]domain.UserRecord{}
		if err := s.save(users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *UserStore) save(users map[string]domain.UserRecord) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal user store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write user store %s: %w", s.path, err)
	}
	return nil
}

// Register creates a new user record with an empty result history.
func (s *UserStore) Register(login, password, birthDate string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := users[login]; ok {
		return domain.ErrLoginTaken
	}

	users[login] = domain.UserRecord{
		Password:    password,
		BirthDate:   birthDate,
		QuizResults: domain.ResultHistory{},
	}
	return s.save(users)
}

// Authenticate checks login credentials against the stored record.
func (s *UserStore) Authenticate(login, password string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	record, ok := users[login]
	if !ok {
		return domain.ErrUnknownLogin
	}
	if record.Password != password {
		return domain.ErrWrongPassword
	}
	return nil
}

// UpdateSettings replaces the password and birth date of an existing user.
func (s *UserStore) UpdateSettings(login, password, birthDate string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	record, ok := users[login]
	if !ok {
		return domain.ErrUnknownLogin
	}

	record.Password = password
	record.BirthDate = birthDate
	users[login] = record
	return s.save(users)
}

// AppendResult appends one finished attempt under the category it was
// requested as. The history list stays in insertion order.
func (s *UserStore) AppendResult(login, category string, score int, date string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	record, ok := users[login]
	if !ok {
		return domain.ErrUnknownLogin
	}

	if record.QuizResults == nil {
		record.QuizResults = domain.ResultHistory{}
	}
	record.QuizResults[category] = append(record.QuizResults[category], domain.QuizResult{
		Category: category,
		Score:    score,
		Date:     date,
	})
	users[login] = record
	return s.save(users)
}

// History returns the stored result history for login, or an empty history
// when the login is unknown or has no results. Absence is not an error here.
func (s *UserStore) History(login string) (domain.ResultHistory, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	record, ok := users[login]
	if !ok || record.QuizResults == nil {
		return domain.ResultHistory{}, nil
	}
	return record.QuizResults, nil
}

// All returns every user record; the result aggregator iterates it to build
// leaderboards.
func (s *UserStore) All() (map[string]domain.UserRecord, error) {
	return s.load()
}
