package cache

import (
	"testing"
	"time"

	"victorine/internal/domain"
)

type countingStore struct {
	questions []domain.Question
	loads     int
	saves     int
}

func (s *countingStore) Load() ([]domain.Question, error) {
	s.loads++
	return s.questions, nil
}

func (s *countingStore) Save(questions []domain.Question) error {
	s.saves++
	s.questions = questions
	return nil
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{Category: "math", Text: "What is 2 + 2?", Options: []string{"3", "4"}, CorrectAnswers: []string{"4"}},
	}
}

func TestBankCacheCaches(t *testing.T) {
	store := &countingStore{questions: sampleQuestions()}
	bank := NewBankCache(store, time.Minute)

	if _, err := bank.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.loads != 1 {
		t.Fatalf("expected one store read, got %d", store.loads)
	}

	if _, err := bank.Load(); err != nil {
		t.Fatalf("load 2: %v", err)
	}
	if store.loads != 1 {
		t.Fatalf("expected cache hit, store reads %d", store.loads)
	}
}

func TestBankCacheExpires(t *testing.T) {
	store := &countingStore{questions: sampleQuestions()}
	bank := NewBankCache(store, time.Minute)

	now := time.Now()
	bank.clock = func() time.Time { return now }

	if _, err := bank.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := bank.Load(); err != nil {
		t.Fatalf("load after expiry: %v", err)
	}
	if store.loads != 2 {
		t.Fatalf("expected reload after expiry, store reads %d", store.loads)
	}
}

func TestBankCacheSaveInvalidates(t *testing.T) {
	store := &countingStore{questions: sampleQuestions()}
	bank := NewBankCache(store, time.Minute)

	if _, err := bank.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := bank.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected write-through save, got %d", store.saves)
	}

	questions, err := bank.Load()
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if store.loads != 2 {
		t.Fatalf("expected reload after save, store reads %d", store.loads)
	}
	if len(questions) != 0 {
		t.Fatalf("expected cleared bank, got %d questions", len(questions))
	}
}

func TestBankCacheZeroTTLBypasses(t *testing.T) {
	store := &countingStore{questions: sampleQuestions()}
	bank := NewBankCache(store, 0)

	for i := 0; i < 3; i++ {
		if _, err := bank.Load(); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	if store.loads != 3 {
		t.Fatalf("expected every load to hit the store, got %d", store.loads)
	}
}
