package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"victorine/internal/domain"
)

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	return NewUserStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newUserStore(t)

	if err := store.Register("u1", "secret", "2000-01-01"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := store.Register("u1", "other", "1999-01-01"); !errors.Is(err, domain.ErrLoginTaken) {
		t.Fatalf("expected login taken, got %v", err)
	}

	if err := store.Authenticate("u1", "secret"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := store.Authenticate("u1", "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected wrong password, got %v", err)
	}
	if err := store.Authenticate("nobody", "secret"); !errors.Is(err, domain.ErrUnknownLogin) {
		t.Fatalf("expected unknown login, got %v", err)
	}
}

func TestUpdateSettings(t *testing.T) {
	store := newUserStore(t)

	if err := store.UpdateSettings("nobody", "pw", "2000-01-01"); !errors.Is(err, domain.ErrUnknownLogin) {
		t.Fatalf("expected unknown login, got %v", err)
	}

	if err := store.Register("u1", "old", "2000-01-01"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := store.UpdateSettings("u1", "new", "1990-05-05"); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if err := store.Authenticate("u1", "new"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
	if err := store.Authenticate("u1", "old"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestAppendResultRoundTrip(t *testing.T) {
	store := newUserStore(t)

	if err := store.AppendResult("u1", "math", 80, "2024-01-01 10:00:00"); !errors.Is(err, domain.ErrUnknownLogin) {
		t.Fatalf("expected unknown login, got %v", err)
	}

	if err := store.Register("u1", "pw", "2000-01-01"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := store.AppendResult("u1", "math", 80, "2024-01-01 10:00:00"); err != nil {
		t.Fatalf("append result: %v", err)
	}

	history, err := store.History("u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	results := history["math"]
	if len(results) != 1 {
		t.Fatalf("expected one math result, got %d", len(results))
	}
	if results[0].Score != 80 || results[0].Category != "math" || results[0].Date != "2024-01-01 10:00:00" {
		t.Fatalf("unexpected result %+v", results[0])
	}

	// Settings updates must not touch recorded results.
	if err := store.UpdateSettings("u1", "new", "1990-05-05"); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	history, err = store.History("u1")
	if err != nil {
		t.Fatalf("history after settings update: %v", err)
	}
	if len(history["math"]) != 1 {
		t.Fatalf("history lost after settings update")
	}
}

func TestHistoryUnknownLoginIsEmpty(t *testing.T) {
	store := newUserStore(t)

	history, err := store.History("nobody")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty history, got %v", history)
	}
}

func TestMalformedDocumentIsRewritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewUserStore(path)

	users, err := store.All()
	if err != nil {
		t.Fatalf("load malformed store: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty store after rewrite, got %d records", len(users))
	}

	// The file must be usable again afterwards.
	if err := store.Register("u1", "pw", "2000-01-01"); err != nil {
		t.Fatalf("register after rewrite: %v", err)
	}
	if err := store.Authenticate("u1", "pw"); err != nil {
		t.Fatalf("authenticate after rewrite: %v", err)
	}
}
