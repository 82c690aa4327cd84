package bank

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quiz-session/internal/quiz"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
		_ = os.Remove(path)
		_ = os.Remove(path + "-journal")
	})
	return store, path
}

func sampleBank() quiz.Bank {
	return quiz.Bank{
		{ID: "q1", Text: "2+2?", Options: []string{"4", "3"}, Correct: 0},
		{ID: "q2", Text: "Sky color?", Options: []string{"Green", "Blue"}, Correct: 1, Note: "On a clear day"},
		{Text: "Largest planet?", Options: []string{"Mars", "Jupiter", "Venus"}, Correct: 1},
	}
}

func TestStoreReplaceAndReadBank(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceBank(ctx, sampleBank(), "test"); err != nil {
		t.Fatalf("ReplaceBank failed: %v", err)
	}

	got, err := store.Bank(ctx)
	if err != nil {
		t.Fatalf("Bank failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}
	if got[0].ID != "q1" || got[1].ID != "q2" {
		t.Fatalf("import order lost: %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].Note != "On a clear day" || got[1].Correct != 1 {
		t.Fatalf("unexpected second question: %+v", got[1])
	}
	if got[2].ID == "" || len(got[2].Options) != 3 {
		t.Fatalf("unexpected third question: %+v", got[2])
	}

	count, err := store.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("Count = (%d, %v), want (3, nil)", count, err)
	}
}

func TestStoreReplaceBankOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceBank(ctx, sampleBank(), "first"); err != nil {
		t.Fatalf("ReplaceBank failed: %v", err)
	}
	if err := store.ReplaceBank(ctx, sampleBank()[:1], "second"); err != nil {
		t.Fatalf("second ReplaceBank failed: %v", err)
	}

	got, err := store.Bank(ctx)
	if err != nil {
		t.Fatalf("Bank failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q1" {
		t.Fatalf("expected only q1 after replace, got %+v", got)
	}
}

func TestStoreReplaceBankRejectsInvalidQuestions(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceBank(ctx, sampleBank(), "first"); err != nil {
		t.Fatalf("ReplaceBank failed: %v", err)
	}

	bad := quiz.Bank{{Text: "q", Options: []string{"only"}, Correct: 0}}
	if err := store.ReplaceBank(ctx, bad, "bad"); !errors.Is(err, quiz.ErrInvalidQuestion) {
		t.Fatalf("ReplaceBank error = %v, want ErrInvalidQuestion", err)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("rejected import must keep the old bank, count=(%d, %v)", count, err)
	}
}

func TestStoreDuplicateIDsKeepFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	dup := quiz.Bank{
		{ID: "same", Text: "first", Options: []string{"a", "b"}, Correct: 0},
		{ID: "same", Text: "second", Options: []string{"a", "b"}, Correct: 1},
	}
	if err := store.ReplaceBank(ctx, dup, "dup"); err != nil {
		t.Fatalf("ReplaceBank failed: %v", err)
	}

	got, err := store.Bank(ctx)
	if err != nil {
		t.Fatalf("Bank failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "first" {
		t.Fatalf("expected first occurrence only, got %+v", got)
	}
}

func TestSQLiteSourceLoad(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceBank(ctx, sampleBank(), "test"); err != nil {
		t.Fatalf("ReplaceBank failed: %v", err)
	}

	src, err := Open(schemeSQLite+path, Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	bank, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(bank) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(bank))
	}
}

func TestSQLiteSourceEmptyStore(t *testing.T) {
	_, path := newTestStore(t)

	bank, err := (&sqliteSource{path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(bank) != 0 {
		t.Fatalf("expected empty bank, got %d", len(bank))
	}
}
