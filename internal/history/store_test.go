package history_test

import (
	"context"
	"errors"
	"testing"

	"textlab/internal/history"
	"textlab/internal/testsupport"
	"textlab/internal/textstats"
)

func TestAddAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	result := textstats.Analyze("a a b. Done!")

	record, err := store.Add(ctx, "sample.txt", result)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected record ID to be assigned")
	}
	if record.WordCount != result.WordCount {
		t.Fatalf("WordCount = %d, want %d", record.WordCount, result.WordCount)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	got := records[0]
	if got.ID != record.ID || got.FileName != "sample.txt" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if len(got.TopWords) != len(result.MostCommonWords) {
		t.Fatalf("TopWords = %v, want %v", got.TopWords, result.MostCommonWords)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, name := range []string{"first.txt", "second.txt", "third.txt"} {
		if _, err := store.Add(ctx, name, textstats.Analyze(name)); err != nil {
			t.Fatalf("Add(%s) failed: %v", name, err)
		}
	}

	records, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].FileName != "third.txt" {
		t.Fatalf("newest record = %q, want third.txt", records[0].FileName)
	}
}

func TestClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.Add(ctx, "a.txt", textstats.Analyze("x")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add(ctx, "b.txt", textstats.Analyze("y")); err != nil {
		t.Fatal(err)
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}

func TestOpenSecondInstanceFailsWhileLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_ = testsupport.MustOpenStore(t, cfg)

	if _, err := history.Open(cfg); !errors.Is(err, history.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestReopenAfterClose(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := store.Add(context.Background(), "a.txt", textstats.Analyze("one two")); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	records, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected persisted record, got %d", len(records))
	}
}
