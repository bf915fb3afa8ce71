package main

import (
	"encoding/json"
	"testing"
)

func TestHistoryLimitFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "a.txt", "first file.")
	env.writeInput(t, "b.txt", "second file.")

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := runCLI(t, env, "analyze", name); err != nil {
			t.Fatalf("analyze %s: %v", name, err)
		}
	}

	out, err := runCLI(t, env, "history", "--json", "--limit", "1")
	if err != nil {
		t.Fatalf("history --limit: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestHistoryClear(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "a.txt", "content here.")

	if _, err := runCLI(t, env, "analyze", "a.txt"); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	out, err := runCLI(t, env, "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 record(s)")

	out, err = runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No analyses recorded yet")
}
