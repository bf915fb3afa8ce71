package main

import (
	"encoding/json"
	"errors"
	"testing"

	"textlab/internal/services"
)

func TestSearchFile(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "code.txt", "print(1) noise print(two)")

	out, err := runCLI(t, env, "search", `print\([^)]+\)`, "code.txt")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "2 match(es)")
	requireContains(t, out, "print(1)")
	requireContains(t, out, "print(two)")
}

func TestSearchJSONNoMatches(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "plain.txt", "nothing to see")

	out, err := runCLI(t, env, "search", "xyz+", "plain.txt", "--json")
	if err != nil {
		t.Fatalf("search --json: %v", err)
	}
	var report searchReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if report.Count != 0 || report.Matches == nil {
		t.Fatalf("report = %+v, want zero matches with empty slice", report)
	}
}

func TestSearchInvalidPattern(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "plain.txt", "content")

	_, err := runCLI(t, env, "search", "[unclosed", "plain.txt")
	if !errors.Is(err, services.ErrPattern) {
		t.Fatalf("err = %v, want pattern error", err)
	}
}
