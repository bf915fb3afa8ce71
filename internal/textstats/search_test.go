package textstats_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"textlab/internal/services"
	"textlab/internal/textstats"
)

func TestSearchFindsAllMatchesInOrder(t *testing.T) {
	matches, err := textstats.Search("print(1) print(2)", `print\([^)]+\)`)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	want := []string{"print(1)", "print(2)"}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
}

func TestSearchNoMatches(t *testing.T) {
	matches, err := textstats.Search("nothing here", `\d+`)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("matches = %v, want none", matches)
	}
}

func TestSearchNonOverlapping(t *testing.T) {
	matches, err := textstats.Search("aaaa", "aa")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(matches, []string{"aa", "aa"}) {
		t.Fatalf("matches = %v, want two non-overlapping pairs", matches)
	}
}

func TestSearchInvalidPattern(t *testing.T) {
	_, err := textstats.Search("text", "[unclosed")
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !errors.Is(err, services.ErrPattern) {
		t.Fatalf("expected ErrPattern, got %v", err)
	}
	if !strings.Contains(err.Error(), "[unclosed") {
		t.Fatalf("error should name the pattern, got %q", err)
	}
}

func TestSearchMarkdownHeaders(t *testing.T) {
	text := "# Title\nbody\n## Section\n"
	matches, err := textstats.Search(text, `#+ .+`)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(matches, []string{"# Title", "## Section"}) {
		t.Fatalf("matches = %v", matches)
	}
}
