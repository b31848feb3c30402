package news

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewSubmission_TrimsFields(t *testing.T) {
	s := NewSubmission("  Breaking story \n", "\tbody text  ")

	if s.Title != "Breaking story" {
		t.Errorf("Expected trimmed title, got %q", s.Title)
	}
	if s.Content != "body text" {
		t.Errorf("Expected trimmed content, got %q", s.Content)
	}
}

func TestNewSubmission_EmptyAllowed(t *testing.T) {
	s := NewSubmission("   ", "")

	if s.Title != "" || s.Content != "" {
		t.Errorf("Expected empty submission, got %+v", s)
	}
}

func TestDisplayOrder_Reverses(t *testing.T) {
	items := []Item{
		{Title: "A", Content: "x", Fake: false},
		{Title: "B", Content: "y", Fake: true},
		{Title: "C", Content: "z", Fake: false},
	}

	got := DisplayOrder(items)

	want := []string{"C", "B", "A"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("Position %d: expected %s, got %s", i, title, got[i].Title)
		}
	}

	// Input must be left untouched
	if items[0].Title != "A" {
		t.Errorf("DisplayOrder mutated its input: first item is %s", items[0].Title)
	}
}

func TestDisplayOrder_Empty(t *testing.T) {
	if got := DisplayOrder(nil); len(got) != 0 {
		t.Errorf("Expected empty result, got %d items", len(got))
	}
}

func TestItemPreview(t *testing.T) {
	short := Item{Content: "short"}
	if short.Preview() != "short" {
		t.Errorf("Expected short content unchanged, got %q", short.Preview())
	}

	long := Item{Content: strings.Repeat("n", 250)}
	preview := long.Preview()
	if utf8.RuneCountInString(preview) != 203 {
		t.Errorf("Expected 203-character preview, got %d", utf8.RuneCountInString(preview))
	}
	if !strings.HasSuffix(preview, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", preview)
	}
}

func TestVerdictFor(t *testing.T) {
	fake := VerdictFor(true)
	if !fake.Fake || fake.Class != "fake" || fake.Headline != "FAKE NEWS DETECTED!" {
		t.Errorf("Unexpected fake verdict: %+v", fake)
	}

	genuine := VerdictFor(false)
	if genuine.Fake || genuine.Class != "real" || genuine.Headline != "APPEARS TO BE REAL NEWS" {
		t.Errorf("Unexpected real verdict: %+v", genuine)
	}

	if (Item{Fake: true}).Verdict() != fake {
		t.Error("Item.Verdict should match VerdictFor")
	}
}
