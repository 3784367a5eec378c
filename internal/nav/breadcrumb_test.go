package nav

import (
	"testing"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func intp(n int) *int { return &n }

func testRegistry(t *testing.T) *content.Registry {
	t.Helper()
	reg, err := content.NewRegistry(
		&content.Chapter{
			Number:      1,
			Title:       "Prompt Chaining",
			ShortTitle:  "Prompt Chaining",
			Icon:        "link",
			ReadingMeta: content.ReadingMeta{EstimatedMinutes: 10, Difficulty: content.DifficultyBeginner},
			Sections:    []content.Section{{Type: content.SectionNarrative, Content: "x"}},
			NextChapter: intp(2),
		},
		&content.Chapter{
			Number:      2,
			Title:       "Routing",
			ShortTitle:  "Routing",
			Icon:        "split",
			ReadingMeta: content.ReadingMeta{EstimatedMinutes: 10, Difficulty: content.DifficultyBeginner},
			Sections:    []content.Section{{Type: content.SectionNarrative, Content: "x"}},
			PrevChapter: intp(1),
		},
	)
	if err != nil {
		t.Fatalf("Failed to build registry: %v", err)
	}
	return reg
}

func TestResolveChapterPath(t *testing.T) {
	reg := testRegistry(t)

	crumb := Resolve("/chapter/2", reg, false)
	if crumb == nil {
		t.Fatal("Expected a crumb for /chapter/2")
	}
	if crumb.Title != "Ch 2: Routing" {
		t.Errorf("Expected title %q, got %q", "Ch 2: Routing", crumb.Title)
	}
	if crumb.BackLabel != "Chapters" || crumb.BackPath != "/" {
		t.Errorf("Expected back link to chapter list, got %q -> %q", crumb.BackLabel, crumb.BackPath)
	}
	if crumb.IconKey != "split" {
		t.Errorf("Expected chapter icon, got %q", crumb.IconKey)
	}
	if crumb.ChapterNumber != 2 {
		t.Errorf("Expected chapter 2, got %d", crumb.ChapterNumber)
	}
}

func TestResolveCompact(t *testing.T) {
	crumb := Resolve("/chapter/2", testRegistry(t), true)
	if crumb == nil {
		t.Fatal("Expected a crumb")
	}
	if crumb.Title != "Ch 2" {
		t.Errorf("Expected compact title %q, got %q", "Ch 2", crumb.Title)
	}
}

func TestResolveNonChapterPath(t *testing.T) {
	reg := testRegistry(t)
	for _, path := range []string{"/", "/about", "/chapters", "/chapter/", "/chapter/abc", "/chapterette/1"} {
		if crumb := Resolve(path, reg, false); crumb != nil {
			t.Errorf("Expected nil crumb for %q, got %+v", path, crumb)
		}
	}
}

func TestResolveUnknownChapter(t *testing.T) {
	if crumb := Resolve("/chapter/99", testRegistry(t), false); crumb != nil {
		t.Errorf("Expected nil crumb for unknown chapter, got %+v", crumb)
	}
}

func TestChapterNumberFromPath(t *testing.T) {
	cases := []struct {
		path string
		n    int
		ok   bool
	}{
		{"/chapter/1", 1, true},
		{"/chapter/12/quiz", 12, true},
		{"/chapter/3/", 3, true},
		{"/chapter/x", 0, false},
		{"/", 0, false},
	}
	for _, tc := range cases {
		n, ok := ChapterNumberFromPath(tc.path)
		if n != tc.n || ok != tc.ok {
			t.Errorf("ChapterNumberFromPath(%q): got (%d, %v), want (%d, %v)", tc.path, n, ok, tc.n, tc.ok)
		}
	}
}
