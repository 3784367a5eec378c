package render

import (
	"strings"
	"testing"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func hl(start, end int) *content.HighlightRange {
	r := content.HighlightRange{start, end}
	return &r
}

func TestSectionsPreserveOrder(t *testing.T) {
	r := New()
	sections := []content.Section{
		{Type: content.SectionNarrative, Content: "first"},
		{Type: content.SectionTip, Content: "second"},
		{Type: content.SectionCode, Code: "x = 1\n"},
		{Type: content.SectionWarning, Content: "fourth"},
	}

	blocks := r.Sections(sections, 3, "#fff")
	if len(blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(blocks))
	}
	wantKinds := []content.SectionType{
		content.SectionNarrative, content.SectionTip, content.SectionCode, content.SectionWarning,
	}
	for i, k := range wantKinds {
		if blocks[i].Kind != k {
			t.Errorf("Block %d: expected kind %q, got %q", i, k, blocks[i].Kind)
		}
		if blocks[i].ChapterNumber != 3 {
			t.Errorf("Block %d: expected chapter 3, got %d", i, blocks[i].ChapterNumber)
		}
	}
}

func TestCodeBlockHighlighting(t *testing.T) {
	r := New()
	s := content.Section{
		Type:           content.SectionCode,
		Language:       "python",
		Code:           "a\nb\nc\nd\ne\nf\n",
		HighlightLines: hl(3, 5),
	}

	b := r.Sections([]content.Section{s}, 1, "")[0]
	if b.Code == nil {
		t.Fatal("Expected a code block")
	}
	if len(b.Code.Lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(b.Code.Lines))
	}
	for _, line := range b.Code.Lines {
		want := line.Number >= 3 && line.Number <= 5
		if line.Highlighted != want {
			t.Errorf("Line %d: expected highlighted=%v, got %v", line.Number, want, line.Highlighted)
		}
	}
	if b.Code.Language != "python" {
		t.Errorf("Expected language python, got %q", b.Code.Language)
	}
}

func TestCodeBlockEmptySourceDegradesSilently(t *testing.T) {
	r := New()
	b := r.Sections([]content.Section{{Type: content.SectionCode}}, 1, "")[0]
	if b.Code == nil {
		t.Fatal("Expected a code block")
	}
	if len(b.Code.Lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(b.Code.Lines))
	}
}

func TestCodeBlockContentFallback(t *testing.T) {
	r := New()
	b := r.Sections([]content.Section{{
		Type:    content.SectionCode,
		Content: "from content field\n",
	}}, 1, "")[0]
	if len(b.Code.Lines) != 1 || b.Code.Lines[0].Text != "from content field" {
		t.Errorf("Expected content fallback line, got %+v", b.Code.Lines)
	}
}

func TestProfileLabels(t *testing.T) {
	cases := []struct {
		typ   content.SectionType
		label string
		icon  string
	}{
		{content.SectionExplanation, "How it works", "cpu"},
		{content.SectionTip, "TIP", "lightbulb"},
		{content.SectionWarning, "WARNING", "alert-triangle"},
		{content.SectionExercise, "EXERCISE", "dumbbell"},
		{content.SectionCheckpoint, "CHECKPOINT", "check-circle"},
	}
	r := New()
	for _, tc := range cases {
		b := r.Steps([]content.TutorialStep{{Section: content.Section{Type: tc.typ, Content: "x"}}}, 1, "")[0]
		if b.Label != tc.label {
			t.Errorf("%s: expected label %q, got %q", tc.typ, tc.label, b.Label)
		}
		if b.IconKey != tc.icon {
			t.Errorf("%s: expected icon %q, got %q", tc.typ, tc.icon, b.IconKey)
		}
	}
}

func TestNarrativeHasNoHeaderLabel(t *testing.T) {
	r := New()
	b := r.Sections([]content.Section{{Type: content.SectionNarrative, Content: "plain"}}, 1, "")[0]
	if b.Label != "" {
		t.Errorf("Expected no label on narrative, got %q", b.Label)
	}
	if !strings.Contains(b.HTML, "plain") {
		t.Errorf("Expected rendered body, got %q", b.HTML)
	}
}

func TestMarkdownRendering(t *testing.T) {
	r := New()
	b := r.Sections([]content.Section{{
		Type:    content.SectionNarrative,
		Content: "Some **bold** text.",
	}}, 1, "")[0]
	if !strings.Contains(b.HTML, "<strong>bold</strong>") {
		t.Errorf("Expected bold markup, got %q", b.HTML)
	}
}
