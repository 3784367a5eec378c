package content

import (
	"errors"
	"strings"
	"testing"
)

func intp(n int) *int { return &n }

// validChapter builds a minimal chapter that passes every registry check.
func validChapter(number, total int) *Chapter {
	ch := &Chapter{
		Number:     number,
		Title:      "Chapter",
		ShortTitle: "Chapter",
		ReadingMeta: ReadingMeta{
			EstimatedMinutes: 10,
			Difficulty:       DifficultyBeginner,
		},
		Sections: []Section{
			{Type: SectionNarrative, Content: "body"},
		},
	}
	if number > 1 {
		ch.PrevChapter = intp(number - 1)
	}
	if number < total {
		ch.NextChapter = intp(number + 1)
	}
	return ch
}

func validChapters(n int) []*Chapter {
	out := make([]*Chapter, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, validChapter(i, n))
	}
	return out
}

func mustFail(t *testing.T, chapters []*Chapter, wantSubstr string) {
	t.Helper()
	_, err := NewRegistry(chapters...)
	if err == nil {
		t.Fatalf("Expected registry error containing %q, got nil", wantSubstr)
	}
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected IntegrityError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Errorf("Expected error containing %q, got %q", wantSubstr, err.Error())
	}
}

func TestNewRegistryValid(t *testing.T) {
	reg, err := NewRegistry(validChapters(3)...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if reg.Len() != 3 {
		t.Errorf("Expected 3 chapters, got %d", reg.Len())
	}
	if _, ok := reg.Chapter(2); !ok {
		t.Error("Expected chapter 2 to resolve")
	}
	if _, ok := reg.Chapter(4); ok {
		t.Error("Expected chapter 4 to be absent")
	}
}

func TestNewRegistryEmpty(t *testing.T) {
	if _, err := NewRegistry(); err == nil {
		t.Fatal("Expected error for empty registry")
	}
}

func TestNewRegistryDuplicateNumber(t *testing.T) {
	chapters := validChapters(2)
	chapters[1].Number = 1
	chapters[1].PrevChapter = nil
	mustFail(t, chapters, "duplicate chapter number")
}

func TestNewRegistryNonContiguous(t *testing.T) {
	chapters := []*Chapter{validChapter(1, 3), validChapter(3, 3)}
	chapters[1].PrevChapter = intp(2)
	chapters[1].NextChapter = nil
	mustFail(t, chapters, "contiguous")
}

func TestNewRegistryBrokenChain(t *testing.T) {
	t.Run("first has prev", func(t *testing.T) {
		chapters := validChapters(2)
		chapters[0].PrevChapter = intp(2)
		mustFail(t, chapters, "first chapter must not have a previous chapter")
	})
	t.Run("missing next", func(t *testing.T) {
		chapters := validChapters(2)
		chapters[0].NextChapter = nil
		mustFail(t, chapters, "missing next chapter")
	})
	t.Run("wrong prev", func(t *testing.T) {
		chapters := validChapters(3)
		chapters[2].PrevChapter = intp(1)
		mustFail(t, chapters, "prevChapter")
	})
	t.Run("last has next", func(t *testing.T) {
		chapters := validChapters(2)
		chapters[1].NextChapter = intp(3)
		mustFail(t, chapters, "last chapter must not have a next chapter")
	})
}

func TestNewRegistryUnknownSectionType(t *testing.T) {
	chapters := validChapters(1)
	chapters[0].Sections = append(chapters[0].Sections, Section{Type: "interpretive-dance"})
	mustFail(t, chapters, "unknown section type")
}

func TestNewRegistryCheckpointOnlyInTutorials(t *testing.T) {
	chapters := validChapters(1)
	chapters[0].Sections = append(chapters[0].Sections, Section{Type: SectionCheckpoint, Content: "stop"})
	mustFail(t, chapters, "unknown section type")

	// The same type is fine inside a tutorial step.
	ok := validChapters(1)
	ok[0].Tutorial = []TutorialSection{{
		Title: "T",
		Steps: []TutorialStep{{Section: Section{Type: SectionCheckpoint, Content: "stop"}}},
	}}
	if _, err := NewRegistry(ok...); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestNewRegistryInvalidHighlightRange(t *testing.T) {
	for _, r := range []HighlightRange{{0, 3}, {5, 2}, {-1, -1}} {
		chapters := validChapters(1)
		rng := r
		chapters[0].Sections[0].HighlightLines = &rng
		mustFail(t, chapters, "highlight range")
	}
}

func TestNewRegistryDiagram(t *testing.T) {
	base := func() []*Chapter {
		chapters := validChapters(1)
		chapters[0].CodeExamples = []CodeExample{{Title: "ex", Code: "x = 1\n"}}
		chapters[0].DiagramNodes = []DiagramNode{
			{ID: "a", Data: NodeData{Label: "A", Role: RoleInput}},
			{ID: "b", Data: NodeData{Label: "B", Role: RoleProcess}},
		}
		chapters[0].DiagramEdges = []DiagramEdge{{ID: "e1", Source: "a", Target: "b"}}
		return chapters
	}

	if _, err := NewRegistry(base()...); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("duplicate node id", func(t *testing.T) {
		chapters := base()
		chapters[0].DiagramNodes = append(chapters[0].DiagramNodes, DiagramNode{ID: "a", Data: NodeData{Label: "dup"}})
		mustFail(t, chapters, "duplicate node id")
	})
	t.Run("unknown role", func(t *testing.T) {
		chapters := base()
		chapters[0].DiagramNodes[0].Data.Role = "conductor"
		mustFail(t, chapters, "unknown node role")
	})
	t.Run("dangling edge target", func(t *testing.T) {
		chapters := base()
		chapters[0].DiagramEdges[0].Target = "ghost"
		mustFail(t, chapters, "does not name a node")
	})
	t.Run("code example index out of bounds", func(t *testing.T) {
		chapters := base()
		chapters[0].DiagramNodes[0].Data.CodeExampleIndex = intp(5)
		mustFail(t, chapters, "out of bounds")
	})
}

func TestNewRegistryQuiz(t *testing.T) {
	base := func() []*Chapter {
		chapters := validChapters(1)
		chapters[0].Quiz = &Quiz{
			Title:        "Q",
			PassingScore: 70,
			Questions: []Question{
				{
					ID:       "q1",
					Question: "Pick one",
					Options:  []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},

					CorrectOptionID: "a",
				},
			},
		}
		return chapters
	}

	if _, err := NewRegistry(base()...); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("missing correct option", func(t *testing.T) {
		chapters := base()
		chapters[0].Quiz.Questions[0].CorrectOptionID = ""
		mustFail(t, chapters, "missing correctOptionId")
	})
	t.Run("dangling correct option", func(t *testing.T) {
		chapters := base()
		chapters[0].Quiz.Questions[0].CorrectOptionID = "z"
		mustFail(t, chapters, "does not name an option")
	})
	t.Run("unknown question type", func(t *testing.T) {
		chapters := base()
		chapters[0].Quiz.Questions[0].Type = "essay"
		mustFail(t, chapters, "unknown question type")
	})
	t.Run("ordering needs full permutation", func(t *testing.T) {
		chapters := base()
		q := &chapters[0].Quiz.Questions[0]
		q.Type = QuestionOrdering
		q.CorrectOrder = []string{"a"}
		mustFail(t, chapters, "correctOrder")
	})
	t.Run("ordering tolerates vestigial correctOptionId", func(t *testing.T) {
		chapters := base()
		q := &chapters[0].Quiz.Questions[0]
		q.Type = QuestionOrdering
		q.CorrectOrder = []string{"b", "a"}
		q.CorrectOptionID = "a"
		if _, err := NewRegistry(chapters...); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	})
}

func TestNewRegistryConcepts(t *testing.T) {
	chapters := validChapters(2)
	chapters[0].ConceptsIntroduced = []string{"routing"}
	chapters[1].ConceptsIntroduced = []string{"routing"}
	mustFail(t, chapters, "already introduced")

	chapters = validChapters(2)
	chapters[0].ConceptsIntroduced = []string{"routing"}
	chapters[1].ConceptsIntroduced = []string{"planning"}
	reg, err := NewRegistry(chapters...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n, ok := reg.ConceptChapter("planning"); !ok || n != 2 {
		t.Errorf("Expected planning -> 2, got %d (ok=%v)", n, ok)
	}
	if _, ok := reg.ConceptChapter("unknown"); ok {
		t.Error("Expected unknown concept to miss")
	}
}
