package content

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// IntegrityError describes a content bug detected while building the
// registry: a dangling cross-reference, a malformed range, an unknown
// variant. These are fatal at startup; they must never surface as
// rendering-time failures.
type IntegrityError struct {
	Chapter int
	Field   string
	Detail  string
}

func (e *IntegrityError) Error() string {
	if e.Chapter == 0 {
		return fmt.Sprintf("content integrity: %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("content integrity: chapter %d: %s: %s", e.Chapter, e.Field, e.Detail)
}

func integrityErr(chapter int, field, format string, args ...any) error {
	return &IntegrityError{Chapter: chapter, Field: field, Detail: fmt.Sprintf(format, args...)}
}

// Registry is the immutable, load-time-validated collection of all chapter
// content. It is the single source of truth for rendering and navigation,
// and is safe for concurrent reads once constructed.
type Registry struct {
	byNumber map[int]*Chapter
	ordered  []*Chapter
	concepts map[string]int // concept id -> introducing chapter number
}

// NewRegistry validates the chapters eagerly and builds the registry.
// Every invariant the UI relies on is checked here so that a content bug
// fails startup with a descriptive error instead of crashing deep in a
// render tree.
func NewRegistry(chapters ...*Chapter) (*Registry, error) {
	reg := &Registry{
		byNumber: make(map[int]*Chapter, len(chapters)),
		concepts: make(map[string]int),
	}
	if len(chapters) == 0 {
		return nil, integrityErr(0, "chapters", "registry requires at least one chapter")
	}

	validate := validator.New()
	for _, ch := range chapters {
		if err := validate.Struct(ch); err != nil {
			return nil, integrityErr(ch.Number, "schema", "%v", err)
		}
		if _, dup := reg.byNumber[ch.Number]; dup {
			return nil, integrityErr(ch.Number, "number", "duplicate chapter number")
		}
		reg.byNumber[ch.Number] = ch
		reg.ordered = append(reg.ordered, ch)
	}

	sort.Slice(reg.ordered, func(i, j int) bool {
		return reg.ordered[i].Number < reg.ordered[j].Number
	})

	// Numbers must form a contiguous 1..N sequence.
	for i, ch := range reg.ordered {
		if ch.Number != i+1 {
			return nil, integrityErr(ch.Number, "number", "chapter numbers must be contiguous from 1, got %d at position %d", ch.Number, i+1)
		}
	}

	for _, ch := range reg.ordered {
		if err := reg.validateChain(ch); err != nil {
			return nil, err
		}
		if err := validateSections(ch); err != nil {
			return nil, err
		}
		if err := validateDiagram(ch); err != nil {
			return nil, err
		}
		if err := validateQuiz(ch); err != nil {
			return nil, err
		}
		for _, id := range ch.ConceptsIntroduced {
			if first, seen := reg.concepts[id]; seen {
				return nil, integrityErr(ch.Number, "conceptsIntroduced", "concept %q already introduced by chapter %d", id, first)
			}
			reg.concepts[id] = ch.Number
		}
	}

	return reg, nil
}

// validateChain checks that prev/next references form the single linear
// sequence matching number order.
func (r *Registry) validateChain(ch *Chapter) error {
	first := ch.Number == 1
	last := ch.Number == len(r.ordered)

	switch {
	case first && ch.PrevChapter != nil:
		return integrityErr(ch.Number, "prevChapter", "first chapter must not have a previous chapter")
	case !first && ch.PrevChapter == nil:
		return integrityErr(ch.Number, "prevChapter", "missing previous chapter reference")
	case !first && *ch.PrevChapter != ch.Number-1:
		return integrityErr(ch.Number, "prevChapter", "expected %d, got %d", ch.Number-1, *ch.PrevChapter)
	}

	switch {
	case last && ch.NextChapter != nil:
		return integrityErr(ch.Number, "nextChapter", "last chapter must not have a next chapter")
	case !last && ch.NextChapter == nil:
		return integrityErr(ch.Number, "nextChapter", "missing next chapter reference")
	case !last && *ch.NextChapter != ch.Number+1:
		return integrityErr(ch.Number, "nextChapter", "expected %d, got %d", ch.Number+1, *ch.NextChapter)
	}

	return nil
}

func validateSectionCommon(chapter int, field string, s *Section, allowed map[SectionType]bool) error {
	if !allowed[s.Type] {
		return integrityErr(chapter, field, "unknown section type %q", s.Type)
	}
	if s.HighlightLines != nil && !s.HighlightLines.Valid() {
		return integrityErr(chapter, field, "highlight range [%d,%d] must be 1-indexed with start <= end",
			s.HighlightLines.Start(), s.HighlightLines.End())
	}
	return nil
}

func validateSections(ch *Chapter) error {
	for i := range ch.Sections {
		field := fmt.Sprintf("sections[%d]", i)
		if err := validateSectionCommon(ch.Number, field, &ch.Sections[i], sectionTypes); err != nil {
			return err
		}
	}
	for ti := range ch.Tutorial {
		for si := range ch.Tutorial[ti].Steps {
			field := fmt.Sprintf("tutorial[%d].steps[%d]", ti, si)
			if err := validateSectionCommon(ch.Number, field, &ch.Tutorial[ti].Steps[si].Section, stepTypes); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateDiagram(ch *Chapter) error {
	nodes := make(map[string]bool, len(ch.DiagramNodes))
	for i, n := range ch.DiagramNodes {
		field := fmt.Sprintf("diagramNodes[%d]", i)
		if nodes[n.ID] {
			return integrityErr(ch.Number, field, "duplicate node id %q", n.ID)
		}
		nodes[n.ID] = true
		if n.Data.Role != "" && !nodeRoles[n.Data.Role] {
			return integrityErr(ch.Number, field, "unknown node role %q", n.Data.Role)
		}
		if idx := n.Data.CodeExampleIndex; idx != nil {
			if *idx < 0 || *idx >= len(ch.CodeExamples) {
				return integrityErr(ch.Number, field, "codeExampleIndex %d out of bounds (chapter has %d code examples)", *idx, len(ch.CodeExamples))
			}
		}
		if hl := n.Data.CodeHighlightLines; hl != nil && !hl.Valid() {
			return integrityErr(ch.Number, field, "highlight range [%d,%d] must be 1-indexed with start <= end", hl.Start(), hl.End())
		}
	}
	edges := make(map[string]bool, len(ch.DiagramEdges))
	for i, e := range ch.DiagramEdges {
		field := fmt.Sprintf("diagramEdges[%d]", i)
		if edges[e.ID] {
			return integrityErr(ch.Number, field, "duplicate edge id %q", e.ID)
		}
		edges[e.ID] = true
		if !nodes[e.Source] {
			return integrityErr(ch.Number, field, "edge source %q does not name a node", e.Source)
		}
		if !nodes[e.Target] {
			return integrityErr(ch.Number, field, "edge target %q does not name a node", e.Target)
		}
	}
	return nil
}

func validateQuiz(ch *Chapter) error {
	if ch.Quiz == nil {
		return nil
	}
	seenQ := make(map[string]bool, len(ch.Quiz.Questions))
	for qi := range ch.Quiz.Questions {
		q := &ch.Quiz.Questions[qi]
		field := fmt.Sprintf("quiz.questions[%d]", qi)
		if seenQ[q.ID] {
			return integrityErr(ch.Number, field, "duplicate question id %q", q.ID)
		}
		seenQ[q.ID] = true

		options := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if options[o.ID] {
				return integrityErr(ch.Number, field, "duplicate option id %q", o.ID)
			}
			options[o.ID] = true
		}

		switch q.Kind() {
		case QuestionSingleChoice, QuestionTrueFalse:
			if q.CorrectOptionID == "" {
				return integrityErr(ch.Number, field, "missing correctOptionId")
			}
			if !options[q.CorrectOptionID] {
				return integrityErr(ch.Number, field, "correctOptionId %q does not name an option", q.CorrectOptionID)
			}
		case QuestionOrdering:
			// correctOrder must be a permutation of the option ids.
			// correctOptionId is tolerated on ordering questions but never
			// consulted; authored data carries it inconsistently.
			if len(q.CorrectOrder) != len(q.Options) {
				return integrityErr(ch.Number, field, "correctOrder has %d entries for %d options", len(q.CorrectOrder), len(q.Options))
			}
			seen := make(map[string]bool, len(q.CorrectOrder))
			for _, id := range q.CorrectOrder {
				if !options[id] {
					return integrityErr(ch.Number, field, "correctOrder entry %q does not name an option", id)
				}
				if seen[id] {
					return integrityErr(ch.Number, field, "correctOrder repeats option %q", id)
				}
				seen[id] = true
			}
		default:
			return integrityErr(ch.Number, field, "unknown question type %q", q.Type)
		}
	}
	return nil
}

// Chapter returns the chapter with the given number.
func (r *Registry) Chapter(n int) (*Chapter, bool) {
	ch, ok := r.byNumber[n]
	return ch, ok
}

// Chapters returns all chapters ordered by number. The returned slice is
// shared; callers must not mutate it.
func (r *Registry) Chapters() []*Chapter {
	return r.ordered
}

// Len returns the number of chapters.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// ConceptChapter returns the number of the chapter that introduces the
// given concept id.
func (r *Registry) ConceptChapter(id string) (int, bool) {
	n, ok := r.concepts[id]
	return n, ok
}

// Concepts returns a copy of the concept id -> chapter number index.
func (r *Registry) Concepts() map[string]int {
	out := make(map[string]int, len(r.concepts))
	for id, n := range r.concepts {
		out[id] = n
	}
	return out
}
