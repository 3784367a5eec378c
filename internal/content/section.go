package content

// SectionType discriminates the variants of a chapter's narrative body.
type SectionType string

const (
	SectionNarrative   SectionType = "narrative"
	SectionCode        SectionType = "code"
	SectionExplanation SectionType = "explanation"
	SectionTip         SectionType = "tip"
	SectionWarning     SectionType = "warning"
	SectionExercise    SectionType = "exercise"

	// SectionCheckpoint is only valid inside tutorial steps, never in a
	// chapter's Sections slice. The registry enforces this.
	SectionCheckpoint SectionType = "checkpoint"
)

// sectionTypes are the variants allowed in Chapter.Sections.
var sectionTypes = map[SectionType]bool{
	SectionNarrative:   true,
	SectionCode:        true,
	SectionExplanation: true,
	SectionTip:         true,
	SectionWarning:     true,
	SectionExercise:    true,
}

// stepTypes are the variants allowed in tutorial steps.
var stepTypes = map[SectionType]bool{
	SectionNarrative:   true,
	SectionCode:        true,
	SectionExplanation: true,
	SectionTip:         true,
	SectionWarning:     true,
	SectionExercise:    true,
	SectionCheckpoint:  true,
}

// HighlightRange is a 1-indexed inclusive [start, end] line range.
type HighlightRange [2]int

// Start returns the first highlighted line.
func (r HighlightRange) Start() int { return r[0] }

// End returns the last highlighted line.
func (r HighlightRange) End() int { return r[1] }

// Valid reports whether the range is 1-indexed and non-inverted.
func (r HighlightRange) Valid() bool { return r[0] >= 1 && r[0] <= r[1] }

// Contains reports whether the 1-indexed line falls inside the range.
func (r HighlightRange) Contains(line int) bool {
	return line >= r[0] && line <= r[1]
}

// Section is one typed block of a chapter's narrative body. Sections are
// read strictly top to bottom; order carries meaning.
type Section struct {
	Type    SectionType `json:"type"`
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content,omitempty"`

	// Code/Language apply to code sections. Content is accepted as an
	// alternative carrier for the listing; Source() picks whichever is set.
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`

	// Concepts and ConceptsIntroduced both name concept ids referenced by
	// this section; authored data uses either field.
	Concepts           []string `json:"concepts,omitempty"`
	ConceptsIntroduced []string `json:"conceptsIntroduced,omitempty"`

	HighlightLines *HighlightRange `json:"highlightLines,omitempty"`
}

// Source returns the code listing for a code section: Code if set,
// otherwise Content, otherwise empty. An empty listing renders as an empty
// block rather than erroring.
func (s *Section) Source() string {
	if s.Code != "" {
		return s.Code
	}
	return s.Content
}

// ConceptIDs merges Concepts and ConceptsIntroduced, preserving order with
// Concepts first. Duplicates are kept; matching takes the first hit anyway.
func (s *Section) ConceptIDs() []string {
	if len(s.ConceptsIntroduced) == 0 {
		return s.Concepts
	}
	ids := make([]string, 0, len(s.Concepts)+len(s.ConceptsIntroduced))
	ids = append(ids, s.Concepts...)
	ids = append(ids, s.ConceptsIntroduced...)
	return ids
}
