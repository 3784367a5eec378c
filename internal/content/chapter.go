// Package content defines the course content model: chapters, their typed
// narrative sections, flow diagrams, tutorials, and quizzes, together with
// the validated registry that owns them.
package content

// Difficulty grades a chapter for the reading-time badge.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ReadingMeta summarizes the effort a chapter asks of the reader.
type ReadingMeta struct {
	EstimatedMinutes int        `json:"estimatedMinutes" validate:"gt=0"`
	Difficulty       Difficulty `json:"difficulty" validate:"oneof=beginner intermediate advanced"`
}

// CodeExample is a standalone, titled code listing attached to a chapter.
// Diagram nodes may point into this list by index.
type CodeExample struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Code        string `json:"code" validate:"required"`
}

// EnhancedCodeExample is a code listing with a step-by-step walkthrough.
type EnhancedCodeExample struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description,omitempty"`
	Language    string           `json:"language,omitempty"`
	Code        string           `json:"code" validate:"required"`
	Walkthrough []WalkthroughStep `json:"walkthrough,omitempty"`
}

// WalkthroughStep explains one region of an enhanced code example.
type WalkthroughStep struct {
	Explanation    string          `json:"explanation" validate:"required"`
	HighlightLines *HighlightRange `json:"highlightLines,omitempty"`
}

// Notebook links a chapter to a runnable companion notebook.
type Notebook struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url" validate:"required,url"`
}

// Chapter is one unit of course content, identified by a sequential number.
// Chapters are constructed once in the catalog and never mutated; all
// cross-references (prev/next chain, diagram edges, quiz option ids,
// code-example indices) are checked by NewRegistry before anything renders.
type Chapter struct {
	Number      int    `json:"number" validate:"gt=0"`
	Title       string `json:"title" validate:"required"`
	ShortTitle  string `json:"shortTitle" validate:"required"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`

	NarrativeIntro string      `json:"narrativeIntro,omitempty"`
	ReadingMeta    ReadingMeta `json:"readingMeta"`

	// ConceptsIntroduced lists the concept ids this chapter defines; sections
	// and diagram nodes reference them for tooltips.
	ConceptsIntroduced []string `json:"conceptsIntroduced,omitempty"`
	KeyConcepts        []string `json:"keyConcepts,omitempty"`
	LearningObjectives []string `json:"learningObjectives,omitempty"`

	Sections []Section `json:"sections"`

	CodeExamples         []CodeExample         `json:"codeExamples,omitempty"`
	EnhancedCodeExamples []EnhancedCodeExample `json:"enhancedCodeExamples,omitempty"`
	Tutorial             []TutorialSection     `json:"tutorial,omitempty"`
	Notebooks            []Notebook            `json:"notebooks,omitempty"`

	DiagramNodes []DiagramNode `json:"diagramNodes,omitempty"`
	DiagramEdges []DiagramEdge `json:"diagramEdges,omitempty"`

	Quiz *Quiz `json:"quiz,omitempty"`

	// PrevChapter/NextChapter are absent only at the ends of the course.
	PrevChapter *int `json:"prevChapter,omitempty"`
	NextChapter *int `json:"nextChapter,omitempty"`
}

// HasQuiz returns true if the chapter carries a quiz with questions.
func (c *Chapter) HasQuiz() bool {
	return c.Quiz != nil && len(c.Quiz.Questions) > 0
}

// IntroducesConcept reports whether id appears in ConceptsIntroduced.
func (c *Chapter) IntroducesConcept(id string) bool {
	for _, cid := range c.ConceptsIntroduced {
		if cid == id {
			return true
		}
	}
	return false
}
