// Package render turns a chapter's ordered sections into renderable blocks:
// typed style profiles, syntax-highlight-ready code lines, and concept
// tooltip spans. Rendering is pure and synchronous; reveal animation is a
// frontend concern and never gates content availability.
package render

import (
	"strings"

	"github.com/yuin/goldmark"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

// Block is one renderable unit of chapter content, in authored order.
type Block struct {
	Kind  content.SectionType `json:"kind"`
	Title string              `json:"title,omitempty"`

	// Label and IconKey form the small header row for non-code,
	// non-narrative blocks; both empty otherwise.
	Label   string `json:"label,omitempty"`
	IconKey string `json:"iconKey,omitempty"`

	// Tone is the style-profile key the frontend maps to colors.
	Tone string `json:"tone,omitempty"`

	// HTML is the rendered body for textual blocks.
	HTML string `json:"html,omitempty"`

	// Code is set only for code blocks.
	Code *CodeBlock `json:"code,omitempty"`

	ChapterNumber int    `json:"chapterNumber"`
	ChapterColor  string `json:"chapterColor,omitempty"`
}

// CodeBlock is a code listing split into lines with highlight flags.
// Tokenized coloring is left to the frontend highlighter.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Lines    []Line `json:"lines"`
}

// Line is one 1-indexed line of a code block. Highlighted lines get the
// distinguishing tint and left border; all others stay visually neutral.
type Line struct {
	Number      int    `json:"number"`
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// profile is the per-type style selection.
type profile struct {
	label   string
	iconKey string
	tone    string
	header  bool
}

// profileFor is the exhaustive dispatch over section types. Unknown types
// cannot reach rendering — the registry rejects them at load — but the
// narrative profile is the defined fallback regardless.
func profileFor(t content.SectionType) profile {
	switch t {
	case content.SectionNarrative:
		return profile{iconKey: "book-open", tone: "narrative"}
	case content.SectionCode:
		return profile{iconKey: "tool", tone: "code"}
	case content.SectionExplanation:
		return profile{label: "How it works", iconKey: "cpu", tone: "explanation", header: true}
	case content.SectionTip:
		return profile{label: "TIP", iconKey: "lightbulb", tone: "tip", header: true}
	case content.SectionWarning:
		return profile{label: "WARNING", iconKey: "alert-triangle", tone: "warning", header: true}
	case content.SectionExercise:
		return profile{label: "EXERCISE", iconKey: "dumbbell", tone: "exercise", header: true}
	case content.SectionCheckpoint:
		return profile{label: "CHECKPOINT", iconKey: "check-circle", tone: "checkpoint", header: true}
	default:
		return profile{iconKey: "book-open", tone: "narrative"}
	}
}

// Renderer converts sections to blocks. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with the shared Markdown pipeline.
func New() *Renderer {
	return &Renderer{md: newMarkdown()}
}

// Sections renders an ordered sequence of sections in strict input order.
func (r *Renderer) Sections(sections []content.Section, chapterNumber int, chapterColor string) []Block {
	blocks := make([]Block, 0, len(sections))
	for i := range sections {
		blocks = append(blocks, r.section(&sections[i], chapterNumber, chapterColor))
	}
	return blocks
}

// Steps renders tutorial steps; checkpoints become highlighted summaries.
func (r *Renderer) Steps(steps []content.TutorialStep, chapterNumber int, chapterColor string) []Block {
	blocks := make([]Block, 0, len(steps))
	for i := range steps {
		blocks = append(blocks, r.section(&steps[i].Section, chapterNumber, chapterColor))
	}
	return blocks
}

func (r *Renderer) section(s *content.Section, chapterNumber int, chapterColor string) Block {
	p := profileFor(s.Type)
	b := Block{
		Kind:          s.Type,
		Title:         s.Title,
		IconKey:       p.iconKey,
		Tone:          p.tone,
		ChapterNumber: chapterNumber,
		ChapterColor:  chapterColor,
	}
	if p.header {
		b.Label = p.label
	}

	if s.Type == content.SectionCode {
		b.Code = codeBlock(s)
		return b
	}

	body := annotateConcepts(s.Content, s.ConceptIDs(), chapterNumber)
	b.HTML = r.renderMarkdown(body)
	return b
}

// codeBlock splits the listing into 1-indexed lines and marks the ones
// inside the optional highlight range. An empty listing yields an empty
// block; this is silent degradation, not an error.
func codeBlock(s *content.Section) *CodeBlock {
	cb := &CodeBlock{Language: s.Language}
	src := s.Source()
	if src == "" {
		cb.Lines = []Line{}
		return cb
	}
	src = strings.TrimSuffix(src, "\n")
	for i, text := range strings.Split(src, "\n") {
		n := i + 1
		cb.Lines = append(cb.Lines, Line{
			Number:      n,
			Text:        text,
			Highlighted: s.HighlightLines != nil && s.HighlightLines.Contains(n),
		})
	}
	return cb
}
