package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter03() *content.Chapter {
	return &content.Chapter{
		Number:      3,
		Title:       "Parallelization",
		ShortTitle:  "Parallelization",
		Icon:        "layers",
		Color:       "#b3622a",
		Description: "Fan independent subtasks out to concurrent model calls and merge their results.",
		NarrativeIntro: "When subtasks do not depend on each other, running them one after " +
			"another is pure waste. **Parallelization** fans the work out, waits for all " +
			"branches, and aggregates.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 14,
			Difficulty:       content.DifficultyIntermediate,
		},
		ConceptsIntroduced: []string{"parallelization", "fan-out"},
		KeyConcepts:        []string{"independent subtasks", "aggregation", "partial failure"},
		LearningObjectives: []string{
			"Identify subtasks with no data dependencies",
			"Fan work out to concurrent calls and collect results",
			"Design aggregation that tolerates a failed branch",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "Independence is the license to parallelize",
				Content: "`Parallelization` only applies when branches share no data. Reviewing " +
					"a document for tone, accuracy, and formatting are three independent reads " +
					"of the same input; chain them and you triple your latency for nothing.",
				Concepts: []string{"parallelization"},
			},
			{
				Type:     content.SectionCode,
				Title:    "Fan-out, then gather",
				Language: "python",
				Code: "async def review(document: str) -> Review:\n" +
					"    tone, facts, format_ = await asyncio.gather(\n" +
					"        check_tone(document),\n" +
					"        check_facts(document),\n" +
					"        check_format(document),\n" +
					"        return_exceptions=True,\n" +
					"    )\n" +
					"    return aggregate(tone, facts, format_)\n",
				HighlightLines: hl(2, 7),
			},
			{
				Type: content.SectionExplanation,
				Content: "The `fan-out` happens in one gather call. Note `return_exceptions=True`: " +
					"a single failed branch becomes data for the aggregator instead of sinking " +
					"the whole review.",
				ConceptsIntroduced: []string{"fan-out"},
			},
			{
				Type: content.SectionTip,
				Content: "Give every branch the same immutable input. Shared mutable state " +
					"between branches reintroduces the dependency you just removed.",
			},
			{
				Type: content.SectionWarning,
				Content: "Aggregation is where parallel designs fail quietly. Decide up front " +
					"what the merged result looks like when one branch errors or times out.",
			},
			{
				Type: content.SectionExercise,
				Content: "Take the chain you built in the previous chapter. Which of its steps " +
					"are actually independent and could run in parallel?",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Concurrent review branches",
				Description: "Three independent checks over the same document.",
				Language:    "python",
				Code: "results = await asyncio.gather(\n" +
					"    check_tone(document),\n" +
					"    check_facts(document),\n" +
					"    check_format(document),\n" +
					")\n",
			},
		},
		Tutorial: []content.TutorialSection{
			{
				Title:       "Parallelize a review",
				Description: "Convert a sequential three-check review into a concurrent one.",
				Steps: []content.TutorialStep{
					{Section: content.Section{
						Type:    content.SectionNarrative,
						Content: "Confirm the three checks read the document but never each other's output.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code:     "tone, facts, fmt = await asyncio.gather(check_tone(d), check_facts(d), check_format(d))\n",
					}},
					{Section: content.Section{
						Type:    content.SectionCheckpoint,
						Content: "Time both versions on the same document. The concurrent one should approach the latency of the slowest single check.",
					}},
				},
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "doc",
				Position: content.Position{X: 0, Y: 160},
				Data:     content.NodeData{Label: "Document", Role: content.RoleInput},
			},
			{
				ID:       "tone",
				Position: content.Position{X: 220, Y: 40},
				Data:     content.NodeData{Label: "Tone check", Role: content.RoleProcess, ConceptIDs: []string{"fan-out"}},
			},
			{
				ID:       "facts",
				Position: content.Position{X: 220, Y: 160},
				Data:     content.NodeData{Label: "Fact check", Role: content.RoleProcess},
			},
			{
				ID:       "format",
				Position: content.Position{X: 220, Y: 280},
				Data:     content.NodeData{Label: "Format check", Role: content.RoleProcess},
			},
			{
				ID:       "merge",
				Position: content.Position{X: 440, Y: 160},
				Data: content.NodeData{
					Label:            "Aggregator",
					Role:             content.RoleOutput,
					DetailedHint:     "Merges branch results; must define behavior for a failed branch.",
					CodeExampleIndex: intp(0),
				},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "doc", Target: "tone", Animated: true},
			{ID: "e2", Source: "doc", Target: "facts", Animated: true},
			{ID: "e3", Source: "doc", Target: "format", Animated: true},
			{ID: "e4", Source: "tone", Target: "merge"},
			{ID: "e5", Source: "facts", Target: "merge"},
			{ID: "e6", Source: "format", Target: "merge"},
		},
		Quiz: &content.Quiz{
			Title:        "Parallelization Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c3q1",
					Question: "Which property makes subtasks safe to run in parallel?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "They use the same model"},
						{ID: "b", Text: "They have no data dependencies on each other"},
						{ID: "c", Text: "They are all short"},
						{ID: "d", Text: "They share a mutable scratchpad"},
					},
					CorrectOptionID: "b",
					Explanation:     "Independence is the precondition; everything else is optimization.",
				},
				{
					ID:       "c3q2",
					Question: "A single failed branch should abort the entire parallel operation.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Well-designed aggregation treats a failed branch as data, not as a fatal error.",
				},
			},
		},
		PrevChapter: intp(2),
		NextChapter: intp(4),
	}
}
