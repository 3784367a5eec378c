package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter01() *content.Chapter {
	return &content.Chapter{
		Number:      1,
		Title:       "Prompt Chaining",
		ShortTitle:  "Prompt Chaining",
		Icon:        "link",
		Color:       "#4f8cff",
		Description: "Break a complex task into a pipeline of focused model calls, each consuming the previous call's output.",
		NarrativeIntro: "Asking a language model to do everything in one shot is the agentic " +
			"equivalent of a thousand-line function. **Prompt chaining** splits the work into " +
			"small, verifiable steps, and the quality difference is immediate.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 12,
			Difficulty:       content.DifficultyBeginner,
		},
		ConceptsIntroduced: []string{"prompt-chaining", "context-passing"},
		KeyConcepts:        []string{"pipeline decomposition", "intermediate outputs", "step validation"},
		LearningObjectives: []string{
			"Decompose a monolithic prompt into a chain of focused calls",
			"Pass structured context between chain steps",
			"Validate intermediate outputs before they propagate",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "Why one prompt is never enough",
				Content: "A single prompt that extracts, transforms, and summarizes will do all " +
					"three badly. With `prompt chaining` each call has one job: the extractor " +
					"returns structured facts, the transformer reshapes them, the summarizer " +
					"writes prose. Errors stay local to the step that made them.",
				Concepts: []string{"prompt-chaining"},
			},
			{
				Type:     content.SectionCode,
				Title:    "A three-step chain",
				Language: "python",
				Code: "def run_chain(document: str) -> str:\n" +
					"    facts = llm.call(EXTRACT_PROMPT, document)\n" +
					"    table = llm.call(TRANSFORM_PROMPT, facts)\n" +
					"    if not validate(table):\n" +
					"        table = llm.call(REPAIR_PROMPT, table)\n" +
					"    return llm.call(SUMMARIZE_PROMPT, table)\n",
				HighlightLines: hl(3, 5),
			},
			{
				Type: content.SectionExplanation,
				Content: "The highlighted lines are the heart of the pattern: the transform step's " +
					"output is checked before the summarizer ever sees it. This is `context passing` " +
					"with a gate, not blind piping.",
				ConceptsIntroduced: []string{"context-passing"},
			},
			{
				Type: content.SectionTip,
				Content: "Keep intermediate outputs in a structured format such as JSON. Prose " +
					"between steps loses information and invites drift.",
			},
			{
				Type: content.SectionWarning,
				Content: "Every extra step adds latency and cost. Chain because the task " +
					"decomposes, not because more calls feel safer.",
			},
			{
				Type: content.SectionExercise,
				Content: "Take a prompt you use today that does two things at once. Split it into " +
					"two chained calls and compare the failure modes.",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Sequential pipeline",
				Description: "A minimal extract-transform-summarize chain.",
				Language:    "python",
				Code: "facts = llm.call(EXTRACT_PROMPT, document)\n" +
					"table = llm.call(TRANSFORM_PROMPT, facts)\n" +
					"summary = llm.call(SUMMARIZE_PROMPT, table)\n",
			},
		},
		EnhancedCodeExamples: []content.EnhancedCodeExample{
			{
				Title:       "Chain with validation gate",
				Description: "Each step's output is validated before the next step consumes it.",
				Language:    "python",
				Code: "for step in chain:\n" +
					"    output = step.run(context)\n" +
					"    if not step.accepts(output):\n" +
					"        output = step.retry(context, output)\n" +
					"    context = context.extend(step.name, output)\n",
				Walkthrough: []content.WalkthroughStep{
					{
						Explanation:    "Steps run strictly in order; the loop owns the shared context.",
						HighlightLines: hl(1, 2),
					},
					{
						Explanation:    "A failed validation triggers one repair attempt before giving up.",
						HighlightLines: hl(3, 4),
					},
					{
						Explanation:    "The context grows monotonically, so later steps can see every prior output.",
						HighlightLines: hl(5, 5),
					},
				},
			},
		},
		Tutorial: []content.TutorialSection{
			{
				Title:       "Build your first chain",
				Description: "Turn a one-shot summarization prompt into a two-step chain.",
				Steps: []content.TutorialStep{
					{Section: content.Section{
						Type:    content.SectionNarrative,
						Content: "Start from a prompt that asks for extraction and summary together.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code:     "facts = llm.call(\"List the key facts as JSON.\", document)\n",
					}},
					{Section: content.Section{
						Type:    content.SectionCheckpoint,
						Content: "Run the extraction step alone and confirm the JSON parses before moving on.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code:     "summary = llm.call(\"Summarize these facts in two sentences.\", facts)\n",
					}},
				},
			},
		},
		Notebooks: []content.Notebook{
			{
				Title:       "Prompt chaining playground",
				Description: "Run the three-step chain against sample documents.",
				URL:         "https://colab.research.google.com/drive/agentic-patterns-ch1",
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "input",
				Position: content.Position{X: 0, Y: 120},
				Data: content.NodeData{
					Label: "Document",
					Role:  content.RoleInput,
				},
			},
			{
				ID:       "extract",
				Position: content.Position{X: 180, Y: 120},
				Data: content.NodeData{
					Label:            "Extract facts",
					Role:             content.RoleProcess,
					DetailedHint:     "First call: pull structured facts out of the raw document.",
					ConceptIDs:       []string{"prompt-chaining"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "transform",
				Position: content.Position{X: 360, Y: 120},
				Data: content.NodeData{
					Label:              "Transform",
					Role:               content.RoleProcess,
					DetailedHint:       "Second call: reshape facts into the target structure.",
					ConceptIDs:         []string{"context-passing"},
					CodeExampleIndex:   intp(0),
					CodeHighlightLines: hl(2, 2),
				},
			},
			{
				ID:       "summary",
				Position: content.Position{X: 540, Y: 120},
				Data: content.NodeData{
					Label: "Summary",
					Role:  content.RoleOutput,
				},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "input", Target: "extract", Animated: true},
			{ID: "e2", Source: "extract", Target: "transform", Label: "facts"},
			{ID: "e3", Source: "transform", Target: "summary", Label: "table"},
		},
		Quiz: &content.Quiz{
			Title:        "Prompt Chaining Check",
			Description:  "Confirm you can spot when and how to chain.",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c1q1",
					Question: "What is the main benefit of splitting one prompt into a chain?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "It always reduces total token cost"},
						{ID: "b", Text: "Errors stay local to the step that produced them"},
						{ID: "c", Text: "The model no longer needs instructions"},
						{ID: "d", Text: "It removes the need for validation"},
					},
					CorrectOptionID: "b",
					Explanation:     "Smaller steps isolate failures and make each output checkable.",
				},
				{
					ID:       "c1q2",
					Question: "Intermediate outputs between chain steps should be unstructured prose.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Structured formats like JSON survive the hand-off; prose drifts.",
				},
				{
					ID:       "c1q3",
					Question: "Order the stages of the chain from this chapter.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "extract", Text: "Extract facts"},
						{ID: "transform", Text: "Transform to table"},
						{ID: "summarize", Text: "Summarize"},
					},
					CorrectOrder: []string{"extract", "transform", "summarize"},
					Explanation:  "Extraction feeds transformation, which feeds the summary.",
				},
			},
		},
		NextChapter: intp(2),
	}
}
