package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter04() *content.Chapter {
	return &content.Chapter{
		Number:      4,
		Title:       "Reflection",
		ShortTitle:  "Reflection",
		Icon:        "repeat",
		Color:       "#6a4fb3",
		Description: "Let the model critique its own output and revise until the critique passes.",
		NarrativeIntro: "First drafts are first drafts, even for a model. **Reflection** adds a " +
			"critic pass that scores the draft against explicit criteria, then feeds the " +
			"critique back for a revision.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 13,
			Difficulty:       content.DifficultyIntermediate,
		},
		ConceptsIntroduced: []string{"reflection", "self-critique"},
		KeyConcepts:        []string{"critic prompts", "revision loops", "stopping criteria"},
		LearningObjectives: []string{
			"Write a critic prompt with explicit, checkable criteria",
			"Build a bounded generate-critique-revise loop",
			"Choose stopping criteria that prevent endless polishing",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "The critic is a separate call",
				Content: "`Reflection` works because the critic sees the draft as input, not as " +
					"its own output. A fresh call with a rubric finds problems the generating " +
					"call is blind to. The rubric matters more than the loop: vague criteria " +
					"produce vague critiques.",
				Concepts: []string{"reflection"},
			},
			{
				Type:     content.SectionCode,
				Title:    "Bounded revision loop",
				Language: "python",
				Code: "draft = llm.call(GENERATE_PROMPT, task)\n" +
					"for _ in range(MAX_ROUNDS):\n" +
					"    critique = llm.call(CRITIC_PROMPT, draft)\n" +
					"    if critique.passed:\n" +
					"        break\n" +
					"    draft = llm.call(REVISE_PROMPT, draft, critique)\n" +
					"return draft\n",
				HighlightLines: hl(2, 5),
			},
			{
				Type: content.SectionExplanation,
				Content: "Two stopping conditions guard the loop: the critique passing, and the " +
					"round cap. `Self-critique` without a cap polishes forever, and round five " +
					"is rarely better than round two.",
				ConceptsIntroduced: []string{"self-critique"},
			},
			{
				Type: content.SectionTip,
				Content: "Make the critic output structured verdicts per criterion, not an " +
					"overall vibe. The reviser needs to know which criterion failed.",
			},
			{
				Type: content.SectionWarning,
				Content: "A critic that shares the generator's prompt inherits its blind spots. " +
					"Give the critic its own rubric and nothing else.",
			},
			{
				Type: content.SectionExercise,
				Content: "Write a three-criterion rubric for an email draft: correctness, tone, " +
					"length. Run one reflection round by hand and note what the critic caught.",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Critic rubric",
				Description: "The critic grades per criterion and returns structured verdicts.",
				Language:    "python",
				Code: "CRITIC_PROMPT = \"\"\"Grade the draft on each criterion as pass/fail:\n" +
					"1. Every claim is supported by the source.\n" +
					"2. Tone is neutral and professional.\n" +
					"3. Under 200 words.\n" +
					"Return JSON: {\\\"verdicts\\\": [...], \\\"passed\\\": bool}\"\"\"\n",
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "task",
				Position: content.Position{X: 0, Y: 120},
				Data:     content.NodeData{Label: "Task", Role: content.RoleInput},
			},
			{
				ID:       "generate",
				Position: content.Position{X: 180, Y: 120},
				Data:     content.NodeData{Label: "Generator", Role: content.RoleAgent, ConceptIDs: []string{"reflection"}},
			},
			{
				ID:       "critic",
				Position: content.Position{X: 360, Y: 120},
				Data: content.NodeData{
					Label:            "Critic",
					Role:             content.RoleDecision,
					DetailedHint:     "A separate call with its own rubric; grades the draft per criterion.",
					ConceptIDs:       []string{"self-critique"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "final",
				Position: content.Position{X: 540, Y: 120},
				Data:     content.NodeData{Label: "Final output", Role: content.RoleOutput},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "task", Target: "generate", Animated: true},
			{ID: "e2", Source: "generate", Target: "critic", Label: "draft"},
			{ID: "e3", Source: "critic", Target: "generate", Label: "critique (failed)"},
			{ID: "e4", Source: "critic", Target: "final", Label: "passed"},
		},
		Quiz: &content.Quiz{
			Title:        "Reflection Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c4q1",
					Question: "Why is the critic a separate model call rather than part of the generator prompt?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "It is cheaper"},
						{ID: "b", Text: "The critic sees the draft as input and avoids the generator's blind spots"},
						{ID: "c", Text: "Generators cannot output JSON"},
						{ID: "d", Text: "It makes the loop run faster"},
					},
					CorrectOptionID: "b",
					Explanation:     "A fresh call with its own rubric evaluates instead of rationalizing.",
				},
				{
					ID:       "c4q2",
					Question: "A reflection loop needs a maximum round count even when the critique can pass.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "true",
					Explanation:     "Without a cap, a never-satisfied critic polishes forever.",
				},
				{
					ID:       "c4q3",
					Question: "Order one round of the reflection loop.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "generate", Text: "Generate a draft"},
						{ID: "critique", Text: "Critique against the rubric"},
						{ID: "revise", Text: "Revise using the critique"},
					},
					CorrectOrder: []string{"generate", "critique", "revise"},
					Explanation:  "Draft, grade, revise; then the loop re-enters at critique.",
				},
			},
		},
		PrevChapter: intp(3),
		NextChapter: intp(5),
	}
}
