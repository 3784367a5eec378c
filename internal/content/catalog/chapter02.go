package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter02() *content.Chapter {
	return &content.Chapter{
		Number:      2,
		Title:       "Routing",
		ShortTitle:  "Routing",
		Icon:        "split",
		Color:       "#2e7d4f",
		Description: "Classify an incoming request and dispatch it to the handler built for that kind of work.",
		NarrativeIntro: "Not every request deserves the same pipeline. **Routing** puts a " +
			"classifier in front of specialized handlers so refund requests, bug reports, and " +
			"small talk each get the treatment they need.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 10,
			Difficulty:       content.DifficultyBeginner,
		},
		ConceptsIntroduced: []string{"routing", "intent-classification"},
		KeyConcepts:        []string{"intent taxonomy", "fallback routes", "confidence thresholds"},
		LearningObjectives: []string{
			"Design an intent taxonomy for a routed system",
			"Dispatch requests to specialized handlers",
			"Handle low-confidence classifications with a fallback route",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "One front door, many rooms",
				Content: "A router is a cheap, fast model call whose only output is a label. " +
					"`Routing` trades one large general prompt for several small expert ones, " +
					"and the classifier picks which expert runs.",
				Concepts: []string{"routing"},
			},
			{
				Type:     content.SectionCode,
				Title:    "Classifier plus dispatch table",
				Language: "python",
				Code: "ROUTES = {\n" +
					"    \"refund\": handle_refund,\n" +
					"    \"bug_report\": handle_bug,\n" +
					"    \"other\": handle_general,\n" +
					"}\n" +
					"\n" +
					"def route(message: str) -> str:\n" +
					"    intent = classify(message)\n" +
					"    handler = ROUTES.get(intent.label, handle_general)\n" +
					"    if intent.confidence < 0.6:\n" +
					"        handler = handle_general\n" +
					"    return handler(message)\n",
				HighlightLines: hl(10, 11),
			},
			{
				Type: content.SectionExplanation,
				Content: "The highlighted guard is what separates a router from a coin flip: " +
					"`intent classification` below the confidence threshold falls back to the " +
					"general handler instead of guessing.",
				ConceptsIntroduced: []string{"intent-classification"},
			},
			{
				Type: content.SectionTip,
				Content: "Keep the label set small and mutually exclusive. Ten crisp intents " +
					"beat forty overlapping ones.",
			},
			{
				Type: content.SectionWarning,
				Content: "Never let the classifier invent labels. Constrain its output to the " +
					"known taxonomy and treat anything else as the fallback route.",
			},
			{
				Type: content.SectionExercise,
				Content: "Sketch an intent taxonomy for your own support inbox. Which intents " +
					"genuinely need different handling?",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Dispatch table",
				Description: "Intent labels map directly to handler functions.",
				Language:    "python",
				Code: "intent = classify(message)\n" +
					"handler = ROUTES.get(intent.label, handle_general)\n" +
					"return handler(message)\n",
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "request",
				Position: content.Position{X: 0, Y: 160},
				Data:     content.NodeData{Label: "Request", Role: content.RoleInput},
			},
			{
				ID:       "classifier",
				Position: content.Position{X: 180, Y: 160},
				Data: content.NodeData{
					Label:            "Classifier",
					Role:             content.RoleDecision,
					DetailedHint:     "A small, fast call that only emits an intent label and confidence.",
					ConceptIDs:       []string{"intent-classification"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "refund",
				Position: content.Position{X: 380, Y: 60},
				Data:     content.NodeData{Label: "Refund handler", Role: content.RoleProcess},
			},
			{
				ID:       "bug",
				Position: content.Position{X: 380, Y: 160},
				Data:     content.NodeData{Label: "Bug handler", Role: content.RoleProcess},
			},
			{
				ID:       "general",
				Position: content.Position{X: 380, Y: 260},
				Data: content.NodeData{
					Label:        "General handler",
					Role:         content.RoleProcess,
					DetailedHint: "The fallback route for unknown or low-confidence intents.",
				},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "request", Target: "classifier", Animated: true},
			{ID: "e2", Source: "classifier", Target: "refund", Label: "refund"},
			{ID: "e3", Source: "classifier", Target: "bug", Label: "bug_report"},
			{ID: "e4", Source: "classifier", Target: "general", Label: "other / low confidence"},
		},
		Quiz: &content.Quiz{
			Title:        "Routing Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c2q1",
					Question: "What should happen when the classifier's confidence is below the threshold?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "Pick the highest-scoring label anyway"},
						{ID: "b", Text: "Ask the user to rephrase and retry forever"},
						{ID: "c", Text: "Fall back to the general handler"},
						{ID: "d", Text: "Drop the request"},
					},
					CorrectOptionID: "c",
					Explanation:     "Low-confidence labels route to the fallback handler rather than a guess.",
				},
				{
					ID:       "c2q2",
					Question: "A router should allow the classifier to emit labels outside the known taxonomy.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Unknown labels are content bugs waiting to happen; constrain the output.",
				},
				{
					ID:       "c2q3",
					Question: "Order the stages of a routed request.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "receive", Text: "Receive the request"},
						{ID: "classify", Text: "Classify intent"},
						{ID: "dispatch", Text: "Dispatch to handler"},
						{ID: "respond", Text: "Return the response"},
					},
					CorrectOrder: []string{"receive", "classify", "dispatch", "respond"},
					Explanation:  "Classification always precedes dispatch.",
				},
			},
		},
		PrevChapter: intp(1),
		NextChapter: intp(3),
	}
}
