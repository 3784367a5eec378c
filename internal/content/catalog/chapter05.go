package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter05() *content.Chapter {
	return &content.Chapter{
		Number:      5,
		Title:       "Tool Use",
		ShortTitle:  "Tool Use",
		Icon:        "tool",
		Color:       "#2a7db3",
		Description: "Give the model typed functions it can call, and close the loop by feeding results back.",
		NarrativeIntro: "A model that can only write text answers from memory. **Tool use** " +
			"hands it typed functions for the things memory cannot do: look up live data, run " +
			"code, change state in the real system.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 15,
			Difficulty:       content.DifficultyIntermediate,
		},
		ConceptsIntroduced: []string{"tool-use", "function-calling"},
		KeyConcepts:        []string{"tool schemas", "result feedback", "side-effect safety"},
		LearningObjectives: []string{
			"Define tool schemas with tight parameter types",
			"Run the call-execute-feedback loop",
			"Separate read-only tools from tools with side effects",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "Tools are typed contracts",
				Content: "`Function calling` works because the tool schema is a contract: name, " +
					"parameters, types, description. The model fills in arguments; your code " +
					"validates and executes. The looser the schema, the more creative the " +
					"arguments, and creative arguments are bugs.",
				Concepts: []string{"function-calling"},
			},
			{
				Type:     content.SectionCode,
				Title:    "The tool loop",
				Language: "python",
				Code: "messages = [user_message]\n" +
					"while True:\n" +
					"    reply = llm.call(messages, tools=TOOLS)\n" +
					"    if not reply.tool_calls:\n" +
					"        return reply.text\n" +
					"    for call in reply.tool_calls:\n" +
					"        result = execute(call.name, call.arguments)\n" +
					"        messages.append(tool_result(call.id, result))\n",
				HighlightLines: hl(6, 8),
			},
			{
				Type: content.SectionExplanation,
				Content: "The highlighted lines close the loop: every `tool use` result goes back " +
					"into the conversation so the model can decide whether it is done or needs " +
					"another call. A tool call whose result never returns is a dead end.",
				ConceptsIntroduced: []string{"tool-use"},
			},
			{
				Type: content.SectionTip,
				Content: "Tool descriptions are prompts. Write them for the model: say when to " +
					"use the tool, not just what it does.",
			},
			{
				Type: content.SectionWarning,
				Content: "Tools that mutate state need a confirmation gate or an allowlist. A " +
					"model that can call delete_records with free-form arguments will, " +
					"eventually, call it wrong.",
			},
			{
				Type: content.SectionExercise,
				Content: "Design a schema for a get_weather tool. Decide which parameters are " +
					"required, which are enums, and what the error result looks like.",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Tool schema",
				Description: "A read-only lookup tool with constrained parameters.",
				Language:    "json",
				Code: "{\n" +
					"  \"name\": \"get_weather\",\n" +
					"  \"description\": \"Current weather for a city. Use for any question about present conditions.\",\n" +
					"  \"parameters\": {\n" +
					"    \"city\": {\"type\": \"string\"},\n" +
					"    \"units\": {\"type\": \"string\", \"enum\": [\"metric\", \"imperial\"]}\n" +
					"  },\n" +
					"  \"required\": [\"city\"]\n" +
					"}\n",
			},
		},
		Tutorial: []content.TutorialSection{
			{
				Title:       "Wire a first tool",
				Description: "Add one read-only tool and trace the loop end to end.",
				Steps: []content.TutorialStep{
					{Section: content.Section{
						Type:    content.SectionNarrative,
						Content: "Register the get_weather schema and ask a question that needs it.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code:     "reply = llm.call([question], tools=[GET_WEATHER])\n",
					}},
					{Section: content.Section{
						Type:    content.SectionCheckpoint,
						Content: "Inspect reply.tool_calls. The arguments should match the schema exactly before you execute anything.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code: "result = get_weather(**call.arguments)\n" +
							"final = llm.call(messages + [tool_result(call.id, result)])\n",
					}},
				},
			},
		},
		Notebooks: []content.Notebook{
			{
				Title: "Tool use lab",
				URL:   "https://colab.research.google.com/drive/agentic-patterns-ch5",
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "user",
				Position: content.Position{X: 0, Y: 120},
				Data:     content.NodeData{Label: "User question", Role: content.RoleInput},
			},
			{
				ID:       "model",
				Position: content.Position{X: 200, Y: 120},
				Data:     content.NodeData{Label: "Model", Role: content.RoleAgent, ConceptIDs: []string{"function-calling"}},
			},
			{
				ID:       "tool",
				Position: content.Position{X: 400, Y: 40},
				Data: content.NodeData{
					Label:            "get_weather",
					Role:             content.RoleTool,
					DetailedHint:     "Read-only lookup; arguments validated against the schema before execution.",
					ConceptIDs:       []string{"tool-use"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "answer",
				Position: content.Position{X: 400, Y: 200},
				Data:     content.NodeData{Label: "Answer", Role: content.RoleOutput},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "user", Target: "model", Animated: true},
			{ID: "e2", Source: "model", Target: "tool", Label: "tool call"},
			{ID: "e3", Source: "tool", Target: "model", Label: "result"},
			{ID: "e4", Source: "model", Target: "answer", Label: "no more calls"},
		},
		Quiz: &content.Quiz{
			Title:        "Tool Use Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c5q1",
					Question: "What closes the tool-use loop?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "Executing the tool"},
						{ID: "b", Text: "Feeding the tool result back into the conversation"},
						{ID: "c", Text: "Logging the call"},
						{ID: "d", Text: "Validating the arguments"},
					},
					CorrectOptionID: "b",
					Explanation:     "The model needs the result to decide its next step; execution alone is a dead end.",
				},
				{
					ID:       "c5q2",
					Question: "Tools that mutate state deserve the same handling as read-only tools.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Side-effecting tools need confirmation gates or allowlists.",
				},
				{
					ID:       "c5q3",
					Question: "Order one iteration of the tool loop.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "call", Text: "Model emits a tool call"},
						{ID: "validate", Text: "Validate arguments against the schema"},
						{ID: "execute", Text: "Execute the tool"},
						{ID: "feedback", Text: "Append the result to the conversation"},
					},
					CorrectOrder: []string{"call", "validate", "execute", "feedback"},
					Explanation:  "Validation sits between the model's arguments and your execution.",
				},
			},
		},
		PrevChapter: intp(4),
		NextChapter: intp(6),
	}
}
