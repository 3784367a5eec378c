package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter07() *content.Chapter {
	return &content.Chapter{
		Number:      7,
		Title:       "Multi-Agent Collaboration",
		ShortTitle:  "Multi-Agent",
		Icon:        "users",
		Color:       "#b32a6a",
		Description: "Compose specialized agents that hand work to each other under an orchestrator.",
		NarrativeIntro: "Once single-agent patterns stop scaling, the next move is a team: " +
			"**multi-agent collaboration** gives each agent a narrow role and an explicit " +
			"protocol for handing work to the next one.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 16,
			Difficulty:       content.DifficultyAdvanced,
		},
		ConceptsIntroduced: []string{"multi-agent", "agent-handoff"},
		KeyConcepts:        []string{"role specialization", "orchestration", "shared memory"},
		LearningObjectives: []string{
			"Split a workflow across agents with narrow roles",
			"Define explicit handoff messages between agents",
			"Decide when an orchestrator beats peer-to-peer handoffs",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "Roles before agents",
				Content: "A `multi-agent` system is a division of labor, and the labor must " +
					"divide cleanly first. Researcher, writer, and reviewer are good roles " +
					"because each has distinct inputs, outputs, and success criteria. Two " +
					"agents with the same role are just one agent with extra latency.",
				Concepts: []string{"multi-agent"},
			},
			{
				Type:     content.SectionCode,
				Title:    "Orchestrated handoffs",
				Language: "python",
				Code: "def run_team(task: str) -> str:\n" +
					"    notes = researcher.run(task)\n" +
					"    draft = writer.run(Handoff(task=task, notes=notes))\n" +
					"    review = reviewer.run(Handoff(task=task, draft=draft))\n" +
					"    if review.approved:\n" +
					"        return draft\n" +
					"    return writer.run(Handoff(task=task, draft=draft, feedback=review.feedback))\n",
				HighlightLines: hl(3, 4),
			},
			{
				Type: content.SectionExplanation,
				Content: "Each `agent handoff` is a typed message carrying exactly what the next " +
					"role needs. The orchestrator owns the sequence; agents never call each " +
					"other directly, which keeps the flow inspectable.",
				ConceptsIntroduced: []string{"agent-handoff"},
			},
			{
				Type: content.SectionTip,
				Content: "Start with an orchestrator. Peer-to-peer handoffs look elegant but " +
					"turn debugging into archaeology; earn them after the roles stabilize.",
			},
			{
				Type: content.SectionWarning,
				Content: "Shared memory between agents is shared mutable state. Prefer passing " +
					"context in the handoff message; reach for a shared store only when the " +
					"context genuinely outlives a single run.",
			},
			{
				Type: content.SectionExercise,
				Content: "Take the reflection loop from chapter 4 and recast it as two agents " +
					"with an orchestrator. What does the handoff message contain in each " +
					"direction?",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Handoff message",
				Description: "The contract between two roles, carrying only what the receiver needs.",
				Language:    "python",
				Code: "@dataclass\n" +
					"class Handoff:\n" +
					"    task: str\n" +
					"    notes: str | None = None\n" +
					"    draft: str | None = None\n" +
					"    feedback: str | None = None\n",
			},
		},
		Tutorial: []content.TutorialSection{
			{
				Title:       "Assemble a three-role team",
				Description: "Build researcher, writer, and reviewer around one orchestrator.",
				Steps: []content.TutorialStep{
					{Section: content.Section{
						Type:    content.SectionNarrative,
						Content: "Write one system prompt per role. Keep each under ten lines.",
					}},
					{Section: content.Section{
						Type:     content.SectionCode,
						Language: "python",
						Code:     "researcher = Agent(RESEARCHER_PROMPT)\nwriter = Agent(WRITER_PROMPT)\nreviewer = Agent(REVIEWER_PROMPT)\n",
					}},
					{Section: content.Section{
						Type:    content.SectionCheckpoint,
						Content: "Run the researcher alone on a sample task and confirm its notes are usable input for the writer.",
					}},
					{Section: content.Section{
						Type:    content.SectionExercise,
						Content: "Add a second review round. Where does the round counter live: in the orchestrator or in the reviewer?",
					}},
				},
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "task",
				Position: content.Position{X: 0, Y: 160},
				Data:     content.NodeData{Label: "Task", Role: content.RoleInput},
			},
			{
				ID:       "orchestrator",
				Position: content.Position{X: 180, Y: 160},
				Data: content.NodeData{
					Label:        "Orchestrator",
					Role:         content.RoleProcess,
					DetailedHint: "Owns the sequence; agents never call each other directly.",
					ConceptIDs:   []string{"multi-agent"},
				},
			},
			{
				ID:       "researcher",
				Position: content.Position{X: 380, Y: 40},
				Data:     content.NodeData{Label: "Researcher", Role: content.RoleAgent},
			},
			{
				ID:       "writer",
				Position: content.Position{X: 380, Y: 160},
				Data: content.NodeData{
					Label:            "Writer",
					Role:             content.RoleAgent,
					ConceptIDs:       []string{"agent-handoff"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "reviewer",
				Position: content.Position{X: 380, Y: 280},
				Data:     content.NodeData{Label: "Reviewer", Role: content.RoleAgent},
			},
			{
				ID:       "memory",
				Position: content.Position{X: 180, Y: 320},
				Data: content.NodeData{
					Label:        "Shared context",
					Role:         content.RoleMemory,
					DetailedHint: "Only for context that outlives a single run; prefer handoff messages.",
				},
			},
			{
				ID:       "result",
				Position: content.Position{X: 580, Y: 160},
				Data:     content.NodeData{Label: "Approved draft", Role: content.RoleOutput},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "task", Target: "orchestrator", Animated: true},
			{ID: "e2", Source: "orchestrator", Target: "researcher", Label: "handoff"},
			{ID: "e3", Source: "orchestrator", Target: "writer", Label: "handoff"},
			{ID: "e4", Source: "orchestrator", Target: "reviewer", Label: "handoff"},
			{ID: "e5", Source: "orchestrator", Target: "memory"},
			{ID: "e6", Source: "orchestrator", Target: "result", Label: "approved"},
		},
		Quiz: &content.Quiz{
			Title:        "Multi-Agent Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c7q1",
					Question: "What makes a role worth giving to a separate agent?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "It runs on a different model"},
						{ID: "b", Text: "It has distinct inputs, outputs, and success criteria"},
						{ID: "c", Text: "It is the slowest part of the workflow"},
						{ID: "d", Text: "It produces the most tokens"},
					},
					CorrectOptionID: "b",
					Explanation:     "Roles that do not divide cleanly just add latency to one agent's job.",
				},
				{
					ID:       "c7q2",
					Question: "In an orchestrated team, agents should call each other directly when convenient.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Direct calls bypass the orchestrator and make the flow impossible to inspect.",
				},
				{
					ID:       "c7q3",
					Question: "Order the team workflow from this chapter.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "research", Text: "Researcher gathers notes"},
						{ID: "write", Text: "Writer drafts from the notes"},
						{ID: "review", Text: "Reviewer grades the draft"},
						{ID: "deliver", Text: "Orchestrator returns the approved draft"},
					},
					CorrectOrder: []string{"research", "write", "review", "deliver"},
					Explanation:  "Each handoff feeds the next role; the orchestrator closes the loop.",
				},
			},
		},
		PrevChapter: intp(6),
	}
}
