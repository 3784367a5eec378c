package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

func chapter06() *content.Chapter {
	return &content.Chapter{
		Number:      6,
		Title:       "Planning",
		ShortTitle:  "Planning",
		Icon:        "compass",
		Color:       "#b3a12a",
		Description: "Have the agent produce an explicit plan before acting, then execute and adapt it step by step.",
		NarrativeIntro: "Acting without a plan means every step is improvised. **Planning** " +
			"separates deciding what to do from doing it: the agent writes the plan down, " +
			"executes it step by step, and revises when reality disagrees.",
		ReadingMeta: content.ReadingMeta{
			EstimatedMinutes: 14,
			Difficulty:       content.DifficultyAdvanced,
		},
		ConceptsIntroduced: []string{"planning", "task-decomposition"},
		KeyConcepts:        []string{"explicit plans", "plan revision", "step budgets"},
		LearningObjectives: []string{
			"Prompt for an explicit, inspectable plan before execution",
			"Decompose a goal into ordered, verifiable steps",
			"Revise a plan mid-execution when a step fails",
		},
		Sections: []content.Section{
			{
				Type:  content.SectionNarrative,
				Title: "Write the plan down",
				Content: "The value of `planning` is that the plan is an artifact. You can " +
					"inspect it, bound it, and diff it after a revision. `Task decomposition` " +
					"turns a vague goal into steps concrete enough that each one has a " +
					"completion test.",
				Concepts: []string{"planning", "task-decomposition"},
			},
			{
				Type:     content.SectionCode,
				Title:    "Plan, execute, adapt",
				Language: "python",
				Code: "plan = llm.call(PLAN_PROMPT, goal)\n" +
					"for step in plan.steps:\n" +
					"    outcome = execute(step)\n" +
					"    if outcome.failed:\n" +
					"        plan = llm.call(REPLAN_PROMPT, goal, plan, outcome)\n" +
					"        continue\n" +
					"    if plan.goal_reached(outcome):\n" +
					"        break\n",
				HighlightLines: hl(4, 6),
			},
			{
				Type: content.SectionExplanation,
				Content: "Replanning is scoped: the new plan sees the goal, the old plan, and the " +
					"failed outcome. It repairs the remainder instead of starting over, which " +
					"keeps completed work intact.",
			},
			{
				Type: content.SectionTip,
				Content: "Cap the number of replans the same way reflection caps revision " +
					"rounds. Two replans that both fail usually mean the goal is wrong.",
			},
			{
				Type: content.SectionWarning,
				Content: "Plans with vague steps like \"research the topic\" cannot fail, which " +
					"means they cannot succeed either. Every step needs a completion test.",
			},
			{
				Type: content.SectionExercise,
				Content: "Decompose \"organize a team offsite\" into five steps, each with a " +
					"completion test. Which step is most likely to force a replan?",
			},
		},
		CodeExamples: []content.CodeExample{
			{
				Title:       "Plan schema",
				Description: "A plan is structured data, not prose.",
				Language:    "json",
				Code: "{\n" +
					"  \"goal\": \"Publish the quarterly report\",\n" +
					"  \"steps\": [\n" +
					"    {\"id\": 1, \"action\": \"gather_metrics\", \"done_when\": \"all four dashboards exported\"},\n" +
					"    {\"id\": 2, \"action\": \"draft_summary\", \"done_when\": \"draft under 500 words\"},\n" +
					"    {\"id\": 3, \"action\": \"review\", \"done_when\": \"two approvals recorded\"}\n" +
					"  ]\n" +
					"}\n",
			},
		},
		DiagramNodes: []content.DiagramNode{
			{
				ID:       "goal",
				Position: content.Position{X: 0, Y: 120},
				Data:     content.NodeData{Label: "Goal", Role: content.RoleInput},
			},
			{
				ID:       "planner",
				Position: content.Position{X: 180, Y: 120},
				Data: content.NodeData{
					Label:            "Planner",
					Role:             content.RoleAgent,
					DetailedHint:     "Emits the plan as structured steps with completion tests.",
					ConceptIDs:       []string{"planning", "task-decomposition"},
					CodeExampleIndex: intp(0),
				},
			},
			{
				ID:       "executor",
				Position: content.Position{X: 360, Y: 120},
				Data:     content.NodeData{Label: "Executor", Role: content.RoleProcess},
			},
			{
				ID:       "check",
				Position: content.Position{X: 540, Y: 120},
				Data:     content.NodeData{Label: "Step check", Role: content.RoleDecision},
			},
			{
				ID:       "done",
				Position: content.Position{X: 720, Y: 120},
				Data:     content.NodeData{Label: "Goal reached", Role: content.RoleOutput},
			},
		},
		DiagramEdges: []content.DiagramEdge{
			{ID: "e1", Source: "goal", Target: "planner", Animated: true},
			{ID: "e2", Source: "planner", Target: "executor", Label: "next step"},
			{ID: "e3", Source: "executor", Target: "check", Label: "outcome"},
			{ID: "e4", Source: "check", Target: "planner", Label: "failed: replan"},
			{ID: "e5", Source: "check", Target: "done", Label: "goal reached"},
		},
		Quiz: &content.Quiz{
			Title:        "Planning Check",
			PassingScore: 70,
			Questions: []content.Question{
				{
					ID:       "c6q1",
					Question: "What makes a plan step verifiable?",
					Type:     content.QuestionSingleChoice,
					Options: []content.Option{
						{ID: "a", Text: "It is written in the imperative mood"},
						{ID: "b", Text: "It has an explicit completion test"},
						{ID: "c", Text: "It is shorter than one sentence"},
						{ID: "d", Text: "It names a tool"},
					},
					CorrectOptionID: "b",
					Explanation:     "A step without a completion test can neither fail nor succeed.",
				},
				{
					ID:       "c6q2",
					Question: "When a step fails, the agent should regenerate the entire plan from scratch.",
					Type:     content.QuestionTrueFalse,
					Options: []content.Option{
						{ID: "true", Text: "True"},
						{ID: "false", Text: "False"},
					},
					CorrectOptionID: "false",
					Explanation:     "Scoped replanning repairs the remainder and keeps completed work.",
				},
				{
					ID:       "c6q3",
					Question: "Order the phases of the plan-execute loop.",
					Type:     content.QuestionOrdering,
					Options: []content.Option{
						{ID: "plan", Text: "Produce the plan"},
						{ID: "execute", Text: "Execute the next step"},
						{ID: "check", Text: "Check the outcome"},
						{ID: "adapt", Text: "Replan if the step failed"},
					},
					CorrectOrder: []string{"plan", "execute", "check", "adapt"},
					Explanation:  "Checking precedes adaptation; only failed outcomes trigger a replan.",
				},
			},
		},
		PrevChapter: intp(5),
		NextChapter: intp(7),
	}
}
