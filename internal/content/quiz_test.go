package content

import "testing"

func sampleQuiz() *Quiz {
	return &Quiz{
		Title:        "Check",
		PassingScore: 70,
		Questions: []Question{
			{
				ID:       "q1",
				Question: "Pick b",
				Options:  []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},

				CorrectOptionID: "b",
				Explanation:     "b was right",
			},
			{
				ID:       "q2",
				Question: "True?",
				Type:     QuestionTrueFalse,
				Options:  []Option{{ID: "true", Text: "True"}, {ID: "false", Text: "False"}},

				CorrectOptionID: "true",
			},
			{
				ID:       "q3",
				Question: "Order",
				Type:     QuestionOrdering,
				Options:  []Option{{ID: "x", Text: "X"}, {ID: "y", Text: "Y"}, {ID: "z", Text: "Z"}},

				CorrectOrder: []string{"x", "y", "z"},
			},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	result := sampleQuiz().Grade(map[string]Answer{
		"q1": {SelectedOptionID: "b"},
		"q2": {SelectedOptionID: "true"},
		"q3": {Order: []string{"x", "y", "z"}},
	})
	if result.Score != 100 || !result.Passed {
		t.Errorf("Expected 100/passed, got %d passed=%v", result.Score, result.Passed)
	}
	if result.CorrectCount != 3 || result.Total != 3 {
		t.Errorf("Expected 3/3 correct, got %d/%d", result.CorrectCount, result.Total)
	}
}

func TestGradeOrderingIsPositional(t *testing.T) {
	z := sampleQuiz()
	result := z.Grade(map[string]Answer{"q3": {Order: []string{"y", "x", "z"}}})
	if result.Verdicts[2].Correct {
		t.Error("Expected wrong order to be incorrect")
	}
	result = z.Grade(map[string]Answer{"q3": {Order: []string{"x", "y"}}})
	if result.Verdicts[2].Correct {
		t.Error("Expected short order to be incorrect")
	}
}

func TestGradeUnansweredCountsAsIncorrect(t *testing.T) {
	result := sampleQuiz().Grade(map[string]Answer{"q1": {SelectedOptionID: "b"}})
	if result.CorrectCount != 1 {
		t.Errorf("Expected 1 correct, got %d", result.CorrectCount)
	}
	if result.Verdicts[1].Answered {
		t.Error("Expected q2 to be unanswered")
	}
	if result.Score != 33 {
		t.Errorf("Expected score 33, got %d", result.Score)
	}
}

func TestGradeExactPassingScorePasses(t *testing.T) {
	z := sampleQuiz()
	z.PassingScore = 66
	result := z.Grade(map[string]Answer{
		"q1": {SelectedOptionID: "b"},
		"q2": {SelectedOptionID: "true"},
	})
	if result.Score != 66 {
		t.Fatalf("Expected score 66, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("Expected reaching the passing score exactly to pass")
	}
}

func TestGradeEmptySelectionNeverMatches(t *testing.T) {
	z := &Quiz{
		Title:        "Q",
		PassingScore: 50,
		Questions: []Question{{
			ID:       "q1",
			Question: "?",
			Options:  []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},
		}},
	}
	// No CorrectOptionID authored; an empty selection must not count as a hit.
	result := z.Grade(map[string]Answer{"q1": {}})
	if result.Verdicts[0].Correct {
		t.Error("Expected empty selection to be incorrect")
	}
}

func TestQuizPublicStripsAnswerKeys(t *testing.T) {
	pub := sampleQuiz().Public()
	for i, q := range pub.Questions {
		if q.CorrectOptionID != "" || q.CorrectOrder != nil || q.Explanation != "" {
			t.Errorf("Question %d leaked answer key: %+v", i, q)
		}
	}
	if len(pub.Questions[0].Options) != 2 {
		t.Error("Expected options to survive stripping")
	}
}

func TestQuestionKindDefaultsToSingleChoice(t *testing.T) {
	q := Question{}
	if q.Kind() != QuestionSingleChoice {
		t.Errorf("Expected single-choice default, got %q", q.Kind())
	}
}
