package content

// QuestionType discriminates how a quiz question is answered and graded.
type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionTrueFalse    QuestionType = "true-false"
	QuestionOrdering     QuestionType = "ordering"
)

// Option is one selectable answer for a question.
type Option struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Question is a single quiz question. Single-choice and true-false grade
// against CorrectOptionID. Ordering questions grade against CorrectOrder
// only; authored data sometimes carries a CorrectOptionID on ordering
// questions as well, which is ignored as vestigial metadata.
type Question struct {
	ID       string       `json:"id" validate:"required"`
	Question string       `json:"question" validate:"required"`
	Type     QuestionType `json:"type,omitempty"`
	Options  []Option     `json:"options" validate:"min=2"`

	CorrectOptionID string   `json:"correctOptionId,omitempty"`
	CorrectOrder    []string `json:"correctOrder,omitempty"`

	Explanation string `json:"explanation,omitempty"`
}

// Kind returns the question type, defaulting to single-choice when the
// authored data omits it.
func (q *Question) Kind() QuestionType {
	if q.Type == "" {
		return QuestionSingleChoice
	}
	return q.Type
}

// HasOption reports whether id names one of the question's options.
func (q *Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Quiz is the assessment attached to a chapter.
type Quiz struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description,omitempty"`
	PassingScore int        `json:"passingScore" validate:"min=0,max=100"`
	Questions    []Question `json:"questions" validate:"min=1"`
}

// Answer is a learner's response to one question: SelectedOptionID for
// single-choice/true-false, Order for ordering questions.
type Answer struct {
	SelectedOptionID string   `json:"selectedOptionId,omitempty"`
	Order            []string `json:"order,omitempty"`
}

// QuestionVerdict reports the grading of one question.
type QuestionVerdict struct {
	QuestionID  string `json:"questionId"`
	Correct     bool   `json:"correct"`
	Answered    bool   `json:"answered"`
	Explanation string `json:"explanation,omitempty"`
}

// GradeResult is the outcome of grading a full quiz attempt.
type GradeResult struct {
	Verdicts     []QuestionVerdict `json:"verdicts"`
	CorrectCount int               `json:"correctCount"`
	Total        int               `json:"total"`
	Score        int               `json:"score"`
	Passed       bool              `json:"passed"`
}

// Grade scores a set of answers keyed by question id. Unanswered questions
// count as incorrect. Score is an integer percentage; reaching the passing
// score exactly counts as a pass.
func (z *Quiz) Grade(answers map[string]Answer) GradeResult {
	result := GradeResult{Total: len(z.Questions)}

	for i := range z.Questions {
		q := &z.Questions[i]
		ans, answered := answers[q.ID]
		verdict := QuestionVerdict{
			QuestionID:  q.ID,
			Answered:    answered,
			Explanation: q.Explanation,
		}
		if answered {
			verdict.Correct = q.Check(ans)
		}
		if verdict.Correct {
			result.CorrectCount++
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}

	if result.Total > 0 {
		result.Score = result.CorrectCount * 100 / result.Total
	}
	result.Passed = result.Score >= z.PassingScore
	return result
}

// Check grades a single answer. Ordering questions compare against
// CorrectOrder; everything else compares the selected option id.
func (q *Question) Check(ans Answer) bool {
	switch q.Kind() {
	case QuestionOrdering:
		if len(ans.Order) != len(q.CorrectOrder) {
			return false
		}
		for i, id := range q.CorrectOrder {
			if ans.Order[i] != id {
				return false
			}
		}
		return true
	default:
		return ans.SelectedOptionID != "" && ans.SelectedOptionID == q.CorrectOptionID
	}
}

// Public returns a copy of the quiz with answer keys stripped, safe to hand
// to clients before an attempt.
func (z *Quiz) Public() *Quiz {
	pub := &Quiz{
		Title:        z.Title,
		Description:  z.Description,
		PassingScore: z.PassingScore,
		Questions:    make([]Question, len(z.Questions)),
	}
	for i, q := range z.Questions {
		pub.Questions[i] = q.Public()
	}
	return pub
}

// Public returns a copy of the question with the answer key stripped.
func (q Question) Public() Question {
	q.CorrectOptionID = ""
	q.CorrectOrder = nil
	q.Explanation = ""
	return q
}
