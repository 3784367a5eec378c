package domain

import "time"

// QuizAttempt records one graded quiz submission.
type QuizAttempt struct {
	ID          string    `json:"id"`
	LearnerID   string    `json:"learner_id"`
	Chapter     int       `json:"chapter"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	AnswersJSON string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
