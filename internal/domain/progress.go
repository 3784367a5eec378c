package domain

import "time"

// ReadingProgress tracks a learner's position in one chapter.
type ReadingProgress struct {
	LearnerID    string    `json:"learner_id"`
	Chapter      int       `json:"chapter"`
	Completed    bool      `json:"completed"`
	LastViewedAt time.Time `json:"last_viewed_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
