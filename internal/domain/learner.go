// Package domain contains learner-state types: who is reading the course
// and what they have attempted. Course content itself lives in the content
// package and is never stored.
package domain

import (
	"time"
)

// Learner is an anonymous per-device reader identified by a cookie id.
// There are no accounts; the id exists so progress and attempts can be
// looked up again from the same device.
type Learner struct {
	LearnerID  string    `json:"learner_id"`
	Nickname   string    `json:"nickname"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Stale reports whether the learner has been inactive longer than ttl.
func (l *Learner) Stale(ttl time.Duration) bool {
	return time.Since(l.LastSeenAt) > ttl
}
