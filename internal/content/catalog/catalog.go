// Package catalog holds the authored course content: one file per chapter,
// assembled into the ordered list the registry validates at startup.
package catalog

import (
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

// All returns every chapter in course order.
func All() []*content.Chapter {
	return []*content.Chapter{
		chapter01(),
		chapter02(),
		chapter03(),
		chapter04(),
		chapter05(),
		chapter06(),
		chapter07(),
	}
}

func intp(n int) *int { return &n }

func hl(start, end int) *content.HighlightRange {
	r := content.HighlightRange{start, end}
	return &r
}
