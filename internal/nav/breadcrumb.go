// Package nav derives navigation affordances from route paths.
package nav

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
)

var chapterPath = regexp.MustCompile(`^/chapter/(\d+)(?:/|$)`)

// Crumb is the breadcrumb rendered in the header on chapter pages.
type Crumb struct {
	BackLabel     string `json:"backLabel"`
	BackPath      string `json:"backPath"`
	IconKey       string `json:"iconKey"`
	Title         string `json:"title"`
	ChapterNumber int    `json:"chapterNumber"`
}

// ChapterNumberFromPath extracts the chapter number from a route path.
// Returns false when the path is not a chapter route.
func ChapterNumberFromPath(path string) (int, bool) {
	m := chapterPath.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve maps a route path to a breadcrumb. It returns nil when the path
// is not a chapter route or the chapter does not exist — an invalid chapter
// number in the URL must not break the header, so misses render nothing.
// Compact mode drops the short title, leaving just "Ch N".
func Resolve(path string, reg *content.Registry, compact bool) *Crumb {
	n, ok := ChapterNumberFromPath(path)
	if !ok {
		return nil
	}
	ch, ok := reg.Chapter(n)
	if !ok {
		return nil
	}

	title := fmt.Sprintf("Ch %d", ch.Number)
	if !compact {
		title = fmt.Sprintf("Ch %d: %s", ch.Number, ch.ShortTitle)
	}

	return &Crumb{
		BackLabel:     "Chapters",
		BackPath:      "/",
		IconKey:       ch.Icon,
		Title:         title,
		ChapterNumber: ch.Number,
	}
}
