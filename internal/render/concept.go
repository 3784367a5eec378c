package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var backtickSpan = regexp.MustCompile("`([^`\n]+)`")

// normalizeConcept lowercases and strips hyphens and spaces, the form used
// for the best-effort span/concept match.
func normalizeConcept(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// matchConcept returns the first concept id whose normalized form overlaps
// the normalized span (either containing the other). This is a heuristic,
// not an exact lookup; when several ids could match, list order decides.
func matchConcept(span string, conceptIDs []string) (string, bool) {
	norm := normalizeConcept(span)
	if norm == "" {
		return "", false
	}
	for _, id := range conceptIDs {
		nid := normalizeConcept(id)
		if nid == "" {
			continue
		}
		if strings.Contains(nid, norm) || strings.Contains(norm, nid) {
			return id, true
		}
	}
	return "", false
}

// annotateConcepts rewrites backtick-delimited spans that match one of the
// section's concept ids into tooltip-bearing spans keyed by concept id and
// chapter number. Unmatched spans are left as backticks for the Markdown
// renderer to treat as inline code.
func annotateConcepts(body string, conceptIDs []string, chapter int) string {
	if len(conceptIDs) == 0 {
		return body
	}
	return backtickSpan.ReplaceAllStringFunc(body, func(m string) string {
		text := m[1 : len(m)-1]
		id, ok := matchConcept(text, conceptIDs)
		if !ok {
			return m
		}
		return fmt.Sprintf(`<span class="concept" data-concept="%s" data-chapter="%d">%s</span>`,
			html.EscapeString(id), chapter, html.EscapeString(text))
	})
}
