// ABOUTME: Skill extraction from list blocks in recognized sections
// ABOUTME: Splits list bodies on item markers, one trimmed string per item

package extract

import (
	"strings"

	"github.com/nainya/latexdoc/internal/metrics"
	"github.com/nainya/latexdoc/pkg/document"
)

const itemMarker = `\item`

// Skills returns the items of the first list block in each recognized skill
// section, checking the default section synonyms in order.
func Skills(doc *document.Document) []string {
	return SkillsWithProfile(doc, DefaultProfile())
}

// SkillsWithProfile is Skills with caller-chosen section names and list
// environment
func SkillsWithProfile(doc *document.Document, profile Profile) []string {
	var skills []string
	for _, name := range profile.SkillSections {
		content, ok := doc.Section(name)
		if !ok {
			continue
		}

		bodies := EnvironmentContent(content, profile.SkillListEnv)
		if len(bodies) == 0 {
			continue
		}
		skills = append(skills, listItems(bodies[0])...)
	}

	metrics.Default().RecordExtraction("skills", len(skills))
	return skills
}

// listItems splits a list body on item markers. An item's text runs to the
// next marker or the end of the body. A marker not followed by whitespace is
// the prefix of a longer command and opens no item.
func listItems(body string) []string {
	var items []string

	idx := 0
	for idx < len(body) {
		i := strings.Index(body[idx:], itemMarker)
		if i == -1 {
			break
		}

		start := idx + i + len(itemMarker)
		if start >= len(body) || !isSpace(body[start]) {
			idx = start
			continue
		}

		end := len(body)
		if next := strings.Index(body[start:], itemMarker); next != -1 {
			end = start + next
		}

		items = append(items, strings.TrimSpace(body[start:end]))
		idx = end
	}

	return items
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
