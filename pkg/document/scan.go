// ABOUTME: Section scanner over the document body span
// ABOUTME: Single pass with explicit open-section state, last duplicate wins

package document

import (
	"regexp"
	"sort"
	"strings"
)

// headerPattern recognizes the three sectioning levels, treated as one flat
// namespace. The second group captures the title.
var headerPattern = regexp.MustCompile(`\\(section|subsection|subsubsection)\{([^}]+)\}`)

// scanSections walks the lines strictly between the boundary indices and
// derives the section map plus names in document order. The scanner is a
// two-state machine: outside any section, or accumulating into the one open
// section. Body lines before the first header belong to no section. A header
// whose title was already seen overwrites the earlier entry.
func scanSections(lines []string, begin, end int) (map[string]Section, []string) {
	sections := make(map[string]Section)

	open := false
	var name string
	var startLine int
	var content strings.Builder

	for i := begin + 1; i < end; i++ {
		line := lines[i]

		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			if open {
				content.WriteString(line)
			}
			continue
		}

		if open {
			sections[name] = Section{
				Name:      name,
				Content:   content.String(),
				StartLine: startLine,
				EndLine:   i - 1,
			}
		}

		open = true
		name = m[2]
		startLine = i
		content.Reset()
		content.WriteString(line)
	}

	if open {
		sections[name] = Section{
			Name:      name,
			Content:   content.String(),
			StartLine: startLine,
			EndLine:   end - 1,
		}
	}

	order := make([]string, 0, len(sections))
	for n := range sections {
		order = append(order, n)
	}
	sort.Slice(order, func(i, j int) bool {
		return sections[order[i]].StartLine < sections[order[j]].StartLine
	})

	return sections, order
}
