// ABOUTME: Experience extraction from same-named environment blocks
// ABOUTME: Pulls bolded title, italicized company, and right-aligned date per block

package extract

import (
	"regexp"
	"strings"

	"github.com/nainya/latexdoc/internal/metrics"
	"github.com/nainya/latexdoc/pkg/document"
)

var (
	envBeginPattern = regexp.MustCompile(`\\begin\{([^}]*)\}`)
	titlePattern    = regexp.MustCompile(`\\textbf\{(.*?)\}`)
	companyPattern  = regexp.MustCompile(`\\textit\{(.*?)\}`)
)

// ExperienceEntry is one environment block found in a recognized experience
// section. Content holds the block body verbatim; the other fields are empty
// when the block lacks the corresponding markup.
type ExperienceEntry struct {
	Title   string
	Company string
	Date    string
	Content string
}

// Experience returns one entry per environment block in each recognized
// experience section, checking the default section synonyms in order.
func Experience(doc *document.Document) []ExperienceEntry {
	return ExperienceWithProfile(doc, DefaultProfile())
}

// ExperienceWithProfile is Experience with caller-chosen section names
func ExperienceWithProfile(doc *document.Document, profile Profile) []ExperienceEntry {
	var entries []ExperienceEntry
	for _, name := range profile.ExperienceSections {
		content, ok := doc.Section(name)
		if !ok {
			continue
		}

		for _, body := range sameNamedBlocks(content) {
			entries = append(entries, ExperienceEntry{
				Title:   firstGroup(titlePattern, body),
				Company: firstGroup(companyPattern, body),
				Date:    hfillDate(body),
				Content: body,
			})
		}
	}

	metrics.Default().RecordExtraction("experience", len(entries))
	return entries
}

// sameNamedBlocks returns the body of every \begin{X}...\end{X} pair in
// text, whatever X is. The nearest matching end closes a block; a begin with
// no matching end is skipped. Scanning resumes after each closed block.
func sameNamedBlocks(text string) []string {
	var bodies []string

	offset := 0
	for offset < len(text) {
		loc := envBeginPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}

		name := text[offset+loc[2] : offset+loc[3]]
		bodyStart := offset + loc[1]

		closing := `\end{` + name + `}`
		rel := strings.Index(text[bodyStart:], closing)
		if rel == -1 {
			offset = bodyStart
			continue
		}

		bodies = append(bodies, text[bodyStart:bodyStart+rel])
		offset = bodyStart + rel + len(closing)
	}

	return bodies
}

// hfillDate returns the text after the first \hfill, cut at the line break
// command or the end of the line, with surrounding braces and space trimmed
func hfillDate(content string) string {
	idx := strings.Index(content, `\hfill`)
	if idx == -1 {
		return ""
	}
	rest := content[idx+len(`\hfill`):]

	end := len(rest)
	if i := strings.IndexByte(rest, '\n'); i != -1 {
		end = i
	}
	if i := strings.Index(rest[:end], `\\`); i != -1 {
		end = i
	}

	date := strings.TrimSpace(rest[:end])
	date = strings.TrimPrefix(date, "{")
	date = strings.TrimSuffix(date, "}")
	return strings.TrimSpace(date)
}

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
