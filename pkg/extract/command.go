// Package extract pulls structured data out of LaTeX text: command
// arguments, environment bodies, and resume-style skill and experience data
package extract

import "regexp"

// CommandContent returns the brace-delimited argument of every occurrence of
// \command in text. Matching is non-greedy and arguments may span lines.
func CommandContent(text, command string) []string {
	re := regexp.MustCompile(`(?s)\\` + regexp.QuoteMeta(command) + `\{(.*?)\}`)

	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
