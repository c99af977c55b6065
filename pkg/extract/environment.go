// ABOUTME: Environment body extraction from LaTeX text
// ABOUTME: Returns every \begin{env}...\end{env} body, non-greedy

package extract

import "regexp"

// EnvironmentContent returns the body of every \begin{env}...\end{env} block
// in text. Matching is non-greedy and bodies may span lines; for nested
// same-named environments the nearest end wins.
func EnvironmentContent(text, env string) []string {
	quoted := regexp.QuoteMeta(env)
	re := regexp.MustCompile(`(?s)\\begin\{` + quoted + `\}(.*?)\\end\{` + quoted + `\}`)

	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
