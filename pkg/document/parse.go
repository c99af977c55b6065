// ABOUTME: Loaders and boundary location for LaTeX documents
// ABOUTME: Splits sources into terminator-preserving lines, derives state atomically

package document

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nainya/latexdoc/internal/logger"
	"github.com/nainya/latexdoc/internal/metrics"
)

// Option configures a Document at parse time
type Option func(*Document)

// WithLogger attaches a zerolog logger to the document. Documents without
// one stay silent.
func WithLogger(zl zerolog.Logger) Option {
	return func(d *Document) {
		d.log = logger.FromZerolog(zl)
	}
}

// Parse builds a Document from LaTeX source text. The text must contain
// \begin{document} and \end{document}
func Parse(content string, opts ...Option) (*Document, error) {
	return parse(content, "string", "string", opts)
}

// ParseFile reads path and builds a Document from its contents
func ParseFile(path string, opts ...Option) (*Document, error) {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("document: read %s: %w", path, err)
		optionLogger(opts).LogParse(path, 0, 0, time.Since(start), err)
		metrics.Default().RecordParse("file", "error", 0, time.Since(start))
		return nil, err
	}

	return parse(string(raw), path, "file", opts)
}

func parse(content, source, kind string, opts []Option) (*Document, error) {
	start := time.Now()

	d := &Document{
		id:         uuid.NewString(),
		beginIndex: -1,
		endIndex:   -1,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.DocumentLogger(d.id)

	if err := d.applyLines(splitLines(content)); err != nil {
		d.log.LogParse(source, 0, 0, time.Since(start), err)
		metrics.Default().RecordParse(kind, "error", 0, time.Since(start))
		return nil, err
	}

	d.log.LogParse(source, len(d.lines), len(d.sections), time.Since(start), nil)
	metrics.Default().RecordParse(kind, "success", len(d.sections), time.Since(start))
	return d, nil
}

// applyLines derives boundary, preamble, and section state for candidate
// and, on success, installs it as the document's new state. On failure the
// document keeps its previous state untouched.
func (d *Document) applyLines(candidate []string) error {
	begin, end, err := locateBoundaries(candidate)
	if err != nil {
		return err
	}
	sections, order := scanSections(candidate, begin, end)

	d.lines = candidate
	d.beginIndex = begin
	d.endIndex = end
	d.preamble = strings.Join(candidate[:begin], "")
	d.sections = sections
	d.order = order
	return nil
}

// locateBoundaries records the last line containing each marker. A line
// containing both markers counts as a begin match only.
func locateBoundaries(lines []string) (begin, end int, err error) {
	begin, end = -1, -1
	for i, line := range lines {
		if strings.Contains(line, BeginMarker) {
			begin = i
		} else if strings.Contains(line, EndMarker) {
			end = i
		}
	}
	switch {
	case begin == -1 || end == -1:
		return -1, -1, fmt.Errorf("%w: missing %s or %s", ErrNoBoundaries, BeginMarker, EndMarker)
	case begin >= end:
		return -1, -1, fmt.Errorf("%w: %s precedes %s", ErrNoBoundaries, EndMarker, BeginMarker)
	}
	return begin, end, nil
}

// splitLines splits content after every newline so each element keeps its
// terminator; a final unterminated fragment survives as-is. Joining the
// result reproduces the input byte for byte.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	parts := strings.SplitAfter(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// optionLogger applies opts to a scratch document, for failures that happen
// before a document exists.
func optionLogger(opts []Option) *logger.Logger {
	scratch := &Document{log: logger.Nop()}
	for _, opt := range opts {
		opt(scratch)
	}
	return scratch.log.DocumentLogger("none")
}
