// ABOUTME: Section mutators: replace, insert, reorder
// ABOUTME: Each splices a candidate line sequence and swaps it in atomically

package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/nainya/latexdoc/internal/metrics"
)

// ReplaceSection replaces the named section's lines with newContent and
// rescans. When newContent's first line is itself a section header the whole
// range including the old header is replaced; otherwise the existing header
// line is kept and newContent becomes the body.
func (d *Document) ReplaceSection(name, newContent string) error {
	return d.mutate("replace_section", func() error {
		return d.replaceSection(name, newContent)
	})
}

// InsertSection synthesizes a \section{name} header followed by content and
// splices it at position: "start" for immediately after \begin{document},
// "end" for immediately before \end{document}, or an existing section name
// to insert right after that section's last line.
func (d *Document) InsertSection(name, content, position string) error {
	return d.mutate("insert_section", func() error {
		return d.insertSection(name, content, position)
	})
}

// ReorderSections rebuilds the body so the named sections appear in the
// given order. Sections not named are dropped, as are body lines before the
// first header. The preamble and everything from \end{document} on are
// untouched.
func (d *Document) ReorderSections(order []string) error {
	return d.mutate("reorder_sections", func() error {
		return d.reorderSections(order)
	})
}

// mutate runs fn and records the outcome in logs and metrics. A document
// that never completed a load fails here before any state is touched.
func (d *Document) mutate(operation string, fn func() error) error {
	start := time.Now()

	err := d.checkLoaded()
	if err == nil {
		err = fn()
	}
	duration := time.Since(start)

	d.logger().LogOperation(operation, duration, err)
	metrics.Default().RecordMutation(operation, statusLabel(err), duration)
	return err
}

func (d *Document) checkLoaded() error {
	if d.beginIndex < 0 || d.beginIndex >= d.endIndex {
		return fmt.Errorf("%w: document not loaded", ErrNoBoundaries)
	}
	return nil
}

func (d *Document) replaceSection(name, newContent string) error {
	sec, ok := d.sections[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}

	keepFrom := sec.StartLine // wholesale replacement when a header is supplied
	if first, _, _ := strings.Cut(newContent, "\n"); !headerPattern.MatchString(first) {
		keepFrom = sec.StartLine + 1 // preserve the existing header line
	}

	replacement := splitLines(newContent)
	candidate := make([]string, 0, keepFrom+len(replacement)+len(d.lines)-sec.EndLine-1)
	candidate = append(candidate, d.lines[:keepFrom]...)
	candidate = append(candidate, replacement...)
	candidate = append(candidate, d.lines[sec.EndLine+1:]...)

	return d.applyLines(candidate)
}

func (d *Document) insertSection(name, content, position string) error {
	var insertAt int
	switch position {
	case PositionStart:
		insertAt = d.beginIndex + 1
	case PositionEnd:
		insertAt = d.endIndex
	default:
		sec, ok := d.sections[position]
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidPosition, position)
		}
		insertAt = sec.EndLine + 1
	}

	block := `\section{` + name + `}` + "\n" + content
	if !strings.HasSuffix(block, "\n") {
		block += "\n" // a terminator keeps the next line from gluing onto the block
	}

	inserted := splitLines(block)
	candidate := make([]string, 0, len(d.lines)+len(inserted))
	candidate = append(candidate, d.lines[:insertAt]...)
	candidate = append(candidate, inserted...)
	candidate = append(candidate, d.lines[insertAt:]...)

	return d.applyLines(candidate)
}

func (d *Document) reorderSections(order []string) error {
	for _, name := range order {
		if _, ok := d.sections[name]; !ok {
			return fmt.Errorf("%w: %q", ErrSectionNotFound, name)
		}
	}

	var body []string
	for _, name := range order {
		sec := d.sections[name]
		body = append(body, d.lines[sec.StartLine:sec.EndLine+1]...)
	}

	candidate := make([]string, 0, d.beginIndex+1+len(body)+len(d.lines)-d.endIndex)
	candidate = append(candidate, d.lines[:d.beginIndex+1]...)
	candidate = append(candidate, body...)
	candidate = append(candidate, d.lines[d.endIndex:]...)

	return d.applyLines(candidate)
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
