// ABOUTME: Document data model for boundary-delimited LaTeX sources
// ABOUTME: Defines Document and Section structures with line-range tracking

package document

import (
	"github.com/nainya/latexdoc/internal/logger"
)

// Boundary marker lines delimiting the document body.
const (
	BeginMarker = `\begin{document}`
	EndMarker   = `\end{document}`
)

// Insertion positions understood by InsertSection besides existing section names.
const (
	PositionStart = "start"
	PositionEnd   = "end"
)

// Document owns a mutable ordered sequence of source lines plus the boundary
// indices and section map derived from them. Every mutator splices the line
// sequence and rebuilds all derived state in one step, so the two can never
// drift apart.
//
// A Document is not safe for concurrent use. It has no internal locking;
// an exclusive owner mutates it, and sharing across goroutines requires
// external synchronization.
type Document struct {
	id    string
	lines []string // each line keeps its own trailing terminator

	beginIndex int // line containing \begin{document}; -1 until located
	endIndex   int // line containing \end{document}; -1 until located

	preamble string
	sections map[string]Section
	order    []string // section names in ascending start-line order

	log *logger.Logger
}

// logger tolerates documents built without a load operation
func (d *Document) logger() *logger.Logger {
	if d.log == nil {
		return logger.Nop()
	}
	return d.log
}

// Section is a snapshot view onto a contiguous line range of a Document.
// Content runs from the header line (inclusive) through the line before the
// next header or the end boundary. StartLine and EndLine are inclusive
// 0-based indices valid only until the next mutation; mutators rescan, so a
// Section held across a mutation must be re-fetched.
type Section struct {
	Name      string
	Content   string
	StartLine int
	EndLine   int
}
