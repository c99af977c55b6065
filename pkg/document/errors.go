// Package document implements a line-oriented model for LaTeX sources with
// section-level editing, rendering, and byte-faithful round-tripping
package document

import "errors"

var (
	// ErrNoBoundaries indicates a source missing \begin{document} or \end{document}
	ErrNoBoundaries = errors.New("document: boundaries not found")

	// ErrSectionNotFound indicates an operation naming an unknown section
	ErrSectionNotFound = errors.New("document: section not found")

	// ErrInvalidPosition indicates an insertion position that is neither
	// "start", "end", nor an existing section name
	ErrInvalidPosition = errors.New("document: invalid position")
)
