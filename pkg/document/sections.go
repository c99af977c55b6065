// ABOUTME: Read accessors over derived document state
// ABOUTME: Returned sections are snapshots; any mutation invalidates their ranges

package document

// Section returns the named section's content, header line included. The
// second result reports whether the section exists.
func (d *Document) Section(name string) (string, bool) {
	sec, ok := d.sections[name]
	if !ok {
		return "", false
	}
	return sec.Content, true
}

// Sections returns a copy of the section map keyed by name. Mutating the
// copy does not affect the document.
func (d *Document) Sections() map[string]Section {
	out := make(map[string]Section, len(d.sections))
	for name, sec := range d.sections {
		out[name] = sec
	}
	return out
}

// SectionNames returns section names in document order
func (d *Document) SectionNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Preamble returns everything before the \begin{document} line, verbatim
func (d *Document) Preamble() string {
	return d.preamble
}

// LineCount returns the number of source lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// ID returns the correlation id assigned at parse time
func (d *Document) ID() string {
	return d.id
}
