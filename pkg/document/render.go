// ABOUTME: Serialization back to LaTeX text and to disk
// ABOUTME: Joins lines verbatim, preserving original terminators

package document

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nainya/latexdoc/internal/metrics"
)

// Render returns the document as a single string. Lines join verbatim, so a
// document parsed and rendered without mutation reproduces its source byte
// for byte.
func (d *Document) Render() string {
	metrics.Default().RecordRender()
	return strings.Join(d.lines, "")
}

// SaveFile writes the rendered document to path, creating or truncating it
func (d *Document) SaveFile(path string) error {
	start := time.Now()

	err := os.WriteFile(path, []byte(d.Render()), 0644)
	if err != nil {
		err = fmt.Errorf("document: write %s: %w", path, err)
	}

	d.logger().LogOperation("save_file", time.Since(start), err)
	metrics.Default().RecordSave(statusLabel(err))
	return err
}
