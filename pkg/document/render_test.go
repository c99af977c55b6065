// ABOUTME: Tests for serialization and file output
// ABOUTME: Verifies verbatim joins and save/load symmetry

package document

import (
	"os"
	"testing"
)

func TestSaveFile(t *testing.T) {
	path := "/tmp/test_latexdoc_save.tex"
	defer os.Remove(path)

	doc := mustParse(t, sampleSource())
	if err := doc.SaveFile(path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(raw) != doc.Render() {
		t.Error("Expected saved bytes to match render")
	}

	// A saved document parses back to the same text
	reloaded, err := ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}
	if reloaded.Render() != doc.Render() {
		t.Error("Expected save/load round trip")
	}
}

func TestSaveFileBadPath(t *testing.T) {
	doc := mustParse(t, sampleSource())

	err := doc.SaveFile("/tmp/latexdoc_missing_dir/out.tex")
	if err == nil {
		t.Fatal("Expected error for unwritable path")
	}
}

func TestRenderAfterMutations(t *testing.T) {
	source := "\\documentclass{article}\n" +
		"\\begin{document}\n" +
		"\\section{A}\n" +
		"a body\n" +
		"\\section{B}\n" +
		"b body\n" +
		"\\end{document}\n"

	doc := mustParse(t, source)

	if err := doc.ReplaceSection("A", "a rewritten\n"); err != nil {
		t.Fatalf("Failed to replace: %v", err)
	}
	if err := doc.InsertSection("C", "c body\n", "A"); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if err := doc.ReorderSections([]string{"B", "C", "A"}); err != nil {
		t.Fatalf("Failed to reorder: %v", err)
	}

	want := "\\documentclass{article}\n" +
		"\\begin{document}\n" +
		"\\section{B}\n" +
		"b body\n" +
		"\\section{C}\n" +
		"c body\n" +
		"\\section{A}\n" +
		"a rewritten\n" +
		"\\end{document}\n"

	if got := doc.Render(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
