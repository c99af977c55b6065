package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "warn", Output: &buf})

	l.Info("hidden").Send()
	l.Debug("also hidden").Send()
	l.Warn("visible").Send()
	l.Error("also visible").Send()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info and debug suppressed at warn level, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("Expected warn and error emitted, got %q", out)
	}
}

func TestLoggerLevelsIndependent(t *testing.T) {
	var a, b bytes.Buffer
	debugLogger := NewLogger(Config{Level: "debug", Output: &a})
	errorLogger := NewLogger(Config{Level: "error", Output: &b})

	debugLogger.Debug("detail").Send()
	errorLogger.Debug("detail").Send()

	if !strings.Contains(a.String(), "detail") {
		t.Error("Expected debug logger to emit debug events")
	}
	if b.Len() != 0 {
		t.Errorf("Expected error logger to suppress debug events, got %q", b.String())
	}
}

func TestServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	l.Info("check").Send()

	if !strings.Contains(buf.String(), `"service":"latexdoc"`) {
		t.Errorf("Expected service field, got %q", buf.String())
	}
}

func TestDocumentLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf}).DocumentLogger("doc-123")

	l.Info("scoped").Send()

	out := buf.String()
	if !strings.Contains(out, `"component":"document"`) {
		t.Errorf("Expected component field, got %q", out)
	}
	if !strings.Contains(out, `"document_id":"doc-123"`) {
		t.Errorf("Expected document_id field, got %q", out)
	}
}

func TestLogParse(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	l.LogParse("resume.tex", 42, 5, 3*time.Millisecond, nil)

	out := buf.String()
	if !strings.Contains(out, `"source":"resume.tex"`) {
		t.Errorf("Expected source field, got %q", out)
	}
	if !strings.Contains(out, `"line_count":42`) || !strings.Contains(out, `"section_count":5`) {
		t.Errorf("Expected counts, got %q", out)
	}
	if !strings.Contains(out, "Document parse completed") {
		t.Errorf("Expected completion message, got %q", out)
	}
}

func TestLogParseError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	l.LogParse("bad.tex", 0, 0, time.Millisecond, errors.New("boundaries not found"))

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("Expected error level, got %q", out)
	}
	if !strings.Contains(out, "boundaries not found") {
		t.Errorf("Expected error detail, got %q", out)
	}
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Output: &buf})

	l.LogOperation("replace_section", 2*time.Millisecond, nil)
	l.LogOperation("insert_section", time.Millisecond, errors.New("invalid position"))

	out := buf.String()
	if !strings.Contains(out, `"operation":"replace_section"`) {
		t.Errorf("Expected success record, got %q", out)
	}
	if !strings.Contains(out, "invalid position") {
		t.Errorf("Expected failure record, got %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	// Nop must be safe to use and emit nothing
	l := Nop()
	l.Info("dropped").Send()
	l.LogOperation("replace_section", time.Millisecond, nil)
}

func TestGetZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	zl := l.GetZerolog()
	zl.Info().Msg("direct")

	if !strings.Contains(buf.String(), "direct") {
		t.Error("Expected underlying logger to share the output")
	}
}
