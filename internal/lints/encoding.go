package lints

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

// DetectEncodingViolations checks that the document decodes as valid UTF-8
// and carries no embedded null bytes. These are reported distinctly from
// content violations.
func DetectEncodingViolations(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	if !utf8.Valid(document.Raw) {
		issues = append(issues, tt.Issue{
			Rule:     "encoding",
			Category: "encoding",
			Severity: severity,
			Filename: filename,
			Message:  "document is not valid UTF-8",
		})
	}
	if i := bytes.IndexByte(document.Raw, 0); i >= 0 {
		issues = append(issues, tt.Issue{
			Rule:     "encoding",
			Category: "encoding",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("document contains a null byte at offset %d", i),
		})
	}
	return issues, nil
}

// DetectMixedLineEndings checks that the line-ending style is uniform:
// all LF or all CRLF, never a mixture. Bare carriage returns are flagged too.
func DetectMixedLineEndings(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	crlf := bytes.Count(document.Raw, []byte("\r\n"))
	lf := bytes.Count(document.Raw, []byte("\n")) - crlf
	cr := bytes.Count(document.Raw, []byte("\r")) - crlf

	var issues []tt.Issue
	if crlf > 0 && lf > 0 {
		issues = append(issues, tt.Issue{
			Rule:     "line-endings",
			Category: "encoding",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("mixed line endings: %d CRLF and %d LF", crlf, lf),
		})
	}
	if cr > 0 {
		issues = append(issues, tt.Issue{
			Rule:     "line-endings",
			Category: "encoding",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("%d bare carriage returns found", cr),
		})
	}
	return issues, nil
}

// DetectTrailingWhitespace flags trailing whitespace on non-empty lines.
// A single trailing space is tolerated on blockquote lines; that is how
// blockquote continuations are written.
func DetectTrailingWhitespace(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for i, line := range document.Lines {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimRight(line, " \t")
		if line == trimmed || trimmed == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), ">") && line == trimmed+" " {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "trailing-whitespace",
			Category: "format",
			Severity: severity,
			Filename: filename,
			Message:  "line has trailing whitespace",
			Start:    tt.Position{Line: i + 1, Column: len(trimmed) + 1},
			End:      tt.Position{Line: i + 1, Column: len(line)},
		})
	}
	return issues, nil
}

// DetectMissingFinalNewline checks that a non-empty document ends with a
// newline character.
func DetectMissingFinalNewline(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	raw := document.Raw
	if len(raw) == 0 || raw[len(raw)-1] == '\n' {
		return nil, nil
	}
	return []tt.Issue{{
		Rule:     "final-newline",
		Category: "encoding",
		Severity: severity,
		Filename: filename,
		Message:  "document should end with a newline character",
	}}, nil
}
