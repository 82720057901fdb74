package lints

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

const (
	minFileSize = 100
	maxFileSize = 10 * 1024

	minNonEmptyLines = 5
)

var placeholders = []string{"TODO", "FIXME", "XXX", "TBD", "PLACEHOLDER"}

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password\s*[:=]\s*\S+`),
	regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*\S+`),
	regexp.MustCompile(`(?i)secret\s*[:=]\s*\S+`),
	regexp.MustCompile(`(?i)token\s*[:=]\s*\S+`),
}

var absolutePathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`C:\\`),
	regexp.MustCompile(`/Users/`),
	regexp.MustCompile(`/home/\w`),
	regexp.MustCompile(`/root/`),
}

var bulletItemPattern = regexp.MustCompile(`^\s*(?:>\s*)?[-*][ \t]+(.*)$`)

// DetectPlaceholders flags leftover placeholder markers. Text inside HTML
// comments is excluded from the scan; a commented-out TODO is not part of
// the rendered document.
func DetectPlaceholders(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	visible := doc.StripHTMLComments(document.Content)
	var issues []tt.Issue
	for i, line := range strings.Split(visible, "\n") {
		for _, placeholder := range placeholders {
			col := strings.Index(line, placeholder)
			if col == -1 {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:     "placeholder-text",
				Category: "content",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("document contains placeholder text %q", placeholder),
				Start:    tt.Position{Line: i + 1, Column: col + 1},
				End:      tt.Position{Line: i + 1, Column: col + len(placeholder)},
			})
		}
	}
	return issues, nil
}

// DetectSensitiveInfo flags credential-looking assignments such as
// "password: hunter2" or "api_key=abc".
func DetectSensitiveInfo(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for i, line := range document.Lines {
		for _, pattern := range sensitivePatterns {
			loc := pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:     "sensitive-info",
				Category: "security",
				Severity: severity,
				Filename: filename,
				Message:  "document appears to contain sensitive information",
				Note:     fmt.Sprintf("matched pattern %q", pattern.String()),
				Start:    tt.Position{Line: i + 1, Column: loc[0] + 1},
				End:      tt.Position{Line: i + 1, Column: loc[1]},
			})
		}
	}
	return issues, nil
}

// DetectAbsolutePaths flags absolute filesystem paths; they leak local
// machine layout into a shared document.
func DetectAbsolutePaths(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for i, line := range document.Lines {
		for _, pattern := range absolutePathPatterns {
			loc := pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:     "absolute-paths",
				Category: "content",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("document contains an absolute path %q", line[loc[0]:loc[1]]),
				Start:    tt.Position{Line: i + 1, Column: loc[0] + 1},
				End:      tt.Position{Line: i + 1, Column: loc[1]},
			})
		}
	}
	return issues, nil
}

// DetectBulletGrammar checks that bullet items start with a capital letter
// or a digit.
func DetectBulletGrammar(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for i, line := range document.Lines {
		m := bulletItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		if item == "" {
			continue
		}
		first := []rune(item)[0]
		if unicode.IsUpper(first) || unicode.IsDigit(first) {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "bullet-grammar",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("bullet point should start with a capital letter or digit: %q", item),
			Start:    tt.Position{Line: i + 1, Column: 1},
			End:      tt.Position{Line: i + 1, Column: len(line)},
		})
	}
	return issues, nil
}

// DetectFileSizeBounds checks that the document is neither suspiciously
// small nor too large for a PR description, and has enough non-empty lines.
func DetectFileSizeBounds(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	size := len(document.Raw)
	if size <= minFileSize {
		issues = append(issues, tt.Issue{
			Rule:     "file-size",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("document is too small (%d bytes); content may be missing", size),
		})
	}
	if size >= maxFileSize {
		issues = append(issues, tt.Issue{
			Rule:     "file-size",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("document is too large for a PR description (%d bytes)", size),
		})
	}

	nonEmpty := 0
	for _, line := range document.Lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	if nonEmpty <= minNonEmptyLines {
		issues = append(issues, tt.Issue{
			Rule:     "file-size",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("document should have more than %d non-empty lines, found %d", minNonEmptyLines, nonEmpty),
		})
	}
	return issues, nil
}
