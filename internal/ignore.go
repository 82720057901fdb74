package internal

import (
	"strings"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

const ignoreDirective = "prlint:ignore"

// ignoreScope represents a range of lines where an ignore directive applies.
type ignoreScope struct {
	startLine int
	endLine   int
	wholeDoc  bool
	rules     map[string]struct{} // empty => apply to all lint rules
}

// ignoreManager holds the ignore scopes parsed from one document.
type ignoreManager struct {
	scopes []ignoreScope
}

// parseIgnoreDirectives scans a document for ignore directives of the form
//
//	<!-- prlint:ignore -->
//	<!-- prlint:ignore rule-a, rule-b -->
//
// A directive placed before the first heading suppresses matching issues for
// the whole document; anywhere else it covers the rest of the enclosing
// section.
func parseIgnoreDirectives(document *doc.Document) *ignoreManager {
	manager := &ignoreManager{}

	headings := document.Headings()
	firstHeadingLine := len(document.Lines) + 1
	if len(headings) > 0 {
		firstHeadingLine = headings[0].Line
	}

	for i, line := range document.Lines {
		idx := strings.Index(line, "<!--")
		if idx == -1 {
			continue
		}
		body := line[idx+len("<!--"):]
		if end := strings.Index(body, "-->"); end != -1 {
			body = body[:end]
		}
		body = strings.TrimSpace(body)
		if !strings.HasPrefix(body, ignoreDirective) {
			continue
		}

		scope := ignoreScope{
			startLine: i + 1,
			endLine:   len(document.Lines),
			rules:     parseIgnoreRules(strings.TrimPrefix(body, ignoreDirective)),
		}
		if i+1 < firstHeadingLine {
			scope.wholeDoc = true
			scope.startLine = 1
		} else {
			// the scope ends where the enclosing section does
			for _, h := range headings {
				if h.Line > i+1 {
					scope.endLine = h.Line - 1
					break
				}
			}
		}
		manager.scopes = append(manager.scopes, scope)
	}
	return manager
}

func parseIgnoreRules(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			rules[part] = struct{}{}
		}
	}
	return rules
}

// IsIgnored reports whether an issue at the given position is suppressed.
// Document-level issues (line 0) are only suppressed by whole-document
// directives.
func (m *ignoreManager) IsIgnored(line int, rule string) bool {
	for _, scope := range m.scopes {
		if line == 0 && !scope.wholeDoc {
			continue
		}
		if line != 0 && (line < scope.startLine || line > scope.endLine) {
			continue
		}
		if len(scope.rules) == 0 {
			return true
		}
		if _, ok := scope.rules[rule]; ok {
			return true
		}
	}
	return false
}

// Filter drops the issues suppressed by the parsed directives.
func (m *ignoreManager) Filter(issues []tt.Issue) []tt.Issue {
	if len(m.scopes) == 0 {
		return issues
	}
	kept := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if m.IsIgnored(issue.Start.Line, issue.Rule) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}
