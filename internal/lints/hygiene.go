package lints

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

const (
	maxConsecutiveBlankLines = 2
	maxLineLength            = 200
	allowedLongLines         = 2
)

var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

// DetectHeadingStyle checks heading formatting: the marker run must be
// followed by exactly one space, and the template only uses level-3 headings.
func DetectHeadingStyle(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, h := range document.Headings() {
		if h.Spacing != " " {
			issues = append(issues, tt.Issue{
				Rule:     "heading-style",
				Category: "format",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("heading %q should have exactly one space after the marker", h.Title),
				Start:    tt.Position{Line: h.Line, Column: 1},
				End:      tt.Position{Line: h.Line, Column: 1},
			})
		}
		if h.Level != 3 {
			issues = append(issues, tt.Issue{
				Rule:     "heading-style",
				Category: "format",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("heading %q should use level 3 (###), found level %d", h.Title, h.Level),
				Start:    tt.Position{Line: h.Line, Column: 1},
				End:      tt.Position{Line: h.Line, Column: 1},
			})
		}
	}
	return issues, nil
}

// DetectUnbalancedComments checks that HTML comment markers pair up.
func DetectUnbalancedComments(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	opens := strings.Count(document.Content, "<!--")
	closes := strings.Count(document.Content, "-->")
	if opens == closes {
		return nil, nil
	}
	return []tt.Issue{{
		Rule:     "html-comments",
		Category: "format",
		Severity: severity,
		Filename: filename,
		Message:  fmt.Sprintf("unbalanced HTML comment markers: %d %q vs %d %q", opens, "<!--", closes, "-->"),
	}}, nil
}

// DetectBrokenLinks checks markdown link syntax: square brackets must pair
// up, and every [text](url) link needs non-empty text and url.
func DetectBrokenLinks(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	opens := strings.Count(document.Content, "[")
	closes := strings.Count(document.Content, "]")
	if opens != closes {
		issues = append(issues, tt.Issue{
			Rule:     "link-syntax",
			Category: "format",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("unbalanced square brackets: %d opening vs %d closing", opens, closes),
		})
	}

	for i, line := range document.Lines {
		for _, m := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
			text := line[m[2]:m[3]]
			url := line[m[4]:m[5]]
			if strings.TrimSpace(text) != "" && strings.TrimSpace(url) != "" {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:     "link-syntax",
				Category: "format",
				Severity: severity,
				Filename: filename,
				Message:  "markdown link must have non-empty text and url",
				Start:    tt.Position{Line: i + 1, Column: m[0] + 1},
				End:      tt.Position{Line: i + 1, Column: m[1]},
			})
		}
	}
	return issues, nil
}

// DetectUnbalancedEmphasis checks that strong emphasis markers occur in
// even counts. Single asterisks are left alone; they double as bullets.
func DetectUnbalancedEmphasis(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, marker := range []string{"**", "__"} {
		if strings.Count(document.Content, marker)%2 == 0 {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "emphasis-balance",
			Category: "format",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("odd number of %q emphasis markers", marker),
		})
	}
	return issues, nil
}

// DetectExcessBlankLines flags runs of more than maxConsecutiveBlankLines
// blank lines.
func DetectExcessBlankLines(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	run := 0
	for i, line := range document.Lines {
		if strings.TrimSpace(line) == "" {
			run++
			if run == maxConsecutiveBlankLines+1 {
				issues = append(issues, tt.Issue{
					Rule:     "blank-lines",
					Category: "format",
					Severity: severity,
					Filename: filename,
					Message: fmt.Sprintf("more than %d consecutive blank lines",
						maxConsecutiveBlankLines),
					Start: tt.Position{Line: i + 1, Column: 1},
					End:   tt.Position{Line: i + 1, Column: 1},
				})
			}
			continue
		}
		run = 0
	}
	return issues, nil
}

// DetectLongLines flags documents with too many lines over the length
// threshold. A couple of long lines are tolerated; links and legal text
// do not always wrap cleanly.
func DetectLongLines(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var long []int
	for i, line := range document.Lines {
		if len(line) > maxLineLength {
			long = append(long, i+1)
		}
	}
	if len(long) <= allowedLongLines {
		return nil, nil
	}

	lineList := make([]string, len(long))
	for i, n := range long {
		lineList[i] = fmt.Sprintf("%d", n)
	}
	return []tt.Issue{{
		Rule:     "line-length",
		Category: "format",
		Severity: severity,
		Filename: filename,
		Message: fmt.Sprintf("%d lines exceed %d characters (at most %d allowed)",
			len(long), maxLineLength, allowedLongLines),
		Note:  "long lines: " + strings.Join(lineList, ", "),
		Start: tt.Position{Line: long[0], Column: maxLineLength + 1},
		End:   tt.Position{Line: long[0], Column: maxLineLength + 1},
	}}, nil
}
