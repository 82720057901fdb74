package lints

import (
	"fmt"
	"strings"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

const minSectionContentLen = 10

// DetectMissingSections checks that each required template heading appears
// exactly once. A missing heading is a document-level issue; a duplicate is
// reported at the extra heading line.
func DetectMissingSections(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	counts := make(map[string][]doc.Heading)
	for _, h := range document.Headings() {
		if h.Level == 3 {
			counts[h.Title] = append(counts[h.Title], h)
		}
	}

	var issues []tt.Issue
	for _, title := range doc.RequiredHeadings {
		found := counts[title]
		if len(found) == 0 {
			issues = append(issues, tt.Issue{
				Rule:     "section-presence",
				Category: "structure",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("missing required section %q", title),
				Note:     "required sections: " + strings.Join(doc.RequiredHeadings, ", "),
			})
			continue
		}
		for _, dup := range found[1:] {
			issues = append(issues, tt.Issue{
				Rule:     "section-presence",
				Category: "structure",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("duplicate section heading %q", title),
				Start:    tt.Position{Line: dup.Line, Column: 1},
				End:      tt.Position{Line: dup.Line, Column: 1},
			})
		}
	}
	return issues, nil
}

// DetectSectionOrder checks that the required headings which are present
// appear in the canonical order. Missing headings are not applicable here;
// section-presence already reports them.
func DetectSectionOrder(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var present []doc.Section
	for _, title := range doc.RequiredHeadings {
		if section, ok := document.ExtractSection(title); ok {
			present = append(present, section)
		}
	}

	var issues []tt.Issue
	for i := 1; i < len(present); i++ {
		prev, cur := present[i-1], present[i]
		if cur.Heading.Offset > prev.Heading.Offset {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "section-order",
			Category: "structure",
			Severity: severity,
			Filename: filename,
			Message: fmt.Sprintf("section %q must come after %q",
				cur.Heading.Title, prev.Heading.Title),
			Start: tt.Position{Line: cur.Heading.Line, Column: 1},
			End:   tt.Position{Line: cur.Heading.Line, Column: 1},
		})
	}
	return issues, nil
}

// DetectEmptySections checks that every section carries real content.
// Blockquote markers do not count as content. Sections holding an HTML
// comment block are exempt; the template allows comment-only blocks.
func DetectEmptySections(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, section := range document.Sections() {
		if strings.Contains(section.Span, "<!--") {
			continue
		}

		content := stripBlockquoteMarkers(section.Span)
		if len(content) == 0 {
			issues = append(issues, tt.Issue{
				Rule:     "section-content",
				Category: "content",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("section %q is empty", section.Heading.Title),
				Start:    tt.Position{Line: section.Heading.Line, Column: 1},
				End:      tt.Position{Line: section.Heading.Line, Column: 1},
			})
			continue
		}
		if len(content) <= minSectionContentLen {
			issues = append(issues, tt.Issue{
				Rule:     "section-content",
				Category: "content",
				Severity: severity,
				Filename: filename,
				Message: fmt.Sprintf("section %q should have substantial content (%d characters found)",
					section.Heading.Title, len(content)),
				Start: tt.Position{Line: section.Heading.Line, Column: 1},
				End:   tt.Position{Line: section.Heading.Line, Column: 1},
			})
		}
	}
	return issues, nil
}

// DetectMissingBullets checks that the PR description section contains at
// least one bullet item. Not applicable when the section is absent.
func DetectMissingBullets(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	section, ok := document.ExtractSection(doc.HeadingChanges)
	if !ok {
		return nil, nil
	}

	for _, line := range section.SpanLines(document) {
		if doc.IsBulletLine(line) {
			return nil, nil
		}
	}

	return []tt.Issue{{
		Rule:     "bullet-list",
		Category: "content",
		Severity: severity,
		Filename: filename,
		Message:  fmt.Sprintf("section %q should contain at least one bullet point", doc.HeadingChanges),
		Start:    tt.Position{Line: section.Heading.Line, Column: 1},
		End:      tt.Position{Line: section.Heading.Line, Column: 1},
	}}, nil
}

func stripBlockquoteMarkers(span string) string {
	lines := strings.Split(span, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "> \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
