package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestGeneralIssueFormat(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("### Purpose/Motivation\nTODO: explain\n"))
	issue := tt.Issue{
		Rule:     "placeholder-text",
		Severity: tt.SeverityWarning,
		Filename: "README.md",
		Message:  `placeholder text "TODO" must be replaced`,
		Start:    tt.Position{Line: 2, Column: 1},
		End:      tt.Position{Line: 2, Column: 5},
	}

	output := GenerateFormattedIssue([]tt.Issue{issue}, document)

	assert.Contains(t, output, "warning: placeholder-text")
	assert.Contains(t, output, "--> README.md:2:1")
	assert.Contains(t, output, "2 | TODO: explain")
	assert.Contains(t, output, "~~~~")
	assert.Contains(t, output, `= placeholder text "TODO" must be replaced`)
}

func TestSectionIssueFormat(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("### Purpose/Motivation\ntext\n"))
	issue := tt.Issue{
		Rule:     "section-presence",
		Severity: tt.SeverityError,
		Filename: "README.md",
		Message:  `required section "Legal Boilerplate" is missing`,
	}

	output := GenerateFormattedIssue([]tt.Issue{issue}, document)

	assert.Contains(t, output, "error: section-presence")
	assert.Contains(t, output, "--> README.md\n", "document-level issues carry no line:column")
	assert.Contains(t, output, "expected order: ### Purpose/Motivation -> ### What does this PR do? -> ### Legal Boilerplate")
}

func TestDocumentIssueFormat(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("a"))
	issue := tt.Issue{
		Rule:     "final-newline",
		Severity: tt.SeverityError,
		Filename: "README.md",
		Message:  "file must end with a newline",
	}

	output := GenerateFormattedIssue([]tt.Issue{issue}, document)

	assert.Contains(t, output, "error: final-newline")
	assert.Contains(t, output, "file must end with a newline")
	assert.NotContains(t, output, " | ", "no snippet for document-level issues")
}

func TestLineLengthFormatOmitsSnippet(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("short\n"))
	issue := tt.Issue{
		Rule:     "line-length",
		Severity: tt.SeverityWarning,
		Filename: "README.md",
		Message:  "3 lines exceed 200 characters (2 allowed)",
		Note:     "lines 1, 2, 3",
		Start:    tt.Position{Line: 1, Column: 1},
		End:      tt.Position{Line: 1, Column: 1},
	}

	output := GenerateFormattedIssue([]tt.Issue{issue}, document)

	assert.Contains(t, output, "warning: line-length")
	assert.Contains(t, output, "Note: lines 1, 2, 3")
	assert.NotContains(t, output, "1 | short")
}

func TestSuggestionRendered(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("##  Purpose/Motivation\ntext\n"))
	issue := tt.Issue{
		Rule:       "heading-style",
		Severity:   tt.SeverityError,
		Filename:   "README.md",
		Message:    "heading must be level 3",
		Suggestion: "### Purpose/Motivation",
		Start:      tt.Position{Line: 1, Column: 1},
		End:        tt.Position{Line: 1, Column: 2},
	}

	output := GenerateFormattedIssue([]tt.Issue{issue}, document)

	assert.Contains(t, output, "Suggestion:")
	assert.Contains(t, output, "### Purpose/Motivation")
}

func TestMultipleIssuesConcatenated(t *testing.T) {
	document := doc.FromBytes("README.md", []byte("TODO\nTBD\n"))
	issues := []tt.Issue{
		{Rule: "placeholder-text", Severity: tt.SeverityWarning, Filename: "README.md", Message: "first", Start: tt.Position{Line: 1, Column: 1}, End: tt.Position{Line: 1, Column: 4}},
		{Rule: "placeholder-text", Severity: tt.SeverityWarning, Filename: "README.md", Message: "second", Start: tt.Position{Line: 2, Column: 1}, End: tt.Position{Line: 2, Column: 3}},
	}

	output := GenerateFormattedIssue(issues, document)

	assert.Contains(t, output, "first")
	assert.Contains(t, output, "second")
}
