package formatter

import (
	"strings"

	"github.com/docverse/prlint/internal/doc"
)

// SectionIssueFormatter renders structural section issues. Missing sections
// have no position, so the template skips the snippet and reminds the reader
// of the expected template order instead.
type SectionIssueFormatter struct{}

func (f *SectionIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{message .Message -}}
{{sectionHint .Padding}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}

func sectionHint(padding string) string {
	endString := lineStyle.Sprintf("%s| ", padding)
	endString += suggestionStyle.Sprintf("expected order: ### %s\n", strings.Join(doc.RequiredHeadings, " -> ### "))
	return endString
}
