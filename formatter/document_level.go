package formatter

// DocumentIssueFormatter renders issues that apply to the document as a
// whole, where a line snippet would be meaningless.
type DocumentIssueFormatter struct{}

func (f *DocumentIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{message .Message}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
