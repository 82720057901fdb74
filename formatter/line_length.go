package formatter

// LineLengthFormatter reports the offending line count without echoing the
// long lines back; printing a 200+ character snippet helps nobody.
type LineLengthFormatter struct{}

func (f *LineLengthFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{message .Message}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
