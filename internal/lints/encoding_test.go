package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

func TestDetectEncodingViolations(t *testing.T) {
	t.Parallel()
	issues, err := DetectEncodingViolations("README.md", parseDoc("héllo wörld\n"), tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues, "non-ASCII UTF-8 is fine")

	invalid := doc.FromBytes("README.md", []byte{0xff, 0xfe, 'a'})
	issues, err = DetectEncodingViolations("README.md", invalid, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "not valid UTF-8")

	withNull := doc.FromBytes("README.md", []byte("a\x00b"))
	issues, err = DetectEncodingViolations("README.md", withNull, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "null byte at offset 1")
}

func TestDetectMixedLineEndings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		content        string
		expectedIssues int
	}{
		{
			name:           "all LF",
			content:        "a\nb\nc\n",
			expectedIssues: 0,
		},
		{
			name:           "all CRLF",
			content:        "a\r\nb\r\nc\r\n",
			expectedIssues: 0,
		},
		{
			name:           "mixed",
			content:        "a\r\nb\nc\r\n",
			expectedIssues: 1,
		},
		{
			name:           "bare carriage return",
			content:        "a\rb\n",
			expectedIssues: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectMixedLineEndings("README.md", parseDoc(tc.content), tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssues)
		})
	}
}

func TestDetectTrailingWhitespace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		content        string
		expectedIssues int
	}{
		{
			name:           "clean lines",
			content:        "a\nb\n",
			expectedIssues: 0,
		},
		{
			name:           "trailing space",
			content:        "a \nb\n",
			expectedIssues: 1,
		},
		{
			name:           "trailing tab",
			content:        "a\t\n",
			expectedIssues: 1,
		},
		{
			name:           "blockquote continuation space tolerated",
			content:        "> quoted \nplain\n",
			expectedIssues: 0,
		},
		{
			name:           "blockquote with two trailing spaces flagged",
			content:        "> quoted  \n",
			expectedIssues: 1,
		},
		{
			name:           "whitespace-only line ignored",
			content:        "a\n   \nb\n",
			expectedIssues: 0,
		},
		{
			name:           "crlf line with clean content",
			content:        "a\r\nb\r\n",
			expectedIssues: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectTrailingWhitespace("README.md", parseDoc(tc.content), tt.SeverityInfo)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssues)
		})
	}
}

func TestDetectMissingFinalNewline(t *testing.T) {
	t.Parallel()
	issues, err := DetectMissingFinalNewline("README.md", parseDoc("a\n"), tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)

	issues, err = DetectMissingFinalNewline("README.md", parseDoc(""), tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues, "empty document is file-size's problem, not final-newline's")

	issues, err = DetectMissingFinalNewline("README.md", parseDoc("a"), tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "end with a newline")
}
