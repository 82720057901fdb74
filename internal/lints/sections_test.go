package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

const validDocument = `### Purpose/Motivation

This is an evolving first pass at tier-by-plan differentiation.

### What does this PR do?

- Adds a tier service
- Adds resolvers
- Adds tests

### Legal Boilerplate

Sentry, incorporated in Delaware, acquired Codecov in 2022 and retains all
rights to contributions made to this repository.
`

func parseDoc(content string) *doc.Document {
	return doc.FromBytes("README.md", []byte(content))
}

func TestDetectMissingSections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		content        string
		expectedIssues int
	}{
		{
			name:           "all sections present",
			content:        validDocument,
			expectedIssues: 0,
		},
		{
			name:           "legal section missing",
			content:        "### Purpose/Motivation\ntext\n\n### What does this PR do?\n- Item\n",
			expectedIssues: 1,
		},
		{
			name:           "empty document misses all three",
			content:        "",
			expectedIssues: 3,
		},
		{
			name:           "duplicate purpose heading",
			content:        validDocument + "\n### Purpose/Motivation\nagain\n",
			expectedIssues: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectMissingSections("README.md", parseDoc(tc.content), tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssues)
		})
	}
}

func TestDetectSectionOrder(t *testing.T) {
	t.Parallel()
	swapped := `### Purpose/Motivation

This is an evolving first pass at tier-by-plan differentiation.

### Legal Boilerplate

Sentry retains all rights to contributions.

### What does this PR do?

- Adds a tier service
`

	issues, err := DetectSectionOrder("README.md", parseDoc(swapped), tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"Legal Boilerplate" must come after "What does this PR do?"`)
}

func TestDetectSectionOrderValid(t *testing.T) {
	t.Parallel()
	issues, err := DetectSectionOrder("README.md", parseDoc(validDocument), tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDetectSectionOrderMissingSectionNotApplicable(t *testing.T) {
	t.Parallel()
	// ordering only considers the present subset; the absence itself is
	// section-presence's report
	content := "### Purpose/Motivation\ntier plan evolving\n\n### What does this PR do?\n- Adds a tier service\n"
	issues, err := DetectSectionOrder("README.md", parseDoc(content), tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDetectEmptySections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		content        string
		expectedIssues int
		wantMessage    string
	}{
		{
			name:           "substantial content",
			content:        validDocument,
			expectedIssues: 0,
		},
		{
			name:           "heading directly at end of document",
			content:        "### Legal Boilerplate\n",
			expectedIssues: 1,
			wantMessage:    "is empty",
		},
		{
			name:           "blockquote markers are not content",
			content:        "### Purpose/Motivation\n> \n> \n",
			expectedIssues: 1,
			wantMessage:    "is empty",
		},
		{
			name:           "short content flagged",
			content:        "### Purpose/Motivation\nwip\n",
			expectedIssues: 1,
			wantMessage:    "substantial content",
		},
		{
			name:           "comment-only block tolerated",
			content:        "### What does this PR do?\n<!-- reviewers look here -->\n",
			expectedIssues: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectEmptySections("README.md", parseDoc(tc.content), tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssues)
			if tc.wantMessage != "" && len(issues) > 0 {
				assert.Contains(t, issues[0].Message, tc.wantMessage)
			}
		})
	}
}

func TestDetectMissingBullets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		content        string
		expectedIssues int
	}{
		{
			name:           "dash bullets",
			content:        validDocument,
			expectedIssues: 0,
		},
		{
			name:           "star bullet",
			content:        "### What does this PR do?\n* Adds a tier service\n",
			expectedIssues: 0,
		},
		{
			name:           "blockquoted bullet",
			content:        "### What does this PR do?\n> - Adds a tier service\n",
			expectedIssues: 0,
		},
		{
			name:           "prose only",
			content:        "### What does this PR do?\nIt adds a tier service.\n",
			expectedIssues: 1,
		},
		{
			name:           "section absent is not applicable",
			content:        "### Purpose/Motivation\ntext\n",
			expectedIssues: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectMissingBullets("README.md", parseDoc(tc.content), tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssues)
		})
	}
}
