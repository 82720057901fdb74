package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	tt "github.com/docverse/prlint/internal/types"
)

const cleanDocument = `### Purpose/Motivation

This is an evolving first pass at tier-by-plan differentiation.

### What does this PR do?

- Adds a tier service
- Adds resolvers
- Adds tests

<!-- reviewers: rollout is tracked separately -->

### Legal Boilerplate

Sentry, incorporated in Delaware, acquired Codecov in 2022 and retains all
rights to contributions made to this repository.
`

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngineCleanDocument(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	path := writeTempDoc(t, cleanDocument)
	issues, err := engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, issues, "a well-formed document yields no issues, got: %v", issues)
}

func TestEngineRunSourceIdempotent(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	broken := "### Purpose/Motivation\n\n### What does this PR do?\nno bullets here\n"
	first, err := engine.RunSource([]byte(broken))
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := engine.RunSource([]byte(broken))
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated runs over the same document must report identical issues")
}

func TestEngineReportsAllViolatedRules(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	// missing legal section, no bullets, lowercase bullet text elsewhere
	content := "### What does this PR do?\n\n### Purpose/Motivation\nTODO\n"
	issues, err := engine.RunSource([]byte(content))
	require.NoError(t, err)

	rules := make(map[string]bool)
	for _, issue := range issues {
		rules[issue.Rule] = true
	}
	assert.True(t, rules["section-presence"], "missing legal section must be reported")
	assert.True(t, rules["section-order"], "swapped headings must be reported")
	assert.True(t, rules["bullet-list"], "missing bullets must be reported")
	assert.True(t, rules["placeholder-text"], "TODO must be reported")
	assert.False(t, rules["final-newline"], "document ends with a newline")
}

func TestEngineMissingFile(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	_, err = engine.Run(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestEngineIgnoreRule(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)
	engine.IgnoreRule("bullet-list")

	content := "### What does this PR do?\nprose only, tier resolver test\n"
	issues, err := engine.RunSource([]byte(content))
	require.NoError(t, err)
	for _, issue := range issues {
		assert.NotEqual(t, "bullet-list", issue.Rule)
	}
}

func TestEngineIgnorePath(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	path := writeTempDoc(t, "garbage")
	engine.IgnorePath(filepath.Dir(path))

	issues, err := engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineSeverityOverride(t *testing.T) {
	engine, err := NewEngine(".", map[string]tt.ConfigRule{
		"bullet-list":      {Severity: tt.SeverityWarning},
		"placeholder-text": {Severity: tt.SeverityOff},
	})
	require.NoError(t, err)

	content := "### What does this PR do?\nTODO prose only\n"
	issues, err := engine.RunSource([]byte(content))
	require.NoError(t, err)

	sawBulletList := false
	for _, issue := range issues {
		assert.NotEqual(t, "placeholder-text", issue.Rule, "rule set to off must not report")
		if issue.Rule == "bullet-list" {
			sawBulletList = true
			assert.Equal(t, tt.SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, sawBulletList)
}

func TestEngineIgnoreDirective(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)

	content := "<!-- prlint:ignore placeholder-text -->\n### Purpose/Motivation\nTODO: tier plan evolving\n"
	issues, err := engine.RunSource([]byte(content))
	require.NoError(t, err)
	for _, issue := range issues {
		assert.NotEqual(t, "placeholder-text", issue.Rule)
	}
}

func TestEngineRunWithCache(t *testing.T) {
	engine, err := NewEngine(".", nil)
	require.NoError(t, err)
	require.NoError(t, engine.EnableCache(filepath.Join(t.TempDir(), "cache")))

	path := writeTempDoc(t, cleanDocument)

	first, err := engine.Run(path)
	require.NoError(t, err)

	second, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDefaultConfigRules(t *testing.T) {
	rules := DefaultConfigRules()
	assert.Len(t, rules, len(allRuleConstructors))
	assert.Equal(t, tt.SeverityError, rules["section-presence"].Severity)
	assert.Equal(t, tt.SeverityInfo, rules["trailing-whitespace"].Severity)
}
