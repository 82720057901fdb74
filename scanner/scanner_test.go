package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScanFindsMarkdownFiles(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "README.md", "# hello\n")
	writeFile(t, tmpDir, "notes.markdown", "notes\n")
	writeFile(t, tmpDir, "main.go", "package main\n")

	nested := filepath.Join(tmpDir, "docs")
	require.NoError(t, os.Mkdir(nested, 0o755))
	writeFile(t, nested, "guide.md", "guide\n")

	files, err := New(tmpDir).Scan()
	require.NoError(t, err)
	require.Len(t, files, 3)

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(tmpDir, f.Path)
		require.NoError(t, err)
		names = append(names, rel)
	}
	assert.Equal(t, []string{"README.md", filepath.Join("docs", "guide.md"), "notes.markdown"}, names)
}

func TestScanSortedByPath(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.md", "b\n")
	writeFile(t, tmpDir, "a.md", "a\n")
	writeFile(t, tmpDir, "c.md", "c\n")

	files, err := New(tmpDir).Scan()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.True(t, files[0].Path < files[1].Path && files[1].Path < files[2].Path)
}

func TestScanCustomExtensions(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "README.md", "md\n")
	writeFile(t, tmpDir, "template.txt", "txt\n")

	files, err := New(tmpDir, ".txt").Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(tmpDir, "template.txt"), files[0].Path)
}

func TestScanRecordsSize(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "README.md", "12345")

	files, err := New(tmpDir).Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, int64(5), files[0].Size)
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()
	_, err := New(filepath.Join(t.TempDir(), "absent")).Scan()
	assert.Error(t, err)
}
