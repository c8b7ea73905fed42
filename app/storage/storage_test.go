package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":          "report.pdf",
		"my essay (v2).docx":  "my_essay__v2_.docx",
		"../../etc/passwd":    "passwd",
		"..":                  "upload",
		"":                    "upload",
		"über notes.txt":      "_ber_notes.txt",
		"photo.JPG":           "photo.JPG",
		"dir/nested/file.zip": "file.zip",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFileName(in), "input %q", in)
	}
}

func TestNewPath(t *testing.T) {
	m := &Media{Root: t.TempDir()}

	p := m.NewPath("lessons", "slides.pptx")
	assert.Equal(t, "lessons", filepath.Dir(p))
	assert.True(t, strings.HasSuffix(p, "_slides.pptx"))

	// Each call gets a fresh UUID prefix.
	assert.NotEqual(t, p, m.NewPath("lessons", "slides.pptx"))
}

func TestAbsRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	m, err := Init(root)
	require.NoError(t, err)

	abs, err := m.Abs("lessons/abc_file.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lessons", "abc_file.pdf"), abs)

	_, err = m.Abs("../outside.txt")
	assert.Error(t, err)

	_, err = m.Abs("lessons/../../outside.txt")
	assert.Error(t, err)
}

func TestRemoveMissingFile(t *testing.T) {
	m, err := Init(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, m.Remove("submissions/does-not-exist.pdf"))
}
