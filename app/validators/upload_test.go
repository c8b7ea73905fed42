package validators

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileExtension(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		wantErr  bool
	}{
		{"pdf allowed", "homework.pdf", false},
		{"docx allowed", "essay.docx", false},
		{"uppercase extension allowed", "NOTES.PDF", false},
		{"mixed case allowed", "photo.JpG", false},
		{"zip allowed", "project.zip", false},
		{"executable rejected", "malware.exe", true},
		{"shell script rejected", "run.sh", true},
		{"no extension rejected", "README", true},
		{"double extension uses last", "report.pdf.exe", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFileExtension(tc.fileName)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedExtension)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(2*1024*1024))
	assert.NoError(t, ValidateFileSize(MaxUploadSize))
	assert.ErrorIs(t, ValidateFileSize(MaxUploadSize+1), ErrFileTooLarge)
	assert.ErrorIs(t, ValidateFileSize(12*1024*1024), ErrFileTooLarge)
}

func TestValidateUpload(t *testing.T) {
	// Disallowed type must be rejected even when the size is fine.
	fh := &multipart.FileHeader{Filename: "virus.exe", Size: 100}
	require.ErrorIs(t, ValidateUpload(fh), ErrUnsupportedExtension)

	// Oversized executable still reports the extension error first.
	fh = &multipart.FileHeader{Filename: "virus.exe", Size: MaxUploadSize * 2}
	require.ErrorIs(t, ValidateUpload(fh), ErrUnsupportedExtension)

	fh = &multipart.FileHeader{Filename: "essay.pdf", Size: MaxUploadSize * 2}
	require.ErrorIs(t, ValidateUpload(fh), ErrFileTooLarge)

	fh = &multipart.FileHeader{Filename: "essay.pdf", Size: 2 * 1024 * 1024}
	require.NoError(t, ValidateUpload(fh))
}
