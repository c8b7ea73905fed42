package validators

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the upload ceiling, 10 MiB.
const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrUnsupportedExtension = errors.New("unsupported file extension; allowed: PDF, Word, PowerPoint, Text, ZIP, Images")
	ErrFileTooLarge         = fmt.Errorf("file too large; size must not exceed %d MiB", MaxUploadSize/(1024*1024))
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".ppt": true, ".pptx": true, ".txt": true,
	".zip": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// ValidateFileExtension checks the file name against the allow list,
// case-insensitively.
func ValidateFileExtension(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return ErrUnsupportedExtension
	}
	return nil
}

// ValidateFileSize rejects files over MaxUploadSize.
func ValidateFileSize(size int64) error {
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateUpload runs both checks on a multipart file header. The
// extension check runs first so a disallowed type is rejected regardless
// of its size.
func ValidateUpload(fh *multipart.FileHeader) error {
	if err := ValidateFileExtension(fh.Filename); err != nil {
		return err
	}
	return ValidateFileSize(fh.Size)
}
