package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP, PDF, EPUB")
	ErrFileRequired = errors.New("no file provided")
)

const MaxUploadSize = 10 * 1024 * 1024 // 10MB

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Book files and other documents accepted by the media library.
var AllowedDocumentTypes = map[string]bool{
	".pdf":  true,
	".epub": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxUploadSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	return nil
}

func ValidateUpload(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxUploadSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] && !AllowedDocumentTypes[ext] {
		return ErrFileType
	}

	return nil
}

// IsImage reports whether the upload is an image by extension.
func IsImage(file *multipart.FileHeader) bool {
	return AllowedImageTypes[filepath.Ext(strings.ToLower(file.Filename))]
}
