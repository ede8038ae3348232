package imaging

import (
	"bytes"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	MaxUploadBytes = 10 * 1024 * 1024
	MinDimensionPx = 100
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedFile reports whether the filename carries a supported image
// extension. The check is case-insensitive.
func AllowedFile(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// Validate inspects an upload without consuming anything. It returns the
// first failing check's message, or "" when the upload is acceptable.
// Checks run in order: extension, non-empty, size cap, pixel dimensions
// (only when the bytes decode as an image header).
func Validate(filename string, data []byte) string {
	if !AllowedFile(filename) {
		return "Invalid file type. Only PNG, JPG, JPEG, GIF allowed."
	}
	if len(data) == 0 {
		return "File is empty."
	}
	if len(data) > MaxUploadBytes {
		return "File too large. Maximum size is 10MB."
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		if cfg.Width < MinDimensionPx || cfg.Height < MinDimensionPx {
			return "Image too small. Minimum size is 100x100 pixels."
		}
	}
	return ""
}
