package svgembed

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// The MIME types recognized without a warning.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// KnownMimeTypes holds the MIME types the embedders are expected to work with.
var KnownMimeTypes = []string{MimePNG, MimeJPEG}

// jpegExtensions are the file extensions mapped to image/jpeg.
var jpegExtensions = []string{".jpg", ".jpeg"}

// DetectMime returns the MIME type used in the data URI.
// A non empty forced value is returned verbatim, otherwise the type is
// inferred from the case insensitive file extension, defaulting to image/png.
func DetectMime(path, forced string) string {
	if forced != "" {
		return forced
	}
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(jpegExtensions, ext) {
		return MimeJPEG
	}
	return MimePNG
}

// IsKnownMime reports whether mime is one of the KnownMimeTypes.
func IsKnownMime(mime string) bool {
	return slices.Contains(KnownMimeTypes, mime)
}

// EncodeBase64 encodes the raw image bytes using the standard, padded base64 alphabet.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURI composes the data:<mime>;base64,<payload> URI of the image bytes.
func DataURI(mime string, data []byte) string {
	var sb strings.Builder

	payload := EncodeBase64(data)
	sb.Grow(len("data:;base64,") + len(mime) + len(payload))
	sb.WriteString("data:")
	sb.WriteString(mime)
	sb.WriteString(";base64,")
	sb.WriteString(payload)

	return sb.String()
}
