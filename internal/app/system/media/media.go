// Package media classifies and builds the media references used across
// the content model. A reference is either an external URL or a
// self-contained data URL; video is detected by prefix/suffix
// inspection so the renderer can pick the right element.
package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsVideo reports whether ref should be treated as a video source.
// Everything else is treated as an image.
func IsVideo(ref string) bool {
	return strings.HasPrefix(ref, "data:video") ||
		strings.HasSuffix(ref, ".mp4") ||
		strings.HasSuffix(ref, ".webm")
}

// IsDataURL reports whether ref is an inline data URL rather than an
// external reference.
func IsDataURL(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// DataURL encodes raw bytes as a base64 data URL with the given MIME
// type, the inline form uploads are stored in.
func DataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
