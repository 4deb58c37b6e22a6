package photo

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"
)

// MaxUploadBytes is the size ceiling for uploaded images (5 MB).
const MaxUploadBytes = 5 << 20

// Domain errors
var (
	ErrEmptySource  = errors.New("photo source cannot be empty")
	ErrNotAnImage   = errors.New("file must be an image")
	ErrTooLarge     = errors.New("file size must be less than 5MB")
	ErrEmptyCaption = errors.New("photo caption cannot be empty")
)

// Photo is a gallery entry. Source is either a URL or a data URI produced
// from an accepted upload.
type Photo struct {
	ID        string
	Source    string
	Caption   string
	Category  string // e.g. "training", "games", "events"
	CreatedAt time.Time
}

// Validate checks required fields.
// PRE: Photo struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Photo) Validate() error {
	if strings.TrimSpace(p.Source) == "" {
		return ErrEmptySource
	}
	if strings.TrimSpace(p.Caption) == "" {
		return ErrEmptyCaption
	}
	return nil
}

// ValidateUpload rejects non-image or oversized uploads before any state is
// touched. MIME category is judged from the declared content type.
// PRE: contentType is the declared MIME type; size in bytes
// POST: Returns nil only for image/* uploads within the size ceiling
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}

// ValidateDataURI applies the upload rules to an already-encoded data URI.
// A file smuggled in as text faces the same checks as a multipart upload.
// PRE: src starts with "data:"
// POST: Returns nil only for a base64 image data URI within the size ceiling
func ValidateDataURI(src string) error {
	rest, ok := strings.CutPrefix(src, "data:")
	if !ok {
		return ErrNotAnImage
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ErrNotAnImage
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	return ValidateUpload(contentType, int64(base64.StdEncoding.DecodedLen(len(payload))))
}
