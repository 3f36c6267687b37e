package youtube

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the provider has no complete record for the requested video.
	ErrNotFound = errors.New("video not found")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid video record")
	// ErrProviderUnavailable indicates the metadata source is not configured.
	ErrProviderUnavailable = errors.New("video metadata provider unavailable")
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field string
	Rule  string
	Value any
}

// ValidationError reports a provider response that does not fit the VideoRecord shape.
type ValidationError struct {
	VideoID string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return fmt.Sprintf("%s %q: %s", ErrValidation, e.VideoID, strings.Join(parts, ", "))
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
