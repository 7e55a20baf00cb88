package errors

import (
	stderrors "errors"

	"github.com/louisbranch/gridworld/internal/platform/errors/i18n"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional context for templating
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// IsInvalidDimension reports whether err rejects a world width or height.
func IsInvalidDimension(err error) bool {
	switch CodeOf(err) {
	case CodeWorldInvalidWidth, CodeWorldInvalidHeight:
		return true
	}
	return false
}

// IsOutOfBounds reports whether err rejects a cell coordinate.
func IsOutOfBounds(err error) bool {
	switch CodeOf(err) {
	case CodeWorldXOutOfRange, CodeWorldYOutOfRange:
		return true
	}
	return false
}

// IsInvalidName reports whether err rejects a cell name.
func IsInvalidName(err error) bool {
	switch CodeOf(err) {
	case CodeCellNameMissing, CodeCellNameBlank:
		return true
	}
	return false
}

// Localize renders the user-facing message for locale from the error catalog.
func (e *Error) Localize(locale string) string {
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}
