package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind identifies a class of failure the API maps to a status code.
type Kind string

const (
	KindInvalidContext              Kind = "invalid_context"
	KindInvalidAnswer               Kind = "invalid_answer"
	KindUnauthenticated             Kind = "unauthenticated"
	KindEntitlementRequired         Kind = "entitlement_required"
	KindEmptyAudio                  Kind = "empty_audio"
	KindUpstreamGenerationFailed    Kind = "upstream_generation_failed"
	KindUpstreamTranscriptionFailed Kind = "upstream_transcription_failed"
	KindUpstreamTimeout             Kind = "upstream_timeout"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Is lets errors.Is match on kind alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusCode maps an error kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindInvalidContext, KindInvalidAnswer, KindEmptyAudio:
		return fiber.StatusBadRequest
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindEntitlementRequired:
		return fiber.StatusPaymentRequired
	case KindUpstreamTimeout:
		return fiber.StatusGatewayTimeout
	case KindUpstreamGenerationFailed, KindUpstreamTranscriptionFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
