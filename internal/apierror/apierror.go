// Package apierror defines the typed errors the transcription flow can
// surface, each carrying the HTTP status it maps to. Handlers translate
// these at a single boundary instead of picking status codes per call site.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Stage identifies which step of the request flow an error belongs to.
type Stage string

const (
	StageValidation Stage = "validation"
	StageFetch      Stage = "fetch"
	StageTranscribe Stage = "transcribe"
)

// Error is the single error type crossing package boundaries in the
// transcription flow.
type Error struct {
	Stage  Stage
	Status int
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports a malformed client input. Client fault.
func Validation(detail string) *Error {
	return &Error{
		Stage:  StageValidation,
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

// Download reports a failure to resolve or retrieve the supplied URL.
// Attributed to the caller-supplied URL, so still a client fault.
func Download(cause error) *Error {
	return &Error{
		Stage:  StageFetch,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("Failed to download media: %v", cause),
		Cause:  cause,
	}
}

// Transcription reports a model load or inference failure. Server fault.
func Transcription(cause error) *Error {
	return &Error{
		Stage:  StageTranscribe,
		Status: http.StatusInternalServerError,
		Detail: fmt.Sprintf("Transcription failed: %v", cause),
		Cause:  cause,
	}
}

// Coerce returns err as an *Error if it already is one, otherwise wraps it
// with the given constructor. Keeps unanticipated errors from reaching
// clients untranslated.
func Coerce(err error, wrap func(error) *Error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return wrap(err)
}
