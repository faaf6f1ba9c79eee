package extractor

import (
	"context"
	"fmt"
)

// Service turns a free-form question into short, index-friendly search phrases.
type Service interface {
	Extract(ctx context.Context, question string) ([]string, error)
}

type ErrorKind int

const (
	// KindEmptyQuestion: the question was blank; no upstream call was made.
	KindEmptyQuestion ErrorKind = iota
	// KindUpstream: the model call itself failed (network, auth, quota).
	KindUpstream
	// KindMalformed: the model answered, but not with a parseable list.
	KindMalformed
	// KindNoPhrases: the model answered with a valid but empty list.
	KindNoPhrases
)

// ExtractionError reports why extraction failed. Kind lets callers message the
// user differently for "could not understand the question" vs "service
// unavailable" without inspecting the wrapped error.
type ExtractionError struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract phrases: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extract phrases: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
