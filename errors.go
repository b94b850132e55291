package disfl_corpus

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCorpusType = errors.New("unsupported corpus type")
	ErrMissingInput          = errors.New("missing input")
	ErrMalformedLine         = errors.New("malformed line")
	ErrUnbalancedMarkup      = errors.New("unbalanced markup")
)

// MalformedLineError
// A raw corpus line that does not fit the structure its adapter expects.
// Fatal for the file it was found in.
type MalformedLineError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (err *MalformedLineError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("%v at line %d (%s): %q", ErrMalformedLine,
			err.Line, err.Reason, err.Text)
	}
	return fmt.Sprintf("%s:%d: %v (%s): %q", err.Path, err.Line,
		ErrMalformedLine, err.Reason, err.Text)
}

func (err *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// MarkupError
// Reports where the bracket grammar broke down inside one annotation.
// Position is the index of the offending whitespace-delimited unit.
type MarkupError struct {
	Position int
	Symbol   string
	Reason   string
}

func (err *MarkupError) Error() string {
	return fmt.Sprintf("%v: %s %q at token %d", ErrUnbalancedMarkup,
		err.Reason, err.Symbol, err.Position)
}

func (err *MarkupError) Unwrap() error {
	return ErrUnbalancedMarkup
}

// SegmentError
// A segment rejected by the flattener, with enough context to find it again.
type SegmentError struct {
	Path       string
	Line       int
	Annotation string
	Err        error
}

func (err *SegmentError) Error() string {
	return fmt.Sprintf("%s:%d: %v in %q", err.Path, err.Line, err.Err,
		err.Annotation)
}

func (err *SegmentError) Unwrap() error {
	return err.Err
}
