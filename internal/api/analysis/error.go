package analysis

import (
	"ImageAnalyzer/pkg/response"
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	FetchError ErrorKind = iota + 1
	DetectionError
	TranslationError
	FormatError
)

func (k ErrorKind) String() string {
	switch k {
	case FetchError:
		return "fetch"
	case DetectionError:
		return "detection"
	case TranslationError:
		return "translation"
	case FormatError:
		return "format"
	default:
		return "unknown"
	}
}

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, InternalServerErrorBody)
	ErrSegmentMismatch     = errors.New("translated segment count does not match label count")
)

// StageError records which pipeline stage failed. All kinds map to the same
// external response.
type StageError struct {
	Kind ErrorKind
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func NewStageError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Kind: kind, Err: err}
}

// KindOf returns the stage kind carried by err, or 0 when err is not a stage error.
func KindOf(err error) ErrorKind {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind
	}
	return 0
}
