package apperr

import (
	"errors"
	"fmt"
)

const (
	MetaReason = "reason"
	MetaStage  = "stage"
	MetaField  = "field"
	MetaAction = "action"
	MetaX      = "x"
	MetaY      = "y"
	MetaButton = "button"
	MetaApp    = "app"

	StageValidation = "validation"
	StageInput      = "input"
	StageCapture    = "capture"
	StageScript     = "script"
	StageStartup    = "startup"

	CodeInternal        = "internal"
	CodeInvalidArgument = "invalid_argument"
	CodeUnavailable     = "unavailable"
	CodeTimeout         = "timeout"
	CodeCancelledByUser = "cancelled_by_user"
	CodeActionFailed    = "action_failed"
)

type Error struct {
	Op       string
	Code     string
	Err      error
	Metadata map[string]any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(op, code string, err error, metadata map[string]any) error {
	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Error{
		Op:       op,
		Code:     code,
		Err:      err,
		Metadata: metadata,
	}
}

func WrapWithReason(op, code string, err error, reason string) error {
	return Wrap(op, code, err, map[string]any{
		MetaReason: reason,
	})
}

func InvalidReqError(op, field string, err error) error {
	return Wrap(op, CodeInvalidArgument, err, map[string]any{
		MetaField:  field,
		MetaReason: "invalid_request",
		MetaStage:  StageValidation,
	})
}

// CodeOf returns the code of the outermost *Error in err's chain, or "" when
// there is none.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return ""
}
