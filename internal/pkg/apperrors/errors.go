package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindConflict
	KindDownstream
)

// AppError carries a kind and a caller-visible reason
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound returns an error for an absent trip/booking/user/vehicle
func NotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

// BadRequest returns an error for a violated precondition on status, seats, timing or OTP
func BadRequest(message string) error {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// Conflict returns an error for a duplicate booking or a lost seat race
func Conflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

// Downstream wraps a notification/payment/refund failure. These are logged and
// reported as warnings, never escalated to abort the primary state transition.
func Downstream(message string, err error) error {
	return &AppError{Kind: KindDownstream, Message: message, Err: err}
}

// Wrap attaches an internal cause to a caller-visible message
func Wrap(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

func kindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return KindInternal, false
}

// IsNotFound reports whether err is a NotFound error
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsBadRequest reports whether err is a BadRequest error
func IsBadRequest(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindBadRequest
}

// IsConflict reports whether err is a Conflict error
func IsConflict(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindConflict
}

// IsDownstream reports whether err is a Downstream failure
func IsDownstream(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindDownstream
}
