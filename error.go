package dstruct

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	Unknown ErrorCode = iota
	IndexOutOfRange
	NotFound
	EmptyContainer
	UnhashableKey
	InvalidArgument
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when a referenced value or key is absent.
	ErrNotFound = errors.New("not found")
	// ErrKeyNotFound is the hash map flavor of ErrNotFound.
	ErrKeyNotFound = fmt.Errorf("key %w", ErrNotFound)
	// ErrEmpty is returned by pop/peek on an empty container.
	ErrEmpty = errors.New("container is empty")
	// ErrUnhashableKey is returned when a key type has no canonical byte form and no custom hash function was given.
	ErrUnhashableKey = errors.New("key type is not hashable")
	// ErrInvalidArgument is returned for invalid construction options.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is the container error. Err is one of the sentinel errors above, UserData carries the
// offending index, key or value.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	if e.UserData == nil {
		return fmt.Sprintf("error code: %d, details: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("error code: %d, user data: %v, details: %v", e.Code, e.UserData, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}

// NewError returns an Error carrying the code and user data.
func NewError(code ErrorCode, err error, userData any) error {
	return Error{Code: code, Err: err, UserData: userData}
}

// Code returns the ErrorCode of err, or Unknown when err is not an Error.
func Code(err error) ErrorCode {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}
