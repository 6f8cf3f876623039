package store

import "errors"

// Kind classifies a record-store failure the way the coordinator reacts to
// it: validation never reaches the wire, not-found means the target id is
// gone, transport is everything else.
type Kind int

const (
	KindTransport Kind = iota
	KindNotFound
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, msg string) *Error {
	if msg == "" {
		msg = "request failed"
	}
	return &Error{Kind: kind, Message: msg}
}

func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

func IsValidation(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindValidation
}
