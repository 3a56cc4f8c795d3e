// Package usererr marks errors that are the user's to fix: a destination that
// already exists, an input of the wrong kind, an XML payload that does not
// parse. Such errors are reported as a plain message instead of a log record.
//
// Like the behavioral marker in a hint, consumers detect them through the
// IsUserError method anywhere in the chain, so wrapping with fmt.Errorf("%w")
// keeps the classification intact.
package usererr

import (
	"errors"
	"fmt"
)

// Kind classifies a user error.
type Kind int

const (
	Unknown Kind = iota
	InvalidArgument
	DestinationExists
	NotContainer
	AlreadyContainer
	CorruptContainer
	MalformedXML
)

var kindToString = map[Kind]string{
	Unknown:           "unknown",
	InvalidArgument:   "invalid_argument",
	DestinationExists: "destination_exists",
	NotContainer:      "not_container",
	AlreadyContainer:  "already_container",
	CorruptContainer:  "corrupt_container",
	MalformedXML:      "malformed_xml",
}

func (k Kind) String() string {
	if str, ok := kindToString[k]; ok {
		return str
	}
	return fmt.Sprintf("unknown_kind(%d)", k)
}

type userErr struct {
	kind Kind
	err  error
}

func (u *userErr) Error() string {
	if u == nil || u.err == nil {
		return "unknown user error"
	}
	return u.err.Error()
}
func (u *userErr) IsUserError() bool { return true }
func (u *userErr) Kind() Kind        { return u.kind }
func (u *userErr) Unwrap() error     { return u.err }

// New creates a user error of the given kind from a format string.
func New(kind Kind, format string, args ...any) error {
	return &userErr{kind: kind, err: fmt.Errorf(format, args...)}
}

// Wrap promotes an existing error to a user error of the given kind.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &userErr{kind: kind, err: err}
}

// IsUserError checks if any error in the chain behaves like a user error.
func IsUserError(err error) bool {
	var u interface{ IsUserError() bool }
	return errors.As(err, &u) && u.IsUserError()
}

// KindOf returns the kind of the first user error in the chain, or Unknown.
func KindOf(err error) Kind {
	var u interface{ Kind() Kind }
	if errors.As(err, &u) {
		return u.Kind()
	}
	return Unknown
}

// Is reports whether err is a user error of the given kind.
func Is(err error, kind Kind) bool {
	return IsUserError(err) && KindOf(err) == kind
}
