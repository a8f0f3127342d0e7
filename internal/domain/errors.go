package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can pick a response code
// without string-matching messages.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindPermissionDenied    Kind = "permission_denied"
	KindInvalidTransition   Kind = "invalid_transition"
	KindInvalidState        Kind = "invalid_state"
	KindInvalidCredentials  Kind = "invalid_credentials"
	KindCredentialStale     Kind = "credential_stale"
	KindWrongCredentialType Kind = "wrong_credential_type"
	KindAccountBlocked      Kind = "account_blocked"
	KindValidation          Kind = "validation"
	KindInternal            Kind = "internal"
)

// Error is the failure type every service operation returns.
// From/To are only set for invalid-transition failures.
type Error struct {
	Kind Kind
	Msg  string
	From string
	To   string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error         { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error         { return &Error{Kind: KindConflict, Msg: msg} }
func PermissionDenied(msg string) *Error { return &Error{Kind: KindPermissionDenied, Msg: msg} }
func InvalidState(msg string) *Error     { return &Error{Kind: KindInvalidState, Msg: msg} }
func InvalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Msg: msg}
}
func CredentialStale(msg string) *Error { return &Error{Kind: KindCredentialStale, Msg: msg} }
func WrongCredentialType(msg string) *Error {
	return &Error{Kind: KindWrongCredentialType, Msg: msg}
}
func AccountBlocked(msg string) *Error { return &Error{Kind: KindAccountBlocked, Msg: msg} }
func Validation(msg string) *Error     { return &Error{Kind: KindValidation, Msg: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// InvalidTransition reports an illegal state-machine edge attempt.
func InvalidTransition(machine, from, to string) *Error {
	return &Error{
		Kind: KindInvalidTransition,
		Msg:  fmt.Sprintf("invalid %s transition %s -> %s", machine, from, to),
		From: from,
		To:   to,
	}
}

// KindOf extracts the Kind from any error, defaulting to KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
