package infra

import (
	"errors"
	"log/slog"

	"vander-key-store/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every adapter in infra so use cases can branch on Kind
// without knowing which backend produced it.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func NewErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return Error{Kind: kind, msg: msg, err: err}
}

// WrapErr logs at error level before wrapping. Use NewErr for expected
// outcomes such as KindNotFound.
func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Infrastructure error: "+msg, logArgs...)

	return NewErr(kind, msg, err)
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindStoreFailure     ErrorKind = "STORE_FAILURE"
	KindRemoteFailure    ErrorKind = "REMOTE_FAILURE"
	KindConflict         ErrorKind = "CONFLICT"
	KindInvalidSignature ErrorKind = "INVALID_SIGNATURE"
	KindMalformedPayload ErrorKind = "MALFORMED_PAYLOAD"
)
