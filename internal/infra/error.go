package infra

import (
	"errors"
	"log/slog"

	"voucher-hub/internal/pkg/errs"
)

type ControllerErrorKind string

type ControllerError struct {
	Kind ControllerErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e ControllerError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ControllerError) Unwrap() error {
	return e.err
}

func WrapControllerErr(slogger *slog.Logger, kind ControllerErrorKind, msg string, err error) error {
	slogger.Error("Controller error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ControllerError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ControllerErrorKind) bool {
	var e ControllerError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Controller-facing error kinds
const (
	// Bad or unsupported credentials; never retried.
	KindAuthRejected ControllerErrorKind = "AUTH_REJECTED"
	// Stale session (401-style); retried exactly once after re-login.
	KindSessionExpired ControllerErrorKind = "SESSION_EXPIRED"
	// Transport failure or timeout with no usable status; never retried.
	KindRemoteUnavailable ControllerErrorKind = "REMOTE_UNAVAILABLE"
	// Controller answered but without the requested record.
	KindNotFound ControllerErrorKind = "NOT_FOUND"
)
