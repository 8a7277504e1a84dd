// Package apierr defines the closed set of API errors shared by every
// layer of the service. Errors are constructed through the factory
// functions only, so the transport boundary can map each kind to an
// HTTP status without inspecting messages.
package apierr

import (
	"errors"
	"net/http"
)

// Kind identifies a member of the closed error set.
type Kind string

const (
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindMissingField     Kind = "MISSING_FIELD"
	KindInvalidFieldType Kind = "INVALID_FIELD_TYPE"
	KindBoxNotExist      Kind = "BOX_NOT_EXIST"
	KindPasswordRequired Kind = "PASSWORD_REQUIRED"
	KindInvalidPassword  Kind = "INVALID_PASSWORD"
	KindOtpTimeout       Kind = "OTP_TIMEOUT"
	KindInvalidOtp       Kind = "INVALID_OTP"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// Error is a domain failure carrying an HTTP status, a machine readable
// kind and a human readable message.
type Error struct {
	StatusCode int
	Kind       Kind
	Message    string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func Unauthenticated(msg string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func MissingField(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Kind: KindMissingField, Message: msg}
}

func InvalidFieldType(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Kind: KindInvalidFieldType, Message: msg}
}

func BoxNotExist(msg string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Kind: KindBoxNotExist, Message: msg}
}

func PasswordRequired(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Kind: KindPasswordRequired, Message: msg}
}

func InvalidPassword(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Kind: KindInvalidPassword, Message: msg}
}

func OtpTimeout(msg string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Kind: KindOtpTimeout, Message: msg}
}

func InvalidOtp(msg string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Kind: KindInvalidOtp, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// From returns err as *Error when it belongs to the taxonomy, otherwise
// a generic internal error. Internal detail is never surfaced to the
// caller; logging it is the boundary's job.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("Internal server error")
}
