package serverfn

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies a server function failure.
type Kind string

const (
	KindServerError     Kind = "ServerError"
	KindRequest         Kind = "Request"
	KindRegistration    Kind = "Registration"
	KindArgs            Kind = "Args"
	KindDeserialization Kind = "Deserialization"
	KindSerialization   Kind = "Serialization"
)

// Error is the error value that crosses the HTTP boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// ServerError reports a failure inside a server function.
func ServerError(msg string) *Error {
	return &Error{Kind: KindServerError, Message: msg}
}

// Encode returns the wire form "Kind|message".
func (e *Error) Encode() string {
	return string(e.Kind) + "|" + e.Message
}

// StatusCode is the HTTP status the handler answers with.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindRegistration:
		return http.StatusNotFound
	case KindArgs, KindDeserialization:
		return http.StatusBadRequest
	case KindRequest:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Decode parses a wire error. Bodies without a known kind prefix are kept
// whole as a ServerError message.
func Decode(body string) *Error {
	body = strings.TrimSpace(body)
	if kind, msg, ok := strings.Cut(body, "|"); ok {
		switch k := Kind(kind); k {
		case KindServerError, KindRequest, KindRegistration, KindArgs,
			KindDeserialization, KindSerialization:
			return &Error{Kind: k, Message: msg}
		}
	}
	return &Error{Kind: KindServerError, Message: body}
}

// AsError converts any error returned by a server function into an *Error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ServerError(err.Error())
}
