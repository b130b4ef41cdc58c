package seemeErrs

import (
	"errors"
	"strconv"
)

type Err string

func (e Err) Error() string {
	return string(e)
}

const (
	BadStatusCode = Err("bad_status_code")
	EmptyBody     = Err("empty_body")
	NotText       = Err("not_text")
	FieldNotFound = Err("field_not_found")
)

// Sentinels, one per Kind. Every *Error matches the sentinel of its kind with errors.Is.
const (
	ErrInvalidConfig     = Err("invalid_config")
	ErrInvalidParameter  = Err("invalid_parameter")
	ErrTransport         = Err("transport_error")
	ErrParse             = Err("parse_error")
	ErrMalformedResponse = Err("malformed_response")
	ErrGateway           = Err("gateway_error")
)

type Kind int8

const (
	KindInvalidConfig Kind = iota + 1
	KindInvalidParameter
	KindTransport
	KindParse
	KindMalformedResponse
	KindGateway
)

func (k Kind) Sentinel() error {
	switch k {
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindTransport:
		return ErrTransport
	case KindParse:
		return ErrParse
	case KindMalformedResponse:
		return ErrMalformedResponse
	case KindGateway:
		return ErrGateway
	}
	return nil
}

func (k Kind) String() string {
	if s := k.Sentinel(); s != nil {
		return s.Error()
	}
	return "unknown_error"
}

// Error is returned by every public operation of the gateway client.
// Code carries the gateway (or validator) numeric code, Status the HTTP status
// of a transport failure and Raw the response body the failure relates to.
type Error struct {
	Kind    Kind
	Message string
	Code    int
	Status  int
	Raw     string
	Err     error
}

func (e *Error) Error() string {
	res := e.Kind.String() + ": " + e.Message

	if e.Code != 0 {
		res += " (code " + strconv.Itoa(e.Code) + ")"
	}
	if e.Status != 0 {
		res += " (status " + strconv.Itoa(e.Status) + ")"
	}
	if e.Err != nil {
		res += ": " + e.Err.Error()
	}
	if e.Raw != "" {
		res += `, raw result: "` + e.Raw + `"`
	}

	return res
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

func NewInvalidConfig(msg string, code int) *Error {
	return &Error{Kind: KindInvalidConfig, Message: msg, Code: code}
}

func NewInvalidParameter(msg string, code int) *Error {
	return &Error{Kind: KindInvalidParameter, Message: msg, Code: code}
}

func NewTransport(status int, err error) *Error {
	return &Error{Kind: KindTransport, Message: "failed to fetch gateway url", Status: status, Err: err}
}

func NewParse(format string, raw string, err error) *Error {
	return &Error{Kind: KindParse, Message: "wrong return format, expected " + format, Raw: raw, Err: err}
}

func NewMalformedResponse(msg string, raw string) *Error {
	return &Error{Kind: KindMalformedResponse, Message: msg, Raw: raw}
}

func NewGateway(msg string, code int) *Error {
	return &Error{Kind: KindGateway, Message: msg, Code: code}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
