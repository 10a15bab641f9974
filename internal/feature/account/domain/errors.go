// Package domain defines the error taxonomy for the account feature.
package domain

import "errors"

// Error codes. Every domain failure is one of exactly two kinds: the client
// sent bad data (input), or the client's identity could not be verified
// (authorization). Anything else is an internal error and must not be
// serialized in this shape.
const (
	CodeInput         = 400
	CodeAuthorization = 401
)

// User-facing messages. Login failures share one generic message whether the
// email is unknown or the password is wrong, so responses do not reveal
// account existence.
const (
	MsgWeakPassword   = "Weak password. It needs at least 6 characters, one letter and one digit!"
	MsgInvalidEmail   = "Invalid e-mail address."
	MsgExistingEmail  = "This e-mail is already in use."
	MsgInvalidInput   = "Invalid e-mail or password."
	MsgUserNotExist   = "User does not exist."
	MsgUnauthorized   = "Invalid or missing authentication token."
	MsgExpiredSession = "The session token has expired."
)

// Error is a domain failure carrying the wire payload of the API boundary.
type Error struct {
	Message        string
	Code           int
	AdditionalInfo string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewInputError creates a 400-class error for client data that fails
// validation or a business precondition.
func NewInputError(message string, additionalInfo ...string) *Error {
	return newError(CodeInput, message, additionalInfo)
}

// NewAuthorizationError creates a 401-class error for failed identity or
// credential verification.
func NewAuthorizationError(message string, additionalInfo ...string) *Error {
	return newError(CodeAuthorization, message, additionalInfo)
}

func newError(code int, message string, additionalInfo []string) *Error {
	e := &Error{Message: message, Code: code}
	if len(additionalInfo) > 0 {
		e.AdditionalInfo = additionalInfo[0]
	}
	return e
}

// AsError extracts a domain *Error from err, following wrap chains.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
