package access

import "net/http"

// Error is the failure shape every service in the write path returns for
// authorization and invariant violations. Controllers map Code to an HTTP
// status; infrastructure failures stay plain wrapped errors.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

const (
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeNotAuthorized    = "NOT_AUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicateAuthor  = "DUPLICATE_AUTHOR"
	CodeNotAContributor  = "NOT_A_CONTRIBUTOR"
	CodeValidation       = "VALIDATION_ERROR"
)

func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeNotAuthenticated:
		return http.StatusUnauthorized
	case CodeNotAuthorized:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateAuthor:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func NotAuthenticated() *Error {
	return &Error{Code: CodeNotAuthenticated, Message: "authentication required"}
}

func NotAuthorized(message string) *Error {
	return &Error{Code: CodeNotAuthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func DuplicateAuthor(message string) *Error {
	return &Error{Code: CodeDuplicateAuthor, Message: message}
}

func NotAContributor(message string) *Error {
	return &Error{Code: CodeNotAContributor, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}
