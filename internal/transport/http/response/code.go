package response

import "jobtrack/internal/domain"

// Business codes follow HTTP semantics directly.
const (
	CodeOK            = 0
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeUnprocessable = 422
	CodeServerError   = 500
)

var CodeMsgMap = map[int]string{
	CodeOK:            "OK",
	CodeBadRequest:    "Bad Request",
	CodeUnauthorized:  "Unauthorized",
	CodeForbidden:     "Forbidden",
	CodeNotFound:      "Not Found",
	CodeConflict:      "Conflict",
	CodeUnprocessable: "Unprocessable Entity",
	CodeServerError:   "Internal Server Error",
}

// CodeFor maps the domain failure taxonomy onto the code table.
func CodeFor(k domain.Kind) int {
	switch k {
	case domain.KindNotFound:
		return CodeNotFound
	case domain.KindConflict:
		return CodeConflict
	case domain.KindPermissionDenied, domain.KindAccountBlocked:
		return CodeForbidden
	case domain.KindInvalidTransition, domain.KindInvalidState:
		return CodeUnprocessable
	case domain.KindInvalidCredentials, domain.KindCredentialStale, domain.KindWrongCredentialType:
		return CodeUnauthorized
	case domain.KindValidation:
		return CodeBadRequest
	default:
		return CodeServerError
	}
}
