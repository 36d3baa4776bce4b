package errors

import "net/http"

var ErrTemplateForbidden = &Exception{
	Message:    "only the template owner may modify it",
	StatusCode: http.StatusForbidden,
}
