package errors

import "net/http"

var ErrInvalidTemplateField = &Exception{
	Message:    "template field has an unknown type or a select field without options",
	StatusCode: http.StatusBadRequest,
}
