package errors

import "net/http"

var ErrDuplicateStep = &Exception{
	Message:    "template declares more than one step for the same status",
	StatusCode: http.StatusBadRequest,
}
