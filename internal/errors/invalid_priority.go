package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of LOW, MEDIUM, HIGH",
	StatusCode: http.StatusBadRequest,
}
