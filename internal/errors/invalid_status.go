package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of OPEN, IN_PROGRESS, READY_FOR_REVIEW, DONE",
	StatusCode: http.StatusBadRequest,
}
