package errors

import "net/http"

var ErrActorRequired = &Exception{
	Message:    "X-Actor-Id header is required",
	StatusCode: http.StatusBadRequest,
}
