package errors

import "net/http"

// ErrCommitFailed marks a failed atomic task+event write. Retryable by the
// caller; the service performs no automatic retry.
var ErrCommitFailed = &Exception{
	Message:    "failed to commit task change, retry the request",
	StatusCode: http.StatusServiceUnavailable,
}
