package backend

import "fmt"

// The API client reports failures as a closed set of kinds so pages can
// switch over them instead of probing a caught value's shape:
//
//   *APIError          — server responded with a non-2xx status
//   *ConnectivityError — request was sent, no response arrived
//   *RequestError      — the request could not be built or sent at all
//
// Anything outside this set is an unexpected failure and gets the generic
// message at the page level.

// APIError carries the response status and, when the backend supplied one,
// the detail message from its {"detail": "..."} error body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// ConnectivityError wraps a transport failure after the request left the
// process: DNS, refused connection, timeout, dropped socket.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("no response from backend: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// RequestError wraps a failure before the request could be sent, such as a
// malformed URL or an unmarshalable body.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request could not be sent: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
