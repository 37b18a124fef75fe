package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the backend answers 404 or an empty
	// success payload for a single-entity read.
	ErrNotFound = errors.New("resource not found")

	// ErrConnection covers transport-level failures: the request never
	// produced a decodable HTTP response.
	ErrConnection = errors.New("connection failed")

	// ErrDecode is returned when the response body is not the JSON shape
	// the caller asked for.
	ErrDecode = errors.New("invalid response")

	// ErrUnauthorized is returned on 401, including an expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError carries an application-level failure: the HTTP exchange
// succeeded but the envelope reported success=false. Message is the
// server-supplied text, shown verbatim to the user when present.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "server reported failure"
	}
	return fmt.Sprintf("server reported failure: %s", e.Message)
}

// AsServerError unwraps err into a *ServerError when it is one.
func AsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
