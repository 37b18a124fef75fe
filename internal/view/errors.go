package view

import (
	"errors"
	"strings"

	"github.com/translogica/tms-console/internal/api"
)

// ErrorMessage collapses a client error to the single user-facing string a
// screen shows in place of its content. Server-supplied messages pass
// through verbatim; everything else gets one of the fixed messages.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if se, ok := api.AsServerError(err); ok {
		if message := strings.TrimSpace(se.Message); message != "" {
			return message
		}
		return MsgGenericError
	}
	switch {
	case errors.Is(err, api.ErrConnection):
		return MsgConnectionError
	case errors.Is(err, api.ErrUnauthorized):
		return MsgSessionExpired
	default:
		return MsgGenericError
	}
}
