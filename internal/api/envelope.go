package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Pagination mirrors the server's list metadata. The client never computes
// totals itself.
type Pagination struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// envelope is the `{success, data, message, pagination}` wrapper some
// endpoints use. Endpoints that return bare payloads are normalized through
// the same decode path.
type envelope struct {
	Success    *bool           `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}

// decodeBody unwraps body into out, accepting both the envelope convention
// and a bare JSON payload. It returns pagination metadata when the envelope
// carries any, and a *ServerError when the envelope reports success=false.
func decodeBody(body []byte, out any) (*Pagination, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		if out == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: empty body", ErrDecode)
	}

	// Bare arrays can never be envelopes.
	if trimmed[0] == '[' {
		if out == nil {
			return nil, nil
		}
		if err := json.Unmarshal(trimmed, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if env.Success == nil {
		// Bare object payload.
		if out == nil {
			return nil, nil
		}
		if err := json.Unmarshal(trimmed, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil, nil
	}

	if !*env.Success {
		return nil, &ServerError{Message: env.Message}
	}

	if out != nil {
		data := bytes.TrimSpace(env.Data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			// A nil collection serializes as null; only single-entity
			// reads treat an empty payload as not found.
			if isSliceTarget(out) {
				return env.Pagination, nil
			}
			return env.Pagination, ErrNotFound
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	return env.Pagination, nil
}

func isSliceTarget(out any) bool {
	t := reflect.TypeOf(out)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}
