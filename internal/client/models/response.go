package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedResponse = errors.New("malformed response")

// Response is a decoded backend reply. The backend answers with a JSON
// object; an "error" key marks a failure and carries the message.
type Response struct {
	StatusCode int
	Body       map[string]json.RawMessage
}

// DecodeResponse parses a reply body. An empty body decodes to an empty
// (success-shaped) object.
func DecodeResponse(statusCode int, b []byte) (*Response, error) {
	r := &Response{StatusCode: statusCode, Body: map[string]json.RawMessage{}}
	if len(strings.TrimSpace(string(b))) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(b, &r.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if r.Body == nil {
		r.Body = map[string]json.RawMessage{}
	}
	return r, nil
}

// Failed reports whether the reply is failure-shaped.
func (r *Response) Failed() bool {
	if r == nil {
		return false
	}
	_, ok := r.Body["error"]
	return ok
}

// ErrorMessage returns the human-readable failure message, or "".
func (r *Response) ErrorMessage() string {
	if r == nil {
		return ""
	}
	raw, ok := r.Body["error"]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Decode unmarshals the value stored under key into v.
func (r *Response) Decode(key string, v any) error {
	if r == nil {
		return fmt.Errorf("%w: no response", ErrMalformedResponse)
	}
	raw, ok := r.Body[key]
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrMalformedResponse, key)
	}
	return json.Unmarshal(raw, v)
}
