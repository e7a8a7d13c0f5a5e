// Package netx wraps the plain net/http round trip used by the API client.
package netx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultBodyLimit caps how much of a response body is read into memory.
const DefaultBodyLimit = 8 << 20

// ErrBodyTooLarge is returned when a response body exceeds the read limit.
var ErrBodyTooLarge = errors.New("response body too large")

// Do sends req and returns the status code with the response body. A body
// longer than limit bytes is an ErrBodyTooLarge error. The body is always
// closed.
func Do(c *http.Client, req *http.Request, limit int64) (int, []byte, error) {
	if c == nil {
		c = http.DefaultClient
	}
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	resp, err := c.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(b)) > limit {
		return resp.StatusCode, nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, limit)
	}
	return resp.StatusCode, b, nil
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
