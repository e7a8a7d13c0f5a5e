// Package attachments opens the files picked in a form's file inputs. A
// source is either a local path or an s3://bucket/key locator.
package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrS3NotConfigured = errors.New("s3 attachments are not configured")
	ErrInvalidSource   = errors.New("invalid attachment source")
)

// Opener returns the content of an attachment. The caller closes it.
type Opener interface {
	Open(ctx context.Context, source string) (io.ReadCloser, error)
}

// LocalOpener reads attachments from the local filesystem.
type LocalOpener struct{}

func (LocalOpener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := strings.TrimPrefix(source, "file://")
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidSource)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	return f, nil
}

// Router picks the opener for a source by its scheme.
type Router struct {
	Local Opener
	S3    Opener
}

func NewRouter(s3 Opener) *Router {
	return &Router{Local: LocalOpener{}, S3: s3}
}

func (r *Router) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if IsS3(source) {
		if r.S3 == nil {
			return nil, ErrS3NotConfigured
		}
		return r.S3.Open(ctx, source)
	}
	local := r.Local
	if local == nil {
		local = LocalOpener{}
	}
	return local.Open(ctx, source)
}

func IsS3(source string) bool {
	return strings.HasPrefix(source, "s3://")
}
