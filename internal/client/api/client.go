package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/emforms/internal/client/attachments"
	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/common"
	"github.com/dmitrijs2005/emforms/internal/logging"
	"github.com/dmitrijs2005/emforms/internal/netx"
	"github.com/google/uuid"
)

// AttrsField is the multipart part holding the JSON-encoded record.
const AttrsField = "attrs"

// Client is the backend contract used by the form controllers.
type Client interface {
	// FetchContent returns the HTML fragment named by contentID.
	FetchContent(ctx context.Context, contentID string, params url.Values) (string, error)
	// SendJSON posts body as JSON to endpoint.
	SendJSON(ctx context.Context, endpoint string, body any) (*models.Response, error)
	// SendForm posts attrs as the "attrs" part plus one part per file.
	SendForm(ctx context.Context, endpoint string, attrs any, files []models.Attachment) (*models.Response, error)
}

type HTTPClient struct {
	resolver   *Resolver
	httpClient *http.Client
	token      string
	opener     attachments.Opener
	logger     logging.Logger
	timeout    time.Duration
	bodyLimit  int64
	now        func() time.Time
}

type Option func(*HTTPClient)

func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

func WithToken(token string) Option {
	return func(h *HTTPClient) { h.token = token }
}

func WithOpener(o attachments.Opener) Option {
	return func(h *HTTPClient) { h.opener = o }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

// WithTimeout bounds every call. Zero leaves only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

// WithBodyLimit caps the size of a reply. Longer replies fail with
// netx.ErrBodyTooLarge instead of being cut short.
func WithBodyLimit(n int64) Option {
	return func(h *HTTPClient) { h.bodyLimit = n }
}

func NewHTTPClient(resolver *Resolver, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		resolver:   resolver,
		httpClient: &http.Client{},
		opener:     attachments.NewRouter(nil),
		logger:     logging.Discard(),
		bodyLimit:  netx.DefaultBodyLimit,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) FetchContent(ctx context.Context, contentID string, params url.Values) (string, error) {
	form := url.Values{}
	for k, vs := range params {
		form[k] = append([]string(nil), vs...)
	}
	form.Set("content_id", contentID)

	code, body, err := c.do(ctx, http.MethodPost, c.resolver.Content(),
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	if err := c.mapStatus(code, body); err != nil {
		return "", err
	}

	// Fragments come either raw or wrapped as {"html": "..."}.
	var wrapped map[string]json.RawMessage
	if json.Unmarshal(body, &wrapped) == nil {
		resp := &models.Response{StatusCode: code, Body: wrapped}
		if resp.Failed() {
			return "", fmt.Errorf("%w: %s", common.ErrRequestFailed, resp.ErrorMessage())
		}
		var html string
		if err := resp.Decode("html", &html); err == nil {
			return html, nil
		}
	}
	return string(body), nil
}

func (c *HTTPClient) SendJSON(ctx context.Context, endpoint string, body any) (*models.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	code, respBody, err := c.do(ctx, http.MethodPost, endpoint, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return c.decode(code, respBody)
}

func (c *HTTPClient) SendForm(ctx context.Context, endpoint string, attrs any, files []models.Attachment) (*models.Response, error) {
	payload, contentType, err := c.encodeForm(ctx, attrs, files)
	if err != nil {
		return nil, err
	}
	code, respBody, err := c.do(ctx, http.MethodPost, endpoint, contentType, payload)
	if err != nil {
		return nil, err
	}
	return c.decode(code, respBody)
}

// encodeForm builds the whole multipart body before anything is sent, so a
// missing attachment aborts the call without a partial upload.
func (c *HTTPClient) encodeForm(ctx context.Context, attrs any, files []models.Attachment) (*bytes.Buffer, string, error) {
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, "", fmt.Errorf("encode attrs: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField(AttrsField, string(b)); err != nil {
		return nil, "", fmt.Errorf("write attrs: %w", err)
	}

	for _, f := range files {
		if err := c.writeFile(ctx, w, f); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *HTTPClient) writeFile(ctx context.Context, w *multipart.Writer, f models.Attachment) error {
	rc, err := c.opener.Open(ctx, f.Source)
	if err != nil {
		return fmt.Errorf("attachment %s: %w", f.Field, err)
	}
	defer rc.Close()

	part, err := w.CreateFormFile(f.Field, f.FileName)
	if err != nil {
		return fmt.Errorf("attachment %s: %w", f.Field, err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("attachment %s: %w", f.Field, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) (int, []byte, error) {
	if err := CheckToken(c.token, c.now()); err != nil {
		return 0, nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json, text/html")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}

	log := c.logger.With("request_id", requestID, "method", method, "url", endpoint)
	start := time.Now()

	code, respBody, err := netx.Do(c.httpClient, req, c.bodyLimit)
	if errors.Is(err, netx.ErrBodyTooLarge) {
		log.Warn(ctx, "reply rejected", "status", code, "error", err)
		return 0, nil, err
	}
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return 0, nil, c.mapTransportError(ctx, err)
	}

	log.Debug(ctx, "request done", "status", code, "elapsed", time.Since(start).Round(time.Millisecond))
	return code, respBody, nil
}

func (c *HTTPClient) decode(code int, body []byte) (*models.Response, error) {
	if code != http.StatusUnauthorized && code != http.StatusForbidden {
		// The backend reports validation problems as {"error": ...}, at
		// times with a non-2xx status. Hand those back as failure-shaped
		// responses so the message reaches the user.
		if resp, err := models.DecodeResponse(code, body); err == nil && resp.Failed() {
			return resp, nil
		}
	}
	if err := c.mapStatus(code, body); err != nil {
		return nil, err
	}
	return models.DecodeResponse(code, body)
}

func (c *HTTPClient) mapStatus(code int, body []byte) error {
	switch {
	case netx.IsSuccess(code):
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return common.ErrorUnauthorized
	case code == http.StatusBadGateway, code == http.StatusServiceUnavailable, code == http.StatusGatewayTimeout:
		return common.ErrorUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", code, snippet(body))
	}
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
