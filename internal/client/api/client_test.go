package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/emforms/internal/client/attachments"
	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/common"
	"github.com/dmitrijs2005/emforms/internal/netx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOpener map[string]string

func (m memOpener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	data, ok := m[source]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func newTestClient(t *testing.T, opts ...Option) (*HTTPClient, *fakeBackend, *Resolver) {
	t.Helper()
	b, ts := newFakeBackend(t)
	r := NewResolver(ts.URL)
	opts = append([]Option{WithHTTPClient(ts.Client())}, opts...)
	return NewHTTPClient(r, opts...), b, r
}

func TestFetchContent(t *testing.T) {
	c, b, _ := newTestClient(t, WithToken("tok"))
	ctx := context.Background()

	html, err := c.FetchContent(ctx, "project_form", url.Values{"project_id": {"42"}})
	require.NoError(t, err)
	assert.Equal(t, `<form id="project-form"></form>`, html)

	req := b.last(t)
	assert.Equal(t, "/get_content", req.Path)
	assert.Equal(t, []string{"project_form"}, req.Form["content_id"])
	assert.Equal(t, []string{"42"}, req.Form["project_id"])
	assert.Equal(t, "Bearer tok", req.Auth)
	assert.NotEmpty(t, req.RequestID)

	html, err = c.FetchContent(ctx, "entry_report", nil)
	require.NoError(t, err)
	assert.Equal(t, "<div>entry_report</div>", html)

	_, err = c.FetchContent(ctx, "missing_form", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRequestFailed))
	assert.Contains(t, err.Error(), "unknown content")
}

func TestFetchContent_OversizedReplyIsAnError(t *testing.T) {
	c, _, _ := newTestClient(t, WithBodyLimit(16))

	// "<div>entry_report</div>" is 23 bytes.
	html, err := c.FetchContent(context.Background(), "entry_report", nil)
	require.ErrorIs(t, err, netx.ErrBodyTooLarge)
	assert.False(t, errors.Is(err, common.ErrorUnavailable))
	assert.Empty(t, html)
}

func TestSendJSON_Success(t *testing.T) {
	c, b, r := newTestClient(t)
	b.reply = map[string]any{"project": map[string]any{"id": 42}}

	resp, err := c.SendJSON(context.Background(), r.Update(models.KindProject), models.DeleteRequest{ID: 42})
	require.NoError(t, err)
	assert.False(t, resp.Failed())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := b.last(t)
	assert.Equal(t, "/api/update_project", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"id": 42}`, string(req.Body))
	assert.Empty(t, req.Auth, "no token configured")
}

func TestSendJSON_FailureShaped(t *testing.T) {
	c, b, r := newTestClient(t)

	b.reply = map[string]any{"error": "Title is required"}
	resp, err := c.SendJSON(context.Background(), r.Create(models.KindProject), map[string]any{})
	require.NoError(t, err)
	assert.True(t, resp.Failed())
	assert.Equal(t, "Title is required", resp.ErrorMessage())

	b.status = http.StatusBadRequest
	resp, err = c.SendJSON(context.Background(), r.Create(models.KindProject), map[string]any{})
	require.NoError(t, err, "error bodies are returned even with a 4xx status")
	assert.Equal(t, "Title is required", resp.ErrorMessage())
}

func TestSendJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		raw    string
		want   error
	}{
		{http.StatusUnauthorized, `{"error": "login"}`, common.ErrorUnauthorized},
		{http.StatusForbidden, `nope`, common.ErrorUnauthorized},
		{http.StatusServiceUnavailable, `down`, common.ErrorUnavailable},
		{http.StatusGatewayTimeout, ``, common.ErrorUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, b, r := newTestClient(t)
			b.status, b.raw = tt.status, tt.raw
			if tt.raw == "" {
				b.raw = " "
			}

			_, err := c.SendJSON(context.Background(), r.Delete(models.KindEntry), models.DeleteRequest{ID: 1})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("other status keeps body snippet", func(t *testing.T) {
		c, b, r := newTestClient(t)
		b.status, b.raw = http.StatusInternalServerError, "Traceback: boom"

		_, err := c.SendJSON(context.Background(), r.Delete(models.KindEntry), models.DeleteRequest{ID: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "Traceback: boom")
	})

	t.Run("malformed 2xx body", func(t *testing.T) {
		c, b, r := newTestClient(t)
		b.raw = "<html>ok</html>"

		_, err := c.SendJSON(context.Background(), r.Delete(models.KindEntry), models.DeleteRequest{ID: 1})
		assert.True(t, errors.Is(err, models.ErrMalformedResponse))
	})
}

func TestSendJSON_Unreachable(t *testing.T) {
	c := NewHTTPClient(NewResolver("http://127.0.0.1:1"), WithTimeout(time.Second))

	_, err := c.SendJSON(context.Background(), "http://127.0.0.1:1/api/create_project", map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUnavailable))
}

func TestSendJSON_CanceledContext(t *testing.T) {
	c, b, r := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SendJSON(ctx, r.Create(models.KindProject), map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, common.ErrorUnavailable))
	assert.Equal(t, 0, b.count())
}

func TestSendJSON_ExpiredTokenNeverSent(t *testing.T) {
	exp := time.Now().Add(-time.Hour)
	c, b, r := newTestClient(t, WithToken(signedToken(t, exp)))

	_, err := c.SendJSON(context.Background(), r.Create(models.KindProject), map[string]any{})
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
	assert.Equal(t, 0, b.count())
}

func TestSendForm_AttrsAndFiles(t *testing.T) {
	opener := memOpener{"/data/atlas.png": "PNG", "s3://b/r.pdf": "PDF"}
	c, b, r := newTestClient(t, WithOpener(opener))

	entry := models.Entry{Title: ptr("Grids"), Extra: models.EntryExtra{Data: map[string]any{"n": 1}}}
	files := []models.Attachment{
		{Field: "image", FileName: "atlas.png", Source: "/data/atlas.png"},
		{Field: "report", FileName: "r.pdf", Source: "s3://b/r.pdf"},
	}

	resp, err := c.SendForm(context.Background(), r.Create(models.KindEntry), entry, files)
	require.NoError(t, err)
	assert.False(t, resp.Failed())

	req := b.last(t)
	assert.Equal(t, "/api/create_entry", req.Path)
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/form-data"))
	require.Len(t, req.Form[AttrsField], 1)
	assert.JSONEq(t, `{"title": "Grids", "extra": {"data": {"n": 1}}}`, req.Form[AttrsField][0])
	assert.Len(t, req.Form, 1, "attrs is the only value part")
	assert.Equal(t, 2, req.FilePart)
	assert.Equal(t, "atlas.png:PNG", req.Files["image"])
	assert.Equal(t, "r.pdf:PDF", req.Files["report"])
}

func TestSendForm_NoFilesOnlyAttrs(t *testing.T) {
	c, b, r := newTestClient(t)

	_, err := c.SendForm(context.Background(), r.Update(models.KindResource), models.Resource{ID: 3, Fields: map[string]any{"name": "Krios"}}, nil)
	require.NoError(t, err)

	req := b.last(t)
	assert.Equal(t, "/api/update_resource", req.Path)
	assert.Equal(t, 0, req.FilePart)
	require.Len(t, req.Form[AttrsField], 1)

	var attrs map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Form[AttrsField][0]), &attrs))
	assert.Equal(t, map[string]any{"id": float64(3), "name": "Krios"}, attrs)
}

func TestSendForm_MissingAttachmentSendsNothing(t *testing.T) {
	c, b, r := newTestClient(t, WithOpener(attachments.LocalOpener{}))

	files := []models.Attachment{{Field: "image", FileName: "x.png", Source: filepath.Join(t.TempDir(), "x.png")}}
	_, err := c.SendForm(context.Background(), r.Create(models.KindEntry), models.Entry{}, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attachment image")
	assert.Equal(t, 0, b.count())
}

func ptr[T any](v T) *T { return &v }
