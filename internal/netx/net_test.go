package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Run("returns status and body", func(t *testing.T) {
		var gotMethod, gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"project":{"id":1}}`))
		}))
		defer ts.Close()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL, strings.NewReader("{}"))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		code, body, err := Do(ts.Client(), req, 0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, `{"project":{"id":1}}`, string(body))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
	})

	t.Run("body over limit is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer ts.Close()

		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		code, body, err := Do(nil, req, 4)
		require.ErrorIs(t, err, ErrBodyTooLarge)
		assert.Equal(t, http.StatusOK, code)
		assert.Nil(t, body)
	})

	t.Run("body exactly at limit", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer ts.Close()

		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		_, body, err := Do(nil, req, 10)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(body))
	})

	t.Run("transport error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		req, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)

		_, _, err = Do(nil, req, 0)
		require.Error(t, err)
	})
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(302))
	assert.False(t, IsSuccess(404))
	assert.False(t, IsSuccess(500))
}
