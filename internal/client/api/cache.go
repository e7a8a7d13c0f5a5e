package api

import (
	"context"
	"net/url"
	"time"

	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/patrickmn/go-cache"
)

// Invalidator is implemented by clients that keep derived state about
// records of a kind.
type Invalidator interface {
	Invalidate(kind models.Kind)
}

// CachingClient serves repeated form fragment requests from memory. Sends
// go straight to the wrapped client.
type CachingClient struct {
	Client
	cache *cache.Cache
}

// NewCachingClient wraps inner. ttl must be positive; go-cache treats a zero
// default expiration as "never expire".
func NewCachingClient(inner Client, ttl time.Duration) *CachingClient {
	return &CachingClient{Client: inner, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachingClient) FetchContent(ctx context.Context, contentID string, params url.Values) (string, error) {
	key := contentID + "?" + params.Encode()
	if v, ok := c.cache.Get(key); ok {
		return v.(string), nil
	}

	html, err := c.Client.FetchContent(ctx, contentID, params)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, html, cache.DefaultExpiration)
	return html, nil
}

// Invalidate drops every cached fragment. Forms of one kind render pickers
// and lists of other kinds, so a change to any record stales them all.
func (c *CachingClient) Invalidate(models.Kind) {
	c.cache.Flush()
}
