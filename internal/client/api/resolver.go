package api

import (
	"strings"

	"github.com/dmitrijs2005/emforms/internal/client/models"
)

// ContentPath serves server-rendered fragments selected by content_id.
const ContentPath = "/get_content"

// Resolver builds endpoint URLs relative to the backend base URL.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *Resolver) BaseURL() string { return r.baseURL }

func (r *Resolver) Content() string {
	return r.baseURL + ContentPath
}

func (r *Resolver) Create(kind models.Kind) string {
	return r.action("create", kind)
}

func (r *Resolver) Update(kind models.Kind) string {
	return r.action("update", kind)
}

func (r *Resolver) Delete(kind models.Kind) string {
	return r.action("delete", kind)
}

// ForRecord picks update for an existing record and create otherwise.
func (r *Resolver) ForRecord(kind models.Kind, id int64) string {
	if id > 0 {
		return r.Update(kind)
	}
	return r.Create(kind)
}

func (r *Resolver) action(verb string, kind models.Kind) string {
	return r.baseURL + "/api/" + verb + "_" + string(kind.APIKind())
}
