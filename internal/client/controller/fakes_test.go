package controller

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/emforms/internal/client/api"
	"github.com/dmitrijs2005/emforms/internal/client/models"
)

type call struct {
	Method   string
	Endpoint string
	Body     any
	Files    []models.Attachment
	Params   url.Values
}

// fakeClient records every call and answers with resp/err.
type fakeClient struct {
	calls []call
	html  string
	resp  *models.Response
	err   error
}

func (f *fakeClient) FetchContent(ctx context.Context, contentID string, params url.Values) (string, error) {
	f.calls = append(f.calls, call{Method: "fetch", Endpoint: contentID, Params: params})
	return f.html, f.err
}

func (f *fakeClient) SendJSON(ctx context.Context, endpoint string, body any) (*models.Response, error) {
	f.calls = append(f.calls, call{Method: "json", Endpoint: endpoint, Body: body})
	return f.resp, f.err
}

func (f *fakeClient) SendForm(ctx context.Context, endpoint string, attrs any, files []models.Attachment) (*models.Response, error) {
	f.calls = append(f.calls, call{Method: "form", Endpoint: endpoint, Body: attrs, Files: files})
	return f.resp, f.err
}

type invalidatingClient struct {
	fakeClient
	invalidated []models.Kind
}

func (f *invalidatingClient) Invalidate(kind models.Kind) {
	f.invalidated = append(f.invalidated, kind)
}

type fakeView struct {
	shown     map[string]string
	closed    []string
	errors    map[string]string
	refreshed []models.Kind
}

func newFakeView() *fakeView {
	return &fakeView{shown: map[string]string{}, errors: map[string]string{}}
}

func (v *fakeView) ShowModal(ctx context.Context, modalID, html string) error {
	v.shown[modalID] = html
	return nil
}

func (v *fakeView) CloseModal(ctx context.Context, modalID string) error {
	v.closed = append(v.closed, modalID)
	return nil
}

func (v *fakeView) ShowError(ctx context.Context, modalID, msg string) error {
	v.errors[modalID] = msg
	return nil
}

func (v *fakeView) Refresh(ctx context.Context, kind models.Kind) error {
	v.refreshed = append(v.refreshed, kind)
	return nil
}

type fakeConfirmer struct {
	answer bool
	err    error
	asked  []Confirmation
}

func (c *fakeConfirmer) Confirm(ctx context.Context, q Confirmation) (bool, error) {
	c.asked = append(c.asked, q)
	return c.answer, c.err
}

func success() *models.Response {
	r, _ := models.DecodeResponse(200, []byte(`{"project": {"id": 42}}`))
	return r
}

func failure(msg string) *models.Response {
	r, _ := models.DecodeResponse(200, []byte(`{"error": "`+msg+`"}`))
	return r
}

const baseURL = "http://emhub.test"

func newDeps(c api.Client, v *fakeView, conf *fakeConfirmer) Deps {
	return Deps{Client: c, Resolver: api.NewResolver(baseURL), View: v, Confirmer: conf}
}
