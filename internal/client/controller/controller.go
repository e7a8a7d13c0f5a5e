package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/emforms/internal/client/api"
	"github.com/dmitrijs2005/emforms/internal/client/forms"
	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/common"
	"github.com/dmitrijs2005/emforms/internal/logging"
)

// ErrNoResponse is reported when a call returned neither a reply nor an error.
var ErrNoResponse = errors.New("empty response")

// OpenParams selects what form to show. Zero values are left out of the
// fragment request.
type OpenParams struct {
	ID        int64
	ProjectID int64  // entry: parent project
	EntryType string // entry: entry type for a new entry
	Copy      bool   // entry, resource: prefill a new record from ID
	ModalID   string // project, training: show in a different modal
}

type Controller interface {
	Kind() models.Kind
	Open(ctx context.Context, p OpenParams) error
	Submit(ctx context.Context, s *forms.FormState) error
	Delete(ctx context.Context, id int64, label string) error
	Done(ctx context.Context, resp *models.Response, err error) error
}

type Deps struct {
	Client    api.Client
	Resolver  *api.Resolver
	View      View
	Confirmer Confirmer
	Logger    logging.Logger
}

type formController struct {
	kind models.Kind
	Deps
}

func New(kind models.Kind, d Deps) (Controller, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if d.Client == nil || d.Resolver == nil || d.View == nil || d.Confirmer == nil {
		return nil, errors.New("controller: missing dependency")
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &formController{kind: kind, Deps: d}, nil
}

func (c *formController) Kind() models.Kind { return c.kind }

func (c *formController) Open(ctx context.Context, p OpenParams) error {
	modalID := c.kind.ModalID()
	if p.ModalID != "" && c.kind.APIKind() == models.KindProject {
		modalID = p.ModalID
	}

	html, err := c.Client.FetchContent(ctx, c.kind.FormContentID(), openValues(c.kind, p))
	if err != nil {
		c.Logger.Error(ctx, "open form failed", "kind", c.kind, "id", p.ID, "error", err)
		return fmt.Errorf("open %s form: %w", c.kind, err)
	}
	return c.View.ShowModal(ctx, modalID, html)
}

func openValues(kind models.Kind, p OpenParams) url.Values {
	v := url.Values{}
	setID := func(key string, id int64) {
		if id > 0 {
			v.Set(key, strconv.FormatInt(id, 10))
		}
	}

	switch kind {
	case models.KindProject, models.KindTraining:
		// Trainings are projects; their id goes under project_id.
		setID("project_id", p.ID)
	case models.KindEntry:
		setID("entry_id", p.ID)
		setID("entry_project_id", p.ProjectID)
		if p.EntryType != "" {
			v.Set("entry_type", p.EntryType)
		}
		if p.Copy {
			v.Set("copy_entry", "true")
		}
	case models.KindResource:
		setID("resource_id", p.ID)
		v.Set("copy_resource", strconv.FormatBool(p.Copy))
	}
	return v
}

func (c *formController) Submit(ctx context.Context, s *forms.FormState) error {
	rec, err := forms.Build(c.kind, s)
	if err != nil {
		return c.Done(ctx, nil, err)
	}

	endpoint := c.Resolver.ForRecord(c.kind, rec.RecordID())
	c.Logger.Info(ctx, "submitting record", "kind", c.kind, "id", rec.RecordID(), "endpoint", endpoint)

	var resp *models.Response
	if mr, ok := rec.(models.MultipartRecord); ok && c.kind.Multipart() {
		resp, err = c.Client.SendForm(ctx, endpoint, mr, mr.Attached())
	} else {
		resp, err = c.Client.SendJSON(ctx, endpoint, rec)
	}
	return c.Done(ctx, resp, err)
}

func (c *formController) Delete(ctx context.Context, id int64, label string) error {
	ok, err := c.Confirmer.Confirm(ctx, deleteConfirmation(c.kind, id, label))
	if err != nil {
		c.Logger.Warn(ctx, "confirmation failed", "kind", c.kind, "id", id, "error", err)
		return nil
	}
	if !ok {
		c.Logger.Debug(ctx, "delete declined", "kind", c.kind, "id", id)
		return nil
	}

	endpoint := c.Resolver.Delete(c.kind)
	c.Logger.Info(ctx, "deleting record", "kind", c.kind, "id", id, "endpoint", endpoint)

	resp, err := c.Client.SendJSON(ctx, endpoint, models.DeleteRequest{ID: id})
	return c.Done(ctx, resp, err)
}

func deleteConfirmation(kind models.Kind, id int64, label string) Confirmation {
	msg := fmt.Sprintf("Do you want to DELETE %s with id=%d?", kind.Label(), id)
	if label != "" {
		msg = fmt.Sprintf("Do you want to DELETE %s '%s' ?", kind.Label(), label)
	}
	return Confirmation{
		Title:       "Delete " + kind.Label(),
		Message:     msg,
		CancelLabel: "Cancel",
		OKLabel:     "Delete",
	}
}

// Done closes the modal and refreshes the list once on success. Any failure
// leaves the modal open with the message shown inline and is returned as a
// *common.RequestFailedError.
func (c *formController) Done(ctx context.Context, resp *models.Response, err error) error {
	modalID := c.kind.ModalID()

	if err == nil && resp == nil {
		err = ErrNoResponse
	}
	if err == nil && resp.Failed() {
		err = common.ErrRequestFailed
	}
	if err != nil {
		msg := err.Error()
		if resp.Failed() {
			msg = resp.ErrorMessage()
		}
		c.Logger.Warn(ctx, "request failed", "kind", c.kind, "error", msg)
		if verr := c.View.ShowError(ctx, modalID, msg); verr != nil {
			c.Logger.Error(ctx, "show error failed", "kind", c.kind, "error", verr)
		}
		return common.NewRequestFailed(string(c.kind), msg, err)
	}

	if inv, ok := c.Client.(api.Invalidator); ok {
		inv.Invalidate(c.kind)
	}
	if err := c.View.CloseModal(ctx, modalID); err != nil {
		return fmt.Errorf("close modal: %w", err)
	}
	return c.View.Refresh(ctx, c.kind.APIKind())
}
