package controller

import (
	"context"

	"github.com/dmitrijs2005/emforms/internal/client/models"
)

// View is the presentation side of a form.
type View interface {
	ShowModal(ctx context.Context, modalID, html string) error
	CloseModal(ctx context.Context, modalID string) error
	// ShowError renders msg inside the still-open modal.
	ShowError(ctx context.Context, modalID, msg string) error
	// Refresh reloads the list of records of kind.
	Refresh(ctx context.Context, kind models.Kind) error
}

// Confirmation describes a yes/no question.
type Confirmation struct {
	Title       string
	Message     string
	CancelLabel string
	OKLabel     string
}

// Confirmer returns the user's decision. An error counts as "no".
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) (bool, error)
}
