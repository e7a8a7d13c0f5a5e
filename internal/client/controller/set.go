package controller

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/common"
)

// EntryReportContentID names the read-only entry report fragment.
const EntryReportContentID = "entry_report"

// Set holds one controller per kind sharing the same dependencies.
type Set struct {
	deps  Deps
	byKey map[models.Kind]Controller
}

func NewSet(d Deps) (*Set, error) {
	s := &Set{deps: d, byKey: make(map[models.Kind]Controller, len(models.Kinds))}
	for _, k := range models.Kinds {
		c, err := New(k, d)
		if err != nil {
			return nil, err
		}
		s.byKey[k] = c
	}
	return s, nil
}

func (s *Set) For(kind models.Kind) (Controller, error) {
	c, ok := s.byKey[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownKind, kind)
	}
	return c, nil
}

// ShowEntryReport loads the report for an entry into the entry modal.
func (s *Set) ShowEntryReport(ctx context.Context, entryID int64) error {
	params := url.Values{"entry_id": {strconv.FormatInt(entryID, 10)}}
	html, err := s.deps.Client.FetchContent(ctx, EntryReportContentID, params)
	if err != nil {
		return fmt.Errorf("entry report: %w", err)
	}
	return s.deps.View.ShowModal(ctx, models.KindEntry.ModalID(), html)
}
