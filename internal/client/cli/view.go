package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/filex"
)

// TerminalView renders modals as HTML files in dir and reports state
// changes on out.
type TerminalView struct {
	dir string
	out io.Writer

	mu   sync.Mutex
	open map[string]string
	// linked maps a form's default modal to the override modals it was
	// opened in.
	linked map[string][]string
}

func NewTerminalView(dir string, out io.Writer) *TerminalView {
	return &TerminalView{dir: dir, out: out, open: map[string]string{}, linked: map[string][]string{}}
}

// Link records that the form normally shown in formModal was opened in
// modalID instead. Closing formModal closes modalID too.
func (v *TerminalView) Link(formModal, modalID string) {
	if modalID == "" || modalID == formModal {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, id := range v.linked[formModal] {
		if id == modalID {
			return
		}
	}
	v.linked[formModal] = append(v.linked[formModal], modalID)
}

// targets returns modalID followed by its linked modals that are open.
// Callers hold v.mu.
func (v *TerminalView) targets(modalID string) []string {
	ids := []string{modalID}
	for _, id := range v.linked[modalID] {
		if _, ok := v.open[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (v *TerminalView) ShowModal(ctx context.Context, modalID, html string) error {
	path, err := filex.WriteFile(v.dir, modalID+".html", []byte(html))
	if err != nil {
		return fmt.Errorf("show %s: %w", modalID, err)
	}

	v.mu.Lock()
	v.open[modalID] = path
	v.mu.Unlock()

	fmt.Fprintf(v.out, "%s opened: %s\n", modalID, path)
	return nil
}

func (v *TerminalView) CloseModal(ctx context.Context, modalID string) error {
	v.mu.Lock()
	ids := v.targets(modalID)
	for _, id := range ids {
		delete(v.open, id)
	}
	delete(v.linked, modalID)
	v.mu.Unlock()

	for _, id := range ids {
		fmt.Fprintf(v.out, "%s closed\n", id)
	}
	return nil
}

// ShowError reports msg against modalID, or against the modals it is
// linked to when the form is shown there instead.
func (v *TerminalView) ShowError(ctx context.Context, modalID, msg string) error {
	v.mu.Lock()
	ids := v.targets(modalID)
	if _, ok := v.open[modalID]; !ok && len(ids) > 1 {
		ids = ids[1:]
	}
	v.mu.Unlock()

	for _, id := range ids {
		fmt.Fprintf(v.out, "%s: ERROR: %s\n", id, msg)
	}
	return nil
}

func (v *TerminalView) Refresh(ctx context.Context, kind models.Kind) error {
	fmt.Fprintf(v.out, "%s list refreshed\n", kind.Label())
	return nil
}

// OpenModals lists the currently shown modals in name order.
func (v *TerminalView) OpenModals() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	ids := make([]string, 0, len(v.open))
	for id := range v.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
