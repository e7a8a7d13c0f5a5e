package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalView(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	v := NewTerminalView(dir, &out)
	ctx := context.Background()

	require.NoError(t, v.ShowModal(ctx, "project-modal", "<form>p</form>"))
	require.NoError(t, v.ShowModal(ctx, "entry-modal", "<form>e</form>"))

	data, err := os.ReadFile(filepath.Join(dir, "project-modal.html"))
	require.NoError(t, err)
	assert.Equal(t, "<form>p</form>", string(data))
	assert.Equal(t, []string{"entry-modal", "project-modal"}, v.OpenModals())

	require.NoError(t, v.ShowError(ctx, "entry-modal", "Title is required"))
	require.NoError(t, v.CloseModal(ctx, "project-modal"))
	require.NoError(t, v.Refresh(ctx, models.KindProject))

	assert.Equal(t, []string{"entry-modal"}, v.OpenModals())
	assert.Contains(t, out.String(), "entry-modal: ERROR: Title is required")
	assert.Contains(t, out.String(), "project-modal closed")
	assert.Contains(t, out.String(), "Project list refreshed")
}

func TestTerminalView_LinkedModalClosesWithForm(t *testing.T) {
	var out bytes.Buffer
	v := NewTerminalView(t.TempDir(), &out)
	ctx := context.Background()

	require.NoError(t, v.ShowModal(ctx, "side-modal", "<form>p</form>"))
	v.Link("project-modal", "side-modal")

	require.NoError(t, v.ShowError(ctx, "project-modal", "Title is required"))
	assert.Contains(t, out.String(), "side-modal: ERROR: Title is required")
	assert.NotContains(t, out.String(), "project-modal: ERROR")
	assert.Equal(t, []string{"side-modal"}, v.OpenModals())

	require.NoError(t, v.CloseModal(ctx, "project-modal"))
	assert.Empty(t, v.OpenModals())
	assert.Contains(t, out.String(), "side-modal closed")

	// The link is dropped with the form.
	require.NoError(t, v.ShowModal(ctx, "side-modal", "<form>q</form>"))
	require.NoError(t, v.CloseModal(ctx, "project-modal"))
	assert.Equal(t, []string{"side-modal"}, v.OpenModals())
}
