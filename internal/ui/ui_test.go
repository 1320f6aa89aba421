package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoneremap/internal/detect"
	"zoneremap/internal/engine"
)

func TestReconcileSwitchesToResultView(t *testing.T) {
	m := New(&engine.Engine{})
	m.input.SetValue("FDT325FAT22-001 FBB25 FBB325-3\nFDT326FAT23 FBB326 FBB326-1")

	m.reconcile()

	assert.Equal(t, modeResult, m.mode)
	assert.False(t, m.failed)
	assert.Contains(t, m.status, "2 rows")
	assert.Contains(t, m.status, "rowwise")
}

func TestReconcileFailureKeepsPaste(t *testing.T) {
	m := New(&engine.Engine{})
	m.input.SetValue("nothing tabular here")

	m.reconcile()

	assert.Equal(t, modeEdit, m.mode, "stay in edit mode so the paste can be fixed")
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "no valid rows")
	assert.Equal(t, "nothing tabular here", m.input.Value())
}

func TestReconcileSurfacesLengthMismatchWarning(t *testing.T) {
	m := New(&engine.Engine{})
	m.input.SetValue("FDT325FAT22\nFDT326FAT23\nFDT327FAT24\n\nFBB325\nFBB326\n\nFBB325-3\nFBB326-1")

	m.reconcile()

	require.Len(t, m.warnings, 1)
	assert.Contains(t, m.warnings[0], "column lengths differ")
	assert.Contains(t, m.status, "2 rows")
}

func TestRenderRowsAligns(t *testing.T) {
	out := renderRows([]detect.Row{
		{Contract: "FDT325FAT22-001", ZoneOld: "FBB025", ZoneNew: "FBB325-3"},
		{Contract: "FDT326FAT23", ZoneOld: "FBB326", ZoneNew: "FBB326-1"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "FBB025"), strings.Index(lines[1], "FBB326"),
		"old-zone column aligned across rows")
}
