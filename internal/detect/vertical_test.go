package detect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink captures length-mismatch signals for assertions.
type recordSink struct {
	calls [][3]int
}

func (s *recordSink) LengthMismatch(c, o, n int) {
	s.calls = append(s.calls, [3]int{c, o, n})
}

func TestDetectVerticalBlankSeparated(t *testing.T) {
	lines := []string{
		"FDT325FAT22", "FDT326FAT23", "",
		"FBB325", "FBB326", "",
		"FBB325-3", "FBB326-1",
	}
	cols, ok := detectVertical(lines)
	require.True(t, ok)
	assert.Equal(t, []string{"FDT325FAT22", "FDT326FAT23"}, cols.contracts)
	assert.Equal(t, []string{"FBB325", "FBB326"}, cols.oldZones)
	assert.Equal(t, []string{"FBB325-3", "FBB326-1"}, cols.newZones)
}

// Blocks pasted in any relative order must come out identically: the
// permutation scan, not document order, decides which block is which.
func TestDetectVerticalBlockOrderIndependence(t *testing.T) {
	blocks := map[string][]string{
		"contracts": {"FDT325FAT22", "FDT326FAT23"},
		"old":       {"FBB325", "FBB326"},
		"new":       {"FBB325-3", "FBB326-1"},
	}
	orders := [][3]string{
		{"contracts", "old", "new"},
		{"contracts", "new", "old"},
		{"old", "contracts", "new"},
		{"old", "new", "contracts"},
		{"new", "contracts", "old"},
		{"new", "old", "contracts"},
	}

	var baseline []Row
	for i, ord := range orders {
		var lines []string
		for _, name := range ord {
			lines = append(lines, blocks[name]...)
			lines = append(lines, "")
		}
		cols, ok := detectVertical(lines)
		require.True(t, ok, "order %v", ord)
		rows := arrangeColumns(cols, NopSink{})
		if i == 0 {
			baseline = rows
			continue
		}
		if diff := cmp.Diff(baseline, rows); diff != "" {
			t.Errorf("order %v produced different rows (-first +this):\n%s", ord, diff)
		}
	}
}

func TestDetectVerticalPhaseScan(t *testing.T) {
	lines := []string{
		"FDT325FAT22", "FDT326FAT23", "FDT327FAT24",
		"FBB325", "FBB326",
		"FBB325-3",
	}
	cols, ok := detectVertical(lines)
	require.True(t, ok)
	assert.Len(t, cols.contracts, 3)
	assert.Len(t, cols.oldZones, 2)
	assert.Len(t, cols.newZones, 1)
}

func TestDetectVerticalPhaseScanDeclines(t *testing.T) {
	cases := []struct {
		name        string
		lines       []string
		wantAborted bool
	}{
		{
			// A contract token appearing after the old-zone phase started
			// aborts: the scan is forward-only.
			name: "backtracking token",
			lines: []string{
				"FDT325FAT22", "FDT326FAT23",
				"FBB325", "FBB326",
				"FDT327FAT24", "FBB325-3",
			},
			wantAborted: true,
		},
		{
			// A new zone directly after contracts fits no phase: old zones
			// must come first.
			name: "skipped phase",
			lines: []string{
				"FDT325FAT22", "FDT326FAT23", "FDT327FAT24",
				"FBB325-3", "FBB326-1", "FBB327-2",
			},
			wantAborted: true,
		},
		{
			name: "under six tokens",
			lines: []string{
				"FDT325FAT22", "FBB325", "FBB325-3",
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok, aborted := scanPhases(c.lines)
			assert.False(t, ok)
			assert.Equal(t, c.wantAborted, aborted)
		})
	}
}

// An aborting phase scan declines the entire vertical detector: the
// equal-thirds strategy must not get a second look at input the scan
// already rejected mid-stream.
func TestDetectVerticalAbortSkipsThirds(t *testing.T) {
	lines := []string{
		"FDT325FAT22", "FDT326FAT23",
		"FBB325", "FBB326",
		"FDT327FAT24", "FBB325-3",
	}
	_, ok := detectVertical(lines)
	assert.False(t, ok)
}

func TestDetectVerticalEqualThirds(t *testing.T) {
	// No blank separators and the first "old" token would abort the phase
	// scan only if misordered; here phase scan also works, so force the
	// thirds path directly.
	lines := []string{
		"FDT325FAT22", "FDT326FAT23",
		"FBB325", "FBB326",
		"FBB325-3", "FBB326-1",
	}
	cols, ok := sliceThirds(lines)
	require.True(t, ok)
	assert.Equal(t, []string{"FBB325", "FBB326"}, cols.oldZones)

	// Misclassified slice declines.
	bad := []string{
		"FDT325FAT22", "FBB325", // old zone inside the contract third
		"FBB326", "FBB327",
		"FBB325-3", "FBB326-1",
	}
	_, ok = sliceThirds(bad)
	assert.False(t, ok)
}

// Any internal whitespace on a non-blank line means the input is not a
// vertical paste at all; the whole detector must stand aside.
func TestDetectVerticalWhitespaceBailout(t *testing.T) {
	lines := []string{
		"FDT325FAT22", "FDT326FAT23", "",
		"FBB325 FBB326", "",
		"FBB325-3", "FBB326-1",
	}
	_, ok := detectVertical(lines)
	assert.False(t, ok)
}

func TestArrangeColumnsLengthMismatch(t *testing.T) {
	cols := columns{
		contracts: []string{"FDT325FAT22", "FDT326FAT23", "FDT327FAT24"},
		oldZones:  []string{"FBB25", "FBB326"},
		newZones:  []string{"FBB325-3", "FBB326-1"},
	}
	sink := &recordSink{}
	rows := arrangeColumns(cols, sink)

	require.Len(t, rows, 2, "truncated to shortest block")
	assert.Equal(t, [][3]int{{3, 2, 2}}, sink.calls)
	assert.Equal(t, "FBB025", rows[0].ZoneOld, "zones normalized during arrangement")
}

func TestArrangeColumnsEqualLengthsNoWarning(t *testing.T) {
	cols := columns{
		contracts: []string{"FDT325FAT22"},
		oldZones:  []string{"FBB325"},
		newZones:  []string{"FBB325-3"},
	}
	sink := &recordSink{}
	rows := arrangeColumns(cols, sink)
	require.Len(t, rows, 1)
	assert.Empty(t, sink.calls)
}
