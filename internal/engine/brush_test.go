package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestClearIdempotent verifies Clear();Clear() equals a single Clear().
func TestClearIdempotent(t *testing.T) {
	b := BrushState{}.Receive(selection(1, 3))
	once := b.Clear()
	twice := once.Clear()
	require.Equal(t, once, twice)
	require.Equal(t, BrushEmpty, twice.Mode)
	require.Empty(t, twice.Selection)
}

// TestReceiveReplaces verifies a second selection supersedes the first,
// never a union.
func TestReceiveReplaces(t *testing.T) {
	b := BrushState{}.Receive(selection(1, 3))
	b = b.Receive(selection(2))
	require.Equal(t, BrushActive, b.Mode)
	require.Equal(t, selection(2), b.Selection)
}

// TestReceiveEmptyIsNoOp verifies a zero-point event leaves the brush
// alone instead of clearing it.
func TestReceiveEmptyIsNoOp(t *testing.T) {
	b := BrushState{}.Receive(selection(1, 3))
	after := b.Receive(SelectionSet{})
	require.Equal(t, b, after)

	empty := BrushState{}.Receive(nil)
	require.Equal(t, BrushEmpty, empty.Mode)
}

// TestFilterChangedPrunes verifies the selection is intersected with
// the new view and collapses to empty when nothing survives.
func TestFilterChangedPrunes(t *testing.T) {
	b := BrushState{}.Receive(selection(1, 2, 7))

	b = b.FilterChanged(DatasetView{0, 1, 2, 3})
	require.Equal(t, BrushActive, b.Mode)
	require.Equal(t, selection(1, 2), b.Selection)

	b = b.FilterChanged(DatasetView{4, 5, 6, 7})
	require.Equal(t, BrushEmpty, b.Mode)
	require.Empty(t, b.Selection)
}

// TestFilterChangedOnEmpty verifies the empty brush passes through any
// view change untouched.
func TestFilterChangedOnEmpty(t *testing.T) {
	b := BrushState{}
	require.Equal(t, b, b.FilterChanged(DatasetView{0, 1}))
	require.Equal(t, b, b.FilterChanged(DatasetView{}))
}

// TestBrushed verifies the derived view: everything when empty, the
// selected subsequence in view order when active.
func TestBrushed(t *testing.T) {
	view := DatasetView{3, 5, 8, 9}

	require.Equal(t, view, BrushState{}.Brushed(view))

	b := BrushState{}.Receive(selection(9, 3))
	require.Equal(t, DatasetView{3, 9}, b.Brushed(view))
}

// TestPruningInvariant walks a transition sequence and checks that the
// selection always stays a subset of the current view.
func TestPruningInvariant(t *testing.T) {
	views := []DatasetView{
		{0, 1, 2, 3},
		{2, 3, 4},
		{4, 5},
		{},
		{0, 1},
	}
	b := BrushState{}.Receive(selection(0, 2, 3))
	for _, view := range views {
		b = b.FilterChanged(view)
		visible := view.Rows()
		for r := range b.Selection {
			_, ok := visible[r]
			require.True(t, ok, "row %d selected but not visible", r)
		}
	}
}
