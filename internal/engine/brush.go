package engine

// SelectionSet is a set of stable row identities.
type SelectionSet map[RowID]struct{}

// BrushMode is the state of the brush machine.
type BrushMode int

const (
	// BrushEmpty means no active brush: treat the whole DatasetView as
	// selected.
	BrushEmpty BrushMode = iota
	// BrushActive means a non-empty selection restricts the reactive
	// views.
	BrushActive
)

// BrushState is the canonical selection. It is a value: every
// transition returns a new state, and the invariant that Selection is a
// subset of the current DatasetView is maintained here, never by
// callers.
type BrushState struct {
	Mode      BrushMode
	Selection SelectionSet
}

// Receive replaces the selection with sel. A second selection always
// supersedes the first, never a union. An empty sel is a no-op, not a
// Clear: a lasso that caught nothing leaves the brush alone.
func (b BrushState) Receive(sel SelectionSet) BrushState {
	if len(sel) == 0 {
		return b
	}
	return BrushState{Mode: BrushActive, Selection: sel}
}

// Clear resets to the empty brush. Idempotent.
func (b BrushState) Clear() BrushState {
	return BrushState{Mode: BrushEmpty}
}

// FilterChanged prunes the selection against the rows visible in the
// new view. If nothing survives the intersection the brush collapses to
// empty. Runs every cycle, whether or not the trigger touched filters.
func (b BrushState) FilterChanged(view DatasetView) BrushState {
	if b.Mode == BrushEmpty {
		return b
	}
	visible := view.Rows()
	kept := make(SelectionSet, len(b.Selection))
	for r := range b.Selection {
		if _, ok := visible[r]; ok {
			kept[r] = struct{}{}
		}
	}
	if len(kept) == 0 {
		return BrushState{Mode: BrushEmpty}
	}
	return BrushState{Mode: BrushActive, Selection: kept}
}

// Brushed derives the rows the reactive views should render: the whole
// view when the brush is empty, else the selected subsequence in view
// order.
func (b BrushState) Brushed(view DatasetView) DatasetView {
	if b.Mode == BrushEmpty {
		return view
	}
	out := make(DatasetView, 0, len(b.Selection))
	for _, r := range view {
		if _, ok := b.Selection[r]; ok {
			out = append(out, r)
		}
	}
	return out
}
