package engine

// SelectionEvent is the raw payload the rendering client emits when the
// user clicks or lassos points on a chart. Epoch is the dataset version
// the chart was rendered against; it is required to resolve positional
// pointers and ignored when every point carries its stable id.
type SelectionEvent struct {
	ChartKey string       `json:"chart_key"`
	Epoch    uint64       `json:"epoch"`
	Points   []EventPoint `json:"points"`
}

// EventPoint references one selected point. StableID is the preferred
// path: the identity attached to the point at render time. Pointer is
// the point's position within the DatasetView slice that was rendered,
// meaningful only for the exact snapshot it was issued from.
type EventPoint struct {
	Pointer  int    `json:"pointer"`
	StableID *RowID `json:"stable_id,omitempty"`
}

// Translate resolves ev into stable identities against the view that
// was last rendered for the controller chart at renderedEpoch.
//
// ok=false means the event must be discarded without touching the
// brush: either it came from a non-controller chart, or it needs
// positional resolution and its epoch does not match the render it
// would resolve against. Resolving a pointer against a reshaped slice
// silently selects the wrong records, so a mismatch always drops the
// whole event.
func Translate(ev SelectionEvent, t *Table, rendered DatasetView, renderedEpoch uint64) (SelectionSet, bool) {
	if ev.ChartKey != ControllerChartKey {
		return nil, false
	}

	needsPositions := false
	for _, p := range ev.Points {
		if p.StableID == nil {
			needsPositions = true
			break
		}
	}
	if needsPositions && ev.Epoch != renderedEpoch {
		return nil, false // stale
	}

	sel := make(SelectionSet, len(ev.Points))
	for _, p := range ev.Points {
		if p.StableID != nil {
			if *p.StableID >= 0 && int(*p.StableID) < t.Len() {
				sel[*p.StableID] = struct{}{}
			}
			continue
		}
		if p.Pointer >= 0 && p.Pointer < len(rendered) {
			sel[rendered[p.Pointer]] = struct{}{}
		}
	}
	return sel, true
}
