package models

// CycleOutputs is everything one recompute cycle hands to the client:
// the controller chart over the full filtered view, the reactive charts
// over the brushed view, and the correlation summary.
type CycleOutputs struct {
	Epoch        uint64         `json:"epoch"`
	Filters      FilterSnapshot `json:"filters"`
	Controller   ChartView      `json:"controller"`
	Reactive     []ChartView    `json:"reactive"`
	Correlation  Correlation    `json:"correlation"`
	BrushActive  bool           `json:"brush_active"`
	BrushedCount int            `json:"brushed_count"`
}

type FilterSnapshot struct {
	Countries []string `json:"countries"`
	Year      int32    `json:"year"`
}

type ChartView struct {
	Key    string       `json:"key"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint carries both the stable id and the point's position in
// the rendered slice, so a selection event can always prefer the id.
type ChartPoint struct {
	StableID int32   `json:"stable_id"`
	Pointer  int     `json:"pointer"`
	Country  string  `json:"country"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Correlation is the summary view payload: either a matrix or the
// need-more-data signal.
type Correlation struct {
	Key     string      `json:"key"`
	Columns []string    `json:"columns,omitempty"`
	Cells   [][]float64 `json:"cells,omitempty"`
	Signal  string      `json:"signal,omitempty"`
}

// Options feeds the sidebar widgets.
type Options struct {
	Countries        []string `json:"countries"`
	MinYear          int32    `json:"min_year"`
	MaxYear          int32    `json:"max_year"`
	DefaultCountries []string `json:"default_countries"`
	DefaultYear      int32    `json:"default_year"`
}
