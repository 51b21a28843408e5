package engine

import (
	"math"
	"sort"

	"github.com/catarinaserranomartins1312/VDS/internal/models"
)

// Chart keys mirror the dashboard layout: fig1 is the single controller
// view, fig2-fig4 react to the brush, fig5 is the correlation summary.
const (
	ControllerChartKey = "fig1"
	SummaryChartKey    = "fig5"
)

type ChartRole int

const (
	RoleController ChartRole = iota
	RoleReactive
)

// ChartBinding pins a chart key to its role and y axis. The x axis is
// always expenditure.
type ChartBinding struct {
	Key    string
	Role   ChartRole
	Y      Indicator
	YLabel string
}

// chartBindings is static; exactly one controller binding exists.
var chartBindings = []ChartBinding{
	{Key: ControllerChartKey, Role: RoleController, Y: LifeExpect, YLabel: "Life Expectancy (Years)"},
	{Key: "fig2", Role: RoleReactive, Y: InfantMortality, YLabel: "Infant Mortality"},
	{Key: "fig3", Role: RoleReactive, Y: Undernourishment, YLabel: "Prevalence of Undernourishment"},
	{Key: "fig4", Role: RoleReactive, Y: NeonatalMortality, YLabel: "Neonatal Mortality"},
}

const xLabel = "Health Expenditure (PPP USD)"

// NeedMoreData is emitted in place of a correlation matrix when fewer
// than two rows are brushed.
const NeedMoreData = "need more data"

type EventKind int

const (
	// EvRefresh recomputes the outputs without changing any input.
	EvRefresh EventKind = iota
	EvSetCountries
	EvSetYear
	EvSelect
	EvClear
)

// Event is one external trigger. Exactly one is processed per cycle,
// and the whole cycle runs to completion before the next.
type Event struct {
	Kind      EventKind
	Countries []string
	Year      int32
	Selection SelectionEvent
}

// SessionState is everything that survives between cycles: the sidebar
// filters, the brush, and the view the controller chart was last
// rendered against together with its epoch. Positional selection events
// resolve against that snapshot, never against whatever the current
// cycle recomputed.
type SessionState struct {
	Filters FilterState
	Brush   BrushState
	Epoch   uint64
	View    DatasetView
}

// NewSessionState mirrors the dashboard defaults: the first five
// countries in ingestion order and the latest year in the data.
func NewSessionState(t *Table) SessionState {
	defaults := t.CountryDict
	if len(defaults) > 5 {
		defaults = defaults[:5]
	}
	_, maxYear := t.YearBounds()
	s := SessionState{Filters: NewFilterState(defaults, maxYear)}
	s.View = Project(t, s.Filters)
	return s
}

// Step runs one full recompute cycle and is the only place session
// state transitions happen. The ordering is fixed: filter mutation,
// fresh view, brush pruning, controller render over the full view,
// selection applied within the same cycle, then the brushed outputs.
func Step(t *Table, s SessionState, ev Event) (SessionState, *models.CycleOutputs) {
	next := s

	switch ev.Kind {
	case EvSetCountries:
		next.Filters = next.Filters.WithCountries(ev.Countries)
	case EvSetYear:
		next.Filters = next.Filters.WithYear(ev.Year)
	}

	// A reshaped view is a new epoch; stale positional events from the
	// old render will no longer resolve.
	view := Project(t, next.Filters)
	if !view.Equal(s.View) {
		next.Epoch = s.Epoch + 1
	}

	// Prune every cycle, whether or not the trigger touched filters.
	next.Brush = next.Brush.FilterChanged(view)

	if ev.Kind == EvClear {
		next.Brush = next.Brush.Clear()
	}

	// The controller always renders the full view: every visible point
	// stays a selection candidate.
	controller := buildChart(t, chartBindings[0], view)

	if ev.Kind == EvSelect {
		// Translate against the render the event actually came from.
		if sel, ok := Translate(ev.Selection, t, s.View, s.Epoch); ok {
			next.Brush = next.Brush.Receive(sel)
			// Stable-id events may carry rows outside the current
			// view; the subset invariant holds either way.
			next.Brush = next.Brush.FilterChanged(view)
		}
	}

	brushed := next.Brush.Brushed(view)
	reactive := make([]models.ChartView, 0, len(chartBindings)-1)
	for _, b := range chartBindings[1:] {
		reactive = append(reactive, buildChart(t, b, brushed))
	}

	corr := models.Correlation{Key: SummaryChartKey, Signal: NeedMoreData}
	if len(brushed) > 1 {
		corr = models.Correlation{Key: SummaryChartKey, Columns: CorrelationColumns(), Cells: Correlate(t, brushed)}
	}

	next.View = view
	out := &models.CycleOutputs{
		Epoch:        next.Epoch,
		Filters:      models.FilterSnapshot{Countries: filterCountries(next.Filters), Year: next.Filters.Year},
		Controller:   controller,
		Reactive:     reactive,
		Correlation:  corr,
		BrushActive:  next.Brush.Mode == BrushActive,
		BrushedCount: len(brushed),
	}
	return next, out
}

func buildChart(t *Table, b ChartBinding, view DatasetView) models.ChartView {
	pts := make([]models.ChartPoint, 0, len(view))
	for i, r := range view {
		x := t.Value(Expenditure, r)
		y := t.Value(b.Y, r)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue // no position on this chart; Pointer keeps view indices intact
		}
		pts = append(pts, models.ChartPoint{
			StableID: int32(r),
			Pointer:  i,
			Country:  t.Country(r),
			X:        x,
			Y:        y,
		})
	}
	return models.ChartView{Key: b.Key, XLabel: xLabel, YLabel: b.YLabel, Points: pts}
}

func filterCountries(f FilterState) []string {
	out := make([]string, 0, len(f.Countries))
	for c := range f.Countries {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
