package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/catarinaserranomartins1312/VDS/internal/engine"
	"github.com/catarinaserranomartins1312/VDS/internal/models"
)

// Handler owns the per-session state and serializes recompute cycles:
// the engine processes exactly one trigger at a time, so every request
// takes the session lock for its whole cycle.
type Handler struct {
	mu    sync.Mutex
	table *engine.Table
	state engine.SessionState
}

// NewHandler accepts a nil table; the API is live immediately and
// answers 503 until SetData delivers the loaded dataset.
func NewHandler(table *engine.Table) *Handler {
	h := &Handler{}
	if table != nil {
		h.SetData(table)
	}
	return h
}

// SetData installs the loaded table and resets the session to the
// default filters.
func (h *Handler) SetData(table *engine.Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table = table
	h.state = engine.NewSessionState(table)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/dashboard", h.GetDashboard)
	api.PUT("/filters/countries", h.PutCountries)
	api.PUT("/filters/year", h.PutYear)
	api.POST("/select", h.PostSelect)
	api.POST("/clear", h.PostClear)
	api.GET("/options", h.GetOptions)
}

// runCycle processes one external trigger end to end and returns the
// per-cycle outputs, or a 503 while the dataset is still loading.
func (h *Handler) runCycle(c echo.Context, ev engine.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.table == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "dataset loading"})
	}
	state, out := engine.Step(h.table, h.state, ev)
	h.state = state
	return c.JSON(http.StatusOK, out)
}

// --- HANDLERS ---

func (h *Handler) GetDashboard(c echo.Context) error {
	return h.runCycle(c, engine.Event{Kind: engine.EvRefresh})
}

type countriesRequest struct {
	Countries []string `json:"countries"`
}

func (h *Handler) PutCountries(c echo.Context) error {
	var req countriesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return h.runCycle(c, engine.Event{Kind: engine.EvSetCountries, Countries: req.Countries})
}

type yearRequest struct {
	Year int32 `json:"year"`
}

func (h *Handler) PutYear(c echo.Context) error {
	var req yearRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return h.runCycle(c, engine.Event{Kind: engine.EvSetYear, Year: req.Year})
}

func (h *Handler) PostSelect(c echo.Context) error {
	var ev engine.SelectionEvent
	if err := c.Bind(&ev); err != nil {
		return err
	}
	// Non-controller and stale events are dropped inside the engine;
	// the cycle still runs and returns the unchanged outputs.
	return h.runCycle(c, engine.Event{Kind: engine.EvSelect, Selection: ev})
}

func (h *Handler) PostClear(c echo.Context) error {
	return h.runCycle(c, engine.Event{Kind: engine.EvClear})
}

// GetOptions feeds the sidebar widgets: the country list in ingestion
// order, the year bounds, and the session defaults.
func (h *Handler) GetOptions(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.table == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "dataset loading"})
	}
	defaults := h.table.CountryDict
	if len(defaults) > 5 {
		defaults = defaults[:5]
	}
	minYear, maxYear := h.table.YearBounds()
	return c.JSON(http.StatusOK, models.Options{
		Countries:        h.table.CountryDict,
		MinYear:          minYear,
		MaxYear:          maxYear,
		DefaultCountries: defaults,
		DefaultYear:      maxYear,
	})
}
