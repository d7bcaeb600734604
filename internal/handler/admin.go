package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/tereverde/tereverde-go/internal/middleware"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// AdminHandler handles the back-office dashboard.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// DashboardData holds the dashboard statistics.
type DashboardData struct {
	ParksCount               int64
	TrailsCount              int64
	TrailsOpen               int64
	EventsCount              int64
	EventsActive             int64
	EventsUpcoming           int64
	AvailabilityPeriodsCount int64
	BiodiversityItemsCount   int64
}

// Dashboard handles GET /admin - shows the content statistics.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data DashboardData
	var err error

	counts := []struct {
		dst   *int64
		query func() (int64, error)
	}{
		{&data.ParksCount, func() (int64, error) { return h.queries.CountParks(ctx) }},
		{&data.TrailsCount, func() (int64, error) { return h.queries.CountTrails(ctx) }},
		{&data.TrailsOpen, func() (int64, error) { return h.queries.CountOpenTrails(ctx) }},
		{&data.EventsCount, func() (int64, error) { return h.queries.CountEvents(ctx) }},
		{&data.EventsActive, func() (int64, error) { return h.queries.CountActiveEvents(ctx) }},
		{&data.EventsUpcoming, func() (int64, error) { return h.queries.CountUpcomingEvents(ctx, time.Now().UTC()) }},
		{&data.AvailabilityPeriodsCount, func() (int64, error) { return h.queries.CountAvailabilityPeriods(ctx) }},
		{&data.BiodiversityItemsCount, func() (int64, error) { return h.queries.CountBiodiversityItems(ctx) }},
	}

	for _, c := range counts {
		if *c.dst, err = c.query(); err != nil {
			logAndInternalError(w, "failed to load dashboard counts", "error", err)
			return
		}
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", adminTemplateData(r, "Painel Administrativo", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// adminTemplateData builds the TemplateData for a back-office page, carrying
// the logged-in admin's name for the layout.
func adminTemplateData(r *http.Request, title string, data any) render.TemplateData {
	td := render.TemplateData{
		Title: title,
		Data:  data,
	}
	if admin := middleware.GetAdmin(r); admin != nil {
		td.LoggedIn = true
		td.AdminName = admin.Name
	}
	return td
}
