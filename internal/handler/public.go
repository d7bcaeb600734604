package handler

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/tereverde/tereverde-go/internal/model"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// PublicHandler handles the read-only visitor pages.
type PublicHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(db *sql.DB, renderer *render.Renderer) *PublicHandler {
	return &PublicHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// HomeData holds data for the home page template.
type HomeData struct {
	Parks          []store.Park
	RecentTrails   []store.Trail
	UpcomingEvents []store.Event
	ParkNames      map[int64]string
}

// ParkDetailData holds data for the park detail template.
type ParkDetailData struct {
	Park                store.Park
	Trails              []store.Trail
	UpcomingEvents      []store.Event
	BiodiversityItems   []store.BiodiversityItem
	CurrentAvailability *store.AvailabilityPeriod
}

// PublicTrailsData holds data for the public trails template.
type PublicTrailsData struct {
	Trails             []store.Trail
	Parks              []store.Park
	ParkNames          map[int64]string
	SelectedParkID     int64
	SelectedDifficulty string
}

// PublicEventsData holds data for the public events template.
type PublicEventsData struct {
	Events         []store.Event
	Parks          []store.Park
	ParkNames      map[int64]string
	SelectedParkID int64
}

// Home handles GET / - parks overview, newest open trails and the next events.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parks, err := h.queries.ListParks(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	recentTrails, err := h.queries.ListRecentOpenTrails(ctx, HomeRecentLimit)
	if err != nil {
		logAndInternalError(w, "failed to list recent trails", "error", err)
		return
	}

	upcomingEvents, err := h.queries.ListUpcomingEventsLimit(ctx, store.ListUpcomingEventsLimitParams{
		StartDatetime: time.Now().UTC(),
		Limit:         HomeRecentLimit,
	})
	if err != nil {
		logAndInternalError(w, "failed to list upcoming events", "error", err)
		return
	}

	data := HomeData{
		Parks:          parks,
		RecentTrails:   recentTrails,
		UpcomingEvents: upcomingEvents,
		ParkNames:      parkNameMap(parks),
	}

	if err := h.renderer.Render(w, r, "public/home", render.TemplateData{
		Title: "Terê Verde Online",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// ParksList handles GET /parks - all parks in name order.
func (h *PublicHandler) ParksList(w http.ResponseWriter, r *http.Request) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "public/parks", render.TemplateData{
		Title: "Parques",
		Data:  parks,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// ParkDetail handles GET /parks/{id} - a park with its trails, upcoming
// events, top biodiversity items and current availability.
func (h *PublicHandler) ParkDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	ctx := r.Context()
	park, ok := requireEntityWithError(w, "park", id,
		func(id int64) (store.Park, error) { return h.queries.GetParkByID(ctx, id) })
	if !ok {
		return
	}

	trails, err := h.queries.ListTrailsByPark(ctx, park.ID)
	if err != nil {
		logAndInternalError(w, "failed to list park trails", "error", err, "park_id", park.ID)
		return
	}

	upcomingEvents, err := h.queries.ListUpcomingEvents(ctx, store.ListUpcomingEventsParams{
		StartDatetime: time.Now().UTC(),
		ParkID:        sql.NullInt64{Int64: park.ID, Valid: true},
	})
	if err != nil {
		logAndInternalError(w, "failed to list park events", "error", err, "park_id", park.ID)
		return
	}

	biodiversityItems, err := h.queries.ListTopBiodiversityItemsByPark(ctx, store.ListTopBiodiversityItemsByParkParams{
		ParkID: park.ID,
		Limit:  ParkDetailBiodiversityLimit,
	})
	if err != nil {
		logAndInternalError(w, "failed to list park biodiversity", "error", err, "park_id", park.ID)
		return
	}

	data := ParkDetailData{
		Park:              park,
		Trails:            trails,
		UpcomingEvents:    upcomingEvents,
		BiodiversityItems: biodiversityItems,
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	current, err := h.queries.GetCurrentAvailabilityPeriod(ctx, store.GetCurrentAvailabilityPeriodParams{
		ParkID: park.ID,
		Today:  today,
	})
	if err == nil {
		data.CurrentAvailability = &current
	}

	if err := h.renderer.Render(w, r, "public/park_detail", render.TemplateData{
		Title: park.Name,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// TrailsList handles GET /trails - open trails with optional park and
// difficulty filters. Unrecognized difficulty values are silently ignored.
func (h *PublicHandler) TrailsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params store.ListOpenTrailsParams
	var selectedParkID int64
	if raw := r.URL.Query().Get("park_id"); raw != "" {
		if parkID, err := strconv.ParseInt(raw, 10, 64); err == nil && parkID > 0 {
			params.ParkID = sql.NullInt64{Int64: parkID, Valid: true}
			selectedParkID = parkID
		}
	}

	selectedDifficulty := r.URL.Query().Get("difficulty")
	if normalized, ok := model.NormalizeDifficulty(selectedDifficulty); ok {
		params.Difficulty = sql.NullString{String: normalized, Valid: true}
	}

	trails, err := h.queries.ListOpenTrails(ctx, params)
	if err != nil {
		logAndInternalError(w, "failed to list trails", "error", err)
		return
	}

	parks, err := h.queries.ListParks(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := PublicTrailsData{
		Trails:             trails,
		Parks:              parks,
		ParkNames:          parkNameMap(parks),
		SelectedParkID:     selectedParkID,
		SelectedDifficulty: selectedDifficulty,
	}

	if err := h.renderer.Render(w, r, "public/trails", render.TemplateData{
		Title: "Trilhas",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// EventsList handles GET /events - upcoming active events, optionally
// filtered by park.
func (h *PublicHandler) EventsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := store.ListUpcomingEventsParams{StartDatetime: time.Now().UTC()}
	var selectedParkID int64
	if raw := r.URL.Query().Get("park_id"); raw != "" {
		if parkID, err := strconv.ParseInt(raw, 10, 64); err == nil && parkID > 0 {
			params.ParkID = sql.NullInt64{Int64: parkID, Valid: true}
			selectedParkID = parkID
		}
	}

	events, err := h.queries.ListUpcomingEvents(ctx, params)
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	parks, err := h.queries.ListParks(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := PublicEventsData{
		Events:         events,
		Parks:          parks,
		ParkNames:      parkNameMap(parks),
		SelectedParkID: selectedParkID,
	}

	if err := h.renderer.Render(w, r, "public/events", render.TemplateData{
		Title: "Eventos",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// About handles GET /about - the static page on conscious park use.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "public/about", render.TemplateData{
		Title: "Sobre",
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NotFound handles unmatched routes with the site's 404 page.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "public/notfound", render.TemplateData{
		Title: "Página não encontrada",
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

func parkNameMap(parks []store.Park) map[int64]string {
	names := make(map[int64]string, len(parks))
	for _, p := range parks {
		names[p.ID] = p.Name
	}
	return names
}
