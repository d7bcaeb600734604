package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// DatetimeLocalFormat is the layout of datetime-local form inputs.
const DatetimeLocalFormat = "2006-01-02T15:04"

// EventsHandler handles event management routes.
type EventsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, renderer *render.Renderer) *EventsHandler {
	return &EventsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// EventsListData holds data for the admin events list template.
type EventsListData struct {
	Events    []store.Event
	ParkNames map[int64]string
}

// EventFormData holds data for the event form template.
type EventFormData struct {
	Event      *store.Event
	Parks      []store.Park
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// eventForm carries the parsed and validated event form fields.
type eventForm struct {
	parkID   int64
	start    time.Time
	end      time.Time
	isActive bool
}

// List handles GET /admin/events - displays all events, newest start first.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}
	parkNames := make(map[int64]string, len(parks))
	for _, p := range parks {
		parkNames[p.ID] = p.Name
	}

	data := EventsListData{Events: events, ParkNames: parkNames}
	if err := h.renderer.Render(w, r, "admin/events_list", adminTemplateData(r, "Eventos", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/events/new - displays the new event form.
func (h *EventsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderEventForm(w, r, "Criar Evento", nil, map[string]string{"is_active": "1"}, make(map[string]string))
}

// Create handles POST /admin/events - creates a new event.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEventsNew) {
		return
	}

	formValues, parsed, errors := h.validateEventForm(r)
	if len(errors) > 0 {
		h.renderEventForm(w, r, "Criar Evento", nil, formValues, errors)
		return
	}

	event, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		ParkID:        parsed.parkID,
		Title:         formValues["title"],
		Description:   formValues["description"],
		StartDatetime: parsed.start,
		EndDatetime:   parsed.end,
		IsActive:      parsed.isActive,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		flashError(w, r, h.renderer, redirectAdminEventsNew, "Erro ao criar evento.")
		return
	}

	slog.Info("event created", "event_id", event.ID, "title", event.Title)
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Evento \""+event.Title+"\" criado com sucesso!")
}

// EditForm handles GET /admin/events/{id}/edit - displays the edit form.
func (h *EventsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Evento não encontrado(a).")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "Evento", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	formValues := map[string]string{
		"park_id":        strconv.FormatInt(event.ParkID, 10),
		"title":          event.Title,
		"description":    event.Description,
		"start_datetime": event.StartDatetime.Format(DatetimeLocalFormat),
		"end_datetime":   event.EndDatetime.Format(DatetimeLocalFormat),
	}
	if event.IsActive {
		formValues["is_active"] = "1"
	}

	h.renderEventForm(w, r, "Editar Evento", &event, formValues, make(map[string]string))
}

// Update handles POST /admin/events/{id} - updates an existing event.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Evento não encontrado(a).")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "Evento", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEvents) {
		return
	}

	formValues, parsed, errors := h.validateEventForm(r)
	if len(errors) > 0 {
		h.renderEventForm(w, r, "Editar Evento", &event, formValues, errors)
		return
	}

	if err := h.queries.UpdateEvent(r.Context(), store.UpdateEventParams{
		ParkID:        parsed.parkID,
		Title:         formValues["title"],
		Description:   formValues["description"],
		StartDatetime: parsed.start,
		EndDatetime:   parsed.end,
		IsActive:      parsed.isActive,
		ID:            event.ID,
	}); err != nil {
		slog.Error("failed to update event", "error", err, "event_id", event.ID)
		flashError(w, r, h.renderer, redirectAdminEvents, "Erro ao atualizar evento.")
		return
	}

	slog.Info("event updated", "event_id", event.ID)
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Evento \""+formValues["title"]+"\" atualizado com sucesso!")
}

// Toggle handles POST /admin/events/{id}/toggle - flips the active flag.
func (h *EventsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Evento não encontrado(a).")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "Evento", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.SetEventActive(r.Context(), store.SetEventActiveParams{
		IsActive: !event.IsActive,
		ID:       event.ID,
	}); err != nil {
		slog.Error("failed to toggle event", "error", err, "event_id", event.ID)
		flashError(w, r, h.renderer, redirectAdminEvents, "Erro ao atualizar evento.")
		return
	}

	status := "ativo"
	if event.IsActive {
		status = "inativo"
	}
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Evento \""+event.Title+"\" marcado como "+status+"!")
}

// Delete handles POST /admin/events/{id}/delete - removes an event.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Evento não encontrado(a).")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "Evento", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), event.ID); err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", event.ID)
		flashError(w, r, h.renderer, redirectAdminEvents, "Erro ao excluir evento.")
		return
	}

	slog.Info("event deleted", "event_id", event.ID, "title", event.Title)
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Evento \""+event.Title+"\" excluído com sucesso!")
}

func (h *EventsHandler) renderEventForm(w http.ResponseWriter, r *http.Request, title string, event *store.Event, formValues, errors map[string]string) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := EventFormData{
		Event:      event,
		Parks:      parks,
		Errors:     errors,
		FormValues: formValues,
		IsEdit:     event != nil,
	}

	if err := h.renderer.Render(w, r, "admin/event_form", adminTemplateData(r, title, data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// validateEventForm extracts and validates the event form fields. Datetimes
// arrive in datetime-local format and are interpreted as UTC.
func (h *EventsHandler) validateEventForm(r *http.Request) (map[string]string, eventForm, map[string]string) {
	formValues := map[string]string{
		"park_id":        r.FormValue("park_id"),
		"title":          strings.TrimSpace(r.FormValue("title")),
		"description":    r.FormValue("description"),
		"start_datetime": r.FormValue("start_datetime"),
		"end_datetime":   r.FormValue("end_datetime"),
	}
	if r.FormValue("is_active") == "on" || r.FormValue("is_active") == "1" {
		formValues["is_active"] = "1"
	}

	var parsed eventForm
	parsed.isActive = formValues["is_active"] == "1"
	errors := make(map[string]string)

	parkID, err := strconv.ParseInt(formValues["park_id"], 10, 64)
	if err != nil || parkID <= 0 {
		errors["park_id"] = "Parque é obrigatório."
	} else if _, err := h.queries.GetParkByID(r.Context(), parkID); err != nil {
		errors["park_id"] = "Parque inválido."
	} else {
		parsed.parkID = parkID
	}

	if formValues["title"] == "" {
		errors["title"] = "Título é obrigatório."
	} else if len(formValues["title"]) > MaxNameLen {
		errors["title"] = "Título deve ter no máximo 200 caracteres."
	}

	if parsed.start, err = time.ParseInLocation(DatetimeLocalFormat, formValues["start_datetime"], time.UTC); err != nil {
		errors["start_datetime"] = "Data/hora de início inválida."
	}

	if parsed.end, err = time.ParseInLocation(DatetimeLocalFormat, formValues["end_datetime"], time.UTC); err != nil {
		errors["end_datetime"] = "Data/hora de término inválida."
	}

	return formValues, parsed, errors
}
