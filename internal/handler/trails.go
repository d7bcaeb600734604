package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/tereverde/tereverde-go/internal/model"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// MaxDurationLen caps the estimated duration text.
const MaxDurationLen = 50

// TrailsHandler handles trail management routes.
type TrailsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewTrailsHandler creates a new TrailsHandler.
func NewTrailsHandler(db *sql.DB, renderer *render.Renderer) *TrailsHandler {
	return &TrailsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// TrailsListData holds data for the admin trails list template.
type TrailsListData struct {
	Trails    []store.Trail
	ParkNames map[int64]string
}

// TrailFormData holds data for the trail form template.
type TrailFormData struct {
	Trail        *store.Trail
	Parks        []store.Park
	Difficulties []string
	Errors       map[string]string
	FormValues   map[string]string
	IsEdit       bool
}

// List handles GET /admin/trails - displays all trails.
func (h *TrailsHandler) List(w http.ResponseWriter, r *http.Request) {
	trails, err := h.queries.ListTrails(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list trails", "error", err)
		return
	}

	parkNames, err := h.parkNames(r)
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := TrailsListData{Trails: trails, ParkNames: parkNames}
	if err := h.renderer.Render(w, r, "admin/trails_list", adminTemplateData(r, "Trilhas", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/trails/new - displays the new trail form.
func (h *TrailsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := TrailFormData{
		Parks:        parks,
		Difficulties: model.Difficulties,
		Errors:       make(map[string]string),
		FormValues:   map[string]string{"is_open": "1"},
	}

	if err := h.renderer.Render(w, r, "admin/trail_form", adminTemplateData(r, "Criar Trilha", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Create handles POST /admin/trails - creates a new trail.
func (h *TrailsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminTrailsNew) {
		return
	}

	formValues, errors := h.validateTrailForm(r)
	if len(errors) > 0 {
		h.renderTrailForm(w, r, "Criar Trilha", nil, formValues, errors)
		return
	}

	parkID, _ := strconv.ParseInt(formValues["park_id"], 10, 64)
	trail, err := h.queries.CreateTrail(r.Context(), store.CreateTrailParams{
		ParkID:            parkID,
		Name:              formValues["name"],
		Difficulty:        formValues["difficulty"],
		DurationEstimated: formValues["duration_estimated"],
		Description:       formValues["description"],
		IsOpen:            formValues["is_open"] == "1",
	})
	if err != nil {
		slog.Error("failed to create trail", "error", err)
		flashError(w, r, h.renderer, redirectAdminTrailsNew, "Erro ao criar trilha.")
		return
	}

	slog.Info("trail created", "trail_id", trail.ID, "name", trail.Name)
	flashSuccess(w, r, h.renderer, redirectAdminTrails, "Trilha \""+trail.Name+"\" criada com sucesso!")
}

// EditForm handles GET /admin/trails/{id}/edit - displays the edit form.
func (h *TrailsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTrails, "Trilha não encontrado(a).")
		return
	}

	trail, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTrails, "Trilha", id,
		func(id int64) (store.Trail, error) { return h.queries.GetTrailByID(r.Context(), id) })
	if !ok {
		return
	}

	formValues := map[string]string{
		"park_id":            strconv.FormatInt(trail.ParkID, 10),
		"name":               trail.Name,
		"difficulty":         trail.Difficulty,
		"duration_estimated": trail.DurationEstimated,
		"description":        trail.Description,
	}
	if trail.IsOpen {
		formValues["is_open"] = "1"
	}

	h.renderTrailForm(w, r, "Editar Trilha", &trail, formValues, make(map[string]string))
}

// Update handles POST /admin/trails/{id} - updates an existing trail.
func (h *TrailsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTrails, "Trilha não encontrado(a).")
		return
	}

	trail, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTrails, "Trilha", id,
		func(id int64) (store.Trail, error) { return h.queries.GetTrailByID(r.Context(), id) })
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminTrails) {
		return
	}

	formValues, errors := h.validateTrailForm(r)
	if len(errors) > 0 {
		h.renderTrailForm(w, r, "Editar Trilha", &trail, formValues, errors)
		return
	}

	parkID, _ := strconv.ParseInt(formValues["park_id"], 10, 64)
	if err := h.queries.UpdateTrail(r.Context(), store.UpdateTrailParams{
		ParkID:            parkID,
		Name:              formValues["name"],
		Difficulty:        formValues["difficulty"],
		DurationEstimated: formValues["duration_estimated"],
		Description:       formValues["description"],
		IsOpen:            formValues["is_open"] == "1",
		ID:                trail.ID,
	}); err != nil {
		slog.Error("failed to update trail", "error", err, "trail_id", trail.ID)
		flashError(w, r, h.renderer, redirectAdminTrails, "Erro ao atualizar trilha.")
		return
	}

	slog.Info("trail updated", "trail_id", trail.ID)
	flashSuccess(w, r, h.renderer, redirectAdminTrails, "Trilha \""+formValues["name"]+"\" atualizada com sucesso!")
}

// Toggle handles POST /admin/trails/{id}/toggle - flips the open/closed flag.
func (h *TrailsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTrails, "Trilha não encontrado(a).")
		return
	}

	trail, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTrails, "Trilha", id,
		func(id int64) (store.Trail, error) { return h.queries.GetTrailByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.SetTrailOpen(r.Context(), store.SetTrailOpenParams{
		IsOpen: !trail.IsOpen,
		ID:     trail.ID,
	}); err != nil {
		slog.Error("failed to toggle trail", "error", err, "trail_id", trail.ID)
		flashError(w, r, h.renderer, redirectAdminTrails, "Erro ao atualizar trilha.")
		return
	}

	status := "aberta"
	if trail.IsOpen {
		status = "fechada"
	}
	flashSuccess(w, r, h.renderer, redirectAdminTrails, "Trilha \""+trail.Name+"\" marcada como "+status+"!")
}

// Delete handles POST /admin/trails/{id}/delete - removes a trail.
func (h *TrailsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTrails, "Trilha não encontrado(a).")
		return
	}

	trail, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTrails, "Trilha", id,
		func(id int64) (store.Trail, error) { return h.queries.GetTrailByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.DeleteTrail(r.Context(), trail.ID); err != nil {
		slog.Error("failed to delete trail", "error", err, "trail_id", trail.ID)
		flashError(w, r, h.renderer, redirectAdminTrails, "Erro ao excluir trilha.")
		return
	}

	slog.Info("trail deleted", "trail_id", trail.ID, "name", trail.Name)
	flashSuccess(w, r, h.renderer, redirectAdminTrails, "Trilha \""+trail.Name+"\" excluída com sucesso!")
}

func (h *TrailsHandler) renderTrailForm(w http.ResponseWriter, r *http.Request, title string, trail *store.Trail, formValues, errors map[string]string) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := TrailFormData{
		Trail:        trail,
		Parks:        parks,
		Difficulties: model.Difficulties,
		Errors:       errors,
		FormValues:   formValues,
		IsEdit:       trail != nil,
	}

	if err := h.renderer.Render(w, r, "admin/trail_form", adminTemplateData(r, title, data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// validateTrailForm extracts and validates the trail form fields.
func (h *TrailsHandler) validateTrailForm(r *http.Request) (map[string]string, map[string]string) {
	formValues := map[string]string{
		"park_id":            r.FormValue("park_id"),
		"name":               strings.TrimSpace(r.FormValue("name")),
		"difficulty":         r.FormValue("difficulty"),
		"duration_estimated": strings.TrimSpace(r.FormValue("duration_estimated")),
		"description":        r.FormValue("description"),
	}
	if r.FormValue("is_open") == "on" || r.FormValue("is_open") == "1" {
		formValues["is_open"] = "1"
	}

	errors := make(map[string]string)

	if parkID, err := strconv.ParseInt(formValues["park_id"], 10, 64); err != nil || parkID <= 0 {
		errors["park_id"] = "Parque é obrigatório."
	} else if _, err := h.queries.GetParkByID(r.Context(), parkID); err != nil {
		errors["park_id"] = "Parque inválido."
	}

	if formValues["name"] == "" {
		errors["name"] = "Nome é obrigatório."
	} else if len(formValues["name"]) > MaxNameLen {
		errors["name"] = "Nome deve ter no máximo 200 caracteres."
	}

	if !model.IsValidDifficulty(formValues["difficulty"]) {
		errors["difficulty"] = "Dificuldade inválida."
	}

	if len(formValues["duration_estimated"]) > MaxDurationLen {
		errors["duration_estimated"] = "Duração deve ter no máximo 50 caracteres."
	}

	return formValues, errors
}

// parkNames maps park IDs to names for list templates.
func (h *TrailsHandler) parkNames(r *http.Request) (map[int64]string, error) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(parks))
	for _, p := range parks {
		names[p.ID] = p.Name
	}
	return names, nil
}
