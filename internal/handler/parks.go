package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tereverde/tereverde-go/internal/model"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// MaxNameLen caps park, trail and event names.
const MaxNameLen = 200

// ParksHandler handles park management routes.
type ParksHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewParksHandler creates a new ParksHandler.
func NewParksHandler(db *sql.DB, renderer *render.Renderer) *ParksHandler {
	return &ParksHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// ParkFormData holds data for the park form template.
type ParkFormData struct {
	Park       *store.Park
	ParkTypes  []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// List handles GET /admin/parks - displays all parks.
func (h *ParksHandler) List(w http.ResponseWriter, r *http.Request) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/parks_list", adminTemplateData(r, "Parques", parks)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/parks/new - displays the new park form.
func (h *ParksHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := ParkFormData{
		ParkTypes:  model.ParkTypes,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	}

	if err := h.renderer.Render(w, r, "admin/park_form", adminTemplateData(r, "Criar Parque", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Create handles POST /admin/parks - creates a new park.
func (h *ParksHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminParksNew) {
		return
	}

	formValues, errors := h.validateParkForm(r)
	if len(errors) > 0 {
		data := ParkFormData{
			ParkTypes:  model.ParkTypes,
			Errors:     errors,
			FormValues: formValues,
		}
		if err := h.renderer.Render(w, r, "admin/park_form", adminTemplateData(r, "Criar Parque", data)); err != nil {
			logAndInternalError(w, "render error", "error", err)
		}
		return
	}

	park, err := h.queries.CreatePark(r.Context(), store.CreateParkParams{
		Name:        formValues["name"],
		Description: formValues["description"],
		Type:        formValues["type"],
		Location:    formValues["location"],
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to create park", "error", err)
		flashError(w, r, h.renderer, redirectAdminParksNew, "Erro ao criar parque.")
		return
	}

	slog.Info("park created", "park_id", park.ID, "name", park.Name)
	flashSuccess(w, r, h.renderer, redirectAdminParks, "Parque \""+park.Name+"\" criado com sucesso!")
}

// EditForm handles GET /admin/parks/{id}/edit - displays the edit form.
func (h *ParksHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminParks, "Parque não encontrado(a).")
		return
	}

	park, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminParks, "Parque", id,
		func(id int64) (store.Park, error) { return h.queries.GetParkByID(r.Context(), id) })
	if !ok {
		return
	}

	data := ParkFormData{
		Park:      &park,
		ParkTypes: model.ParkTypes,
		Errors:    make(map[string]string),
		FormValues: map[string]string{
			"name":        park.Name,
			"description": park.Description,
			"type":        park.Type,
			"location":    park.Location,
		},
		IsEdit: true,
	}

	if err := h.renderer.Render(w, r, "admin/park_form", adminTemplateData(r, "Editar Parque", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Update handles POST /admin/parks/{id} - updates an existing park.
func (h *ParksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminParks, "Parque não encontrado(a).")
		return
	}

	park, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminParks, "Parque", id,
		func(id int64) (store.Park, error) { return h.queries.GetParkByID(r.Context(), id) })
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminParks) {
		return
	}

	formValues, errors := h.validateParkForm(r)
	if len(errors) > 0 {
		data := ParkFormData{
			Park:       &park,
			ParkTypes:  model.ParkTypes,
			Errors:     errors,
			FormValues: formValues,
			IsEdit:     true,
		}
		if err := h.renderer.Render(w, r, "admin/park_form", adminTemplateData(r, "Editar Parque", data)); err != nil {
			logAndInternalError(w, "render error", "error", err)
		}
		return
	}

	if err := h.queries.UpdatePark(r.Context(), store.UpdateParkParams{
		Name:        formValues["name"],
		Description: formValues["description"],
		Type:        formValues["type"],
		Location:    formValues["location"],
		ID:          park.ID,
	}); err != nil {
		slog.Error("failed to update park", "error", err, "park_id", park.ID)
		flashError(w, r, h.renderer, redirectAdminParks, "Erro ao atualizar parque.")
		return
	}

	slog.Info("park updated", "park_id", park.ID)
	flashSuccess(w, r, h.renderer, redirectAdminParks, "Parque \""+formValues["name"]+"\" atualizado com sucesso!")
}

// Delete handles POST /admin/parks/{id}/delete - removes a park and, through
// the schema's cascades, everything that belongs to it.
func (h *ParksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminParks, "Parque não encontrado(a).")
		return
	}

	park, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminParks, "Parque", id,
		func(id int64) (store.Park, error) { return h.queries.GetParkByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.DeletePark(r.Context(), park.ID); err != nil {
		slog.Error("failed to delete park", "error", err, "park_id", park.ID)
		flashError(w, r, h.renderer, redirectAdminParks, "Erro ao excluir parque.")
		return
	}

	slog.Info("park deleted", "park_id", park.ID, "name", park.Name)
	flashSuccess(w, r, h.renderer, redirectAdminParks, "Parque \""+park.Name+"\" excluído com sucesso!")
}

// validateParkForm extracts and validates the park form fields.
func (h *ParksHandler) validateParkForm(r *http.Request) (map[string]string, map[string]string) {
	formValues := map[string]string{
		"name":        strings.TrimSpace(r.FormValue("name")),
		"description": r.FormValue("description"),
		"type":        r.FormValue("type"),
		"location":    strings.TrimSpace(r.FormValue("location")),
	}

	errors := make(map[string]string)

	if formValues["name"] == "" {
		errors["name"] = "Nome é obrigatório."
	} else if len(formValues["name"]) > MaxNameLen {
		errors["name"] = "Nome deve ter no máximo 200 caracteres."
	}

	if !model.IsValidParkType(formValues["type"]) {
		errors["type"] = "Tipo de parque inválido."
	}

	if len(formValues["location"]) > MaxNameLen {
		errors["location"] = "Localização deve ter no máximo 200 caracteres."
	}

	return formValues, errors
}
