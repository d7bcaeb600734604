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

// BiodiversityHandler handles biodiversity catalog management routes.
type BiodiversityHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewBiodiversityHandler creates a new BiodiversityHandler.
func NewBiodiversityHandler(db *sql.DB, renderer *render.Renderer) *BiodiversityHandler {
	return &BiodiversityHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// BiodiversityListData holds data for the admin biodiversity list template.
type BiodiversityListData struct {
	Items     []store.BiodiversityItem
	ParkNames map[int64]string
}

// BiodiversityFormData holds data for the biodiversity form template.
type BiodiversityFormData struct {
	Item       *store.BiodiversityItem
	Parks      []store.Park
	Types      []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// List handles GET /admin/biodiversity - displays the whole catalog.
func (h *BiodiversityHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListBiodiversityItems(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list biodiversity items", "error", err)
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

	data := BiodiversityListData{Items: items, ParkNames: parkNames}
	if err := h.renderer.Render(w, r, "admin/biodiversity_list", adminTemplateData(r, "Biodiversidade", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/biodiversity/new - displays the new item form.
func (h *BiodiversityHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "Criar Item de Biodiversidade", nil, make(map[string]string), make(map[string]string))
}

// Create handles POST /admin/biodiversity - creates a new catalog item.
func (h *BiodiversityHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminBiodiversityNew) {
		return
	}

	formValues, errors := h.validateForm(r)
	if len(errors) > 0 {
		h.renderForm(w, r, "Criar Item de Biodiversidade", nil, formValues, errors)
		return
	}

	parkID, _ := strconv.ParseInt(formValues["park_id"], 10, 64)
	item, err := h.queries.CreateBiodiversityItem(r.Context(), store.CreateBiodiversityItemParams{
		ParkID:      parkID,
		Name:        formValues["name"],
		Type:        formValues["type"],
		Description: formValues["description"],
	})
	if err != nil {
		slog.Error("failed to create biodiversity item", "error", err)
		flashError(w, r, h.renderer, redirectAdminBiodiversityNew, "Erro ao criar item de biodiversidade.")
		return
	}

	slog.Info("biodiversity item created", "item_id", item.ID, "name", item.Name)
	flashSuccess(w, r, h.renderer, redirectAdminBiodiversity, "Item \""+item.Name+"\" criado com sucesso!")
}

// EditForm handles GET /admin/biodiversity/{id}/edit - displays the edit form.
func (h *BiodiversityHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminBiodiversity, "Item não encontrado(a).")
		return
	}

	item, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminBiodiversity, "Item", id,
		func(id int64) (store.BiodiversityItem, error) {
			return h.queries.GetBiodiversityItemByID(r.Context(), id)
		})
	if !ok {
		return
	}

	formValues := map[string]string{
		"park_id":     strconv.FormatInt(item.ParkID, 10),
		"name":        item.Name,
		"type":        item.Type,
		"description": item.Description,
	}

	h.renderForm(w, r, "Editar Item de Biodiversidade", &item, formValues, make(map[string]string))
}

// Update handles POST /admin/biodiversity/{id} - updates an existing item.
func (h *BiodiversityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminBiodiversity, "Item não encontrado(a).")
		return
	}

	item, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminBiodiversity, "Item", id,
		func(id int64) (store.BiodiversityItem, error) {
			return h.queries.GetBiodiversityItemByID(r.Context(), id)
		})
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminBiodiversity) {
		return
	}

	formValues, errors := h.validateForm(r)
	if len(errors) > 0 {
		h.renderForm(w, r, "Editar Item de Biodiversidade", &item, formValues, errors)
		return
	}

	parkID, _ := strconv.ParseInt(formValues["park_id"], 10, 64)
	if err := h.queries.UpdateBiodiversityItem(r.Context(), store.UpdateBiodiversityItemParams{
		ParkID:      parkID,
		Name:        formValues["name"],
		Type:        formValues["type"],
		Description: formValues["description"],
		ID:          item.ID,
	}); err != nil {
		slog.Error("failed to update biodiversity item", "error", err, "item_id", item.ID)
		flashError(w, r, h.renderer, redirectAdminBiodiversity, "Erro ao atualizar item de biodiversidade.")
		return
	}

	slog.Info("biodiversity item updated", "item_id", item.ID)
	flashSuccess(w, r, h.renderer, redirectAdminBiodiversity, "Item \""+formValues["name"]+"\" atualizado com sucesso!")
}

// Delete handles POST /admin/biodiversity/{id}/delete - removes an item.
func (h *BiodiversityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminBiodiversity, "Item não encontrado(a).")
		return
	}

	item, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminBiodiversity, "Item", id,
		func(id int64) (store.BiodiversityItem, error) {
			return h.queries.GetBiodiversityItemByID(r.Context(), id)
		})
	if !ok {
		return
	}

	if err := h.queries.DeleteBiodiversityItem(r.Context(), item.ID); err != nil {
		slog.Error("failed to delete biodiversity item", "error", err, "item_id", item.ID)
		flashError(w, r, h.renderer, redirectAdminBiodiversity, "Erro ao excluir item de biodiversidade.")
		return
	}

	slog.Info("biodiversity item deleted", "item_id", item.ID, "name", item.Name)
	flashSuccess(w, r, h.renderer, redirectAdminBiodiversity, "Item \""+item.Name+"\" excluído com sucesso!")
}

func (h *BiodiversityHandler) renderForm(w http.ResponseWriter, r *http.Request, title string, item *store.BiodiversityItem, formValues, errors map[string]string) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := BiodiversityFormData{
		Item:       item,
		Parks:      parks,
		Types:      model.BiodiversityTypes,
		Errors:     errors,
		FormValues: formValues,
		IsEdit:     item != nil,
	}

	if err := h.renderer.Render(w, r, "admin/biodiversity_form", adminTemplateData(r, title, data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// validateForm extracts and validates the biodiversity form fields.
func (h *BiodiversityHandler) validateForm(r *http.Request) (map[string]string, map[string]string) {
	formValues := map[string]string{
		"park_id":     r.FormValue("park_id"),
		"name":        strings.TrimSpace(r.FormValue("name")),
		"type":        r.FormValue("type"),
		"description": r.FormValue("description"),
	}

	errors := make(map[string]string)

	parkID, err := strconv.ParseInt(formValues["park_id"], 10, 64)
	if err != nil || parkID <= 0 {
		errors["park_id"] = "Parque é obrigatório."
	} else if _, err := h.queries.GetParkByID(r.Context(), parkID); err != nil {
		errors["park_id"] = "Parque inválido."
	}

	if formValues["name"] == "" {
		errors["name"] = "Nome é obrigatório."
	} else if len(formValues["name"]) > MaxNameLen {
		errors["name"] = "Nome deve ter no máximo 200 caracteres."
	}

	if !model.IsValidBiodiversityType(formValues["type"]) {
		errors["type"] = "Tipo inválido."
	}

	return formValues, errors
}
