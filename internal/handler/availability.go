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

// Form input layouts for availability periods.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// MaxSeasonNameLen caps the season name.
const MaxSeasonNameLen = 100

// AvailabilityHandler handles availability period management routes.
type AvailabilityHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(db *sql.DB, renderer *render.Renderer) *AvailabilityHandler {
	return &AvailabilityHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// AvailabilityListData holds data for the admin availability list template.
type AvailabilityListData struct {
	Periods   []store.AvailabilityPeriod
	ParkNames map[int64]string
}

// AvailabilityFormData holds data for the availability form template.
type AvailabilityFormData struct {
	Period     *store.AvailabilityPeriod
	Parks      []store.Park
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// availabilityForm carries the parsed and validated form fields.
type availabilityForm struct {
	parkID    int64
	startDate time.Time
	endDate   time.Time
}

// List handles GET /admin/availability - displays all periods.
func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.queries.ListAvailabilityPeriods(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list availability periods", "error", err)
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

	data := AvailabilityListData{Periods: periods, ParkNames: parkNames}
	if err := h.renderer.Render(w, r, "admin/availability_list", adminTemplateData(r, "Períodos de Disponibilidade", data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// NewForm handles GET /admin/availability/new - displays the new period form.
func (h *AvailabilityHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "Criar Período de Disponibilidade", nil, make(map[string]string), make(map[string]string))
}

// Create handles POST /admin/availability - creates a new period.
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminAvailabilityNew) {
		return
	}

	formValues, parsed, errors := h.validateForm(r)
	if len(errors) > 0 {
		h.renderForm(w, r, "Criar Período de Disponibilidade", nil, formValues, errors)
		return
	}

	period, err := h.queries.CreateAvailabilityPeriod(r.Context(), store.CreateAvailabilityPeriodParams{
		ParkID:     parsed.parkID,
		SeasonName: formValues["season_name"],
		OpenTime:   formValues["open_time"],
		CloseTime:  formValues["close_time"],
		StartDate:  parsed.startDate,
		EndDate:    parsed.endDate,
	})
	if err != nil {
		slog.Error("failed to create availability period", "error", err)
		flashError(w, r, h.renderer, redirectAdminAvailabilityNew, "Erro ao criar período de disponibilidade.")
		return
	}

	slog.Info("availability period created", "period_id", period.ID, "season", period.SeasonName)
	flashSuccess(w, r, h.renderer, redirectAdminAvailability,
		"Período de disponibilidade \""+period.SeasonName+"\" criado com sucesso!")
}

// EditForm handles GET /admin/availability/{id}/edit - displays the edit form.
func (h *AvailabilityHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminAvailability, "Período não encontrado(a).")
		return
	}

	period, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminAvailability, "Período", id,
		func(id int64) (store.AvailabilityPeriod, error) {
			return h.queries.GetAvailabilityPeriodByID(r.Context(), id)
		})
	if !ok {
		return
	}

	formValues := map[string]string{
		"park_id":     strconv.FormatInt(period.ParkID, 10),
		"season_name": period.SeasonName,
		"open_time":   period.OpenTime,
		"close_time":  period.CloseTime,
		"start_date":  period.StartDate.Format(DateFormat),
		"end_date":    period.EndDate.Format(DateFormat),
	}

	h.renderForm(w, r, "Editar Período de Disponibilidade", &period, formValues, make(map[string]string))
}

// Update handles POST /admin/availability/{id} - updates an existing period.
func (h *AvailabilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminAvailability, "Período não encontrado(a).")
		return
	}

	period, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminAvailability, "Período", id,
		func(id int64) (store.AvailabilityPeriod, error) {
			return h.queries.GetAvailabilityPeriodByID(r.Context(), id)
		})
	if !ok {
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminAvailability) {
		return
	}

	formValues, parsed, errors := h.validateForm(r)
	if len(errors) > 0 {
		h.renderForm(w, r, "Editar Período de Disponibilidade", &period, formValues, errors)
		return
	}

	if err := h.queries.UpdateAvailabilityPeriod(r.Context(), store.UpdateAvailabilityPeriodParams{
		ParkID:     parsed.parkID,
		SeasonName: formValues["season_name"],
		OpenTime:   formValues["open_time"],
		CloseTime:  formValues["close_time"],
		StartDate:  parsed.startDate,
		EndDate:    parsed.endDate,
		ID:         period.ID,
	}); err != nil {
		slog.Error("failed to update availability period", "error", err, "period_id", period.ID)
		flashError(w, r, h.renderer, redirectAdminAvailability, "Erro ao atualizar período de disponibilidade.")
		return
	}

	slog.Info("availability period updated", "period_id", period.ID)
	flashSuccess(w, r, h.renderer, redirectAdminAvailability,
		"Período de disponibilidade \""+formValues["season_name"]+"\" atualizado com sucesso!")
}

// Delete handles POST /admin/availability/{id}/delete - removes a period.
func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminAvailability, "Período não encontrado(a).")
		return
	}

	period, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminAvailability, "Período", id,
		func(id int64) (store.AvailabilityPeriod, error) {
			return h.queries.GetAvailabilityPeriodByID(r.Context(), id)
		})
	if !ok {
		return
	}

	if err := h.queries.DeleteAvailabilityPeriod(r.Context(), period.ID); err != nil {
		slog.Error("failed to delete availability period", "error", err, "period_id", period.ID)
		flashError(w, r, h.renderer, redirectAdminAvailability, "Erro ao excluir período de disponibilidade.")
		return
	}

	slog.Info("availability period deleted", "period_id", period.ID, "season", period.SeasonName)
	flashSuccess(w, r, h.renderer, redirectAdminAvailability,
		"Período de disponibilidade \""+period.SeasonName+"\" excluído com sucesso!")
}

func (h *AvailabilityHandler) renderForm(w http.ResponseWriter, r *http.Request, title string, period *store.AvailabilityPeriod, formValues, errors map[string]string) {
	parks, err := h.queries.ListParks(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list parks", "error", err)
		return
	}

	data := AvailabilityFormData{
		Period:     period,
		Parks:      parks,
		Errors:     errors,
		FormValues: formValues,
		IsEdit:     period != nil,
	}

	if err := h.renderer.Render(w, r, "admin/availability_form", adminTemplateData(r, title, data)); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// validateForm extracts and validates the availability form fields. Dates are
// stored as midnight UTC so range comparisons in queries stay consistent.
func (h *AvailabilityHandler) validateForm(r *http.Request) (map[string]string, availabilityForm, map[string]string) {
	formValues := map[string]string{
		"park_id":     r.FormValue("park_id"),
		"season_name": strings.TrimSpace(r.FormValue("season_name")),
		"open_time":   strings.TrimSpace(r.FormValue("open_time")),
		"close_time":  strings.TrimSpace(r.FormValue("close_time")),
		"start_date":  r.FormValue("start_date"),
		"end_date":    r.FormValue("end_date"),
	}

	var parsed availabilityForm
	errors := make(map[string]string)

	parkID, err := strconv.ParseInt(formValues["park_id"], 10, 64)
	if err != nil || parkID <= 0 {
		errors["park_id"] = "Parque é obrigatório."
	} else if _, err := h.queries.GetParkByID(r.Context(), parkID); err != nil {
		errors["park_id"] = "Parque inválido."
	} else {
		parsed.parkID = parkID
	}

	if formValues["season_name"] == "" {
		errors["season_name"] = "Nome da temporada é obrigatório."
	} else if len(formValues["season_name"]) > MaxSeasonNameLen {
		errors["season_name"] = "Nome da temporada deve ter no máximo 100 caracteres."
	}

	if _, err := time.Parse(TimeFormat, formValues["open_time"]); err != nil {
		errors["open_time"] = "Horário de abertura inválido."
	}
	if _, err := time.Parse(TimeFormat, formValues["close_time"]); err != nil {
		errors["close_time"] = "Horário de fechamento inválido."
	}

	if parsed.startDate, err = time.ParseInLocation(DateFormat, formValues["start_date"], time.UTC); err != nil {
		errors["start_date"] = "Data de início inválida."
	}
	if parsed.endDate, err = time.ParseInLocation(DateFormat, formValues["end_date"], time.UTC); err != nil {
		errors["end_date"] = "Data de término inválida."
	}

	return formValues, parsed, errors
}
