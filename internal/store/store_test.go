package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tereverde/tereverde-go/internal/model"
)

// testDB opens a migrated temp-file database that is cleaned up with the test.
func testDB(t *testing.T) *Queries {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return New(db)
}

func createTestPark(t *testing.T, q *Queries, name string) Park {
	t.Helper()

	park, err := q.CreatePark(context.Background(), CreateParkParams{
		Name:      name,
		Type:      model.ParkTypeNational,
		Location:  "Teresópolis",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return park
}

func TestParkCRUD(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque Nacional da Serra dos Órgãos")
	assert.NotZero(t, park.ID)

	got, err := q.GetParkByID(ctx, park.ID)
	require.NoError(t, err)
	assert.Equal(t, park.Name, got.Name)
	assert.Equal(t, model.ParkTypeNational, got.Type)

	err = q.UpdatePark(ctx, UpdateParkParams{
		Name:        park.Name,
		Description: "Atualizado",
		Type:        model.ParkTypeState,
		Location:    park.Location,
		ID:          park.ID,
	})
	require.NoError(t, err)

	got, err = q.GetParkByID(ctx, park.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atualizado", got.Description)
	assert.Equal(t, model.ParkTypeState, got.Type)

	require.NoError(t, q.DeletePark(ctx, park.ID))
	_, err = q.GetParkByID(ctx, park.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListParksOrderedByName(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	createTestPark(t, q, "Zona da Mata")
	createTestPark(t, q, "Alto da Serra")
	createTestPark(t, q, "Montanhas de Teresópolis")

	parks, err := q.ListParks(ctx)
	require.NoError(t, err)
	require.Len(t, parks, 3)
	assert.Equal(t, "Alto da Serra", parks[0].Name)
	assert.Equal(t, "Montanhas de Teresópolis", parks[1].Name)
	assert.Equal(t, "Zona da Mata", parks[2].Name)
}

func TestDeleteParkCascades(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque Estadual dos Três Picos")

	_, err := q.CreateTrail(ctx, CreateTrailParams{
		ParkID:     park.ID,
		Name:       "Acesso ao Pico Maior",
		Difficulty: model.DifficultyModerate,
		IsOpen:     true,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = q.CreateEvent(ctx, CreateEventParams{
		ParkID:        park.ID,
		Title:         "Mutirão de limpeza",
		StartDatetime: now.Add(24 * time.Hour),
		EndDatetime:   now.Add(28 * time.Hour),
		IsActive:      true,
	})
	require.NoError(t, err)

	_, err = q.CreateAvailabilityPeriod(ctx, CreateAvailabilityPeriodParams{
		ParkID:     park.ID,
		SeasonName: "Baixa Temporada",
		OpenTime:   "08:00",
		CloseTime:  "16:00",
		StartDate:  time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = q.CreateBiodiversityItem(ctx, CreateBiodiversityItemParams{
		ParkID: park.ID,
		Name:   "Muriqui",
		Type:   model.BiodiversityFauna,
	})
	require.NoError(t, err)

	require.NoError(t, q.DeletePark(ctx, park.ID))

	trails, err := q.CountTrails(ctx)
	require.NoError(t, err)
	assert.Zero(t, trails)

	events, err := q.CountEvents(ctx)
	require.NoError(t, err)
	assert.Zero(t, events)

	periods, err := q.CountAvailabilityPeriods(ctx)
	require.NoError(t, err)
	assert.Zero(t, periods)

	items, err := q.CountBiodiversityItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, items)
}

func TestListOpenTrailsFilters(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	parkA := createTestPark(t, q, "Parque A")
	parkB := createTestPark(t, q, "Parque B")

	mk := func(parkID int64, name, difficulty string, open bool) {
		t.Helper()
		_, err := q.CreateTrail(ctx, CreateTrailParams{
			ParkID:     parkID,
			Name:       name,
			Difficulty: difficulty,
			IsOpen:     open,
		})
		require.NoError(t, err)
	}

	mk(parkA.ID, "Trilha da Pedra do Sino", model.DifficultyHard, true)
	mk(parkA.ID, "Trilha Suspensa", model.DifficultyEasy, true)
	mk(parkB.ID, "Trilha da Vargem Grande", model.DifficultyModerate, true)
	mk(parkB.ID, "Trilha Fechada", model.DifficultyEasy, false)

	// No filters: every open trail, closed ones excluded.
	all, err := q.ListOpenTrails(ctx, ListOpenTrailsParams{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Trilha Suspensa", all[2].Name)

	// Park filter.
	byPark, err := q.ListOpenTrails(ctx, ListOpenTrailsParams{
		ParkID: sql.NullInt64{Int64: parkB.ID, Valid: true},
	})
	require.NoError(t, err)
	require.Len(t, byPark, 1)
	assert.Equal(t, "Trilha da Vargem Grande", byPark[0].Name)

	// Difficulty filter is a substring match on the canonical spelling.
	byDifficulty, err := q.ListOpenTrails(ctx, ListOpenTrailsParams{
		Difficulty: sql.NullString{String: model.DifficultyEasy, Valid: true},
	})
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "Trilha Suspensa", byDifficulty[0].Name)

	// Both filters combined.
	both, err := q.ListOpenTrails(ctx, ListOpenTrailsParams{
		ParkID:     sql.NullInt64{Int64: parkA.ID, Valid: true},
		Difficulty: sql.NullString{String: model.DifficultyHard, Valid: true},
	})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Trilha da Pedra do Sino", both[0].Name)
}

func TestSetTrailOpenToggle(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque A")
	trail, err := q.CreateTrail(ctx, CreateTrailParams{
		ParkID:     park.ID,
		Name:       "Trilha Suspensa",
		Difficulty: model.DifficultyEasy,
		IsOpen:     true,
	})
	require.NoError(t, err)

	require.NoError(t, q.SetTrailOpen(ctx, SetTrailOpenParams{IsOpen: !trail.IsOpen, ID: trail.ID}))
	got, err := q.GetTrailByID(ctx, trail.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)

	// Toggling twice restores the original state.
	require.NoError(t, q.SetTrailOpen(ctx, SetTrailOpenParams{IsOpen: !got.IsOpen, ID: trail.ID}))
	got, err = q.GetTrailByID(ctx, trail.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOpen)
}

func TestListUpcomingEvents(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque A")
	now := time.Now().UTC()

	mk := func(title string, start time.Time, active bool) {
		t.Helper()
		_, err := q.CreateEvent(ctx, CreateEventParams{
			ParkID:        park.ID,
			Title:         title,
			StartDatetime: start,
			EndDatetime:   start.Add(4 * time.Hour),
			IsActive:      active,
		})
		require.NoError(t, err)
	}

	mk("Evento passado", now.Add(-48*time.Hour), true)
	mk("Evento inativo", now.Add(24*time.Hour), false)
	mk("Evento distante", now.Add(14*24*time.Hour), true)
	mk("Evento próximo", now.Add(24*time.Hour), true)

	events, err := q.ListUpcomingEvents(ctx, ListUpcomingEventsParams{StartDatetime: now})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Evento próximo", events[0].Title)
	assert.Equal(t, "Evento distante", events[1].Title)

	limited, err := q.ListUpcomingEventsLimit(ctx, ListUpcomingEventsLimitParams{StartDatetime: now, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Evento próximo", limited[0].Title)
}

func TestGetCurrentAvailabilityPeriod(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque A")
	today := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	_, err := q.CreateAvailabilityPeriod(ctx, CreateAvailabilityPeriodParams{
		ParkID:     park.ID,
		SeasonName: "Baixa Temporada",
		OpenTime:   "08:00",
		CloseTime:  "16:00",
		StartDate:  time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = q.CreateAvailabilityPeriod(ctx, CreateAvailabilityPeriodParams{
		ParkID:     park.ID,
		SeasonName: "Alta Temporada Verão",
		OpenTime:   "08:00",
		CloseTime:  "17:00",
		StartDate:  time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	current, err := q.GetCurrentAvailabilityPeriod(ctx, GetCurrentAvailabilityPeriodParams{
		ParkID: park.ID,
		Today:  today,
	})
	require.NoError(t, err)
	assert.Equal(t, "Baixa Temporada", current.SeasonName)

	// Boundary dates are inclusive on both ends.
	current, err = q.GetCurrentAvailabilityPeriod(ctx, GetCurrentAvailabilityPeriodParams{
		ParkID: park.ID,
		Today:  time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Baixa Temporada", current.SeasonName)

	_, err = q.GetCurrentAvailabilityPeriod(ctx, GetCurrentAvailabilityPeriodParams{
		ParkID: park.ID,
		Today:  time.Date(2027, time.March, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestBiodiversityItemsByParkOrdering(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	park := createTestPark(t, q, "Parque A")

	mk := func(name, itemType string) {
		t.Helper()
		_, err := q.CreateBiodiversityItem(ctx, CreateBiodiversityItemParams{
			ParkID: park.ID,
			Name:   name,
			Type:   itemType,
		})
		require.NoError(t, err)
	}

	mk("Bromélia-imperial", model.BiodiversityFlora)
	mk("Tucano-de-bico-verde", model.BiodiversityFauna)
	mk("Muriqui", model.BiodiversityFauna)

	items, err := q.ListBiodiversityItemsByPark(ctx, park.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Fauna sorts before flora, names alphabetical within each type.
	assert.Equal(t, "Muriqui", items[0].Name)
	assert.Equal(t, "Tucano-de-bico-verde", items[1].Name)
	assert.Equal(t, "Bromélia-imperial", items[2].Name)
}

func TestAdminUserByEmail(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	created, err := q.CreateAdminUser(ctx, CreateAdminUserParams{
		Name:         "Administrador",
		Email:        "admin@teste.com",
		PasswordHash: "$argon2id$...",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := q.GetAdminUserByEmail(ctx, "admin@teste.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Administrador", got.Name)

	_, err = q.GetAdminUserByEmail(ctx, "nobody@teste.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Email is unique.
	_, err = q.CreateAdminUser(ctx, CreateAdminUserParams{
		Name:         "Outro",
		Email:        "admin@teste.com",
		PasswordHash: "$argon2id$...",
		CreatedAt:    time.Now().UTC(),
	})
	assert.Error(t, err)
}
