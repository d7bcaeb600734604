package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tereverde/tereverde-go/internal/auth"
)

func TestSeedIsIdempotent(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, q.Seed(ctx, logger))

	counts := func() (parks, trails, events, periods, items, admins int64) {
		t.Helper()
		var err error
		parks, err = q.CountParks(ctx)
		require.NoError(t, err)
		trails, err = q.CountTrails(ctx)
		require.NoError(t, err)
		events, err = q.CountEvents(ctx)
		require.NoError(t, err)
		periods, err = q.CountAvailabilityPeriods(ctx)
		require.NoError(t, err)
		items, err = q.CountBiodiversityItems(ctx)
		require.NoError(t, err)
		admins, err = q.CountAdminUsers(ctx)
		require.NoError(t, err)
		return
	}

	parks, trails, events, periods, items, admins := counts()
	assert.EqualValues(t, 3, parks)
	assert.EqualValues(t, 4, trails)
	assert.EqualValues(t, 2, events)
	assert.EqualValues(t, 2, periods)
	assert.EqualValues(t, 3, items)
	assert.EqualValues(t, 1, admins)

	// A second run must not duplicate anything.
	require.NoError(t, q.Seed(ctx, logger))

	parks2, trails2, events2, periods2, items2, admins2 := counts()
	assert.Equal(t, parks, parks2)
	assert.Equal(t, trails, trails2)
	assert.Equal(t, events, events2)
	assert.Equal(t, periods, periods2)
	assert.Equal(t, items, items2)
	assert.Equal(t, admins, admins2)
}

func TestSeedAdminCredentials(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, q.Seed(ctx, logger))

	admin, err := q.GetAdminUserByEmail(ctx, SeedAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, SeedAdminName, admin.Name)

	ok, err := auth.CheckPassword(SeedAdminPassword, admin.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}
