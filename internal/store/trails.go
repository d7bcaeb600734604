package store

import (
	"context"
	"database/sql"
)

const createTrail = `
INSERT INTO trails (park_id, name, difficulty, duration_estimated, description, is_open)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, park_id, name, difficulty, duration_estimated, description, is_open
`

// CreateTrailParams holds the fields for CreateTrail.
type CreateTrailParams struct {
	ParkID            int64
	Name              string
	Difficulty        string
	DurationEstimated string
	Description       string
	IsOpen            bool
}

// CreateTrail inserts a new trail and returns the stored row.
func (q *Queries) CreateTrail(ctx context.Context, arg CreateTrailParams) (Trail, error) {
	row := q.db.QueryRowContext(ctx, createTrail,
		arg.ParkID, arg.Name, arg.Difficulty, arg.DurationEstimated, arg.Description, arg.IsOpen)
	var t Trail
	err := row.Scan(&t.ID, &t.ParkID, &t.Name, &t.Difficulty, &t.DurationEstimated, &t.Description, &t.IsOpen)
	return t, err
}

const getTrailByID = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
WHERE id = ?
`

// GetTrailByID fetches a trail by primary key.
func (q *Queries) GetTrailByID(ctx context.Context, id int64) (Trail, error) {
	row := q.db.QueryRowContext(ctx, getTrailByID, id)
	var t Trail
	err := row.Scan(&t.ID, &t.ParkID, &t.Name, &t.Difficulty, &t.DurationEstimated, &t.Description, &t.IsOpen)
	return t, err
}

const getTrailByParkAndName = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
WHERE park_id = ? AND name = ?
`

// GetTrailByParkAndNameParams holds the fields for GetTrailByParkAndName.
type GetTrailByParkAndNameParams struct {
	ParkID int64
	Name   string
}

// GetTrailByParkAndName fetches a trail by its natural key. Used by the
// idempotent seeder.
func (q *Queries) GetTrailByParkAndName(ctx context.Context, arg GetTrailByParkAndNameParams) (Trail, error) {
	row := q.db.QueryRowContext(ctx, getTrailByParkAndName, arg.ParkID, arg.Name)
	var t Trail
	err := row.Scan(&t.ID, &t.ParkID, &t.Name, &t.Difficulty, &t.DurationEstimated, &t.Description, &t.IsOpen)
	return t, err
}

const listTrails = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
ORDER BY name
`

// ListTrails returns all trails in name order.
func (q *Queries) ListTrails(ctx context.Context) ([]Trail, error) {
	rows, err := q.db.QueryContext(ctx, listTrails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrails(rows)
}

const listTrailsByPark = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
WHERE park_id = ?
ORDER BY name
`

// ListTrailsByPark returns all trails of a park in name order.
func (q *Queries) ListTrailsByPark(ctx context.Context, parkID int64) ([]Trail, error) {
	rows, err := q.db.QueryContext(ctx, listTrailsByPark, parkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrails(rows)
}

const listOpenTrails = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
WHERE is_open = 1
  AND (?1 IS NULL OR park_id = ?1)
  AND (?2 IS NULL OR difficulty LIKE '%' || ?2 || '%')
ORDER BY name
`

// ListOpenTrailsParams holds the optional filters for ListOpenTrails.
// A NULL field means the filter is not applied.
type ListOpenTrailsParams struct {
	ParkID     sql.NullInt64
	Difficulty sql.NullString
}

// ListOpenTrails returns open trails in name order, optionally filtered by
// park and by a substring match on the difficulty rating.
func (q *Queries) ListOpenTrails(ctx context.Context, arg ListOpenTrailsParams) ([]Trail, error) {
	rows, err := q.db.QueryContext(ctx, listOpenTrails, arg.ParkID, arg.Difficulty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrails(rows)
}

const listRecentOpenTrails = `
SELECT id, park_id, name, difficulty, duration_estimated, description, is_open
FROM trails
WHERE is_open = 1
ORDER BY id DESC
LIMIT ?
`

// ListRecentOpenTrails returns the most recently added open trails.
func (q *Queries) ListRecentOpenTrails(ctx context.Context, limit int64) ([]Trail, error) {
	rows, err := q.db.QueryContext(ctx, listRecentOpenTrails, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrails(rows)
}

const updateTrail = `
UPDATE trails
SET park_id = ?, name = ?, difficulty = ?, duration_estimated = ?, description = ?, is_open = ?
WHERE id = ?
`

// UpdateTrailParams holds the fields for UpdateTrail.
type UpdateTrailParams struct {
	ParkID            int64
	Name              string
	Difficulty        string
	DurationEstimated string
	Description       string
	IsOpen            bool
	ID                int64
}

// UpdateTrail overwrites all editable fields of a trail.
func (q *Queries) UpdateTrail(ctx context.Context, arg UpdateTrailParams) error {
	_, err := q.db.ExecContext(ctx, updateTrail,
		arg.ParkID, arg.Name, arg.Difficulty, arg.DurationEstimated, arg.Description, arg.IsOpen, arg.ID)
	return err
}

const setTrailOpen = `
UPDATE trails SET is_open = ? WHERE id = ?
`

// SetTrailOpenParams holds the fields for SetTrailOpen.
type SetTrailOpenParams struct {
	IsOpen bool
	ID     int64
}

// SetTrailOpen sets the open/closed flag of a trail.
func (q *Queries) SetTrailOpen(ctx context.Context, arg SetTrailOpenParams) error {
	_, err := q.db.ExecContext(ctx, setTrailOpen, arg.IsOpen, arg.ID)
	return err
}

const deleteTrail = `
DELETE FROM trails WHERE id = ?
`

// DeleteTrail removes a trail.
func (q *Queries) DeleteTrail(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTrail, id)
	return err
}

const countTrails = `
SELECT COUNT(*) FROM trails
`

// CountTrails returns the total number of trails.
func (q *Queries) CountTrails(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countTrails)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countOpenTrails = `
SELECT COUNT(*) FROM trails WHERE is_open = 1
`

// CountOpenTrails returns the number of open trails.
func (q *Queries) CountOpenTrails(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countOpenTrails)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanTrails(rows *sql.Rows) ([]Trail, error) {
	var items []Trail
	for rows.Next() {
		var t Trail
		if err := rows.Scan(&t.ID, &t.ParkID, &t.Name, &t.Difficulty, &t.DurationEstimated, &t.Description, &t.IsOpen); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
