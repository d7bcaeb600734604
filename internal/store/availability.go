package store

import (
	"context"
	"database/sql"
	"time"
)

const createAvailabilityPeriod = `
INSERT INTO availability_periods (park_id, season_name, open_time, close_time, start_date, end_date)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, park_id, season_name, open_time, close_time, start_date, end_date
`

// CreateAvailabilityPeriodParams holds the fields for CreateAvailabilityPeriod.
type CreateAvailabilityPeriodParams struct {
	ParkID     int64
	SeasonName string
	OpenTime   string
	CloseTime  string
	StartDate  time.Time
	EndDate    time.Time
}

// CreateAvailabilityPeriod inserts a new availability period and returns the stored row.
func (q *Queries) CreateAvailabilityPeriod(ctx context.Context, arg CreateAvailabilityPeriodParams) (AvailabilityPeriod, error) {
	row := q.db.QueryRowContext(ctx, createAvailabilityPeriod,
		arg.ParkID, arg.SeasonName, arg.OpenTime, arg.CloseTime, arg.StartDate, arg.EndDate)
	var p AvailabilityPeriod
	err := row.Scan(&p.ID, &p.ParkID, &p.SeasonName, &p.OpenTime, &p.CloseTime, &p.StartDate, &p.EndDate)
	return p, err
}

const getAvailabilityPeriodByID = `
SELECT id, park_id, season_name, open_time, close_time, start_date, end_date
FROM availability_periods
WHERE id = ?
`

// GetAvailabilityPeriodByID fetches an availability period by primary key.
func (q *Queries) GetAvailabilityPeriodByID(ctx context.Context, id int64) (AvailabilityPeriod, error) {
	row := q.db.QueryRowContext(ctx, getAvailabilityPeriodByID, id)
	var p AvailabilityPeriod
	err := row.Scan(&p.ID, &p.ParkID, &p.SeasonName, &p.OpenTime, &p.CloseTime, &p.StartDate, &p.EndDate)
	return p, err
}

const getAvailabilityPeriodByParkAndSeason = `
SELECT id, park_id, season_name, open_time, close_time, start_date, end_date
FROM availability_periods
WHERE park_id = ? AND season_name = ?
`

// GetAvailabilityPeriodByParkAndSeasonParams holds the fields for
// GetAvailabilityPeriodByParkAndSeason.
type GetAvailabilityPeriodByParkAndSeasonParams struct {
	ParkID     int64
	SeasonName string
}

// GetAvailabilityPeriodByParkAndSeason fetches a period by its natural key.
// Used by the idempotent seeder.
func (q *Queries) GetAvailabilityPeriodByParkAndSeason(ctx context.Context, arg GetAvailabilityPeriodByParkAndSeasonParams) (AvailabilityPeriod, error) {
	row := q.db.QueryRowContext(ctx, getAvailabilityPeriodByParkAndSeason, arg.ParkID, arg.SeasonName)
	var p AvailabilityPeriod
	err := row.Scan(&p.ID, &p.ParkID, &p.SeasonName, &p.OpenTime, &p.CloseTime, &p.StartDate, &p.EndDate)
	return p, err
}

const listAvailabilityPeriods = `
SELECT id, park_id, season_name, open_time, close_time, start_date, end_date
FROM availability_periods
ORDER BY start_date DESC
`

// ListAvailabilityPeriods returns all availability periods, newest start first.
func (q *Queries) ListAvailabilityPeriods(ctx context.Context) ([]AvailabilityPeriod, error) {
	rows, err := q.db.QueryContext(ctx, listAvailabilityPeriods)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAvailabilityPeriods(rows)
}

const getCurrentAvailabilityPeriod = `
SELECT id, park_id, season_name, open_time, close_time, start_date, end_date
FROM availability_periods
WHERE park_id = ?1 AND start_date <= ?2 AND end_date >= ?2
LIMIT 1
`

// GetCurrentAvailabilityPeriodParams holds the fields for GetCurrentAvailabilityPeriod.
type GetCurrentAvailabilityPeriodParams struct {
	ParkID int64
	Today  time.Time
}

// GetCurrentAvailabilityPeriod returns one period of the park whose date range
// contains today. When ranges overlap the match is implementation-defined.
func (q *Queries) GetCurrentAvailabilityPeriod(ctx context.Context, arg GetCurrentAvailabilityPeriodParams) (AvailabilityPeriod, error) {
	row := q.db.QueryRowContext(ctx, getCurrentAvailabilityPeriod, arg.ParkID, arg.Today)
	var p AvailabilityPeriod
	err := row.Scan(&p.ID, &p.ParkID, &p.SeasonName, &p.OpenTime, &p.CloseTime, &p.StartDate, &p.EndDate)
	return p, err
}

const updateAvailabilityPeriod = `
UPDATE availability_periods
SET park_id = ?, season_name = ?, open_time = ?, close_time = ?, start_date = ?, end_date = ?
WHERE id = ?
`

// UpdateAvailabilityPeriodParams holds the fields for UpdateAvailabilityPeriod.
type UpdateAvailabilityPeriodParams struct {
	ParkID     int64
	SeasonName string
	OpenTime   string
	CloseTime  string
	StartDate  time.Time
	EndDate    time.Time
	ID         int64
}

// UpdateAvailabilityPeriod overwrites all editable fields of a period.
func (q *Queries) UpdateAvailabilityPeriod(ctx context.Context, arg UpdateAvailabilityPeriodParams) error {
	_, err := q.db.ExecContext(ctx, updateAvailabilityPeriod,
		arg.ParkID, arg.SeasonName, arg.OpenTime, arg.CloseTime, arg.StartDate, arg.EndDate, arg.ID)
	return err
}

const deleteAvailabilityPeriod = `
DELETE FROM availability_periods WHERE id = ?
`

// DeleteAvailabilityPeriod removes an availability period.
func (q *Queries) DeleteAvailabilityPeriod(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteAvailabilityPeriod, id)
	return err
}

const countAvailabilityPeriods = `
SELECT COUNT(*) FROM availability_periods
`

// CountAvailabilityPeriods returns the total number of availability periods.
func (q *Queries) CountAvailabilityPeriods(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAvailabilityPeriods)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanAvailabilityPeriods(rows *sql.Rows) ([]AvailabilityPeriod, error) {
	var items []AvailabilityPeriod
	for rows.Next() {
		var p AvailabilityPeriod
		if err := rows.Scan(&p.ID, &p.ParkID, &p.SeasonName, &p.OpenTime, &p.CloseTime, &p.StartDate, &p.EndDate); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
