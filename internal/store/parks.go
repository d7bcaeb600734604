package store

import (
	"context"
	"time"
)

const createPark = `
INSERT INTO parks (name, description, type, location, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, name, description, type, location, created_at
`

// CreateParkParams holds the fields for CreatePark.
type CreateParkParams struct {
	Name        string
	Description string
	Type        string
	Location    string
	CreatedAt   time.Time
}

// CreatePark inserts a new park and returns the stored row.
func (q *Queries) CreatePark(ctx context.Context, arg CreateParkParams) (Park, error) {
	row := q.db.QueryRowContext(ctx, createPark,
		arg.Name, arg.Description, arg.Type, arg.Location, arg.CreatedAt)
	var p Park
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Location, &p.CreatedAt)
	return p, err
}

const getParkByID = `
SELECT id, name, description, type, location, created_at
FROM parks
WHERE id = ?
`

// GetParkByID fetches a park by primary key.
func (q *Queries) GetParkByID(ctx context.Context, id int64) (Park, error) {
	row := q.db.QueryRowContext(ctx, getParkByID, id)
	var p Park
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Location, &p.CreatedAt)
	return p, err
}

const getParkByName = `
SELECT id, name, description, type, location, created_at
FROM parks
WHERE name = ?
`

// GetParkByName fetches a park by its natural key. Used by the idempotent seeder.
func (q *Queries) GetParkByName(ctx context.Context, name string) (Park, error) {
	row := q.db.QueryRowContext(ctx, getParkByName, name)
	var p Park
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Location, &p.CreatedAt)
	return p, err
}

const listParks = `
SELECT id, name, description, type, location, created_at
FROM parks
ORDER BY name
`

// ListParks returns all parks in name order.
func (q *Queries) ListParks(ctx context.Context) ([]Park, error) {
	rows, err := q.db.QueryContext(ctx, listParks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Park
	for rows.Next() {
		var p Park
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Location, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updatePark = `
UPDATE parks
SET name = ?, description = ?, type = ?, location = ?
WHERE id = ?
`

// UpdateParkParams holds the fields for UpdatePark.
type UpdateParkParams struct {
	Name        string
	Description string
	Type        string
	Location    string
	ID          int64
}

// UpdatePark overwrites all editable fields of a park.
func (q *Queries) UpdatePark(ctx context.Context, arg UpdateParkParams) error {
	_, err := q.db.ExecContext(ctx, updatePark,
		arg.Name, arg.Description, arg.Type, arg.Location, arg.ID)
	return err
}

const deletePark = `
DELETE FROM parks WHERE id = ?
`

// DeletePark removes a park. Trails, events, availability periods and
// biodiversity items cascade at the database level.
func (q *Queries) DeletePark(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePark, id)
	return err
}

const countParks = `
SELECT COUNT(*) FROM parks
`

// CountParks returns the total number of parks.
func (q *Queries) CountParks(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countParks)
	var count int64
	err := row.Scan(&count)
	return count, err
}
