package store

import (
	"context"
	"database/sql"
)

const createBiodiversityItem = `
INSERT INTO biodiversity_items (park_id, name, type, description)
VALUES (?, ?, ?, ?)
RETURNING id, park_id, name, type, description
`

// CreateBiodiversityItemParams holds the fields for CreateBiodiversityItem.
type CreateBiodiversityItemParams struct {
	ParkID      int64
	Name        string
	Type        string
	Description string
}

// CreateBiodiversityItem inserts a new biodiversity item and returns the stored row.
func (q *Queries) CreateBiodiversityItem(ctx context.Context, arg CreateBiodiversityItemParams) (BiodiversityItem, error) {
	row := q.db.QueryRowContext(ctx, createBiodiversityItem,
		arg.ParkID, arg.Name, arg.Type, arg.Description)
	var b BiodiversityItem
	err := row.Scan(&b.ID, &b.ParkID, &b.Name, &b.Type, &b.Description)
	return b, err
}

const getBiodiversityItemByID = `
SELECT id, park_id, name, type, description
FROM biodiversity_items
WHERE id = ?
`

// GetBiodiversityItemByID fetches a biodiversity item by primary key.
func (q *Queries) GetBiodiversityItemByID(ctx context.Context, id int64) (BiodiversityItem, error) {
	row := q.db.QueryRowContext(ctx, getBiodiversityItemByID, id)
	var b BiodiversityItem
	err := row.Scan(&b.ID, &b.ParkID, &b.Name, &b.Type, &b.Description)
	return b, err
}

const getBiodiversityItemByParkAndName = `
SELECT id, park_id, name, type, description
FROM biodiversity_items
WHERE park_id = ? AND name = ?
`

// GetBiodiversityItemByParkAndNameParams holds the fields for
// GetBiodiversityItemByParkAndName.
type GetBiodiversityItemByParkAndNameParams struct {
	ParkID int64
	Name   string
}

// GetBiodiversityItemByParkAndName fetches an item by its natural key. Used by
// the idempotent seeder.
func (q *Queries) GetBiodiversityItemByParkAndName(ctx context.Context, arg GetBiodiversityItemByParkAndNameParams) (BiodiversityItem, error) {
	row := q.db.QueryRowContext(ctx, getBiodiversityItemByParkAndName, arg.ParkID, arg.Name)
	var b BiodiversityItem
	err := row.Scan(&b.ID, &b.ParkID, &b.Name, &b.Type, &b.Description)
	return b, err
}

const listBiodiversityItems = `
SELECT id, park_id, name, type, description
FROM biodiversity_items
ORDER BY type, name
`

// ListBiodiversityItems returns all biodiversity items grouped by type, then
// by name.
func (q *Queries) ListBiodiversityItems(ctx context.Context) ([]BiodiversityItem, error) {
	rows, err := q.db.QueryContext(ctx, listBiodiversityItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBiodiversityItems(rows)
}

const listBiodiversityItemsByPark = `
SELECT id, park_id, name, type, description
FROM biodiversity_items
WHERE park_id = ?
ORDER BY type, name
`

// ListBiodiversityItemsByPark returns the biodiversity items of a park grouped
// by type, then by name.
func (q *Queries) ListBiodiversityItemsByPark(ctx context.Context, parkID int64) ([]BiodiversityItem, error) {
	rows, err := q.db.QueryContext(ctx, listBiodiversityItemsByPark, parkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBiodiversityItems(rows)
}

const listTopBiodiversityItemsByPark = `
SELECT id, park_id, name, type, description
FROM biodiversity_items
WHERE park_id = ?
ORDER BY type, name
LIMIT ?
`

// ListTopBiodiversityItemsByParkParams holds the fields for
// ListTopBiodiversityItemsByPark.
type ListTopBiodiversityItemsByParkParams struct {
	ParkID int64
	Limit  int64
}

// ListTopBiodiversityItemsByPark returns the first items of a park in type,
// name order, capped at the given limit. Used by the public park page.
func (q *Queries) ListTopBiodiversityItemsByPark(ctx context.Context, arg ListTopBiodiversityItemsByParkParams) ([]BiodiversityItem, error) {
	rows, err := q.db.QueryContext(ctx, listTopBiodiversityItemsByPark, arg.ParkID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBiodiversityItems(rows)
}

const updateBiodiversityItem = `
UPDATE biodiversity_items
SET park_id = ?, name = ?, type = ?, description = ?
WHERE id = ?
`

// UpdateBiodiversityItemParams holds the fields for UpdateBiodiversityItem.
type UpdateBiodiversityItemParams struct {
	ParkID      int64
	Name        string
	Type        string
	Description string
	ID          int64
}

// UpdateBiodiversityItem overwrites all editable fields of a biodiversity item.
func (q *Queries) UpdateBiodiversityItem(ctx context.Context, arg UpdateBiodiversityItemParams) error {
	_, err := q.db.ExecContext(ctx, updateBiodiversityItem,
		arg.ParkID, arg.Name, arg.Type, arg.Description, arg.ID)
	return err
}

const deleteBiodiversityItem = `
DELETE FROM biodiversity_items WHERE id = ?
`

// DeleteBiodiversityItem removes a biodiversity item.
func (q *Queries) DeleteBiodiversityItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteBiodiversityItem, id)
	return err
}

const countBiodiversityItems = `
SELECT COUNT(*) FROM biodiversity_items
`

// CountBiodiversityItems returns the total number of biodiversity items.
func (q *Queries) CountBiodiversityItems(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countBiodiversityItems)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanBiodiversityItems(rows *sql.Rows) ([]BiodiversityItem, error) {
	var items []BiodiversityItem
	for rows.Next() {
		var b BiodiversityItem
		if err := rows.Scan(&b.ID, &b.ParkID, &b.Name, &b.Type, &b.Description); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
