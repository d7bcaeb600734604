package store

import (
	"context"
	"database/sql"
	"time"
)

const createEvent = `
INSERT INTO events (park_id, title, description, start_datetime, end_datetime, is_active)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, park_id, title, description, start_datetime, end_datetime, is_active
`

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	ParkID        int64
	Title         string
	Description   string
	StartDatetime time.Time
	EndDatetime   time.Time
	IsActive      bool
}

// CreateEvent inserts a new event and returns the stored row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, createEvent,
		arg.ParkID, arg.Title, arg.Description, arg.StartDatetime, arg.EndDatetime, arg.IsActive)
	var e Event
	err := row.Scan(&e.ID, &e.ParkID, &e.Title, &e.Description, &e.StartDatetime, &e.EndDatetime, &e.IsActive)
	return e, err
}

const getEventByID = `
SELECT id, park_id, title, description, start_datetime, end_datetime, is_active
FROM events
WHERE id = ?
`

// GetEventByID fetches an event by primary key.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx, getEventByID, id)
	var e Event
	err := row.Scan(&e.ID, &e.ParkID, &e.Title, &e.Description, &e.StartDatetime, &e.EndDatetime, &e.IsActive)
	return e, err
}

const getEventByParkAndTitle = `
SELECT id, park_id, title, description, start_datetime, end_datetime, is_active
FROM events
WHERE park_id = ? AND title = ?
`

// GetEventByParkAndTitleParams holds the fields for GetEventByParkAndTitle.
type GetEventByParkAndTitleParams struct {
	ParkID int64
	Title  string
}

// GetEventByParkAndTitle fetches an event by its natural key. Used by the
// idempotent seeder.
func (q *Queries) GetEventByParkAndTitle(ctx context.Context, arg GetEventByParkAndTitleParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, getEventByParkAndTitle, arg.ParkID, arg.Title)
	var e Event
	err := row.Scan(&e.ID, &e.ParkID, &e.Title, &e.Description, &e.StartDatetime, &e.EndDatetime, &e.IsActive)
	return e, err
}

const listEvents = `
SELECT id, park_id, title, description, start_datetime, end_datetime, is_active
FROM events
ORDER BY start_datetime DESC
`

// ListEvents returns all events, most recent start first. Used by the admin
// listing, which shows past and inactive events too.
func (q *Queries) ListEvents(ctx context.Context) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

const listUpcomingEvents = `
SELECT id, park_id, title, description, start_datetime, end_datetime, is_active
FROM events
WHERE is_active = 1
  AND start_datetime >= ?1
  AND (?2 IS NULL OR park_id = ?2)
ORDER BY start_datetime
`

// ListUpcomingEventsParams holds the filters for ListUpcomingEvents.
type ListUpcomingEventsParams struct {
	StartDatetime time.Time
	ParkID        sql.NullInt64
}

// ListUpcomingEvents returns active events starting at or after the given
// instant, soonest first, optionally filtered by park.
func (q *Queries) ListUpcomingEvents(ctx context.Context, arg ListUpcomingEventsParams) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listUpcomingEvents, arg.StartDatetime, arg.ParkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

const listUpcomingEventsLimit = `
SELECT id, park_id, title, description, start_datetime, end_datetime, is_active
FROM events
WHERE is_active = 1 AND start_datetime >= ?
ORDER BY start_datetime
LIMIT ?
`

// ListUpcomingEventsLimitParams holds the fields for ListUpcomingEventsLimit.
type ListUpcomingEventsLimitParams struct {
	StartDatetime time.Time
	Limit         int64
}

// ListUpcomingEventsLimit returns the soonest upcoming active events,
// capped at the given limit. Used by the home page.
func (q *Queries) ListUpcomingEventsLimit(ctx context.Context, arg ListUpcomingEventsLimitParams) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listUpcomingEventsLimit, arg.StartDatetime, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

const updateEvent = `
UPDATE events
SET park_id = ?, title = ?, description = ?, start_datetime = ?, end_datetime = ?, is_active = ?
WHERE id = ?
`

// UpdateEventParams holds the fields for UpdateEvent.
type UpdateEventParams struct {
	ParkID        int64
	Title         string
	Description   string
	StartDatetime time.Time
	EndDatetime   time.Time
	IsActive      bool
	ID            int64
}

// UpdateEvent overwrites all editable fields of an event.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) error {
	_, err := q.db.ExecContext(ctx, updateEvent,
		arg.ParkID, arg.Title, arg.Description, arg.StartDatetime, arg.EndDatetime, arg.IsActive, arg.ID)
	return err
}

const setEventActive = `
UPDATE events SET is_active = ? WHERE id = ?
`

// SetEventActiveParams holds the fields for SetEventActive.
type SetEventActiveParams struct {
	IsActive bool
	ID       int64
}

// SetEventActive sets the active/inactive flag of an event.
func (q *Queries) SetEventActive(ctx context.Context, arg SetEventActiveParams) error {
	_, err := q.db.ExecContext(ctx, setEventActive, arg.IsActive, arg.ID)
	return err
}

const deleteEvent = `
DELETE FROM events WHERE id = ?
`

// DeleteEvent removes an event.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteEvent, id)
	return err
}

const countEvents = `
SELECT COUNT(*) FROM events
`

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countEvents)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countActiveEvents = `
SELECT COUNT(*) FROM events WHERE is_active = 1
`

// CountActiveEvents returns the number of active events.
func (q *Queries) CountActiveEvents(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActiveEvents)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countUpcomingEvents = `
SELECT COUNT(*) FROM events WHERE is_active = 1 AND start_datetime >= ?
`

// CountUpcomingEvents returns the number of active events starting at or
// after the given instant.
func (q *Queries) CountUpcomingEvents(ctx context.Context, startDatetime time.Time) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUpcomingEvents, startDatetime)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var items []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.ParkID, &e.Title, &e.Description, &e.StartDatetime, &e.EndDatetime, &e.IsActive); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
