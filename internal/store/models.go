package store

import (
	"time"
)

// AdminUser is an authenticated back-office operator.
type AdminUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Park is a managed natural area. Deleting a park cascades to its trails,
// events, availability periods and biodiversity items.
type Park struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// Trail is a walking route within a park.
type Trail struct {
	ID                int64  `json:"id"`
	ParkID            int64  `json:"park_id"`
	Name              string `json:"name"`
	Difficulty        string `json:"difficulty"`
	DurationEstimated string `json:"duration_estimated"`
	Description       string `json:"description"`
	IsOpen            bool   `json:"is_open"`
}

// Event is a scheduled activity within a park.
type Event struct {
	ID            int64     `json:"id"`
	ParkID        int64     `json:"park_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	IsActive      bool      `json:"is_active"`
}

// AvailabilityPeriod is a labeled date range with daily opening hours
// for a park. Open and close times are stored as "HH:MM" text.
type AvailabilityPeriod struct {
	ID         int64     `json:"id"`
	ParkID     int64     `json:"park_id"`
	SeasonName string    `json:"season_name"`
	OpenTime   string    `json:"open_time"`
	CloseTime  string    `json:"close_time"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// BiodiversityItem is a cataloged fauna or flora entry for a park.
type BiodiversityItem struct {
	ID          int64  `json:"id"`
	ParkID      int64  `json:"park_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
