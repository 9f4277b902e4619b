package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotRow is one bookable window as the availability query sees it: the slot
// itself plus its court and how many bookings already sit on it. Times come
// back formatted ("15:04", date "2006-01-02") since that is all the grid and
// the analytics engine ever need.
type SlotRow struct {
	ID           int64   `json:"id"`
	CourtID      int64   `json:"court_id"`
	CourtName    string  `json:"court_name"`
	Date         string  `json:"date"`
	StartAt      string  `json:"start_at"`
	EndAt        string  `json:"end_at"`
	Price        float64 `json:"price"`
	Booked       bool    `json:"booked"`
	BookingCount int     `json:"booking_count"`
}

type SlotsStore struct {
	db *pgxpool.Pool
}

func (s *SlotsStore) ListByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]SlotRow, error) {
	query := `
		SELECT sl.id, c.id, c.name,
		       to_char(sl.date, 'YYYY-MM-DD'),
		       to_char(sl.start_at, 'HH24:MI'),
		       to_char(sl.end_at, 'HH24:MI'),
		       sl.price, sl.booked,
		       (SELECT COUNT(*) FROM bookings b WHERE b.slot_id = sl.id)
		FROM slots sl
		JOIN courts c ON c.id = sl.court_id
		WHERE c.venue_id = $1 AND sl.date = $2
		ORDER BY c.name, sl.start_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, venueID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []SlotRow
	for rows.Next() {
		var sr SlotRow
		if err := rows.Scan(
			&sr.ID,
			&sr.CourtID,
			&sr.CourtName,
			&sr.Date,
			&sr.StartAt,
			&sr.EndAt,
			&sr.Price,
			&sr.Booked,
			&sr.BookingCount,
		); err != nil {
			return nil, err
		}
		slots = append(slots, sr)
	}
	return slots, rows.Err()
}

func (s *SlotsStore) GetByID(ctx context.Context, slotID int64) (*SlotRow, error) {
	query := `
		SELECT sl.id, c.id, c.name,
		       to_char(sl.date, 'YYYY-MM-DD'),
		       to_char(sl.start_at, 'HH24:MI'),
		       to_char(sl.end_at, 'HH24:MI'),
		       sl.price, sl.booked,
		       (SELECT COUNT(*) FROM bookings b WHERE b.slot_id = sl.id)
		FROM slots sl
		JOIN courts c ON c.id = sl.court_id
		WHERE sl.id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var sr SlotRow
	err := s.db.QueryRow(ctx, query, slotID).Scan(
		&sr.ID,
		&sr.CourtID,
		&sr.CourtName,
		&sr.Date,
		&sr.StartAt,
		&sr.EndAt,
		&sr.Price,
		&sr.Booked,
		&sr.BookingCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &sr, nil
}
