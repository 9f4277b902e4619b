package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRow is a booking flattened together with its slot, court and venue
// labels, the shape the dashboard aggregations consume.
type BookingRow struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	PaymentType   int16     `json:"payment_type"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	Source        string    `json:"source"`
	Notes         *string   `json:"notes,omitempty"`
	ReceiptNumber *string   `json:"receipt_number,omitempty"`
	PublicCode    *string   `json:"public_code,omitempty"`
	VenueName     string    `json:"venue_name"`
	CourtName     string    `json:"court_name"`
	SlotID        int64     `json:"slot_id"`
	SlotDate      string    `json:"slot_date"`
	StartAt       string    `json:"start_at"`
	EndAt         string    `json:"end_at"`
	Price         float64   `json:"price"`
}

// OfflineBooking is the insert payload for a manual booking taken at the
// counter or on an external platform.
type OfflineBooking struct {
	ID            int64
	SlotID        int64
	SellerID      int64
	CustomerName  string
	CustomerPhone string
	Amount        float64
	PaymentType   int16
	Source        string
	Notes         *string
	ReceiptNumber string
	PublicCode    string
	CreatedAt     time.Time
}

// BookingFilter narrows the booking list view.
type BookingFilter struct {
	Source *string // nil = no filtering
	Limit  int
	Offset int
}

type BookingsStore struct {
	db *pgxpool.Pool
}

const bookingSelect = `
	SELECT b.id, b.created_at, b.payment_type, b.customer_name, b.customer_phone,
	       b.source, b.notes, b.receipt_number, b.public_code,
	       v.title, c.name, sl.id,
	       to_char(sl.date, 'YYYY-MM-DD'),
	       to_char(sl.start_at, 'HH24:MI'),
	       to_char(sl.end_at, 'HH24:MI'),
	       sl.price
	FROM bookings b
	JOIN slots sl ON sl.id = b.slot_id
	JOIN courts c ON c.id = sl.court_id
	JOIN venues v ON v.id = c.venue_id
`

func scanBookingRow(row pgx.Row) (BookingRow, error) {
	var b BookingRow
	err := row.Scan(
		&b.ID,
		&b.CreatedAt,
		&b.PaymentType,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.Source,
		&b.Notes,
		&b.ReceiptNumber,
		&b.PublicCode,
		&b.VenueName,
		&b.CourtName,
		&b.SlotID,
		&b.SlotDate,
		&b.StartAt,
		&b.EndAt,
		&b.Price,
	)
	return b, err
}

// ListFlattened returns every booking for a venue with a slot date on or
// after since; the zero time means everything. Feed for the dashboard
// aggregations, which re-sort in memory.
func (s *BookingsStore) ListFlattened(ctx context.Context, venueID int64, since time.Time) ([]BookingRow, error) {
	query := bookingSelect + `
	WHERE v.id = $1 AND sl.date >= $2
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, venueID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []BookingRow
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// List is the paged booking list for the bookings page, most recent slot
// first, optionally narrowed by booking source.
func (s *BookingsStore) List(ctx context.Context, venueID int64, filter BookingFilter) ([]BookingRow, int, error) {
	query := bookingSelect + `
	WHERE v.id = $1 AND ($2::text IS NULL OR b.source = $2)
	ORDER BY sl.date DESC, sl.start_at DESC
	LIMIT $3 OFFSET $4
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, venueID, filter.Source, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []BookingRow
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN slots sl ON sl.id = b.slot_id
		JOIN courts c ON c.id = sl.court_id
		WHERE c.venue_id = $1 AND ($2::text IS NULL OR b.source = $2)
	`
	var total int
	if err := s.db.QueryRow(ctx, countQuery, venueID, filter.Source).Scan(&total); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// CreateOffline books a slot manually inside one transaction: lock the slot,
// refuse if either availability signal says it is taken, insert the booking
// and flip the booked flag so the two signals stay converged.
func (s *BookingsStore) CreateOffline(ctx context.Context, booking *OfflineBooking) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var booked bool
	var existing int
	err = tx.QueryRow(ctx, `
		SELECT booked, (SELECT COUNT(*) FROM bookings b WHERE b.slot_id = slots.id)
		FROM slots
		WHERE id = $1
		FOR UPDATE
	`, booking.SlotID).Scan(&booked, &existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if booked || existing > 0 {
		return ErrSlotTaken
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (slot_id, seller_id, customer_name, customer_phone, amount,
		                      payment_type, source, notes, receipt_number, public_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		booking.SlotID,
		booking.SellerID,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.Amount,
		booking.PaymentType,
		booking.Source,
		booking.Notes,
		booking.ReceiptNumber,
		booking.PublicCode,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert offline booking: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE slots SET booked = true WHERE id = $1`, booking.SlotID); err != nil {
		return fmt.Errorf("mark slot booked: %w", err)
	}

	return tx.Commit(ctx)
}

// ReleaseExpiredHolds frees slots held by unpaid offline bookings older than
// the cutoff. Run from the background job.
func (s *BookingsStore) ReleaseExpiredHolds(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `
		WITH released AS (
			DELETE FROM bookings
			WHERE payment_type = 0 AND source <> 'online' AND created_at < $1
			RETURNING slot_id
		)
		UPDATE slots
		SET booked = false
		WHERE id IN (SELECT slot_id FROM released)
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
