package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Court is one playing surface inside a venue.
type Court struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	CreatedAt time.Time `json:"created_at"`
}

type CourtsStore struct {
	db *pgxpool.Pool
}

func (s *CourtsStore) ListByVenue(ctx context.Context, venueID int64) ([]Court, error) {
	query := `
		SELECT id, venue_id, name, sport, created_at
		FROM courts
		WHERE venue_id = $1
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.CreatedAt); err != nil {
			return nil, err
		}
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

func (s *CourtsStore) GetByID(ctx context.Context, courtID int64) (*Court, error) {
	query := `
		SELECT id, venue_id, name, sport, created_at
		FROM courts
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var c Court
	err := s.db.QueryRow(ctx, query, courtID).Scan(&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &c, nil
}
