package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Venue is a seller-owned property with courts under it. Sports, amenities
// and photo URLs live in text[] columns, hence lib/pq for this store.
type Venue struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	OpenAt      *string   `json:"open_at,omitempty"`
	CloseAt     *string   `json:"close_at,omitempty"`
	Sports      []string  `json:"sports"`
	Amenities   []string  `json:"amenities"`
	PhotoURLs   []string  `json:"photo_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VenuesStore struct {
	db *sql.DB
}

// Columns a PATCH is allowed to touch. Everything else in the update map is
// rejected before it reaches SQL.
var venueUpdatableColumns = map[string]bool{
	"title":       true,
	"description": true,
	"location":    true,
	"open_at":     true,
	"close_at":    true,
	"sports":      true,
	"amenities":   true,
}

func (s *VenuesStore) ListByOwner(ctx context.Context, ownerID int64) ([]Venue, error) {
	query := `
		SELECT id, owner_id, title, description, location, open_at, close_at,
		       sports, amenities, photo_urls, created_at, updated_at
		FROM venues
		WHERE owner_id = $1
		ORDER BY title
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID,
			&v.OwnerID,
			&v.Title,
			&v.Description,
			&v.Location,
			&v.OpenAt,
			&v.CloseAt,
			pq.Array(&v.Sports),
			pq.Array(&v.Amenities),
			pq.Array(&v.PhotoURLs),
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (s *VenuesStore) GetByID(ctx context.Context, venueID int64) (*Venue, error) {
	query := `
		SELECT id, owner_id, title, description, location, open_at, close_at,
		       sports, amenities, photo_urls, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var v Venue
	err := s.db.QueryRowContext(ctx, query, venueID).Scan(
		&v.ID,
		&v.OwnerID,
		&v.Title,
		&v.Description,
		&v.Location,
		&v.OpenAt,
		&v.CloseAt,
		pq.Array(&v.Sports),
		pq.Array(&v.Amenities),
		pq.Array(&v.PhotoURLs),
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &v, nil
}

func (s *VenuesStore) IsOwner(ctx context.Context, venueID, sellerID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1 AND owner_id = $2)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var owns bool
	if err := s.db.QueryRowContext(ctx, query, venueID, sellerID).Scan(&owns); err != nil {
		return false, err
	}
	return owns, nil
}

// Update applies a partial update. Keys must be whitelisted columns; string
// slice values go through pq.Array.
func (s *VenuesStore) Update(ctx context.Context, venueID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	i := 1

	for column, value := range updates {
		if !venueUpdatableColumns[column] {
			return fmt.Errorf("column %q is not updatable", column)
		}
		if ss, ok := value.([]string); ok {
			value = pq.Array(ss)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE venues SET %s WHERE id = $%d", strings.Join(setClauses, ", "), i)
	args = append(args, venueID)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *VenuesStore) AddPhotoURL(ctx context.Context, venueID int64, url string) error {
	query := `
		UPDATE venues
		SET photo_urls = array_append(photo_urls, $1), updated_at = NOW()
		WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, url, venueID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *VenuesStore) RemovePhotoURL(ctx context.Context, venueID int64, url string) error {
	query := `
		UPDATE venues
		SET photo_urls = array_remove(photo_urls, $1), updated_at = NOW()
		WHERE id = $2 AND $1 = ANY(photo_urls)
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, url, venueID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
