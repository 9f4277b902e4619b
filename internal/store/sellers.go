package store

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Seller is a venue owner account.
type Seller struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  password  `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// password keeps the bcrypt hash next to the (never serialized) plaintext.
type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

type SellersStore struct {
	db *sql.DB
}

func (s *SellersStore) GetByID(ctx context.Context, sellerID int64) (*Seller, error) {
	query := `
		SELECT id, name, email, phone, password, is_active, created_at, updated_at
		FROM sellers
		WHERE id = $1 AND is_active = true
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var seller Seller
	err := s.db.QueryRowContext(ctx, query, sellerID).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.Phone,
		&seller.Password.hash,
		&seller.IsActive,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}

// SaveRefreshToken stores the current refresh token, replacing any previous one.
func (s *SellersStore) SaveRefreshToken(ctx context.Context, sellerID int64, token string) error {
	query := `UPDATE sellers SET refresh_token = $1, updated_at = NOW() WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, token, sellerID)
	return err
}

func (s *SellersStore) GetRefreshToken(ctx context.Context, sellerID int64) (string, error) {
	query := `SELECT COALESCE(refresh_token, '') FROM sellers WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var token string
	if err := s.db.QueryRowContext(ctx, query, sellerID).Scan(&token); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return token, nil
}

func (s *SellersStore) GetByEmail(ctx context.Context, email string) (*Seller, error) {
	query := `
		SELECT id, name, email, phone, password, is_active, created_at, updated_at
		FROM sellers
		WHERE email = $1 AND is_active = true
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var seller Seller
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.Phone,
		&seller.Password.hash,
		&seller.IsActive,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}
