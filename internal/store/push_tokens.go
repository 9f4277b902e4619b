package store

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PushTokensStore struct {
	db *pgxpool.Pool
}

// AddOrUpdate upserts a token with its device info and refreshes last_updated.
func (s *PushTokensStore) AddOrUpdate(ctx context.Context, sellerID int64, token string, deviceInfo json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := `
	INSERT INTO seller_push_tokens (seller_id, expo_push_token, device_info, last_updated)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (seller_id, expo_push_token)
	DO UPDATE SET device_info = EXCLUDED.device_info, last_updated = NOW();
	`

	_, err := s.db.Exec(ctx, q, sellerID, token, deviceInfo)
	return err
}

// Remove deletes a single token for a seller.
func (s *PushTokensStore) Remove(ctx context.Context, sellerID int64, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := `DELETE FROM seller_push_tokens WHERE seller_id = $1 AND expo_push_token = $2`
	_, err := s.db.Exec(ctx, q, sellerID, token)
	return err
}

// RemoveByTokenList deletes tokens reported dead by the push provider.
func (s *PushTokensStore) RemoveByTokenList(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := `DELETE FROM seller_push_tokens WHERE expo_push_token = ANY($1)`
	_, err := s.db.Exec(ctx, q, tokens)
	return err
}

// ListBySeller returns every registered token for one seller.
func (s *PushTokensStore) ListBySeller(ctx context.Context, sellerID int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := `SELECT expo_push_token FROM seller_push_tokens WHERE seller_id = $1`

	rows, err := s.db.Query(ctx, q, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
