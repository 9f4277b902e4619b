package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	ErrSlotTaken         = fmt.Errorf("slot already booked: %w", ErrConflict)
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Sellers interface {
		GetByID(context.Context, int64) (*Seller, error)
		GetByEmail(context.Context, string) (*Seller, error)
		SaveRefreshToken(ctx context.Context, sellerID int64, token string) error
		GetRefreshToken(ctx context.Context, sellerID int64) (string, error)
	}
	Venues interface {
		ListByOwner(context.Context, int64) ([]Venue, error)
		GetByID(context.Context, int64) (*Venue, error)
		IsOwner(ctx context.Context, venueID, sellerID int64) (bool, error)
		Update(ctx context.Context, venueID int64, updates map[string]interface{}) error
		AddPhotoURL(ctx context.Context, venueID int64, url string) error
		RemovePhotoURL(ctx context.Context, venueID int64, url string) error
	}
	Courts interface {
		ListByVenue(context.Context, int64) ([]Court, error)
		GetByID(context.Context, int64) (*Court, error)
	}
	Slots interface {
		ListByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]SlotRow, error)
		GetByID(context.Context, int64) (*SlotRow, error)
	}
	Bookings interface {
		ListFlattened(ctx context.Context, venueID int64, since time.Time) ([]BookingRow, error)
		List(ctx context.Context, venueID int64, filter BookingFilter) ([]BookingRow, int, error)
		CreateOffline(context.Context, *OfflineBooking) error
		ReleaseExpiredHolds(ctx context.Context, olderThan time.Duration) (int64, error)
	}
	PushTokens interface {
		AddOrUpdate(ctx context.Context, sellerID int64, token string, deviceInfo json.RawMessage) error
		Remove(ctx context.Context, sellerID int64, token string) error
		RemoveByTokenList(ctx context.Context, tokens []string) error
		ListBySeller(ctx context.Context, sellerID int64) ([]string, error)
	}
}

func NewStorage(db *sql.DB, pool *pgxpool.Pool) Storage {
	return Storage{
		Sellers:    &SellersStore{db},
		Venues:     &VenuesStore{db},
		Courts:     &CourtsStore{pool},
		Slots:      &SlotsStore{pool},
		Bookings:   &BookingsStore{pool},
		PushTokens: &PushTokensStore{pool},
	}
}
