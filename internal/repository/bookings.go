package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(s *server.Server) *BookingRepository {
	return &BookingRepository{pool: s.DB.Pool}
}

const bookingSnapshotQuery = `
	SELECT b.id, b.user_id, b.service_id,
	       to_char(b.booking_date, 'YYYY-MM-DD'),
	       to_char(b.booking_time, 'HH24:MI'),
	       b.address, b.notes, b.status, b.payment_status,
	       b.created_at, b.updated_at,
	       s.name, s.price::text
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	WHERE `

func scanBookingSnapshot(row pgx.Row) (*domain.BookingSnapshot, error) {
	var snap domain.BookingSnapshot
	var price string

	err := row.Scan(
		&snap.ID,
		&snap.UserID,
		&snap.ServiceID,
		&snap.BookingDate,
		&snap.BookingTime,
		&snap.Address,
		&snap.Notes,
		&snap.Status,
		&snap.PaymentStatus,
		&snap.CreatedAt,
		&snap.UpdatedAt,
		&snap.Service.Name,
		&price,
	)
	if err != nil {
		return nil, err
	}

	snap.Service.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price: %w", err)
	}

	return &snap, nil
}

// Insert writes a booking with status and payment status both forced to
// pending, then reads back the stored snapshot joined with its service.
func (r *BookingRepository) Insert(ctx context.Context, userID string, in domain.CreateBookingInput) (*domain.BookingSnapshot, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (user_id, service_id, booking_date, booking_time, address, notes, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending')
		RETURNING id`,
		userID,
		in.ServiceID,
		in.BookingDate,
		in.BookingTime,
		in.Address,
		in.Notes,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.GetSnapshot(ctx, id)
}

// GetByID fetches the bare booking row for existence, ownership, and
// status checks.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, service_id,
		       to_char(booking_date, 'YYYY-MM-DD'),
		       to_char(booking_time, 'HH24:MI'),
		       address, notes, status, payment_status, created_at, updated_at
		FROM bookings WHERE id = $1`, id,
	).Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&b.BookingDate,
		&b.BookingTime,
		&b.Address,
		&b.Notes,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) GetSnapshot(ctx context.Context, id string) (*domain.BookingSnapshot, error) {
	snap, err := scanBookingSnapshot(r.pool.QueryRow(ctx, bookingSnapshotQuery+`b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	return snap, err
}

// Cancel sets the booking to cancelled, guarded on the row still being in
// a cancellable state so a concurrent cancel or completion cannot be
// overwritten. When notes is non-nil it replaces the stored notes.
func (r *BookingRepository) Cancel(ctx context.Context, id string, notes *string) (*domain.BookingSnapshot, error) {
	var updatedID string
	err := r.pool.QueryRow(ctx, `
		UPDATE bookings
		SET status = 'cancelled', notes = COALESCE($2, notes), updated_at = now()
		WHERE id = $1 AND status NOT IN ('cancelled', 'completed')
		RETURNING id`,
		id, notes,
	).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotCancellable
	}
	if err != nil {
		return nil, err
	}

	return r.GetSnapshot(ctx, updatedID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.BookingSnapshot, error) {
	rows, err := r.pool.Query(ctx, bookingSnapshotQuery+`b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingSnapshot
	for rows.Next() {
		snap, err := scanBookingSnapshot(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *snap)
	}

	return bookings, rows.Err()
}
