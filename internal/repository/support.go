package repository

import (
	"context"
	"errors"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupportRepository struct {
	pool *pgxpool.Pool
}

func NewSupportRepository(s *server.Server) *SupportRepository {
	return &SupportRepository{pool: s.DB.Pool}
}

// Insert writes a ticket with status forced to open, then reads back the
// snapshot joined with the submitter's profile.
func (r *SupportRepository) Insert(ctx context.Context, userID, message string) (*domain.SupportMessageSnapshot, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO support_messages (user_id, message, status)
		VALUES ($1, $2, 'open')
		RETURNING id`,
		userID, message,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	var snap domain.SupportMessageSnapshot
	err = r.pool.QueryRow(ctx, `
		SELECT m.id, m.user_id, m.message, m.status, m.created_at, p.name, p.phone
		FROM support_messages m
		JOIN profiles p ON p.id = m.user_id
		WHERE m.id = $1`, id,
	).Scan(
		&snap.ID,
		&snap.UserID,
		&snap.Message,
		&snap.Status,
		&snap.CreatedAt,
		&snap.Submitter.Name,
		&snap.Submitter.Phone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
