package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository stores staff sessions; the token is kept sealed
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(pool)}
}

// Save creates or replaces the session of a chat
func (r *SessionRepository) Save(ctx context.Context, sess *model.Session, sealedToken []byte) error {
	query := `
		INSERT INTO staff_sessions (telegram_id, token_sealed, staff_name, staff_email, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (telegram_id) DO UPDATE
		SET token_sealed = EXCLUDED.token_sealed,
		    staff_name = EXCLUDED.staff_name,
		    staff_email = EXCLUDED.staff_email,
		    expires_at = EXCLUDED.expires_at,
		    created_at = NOW()
		RETURNING created_at
	`

	var expiresAt *time.Time
	if !sess.ExpiresAt.IsZero() {
		expiresAt = &sess.ExpiresAt
	}

	err := r.QueryRow(ctx, query,
		sess.TelegramID,
		sealedToken,
		sess.StaffName,
		sess.StaffEmail,
		expiresAt,
	).Scan(&sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Get returns the session and its sealed token, or nil when absent
func (r *SessionRepository) Get(ctx context.Context, telegramID int64) (*model.Session, []byte, error) {
	query := `
		SELECT telegram_id, token_sealed, staff_name, staff_email, expires_at, created_at
		FROM staff_sessions
		WHERE telegram_id = $1
	`

	var (
		sess      model.Session
		sealed    []byte
		expiresAt *time.Time
	)
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&sess.TelegramID,
		&sealed,
		&sess.StaffName,
		&sess.StaffEmail,
		&expiresAt,
		&sess.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get session: %w", err)
	}

	if expiresAt != nil {
		sess.ExpiresAt = *expiresAt
	}

	return &sess, sealed, nil
}

// Delete removes the session of a chat; deleting a missing one is not an error
func (r *SessionRepository) Delete(ctx context.Context, telegramID int64) error {
	if _, err := r.ExecAffected(ctx, `DELETE FROM staff_sessions WHERE telegram_id = $1`, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions expired at now and returns their chats
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		DELETE FROM staff_sessions
		WHERE expires_at IS NOT NULL AND expires_at <= $1
		RETURNING telegram_id
	`

	rows, err := r.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("delete expired sessions: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect expired sessions: %w", err)
	}

	return ids, nil
}
