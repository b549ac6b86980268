package postgresql

import (
	"context"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
)

// Refresh tokens are persisted so a logout survives process restarts. The
// token column stores the signed JWT itself; IsActive treats unknown or
// revoked tokens the same way.
type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, token string, userID string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO NOTHING
	`

	_, err := q.Exec(ctx, insertQuery, token, userID, time.Unix(expiresAt, 0))
	return err
}

func (r *refreshTokenRepositoryImpl) IsActive(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var active bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM refresh_tokens
			WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
		)
	`
	err := q.QueryRow(ctx, query, token).Scan(&active)
	return active, err
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`,
		token,
	)
	return err
}

func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
