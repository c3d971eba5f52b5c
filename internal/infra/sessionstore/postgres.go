package sessionstore

import (
	"context"
	"log/slog"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
	"vander-key-store/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectSessionKeySQL = `
SELECT session_id, key, plan, email, created_at
FROM session_keys
WHERE session_id = $1`

	// last write wins, matching the memory store
	upsertSessionKeySQL = `
INSERT INTO session_keys (session_id, key, plan, email, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (session_id) DO UPDATE
SET key = EXCLUDED.key,
    plan = EXCLUDED.plan,
    email = EXCLUDED.email,
    created_at = EXCLUDED.created_at,
    updated_at = now()`
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) Get(ctx context.Context, sessionID string) (*key.SessionKey, error) {
	var (
		doc       sessionKeyDocument
		email     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, selectSessionKeySQL, sessionID).
		Scan(&doc.SessionID, &doc.Key, &doc.Plan, &email, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewErr(infra.KindNotFound, "session key not found", nil)
		}
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "select session key", err)
	}
	doc.Email = pgconv.StringFromPgtype(email)
	doc.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return doc.toDomain(), nil
}

func (s *PostgresStore) Put(ctx context.Context, sk *key.SessionKey) error {
	doc := toDocument(sk)
	if _, err := s.pool.Exec(ctx, upsertSessionKeySQL,
		doc.SessionID, doc.Key, doc.Plan,
		pgconv.StringToPgtype(doc.Email), pgconv.TimeToPgtype(doc.CreatedAt),
	); err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "upsert session key", err)
	}
	return nil
}
