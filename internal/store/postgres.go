package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/model"
)

// Pool abstracts the pgx connection pool so tests can substitute a mock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool. Used by tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS submissions (
	id               TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	profile          JSONB NOT NULL,
	answers          JSONB NOT NULL,
	result           JSONB,
	status_band      TEXT NOT NULL,
	total            DOUBLE PRECISION NOT NULL,
	catalog_revision TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_submissions_status_band ON submissions(status_band);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveSubmission(ctx context.Context, sub *model.Submission) error {
	if sub.Result == nil {
		return eris.New("postgres: submission has no result")
	}

	profileJSON, err := json.Marshal(sub.Profile)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal profile")
	}
	answersJSON, err := json.Marshal(sub.Answers)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal answers")
	}
	resultJSON, err := json.Marshal(sub.Result)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO submissions (id, profile, answers, result, status_band, total, catalog_revision, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sub.ID, profileJSON, answersJSON, resultJSON,
		string(sub.Result.Overall.StatusBand), sub.Result.Overall.Total,
		sub.Result.CatalogRevision, sub.CreatedAt,
	)
	return eris.Wrapf(err, "postgres: insert submission %s", sub.ID)
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	var profileJSON, answersJSON []byte
	var resultNull *[]byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, profile, answers, result, created_at FROM submissions WHERE id = $1`,
		id,
	).Scan(&sub.ID, &profileJSON, &answersJSON, &resultNull, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Wrapf(ErrNotFound, "postgres: get submission %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get submission %s", id)
	}

	if err := unmarshalSubmission(&sub, profileJSON, answersJSON, resultNull); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *PostgresStore) ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error) {
	query := `SELECT id, profile, answers, result, created_at FROM submissions WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Band != "" {
		query += fmt.Sprintf(` AND status_band = $%d`, argIdx)
		args = append(args, string(filter.Band))
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
		argIdx++
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list submissions")
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var sub model.Submission
		var profileJSON, answersJSON []byte
		var resultNull *[]byte

		if err := rows.Scan(&sub.ID, &profileJSON, &answersJSON, &resultNull, &sub.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan submission")
		}
		if err := unmarshalSubmission(&sub, profileJSON, answersJSON, resultNull); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, eris.Wrap(rows.Err(), "postgres: list submissions iterate")
}

func unmarshalSubmission(sub *model.Submission, profileJSON, answersJSON []byte, resultNull *[]byte) error {
	if err := json.Unmarshal(profileJSON, &sub.Profile); err != nil {
		return eris.Wrap(err, "postgres: unmarshal profile")
	}
	if err := json.Unmarshal(answersJSON, &sub.Answers); err != nil {
		return eris.Wrap(err, "postgres: unmarshal answers")
	}
	if resultNull != nil {
		sub.Result = &model.AssessmentResult{}
		if err := json.Unmarshal(*resultNull, sub.Result); err != nil {
			return eris.Wrap(err, "postgres: unmarshal result")
		}
	}
	return nil
}
