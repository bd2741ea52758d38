// Package store persists completed assessment submissions. Two
// backends are provided: SQLite for single-node deployments and
// Postgres for shared ones.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/config"
	"github.com/gulfwise/finclinic/internal/model"
)

// ErrNotFound is returned by GetSubmission when no submission matches
// the id. Both drivers wrap it, so callers check with eris.Is.
var ErrNotFound = eris.New("submission not found")

// SubmissionFilter specifies criteria for listing submissions.
type SubmissionFilter struct {
	Band   model.StatusBand `json:"band,omitempty"`
	Limit  int              `json:"limit,omitempty"`
	Offset int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessment submissions.
type Store interface {
	SaveSubmission(ctx context.Context, sub *model.Submission) error
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs the configured store backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		path := cfg.Path
		if path == "" {
			path = "finclinic.db"
		}
		return NewSQLite(path)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, eris.New("store: postgres driver requires database_url")
		}
		return NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
