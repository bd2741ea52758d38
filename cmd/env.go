package main

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/insight"
	"github.com/gulfwise/finclinic/internal/scoring"
	"github.com/gulfwise/finclinic/internal/store"
)

// initRegistry builds the catalog registry: the compiled-in revision
// plus any revisions configured from YAML files.
func initRegistry() (*catalog.Registry, error) {
	catalogs := []*catalog.Catalog{}

	builtin, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	catalogs = append(catalogs, builtin)

	for _, path := range cfg.Engine.CatalogPaths {
		cat, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, cat)
	}

	return catalog.NewRegistry(catalogs...)
}

// catalogFor resolves a revision label against the registry. An empty
// label means the active revision; scoring against an older revision
// reproduces historical submissions.
func catalogFor(reg *catalog.Registry, revision string) (*catalog.Catalog, error) {
	if revision == "" {
		return reg.Active(), nil
	}
	cat, ok := reg.Get(revision)
	if !ok {
		return nil, eris.Errorf("unknown catalog revision %q, registered: %s",
			revision, strings.Join(reg.Revisions(), ", "))
	}
	return cat, nil
}

// initAssessor wires the requested catalog revision and the insight
// matrix into a ready-to-use assessor.
func initAssessor(revision string) (*scoring.Assessor, *catalog.Catalog, *insight.Matrix, error) {
	reg, err := initRegistry()
	if err != nil {
		return nil, nil, nil, err
	}

	cat, err := catalogFor(reg, revision)
	if err != nil {
		return nil, nil, nil, err
	}

	matrix, err := insight.DefaultMatrix()
	if err != nil {
		return nil, nil, nil, err
	}

	return scoring.NewAssessor(cat, matrix, cfg.Engine.MaxInsights), cat, matrix, nil
}

// initStore opens and migrates the configured submission store.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
