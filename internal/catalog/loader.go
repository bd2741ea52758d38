package catalog

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// fileSchema is the on-disk YAML layout. The file wraps everything under
// a top-level "catalog" key so revision files stay self-describing.
type fileSchema struct {
	Catalog struct {
		Revision  string     `yaml:"revision"`
		Questions []Question `yaml:"questions"`
	} `yaml:"catalog"`
}

// LoadFile reads a catalog revision from a YAML file and runs the same
// invariant checks as the compiled-in catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}

	return New(f.Catalog.Revision, f.Catalog.Questions)
}

// Registry holds the catalog revisions available to the process. It is
// populated once at startup and read-only afterwards, so concurrent
// scoring calls need no locking.
type Registry struct {
	active   string
	catalogs map[string]*Catalog
}

// NewRegistry builds a registry containing the given catalogs; the first
// one becomes the active revision.
func NewRegistry(catalogs ...*Catalog) (*Registry, error) {
	if len(catalogs) == 0 {
		return nil, eris.New("catalog: registry needs at least one catalog")
	}
	r := &Registry{
		active:   catalogs[0].Revision(),
		catalogs: make(map[string]*Catalog, len(catalogs)),
	}
	for _, c := range catalogs {
		if _, dup := r.catalogs[c.Revision()]; dup {
			return nil, eris.Errorf("catalog: duplicate revision %s", c.Revision())
		}
		r.catalogs[c.Revision()] = c
	}
	return r, nil
}

// Active returns the catalog used for new submissions.
func (r *Registry) Active() *Catalog { return r.catalogs[r.active] }

// Get returns the catalog for a revision. Historical submissions are
// rescored against the revision they were created under.
func (r *Registry) Get(revision string) (*Catalog, bool) {
	c, ok := r.catalogs[revision]
	return c, ok
}

// Revisions lists the registered revision labels, active first.
func (r *Registry) Revisions() []string {
	out := []string{r.active}
	for rev := range r.catalogs {
		if rev != r.active {
			out = append(out, rev)
		}
	}
	return out
}
