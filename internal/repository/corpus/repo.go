// Package corpus loads per-domain record files from the corpus
// directory. Records are read-only once loaded.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// Repo reads domain corpora from a directory, one YAML file per domain.
type Repo struct {
	dir string
}

// New creates a corpus repository rooted at dir.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// Dir returns the corpus directory.
func (r *Repo) Dir() string { return r.dir }

// Load returns the ordered record set for a domain. A missing corpus
// file is reported as domain.ErrCorpusUnavailable, a normal condition
// for domains whose data has not been provisioned.
func (r *Repo) Load(domainName string) ([]domain.Record, error) {
	cfg, ok := domain.LookupDomain(domainName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, domainName)
	}

	path := filepath.Join(r.dir, cfg.File())
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCorpusUnavailable, path)
		}
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	records, err := recordsFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return records, nil
}
