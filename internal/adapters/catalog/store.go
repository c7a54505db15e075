package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

//go:embed data/catalog.yaml
var embedded []byte

// EmbeddedStore serves the catalog compiled into the binary.
// It is parsed and validated once, on first use.
type EmbeddedStore struct {
	once    sync.Once
	catalog domain.Catalog
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) GetCatalog(_ context.Context) (domain.Catalog, error) {
	s.once.Do(func() {
		s.catalog, s.err = Parse(embedded)
	})
	if s.err != nil {
		return domain.Catalog{}, s.err
	}
	return s.catalog, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(raw []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: decode: %w", domain.ErrInvalidCatalog, err)
	}
	if err := Validate(c); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

// Validate checks the invariants the resolver relies on: non-empty tables,
// no forbidden words anywhere, and pose names that are lowercase, distinct
// and reachable under a first-match substring scan.
func Validate(c domain.Catalog) error {
	if len(c.Words) == 0 {
		return invalid("no words")
	}
	if len(c.Poses) == 0 {
		return invalid("no poses")
	}
	if len(c.Generic) == 0 {
		return invalid("no generic cues")
	}

	seen := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		if strings.TrimSpace(w) == "" {
			return invalid("blank word")
		}
		if seen[w] {
			return invalid("duplicate word %q", w)
		}
		if domain.ContainsForbidden(w) {
			return invalid("forbidden word %q", w)
		}
		seen[w] = true
	}

	for i, p := range c.Poses {
		if p.Name == "" || strings.TrimSpace(p.Cue) == "" {
			return invalid("pose %d is incomplete", i)
		}
		if p.Name != strings.ToLower(p.Name) {
			return invalid("pose %q must be lowercase", p.Name)
		}
		if domain.ContainsForbidden(p.Cue) {
			return invalid("pose %q cue uses a forbidden word", p.Name)
		}
		for _, earlier := range c.Poses[:i] {
			if strings.Contains(p.Name, earlier.Name) {
				return invalid("pose %q is shadowed by earlier pose %q", p.Name, earlier.Name)
			}
		}
	}

	for _, g := range c.Generic {
		if strings.TrimSpace(g) == "" {
			return invalid("blank generic cue")
		}
		if domain.ContainsForbidden(g) {
			return invalid("generic cue %q uses a forbidden word", g)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
