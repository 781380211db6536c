// Package taxonomy knows which remote error identifiers exist and what they mean.
//
// The static catalogue is compiled in and never changes. Descriptions learned
// at runtime from the fallback lookup live in a Store shared by every
// classifier that uses the same Taxonomy.
package taxonomy

import (
	"context"
	"regexp"
)

var trailingNumber = regexp.MustCompile(`\d+$`)

// Normalize replaces the number embedded in an identifier with X, so that
// FLOOD_WAIT_17 and FLOOD_WAIT_3 share the FLOOD_WAIT_X entry.
func Normalize(identifier string) string {
	if filePartMissing.MatchString(identifier) {
		return filePartMissing.ReplaceAllString(identifier, "FILE_PART_X_MISSING")
	}
	return trailingNumber.ReplaceAllString(identifier, "X")
}

// Static returns the compiled-in description of identifier. The identifier is
// tried verbatim first and normalized second.
func Static(identifier string) (string, bool) {
	if d, ok := lookupStatic(identifier); ok {
		return d, true
	}
	if n := Normalize(identifier); n != identifier {
		return lookupStatic(n)
	}
	return "", false
}

func lookupStatic(identifier string) (string, bool) {
	if d, ok := descriptions[identifier]; ok {
		return d, true
	}
	d, ok := families[identifier]
	return d, ok
}

// Len returns the size of the static catalogue.
func Len() int {
	return len(descriptions) + len(families)
}

// Taxonomy combines the static catalogue with learned descriptions.
type Taxonomy struct {
	store Store
}

// New returns a Taxonomy backed by store. A nil store keeps learned
// descriptions in memory.
func New(store Store) *Taxonomy {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Taxonomy{store: store}
}

// Static is the package level Static.
func (t *Taxonomy) Static(identifier string) (string, bool) {
	return Static(identifier)
}

// Learned returns a description previously stored with Remember.
func (t *Taxonomy) Learned(ctx context.Context, identifier string) (string, bool, error) {
	return t.store.Get(ctx, Normalize(identifier))
}

// Remember stores a description learned at runtime. Identifiers from the
// static catalogue are left alone.
func (t *Taxonomy) Remember(ctx context.Context, identifier, description string) error {
	if description == "" {
		return nil
	}
	key := Normalize(identifier)
	if _, ok := lookupStatic(key); ok {
		return nil
	}
	return t.store.Set(ctx, key, description)
}
