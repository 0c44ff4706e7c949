package client

import (
	"sync"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// MirrorSnapshot is an immutable view of the cached schema.
type MirrorSnapshot struct {
	Bundle models.SchemaBundle

	// Results holds the local validation result of every entity by id.
	Results map[string]schema.Result

	// Catalog indexes Bundle. It is nil before the first refresh.
	Catalog *schema.Catalog

	FetchedAt time.Time

	// Err is the error of the last refresh, nil when it succeeded.
	Err error

	// Revision grows with every successful refresh.
	Revision int
}

// Loaded reports whether the mirror holds any schema.
func (s MirrorSnapshot) Loaded() bool {
	return s.Catalog != nil
}

// Mirror caches the schema downloaded from the server. It is cleared on
// logout. Every Clear starts a new epoch; refreshes started in an earlier
// epoch are dropped.
type Mirror struct {
	mu    sync.RWMutex
	snap  MirrorSnapshot
	epoch uint64
}

// Epoch identifies the current lifetime of the mirror. Take it before
// fetching and hand it to Replace or Fail.
func (m *Mirror) Epoch() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// Replace swaps the cached schema and validates it locally. It reports false
// and changes nothing when the mirror was cleared since epoch was taken.
func (m *Mirror) Replace(epoch uint64, bundle models.SchemaBundle, at time.Time) bool {
	catalog := schema.NewCatalogFromBundle(bundle)
	results := schema.ValidateAll(catalog)
	for _, s := range bundle.Studies {
		results[s.ID] = schema.ValidateStudy(s, catalog)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return false
	}
	m.snap = MirrorSnapshot{
		Bundle:    bundle,
		Results:   results,
		Catalog:   catalog,
		FetchedAt: at,
		Revision:  m.snap.Revision + 1,
	}
	return true
}

// Fail records a failed refresh. The previously cached schema is kept.
func (m *Mirror) Fail(epoch uint64, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return false
	}
	m.snap.Err = err
	return true
}

func (m *Mirror) Snapshot() MirrorSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

func (m *Mirror) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = MirrorSnapshot{Revision: m.snap.Revision}
	m.epoch++
}
