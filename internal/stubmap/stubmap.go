// Package stubmap holds the process-scoped active stub map: one harness's
// pair set from the collection phase's output, installed once before the
// generation phase's first body query, and read-only from then on.
//
// A sync.RWMutex guards the map the way a lazily-populated resolver cache
// would, but trades "populate lazily, mutate forever" for "populate once,
// panic on a second attempt" — the stronger install-then-freeze guarantee
// this facility needs.
package stubmap

import (
	"sync"

	"github.com/vericore/stubgen/internal/universe"
)

// Store is the active stub map: original canonical path -> replacement
// canonical path.
type Store struct {
	mu        sync.RWMutex
	installed bool
	mapping   map[universe.CanonicalPath]universe.CanonicalPath
}

// New returns an uninstalled Store.
func New() *Store {
	return &Store{}
}

// Install freezes the given mapping into the store. It panics if called
// twice: this is a programmer error in the host driver, not a recoverable
// condition (mirrors GEN002 in internal/direrrors, which covers the
// read-before-install half of the same precondition).
func (s *Store) Install(mapping map[universe.CanonicalPath]universe.CanonicalPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.installed {
		panic("stubmap: Install called more than once")
	}
	frozen := make(map[universe.CanonicalPath]universe.CanonicalPath, len(mapping))
	for k, v := range mapping {
		frozen[k] = v
	}
	s.mapping = frozen
	s.installed = true
}

// Installed reports whether Install has run.
func (s *Store) Installed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.installed
}

// Lookup returns the replacement for original, if any. It panics if the
// store has not been installed yet — a caller querying the stub map
// before collection has completed is itself the GEN002 bug.
func (s *Store) Lookup(original universe.CanonicalPath) (universe.CanonicalPath, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.installed {
		panic("stubmap: Lookup called before Install")
	}
	replacement, ok := s.mapping[original]
	return replacement, ok
}

// Size returns the number of installed mappings (0 before Install).
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mapping)
}

// All returns a copy of the installed mapping, for diagnostics and the CLI
// dump commands. It panics under the same precondition as Lookup.
func (s *Store) All() map[universe.CanonicalPath]universe.CanonicalPath {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.installed {
		panic("stubmap: All called before Install")
	}
	out := make(map[universe.CanonicalPath]universe.CanonicalPath, len(s.mapping))
	for k, v := range s.mapping {
		out[k] = v
	}
	return out
}
