// Package memstore provides the in-process magic-link token store. It is
// the default backing for single-replica deployments; tokens are lost on
// restart, which only forces re-issuance.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stackfall/workdesk/internal/domain/party"
)

type entry struct {
	resourceID   string
	subjectEmail string
	expiresAt    time.Time
}

// MagicLinkStore is a mutex-guarded in-memory token map. The delete in
// Consume happens under the same lock as the lookup, so concurrent replays
// of one token serialize and exactly one caller observes the entry.
type MagicLinkStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMagicLinkStore creates an empty in-memory magic-link token store.
func NewMagicLinkStore() *MagicLinkStore {
	return &MagicLinkStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MagicLinkStore) Issue(_ context.Context, resourceID, subjectEmail string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	token := party.NewToken(16)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{
		resourceID:   resourceID,
		subjectEmail: strings.ToLower(strings.TrimSpace(subjectEmail)),
		expiresAt:    s.now().Add(ttl),
	}
	return token, nil
}

func (s *MagicLinkStore) Consume(_ context.Context, token, resourceID, subjectEmail string) (bool, error) {
	s.mu.Lock()
	e, ok := s.entries[token]
	// Destroy on first lookup, before any validation, so a replay with
	// correct secondary fields still fails.
	delete(s.entries, token)
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if e.resourceID != resourceID {
		return false, nil
	}
	if e.subjectEmail != strings.ToLower(strings.TrimSpace(subjectEmail)) {
		return false, nil
	}
	if !s.now().Before(e.expiresAt) {
		return false, nil
	}
	return true, nil
}
