package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"

	"github.com/google/uuid"
)

type dedupEntry struct {
	payloadHash string
	expiresAt   time.Time
}

// Store is the in-memory adapter. It backs unit tests and local runs and
// doubles as Clock and IDGenerator.
type Store struct {
	mu sync.RWMutex

	grants map[string]ports.RoleGrant
	dedup  map[string]dedupEntry
}

func NewStore() *Store {
	return &Store{
		grants: make(map[string]ports.RoleGrant),
		dedup:  make(map[string]dedupEntry),
	}
}

func (s *Store) AddGrant(_ context.Context, grant ports.RoleGrant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grants[grant.GrantID] = cloneGrant(grant)
	return nil
}

func (s *Store) GetGrant(_ context.Context, grantID string) (ports.RoleGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, exists := s.grants[strings.TrimSpace(grantID)]
	if !exists {
		return ports.RoleGrant{}, domainerrors.ErrGrantNotFound
	}
	return cloneGrant(grant), nil
}

func (s *Store) UpdateGrant(_ context.Context, grant ports.RoleGrant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.grants[grant.GrantID]; !exists {
		return domainerrors.ErrGrantNotFound
	}
	s.grants[grant.GrantID] = cloneGrant(grant)
	return nil
}

func (s *Store) ListGrants(_ context.Context, filter ports.GrantFilter) ([]ports.RoleGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.RoleGrant, 0, len(s.grants))
	for _, grant := range s.grants {
		if filter.CreatorName != "" && grant.CreatorName != filter.CreatorName {
			continue
		}
		if filter.Unacknowledged && grant.Acknowledged {
			continue
		}
		items = append(items, cloneGrant(grant))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OccurredAt.Equal(items[j].OccurredAt) {
			return items[i].GrantID < items[j].GrantID
		}
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (s *Store) ReserveEvent(_ context.Context, eventID string, payloadHash string, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	existing, exists := s.dedup[eventID]
	if exists && now.Before(existing.expiresAt) {
		if existing.payloadHash != payloadHash {
			return false, domainerrors.ErrEventPayloadConflict
		}
		return true, nil
	}
	s.dedup[eventID] = dedupEntry{payloadHash: payloadHash, expiresAt: expiresAt.UTC()}
	return false, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func cloneGrant(grant ports.RoleGrant) ports.RoleGrant {
	cloned := grant
	if grant.AcknowledgedAt != nil {
		ackedAt := *grant.AcknowledgedAt
		cloned.AcknowledgedAt = &ackedAt
	}
	return cloned
}
