package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"

	"github.com/google/uuid"
)

type outboxRow struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory adapter. It backs unit tests and local runs and
// doubles as Clock, IDGenerator and ContentSource.
type Store struct {
	mu sync.RWMutex

	videos      map[string]entities.VideoRecord
	creators    map[string]entities.CreatorProfile
	idempotency map[string]ports.IdempotencyRecord
	outbox      []outboxRow
	lookups     map[string]ports.ContentMetadata
}

func NewStore(seed []entities.VideoRecord) *Store {
	videos := make(map[string]entities.VideoRecord, len(seed))
	for _, item := range seed {
		videos[item.VideoID] = cloneVideo(item)
	}
	return &Store{
		videos:      videos,
		creators:    make(map[string]entities.CreatorProfile),
		idempotency: make(map[string]ports.IdempotencyRecord),
		lookups:     make(map[string]ports.ContentMetadata),
	}
}

func (s *Store) CreateVideo(_ context.Context, video entities.VideoRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.videos[video.VideoID]; exists {
		return domainerrors.ErrDuplicateVideo
	}
	s.videos[video.VideoID] = cloneVideo(video)
	return nil
}

func (s *Store) UpdateVideo(_ context.Context, video entities.VideoRecord, appended ...entities.ViewHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.videos[video.VideoID]
	if !exists {
		return domainerrors.ErrVideoNotFound
	}
	history := append(append([]entities.ViewHistoryEntry(nil), stored.ViewHistory...), appended...)
	updated := cloneVideo(video)
	updated.ViewHistory = history
	s.videos[video.VideoID] = updated
	return nil
}

func (s *Store) DeleteVideo(_ context.Context, videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.videos[strings.TrimSpace(videoID)]; !exists {
		return domainerrors.ErrVideoNotFound
	}
	delete(s.videos, strings.TrimSpace(videoID))
	return nil
}

func (s *Store) GetVideo(_ context.Context, videoID string) (entities.VideoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.videos[strings.TrimSpace(videoID)]
	if !exists {
		return entities.VideoRecord{}, domainerrors.ErrVideoNotFound
	}
	return cloneVideo(item), nil
}

func (s *Store) ListVideos(_ context.Context, filter ports.VideoFilter) ([]entities.VideoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VideoRecord, 0, len(s.videos))
	for _, item := range s.videos {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.CreatorName != "" && item.CreatorName != filter.CreatorName {
			continue
		}
		items = append(items, cloneVideo(item))
	}
	sortVideos(items, filter.Status)
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (s *Store) ListPendingDue(_ context.Context, now time.Time, limit int) ([]entities.VideoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VideoRecord, 0)
	for _, item := range s.videos {
		if item.Status != entities.PaymentStatusPending || !item.QualifiesForPayout(now) {
			continue
		}
		items = append(items, cloneVideo(item))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].DateEligible.Equal(items[j].DateEligible) {
			return items[i].VideoID < items[j].VideoID
		}
		return items[i].DateEligible.Before(items[j].DateEligible)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) ListVideosSubmittedSince(_ context.Context, since time.Time) ([]entities.VideoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VideoRecord, 0)
	for _, item := range s.videos {
		if item.DateSubmitted.Before(since) {
			continue
		}
		items = append(items, cloneVideo(item))
	}
	sortVideos(items, "")
	return items, nil
}

func (s *Store) GetCreator(_ context.Context, name string) (entities.CreatorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.creators[entities.NormalizeCreatorName(name)]
	if !exists {
		return entities.CreatorProfile{}, domainerrors.ErrCreatorNotFound
	}
	return profile, nil
}

func (s *Store) UpsertCreator(_ context.Context, profile entities.CreatorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creators[entities.NormalizeCreatorName(profile.Name)] = profile
	return nil
}

func (s *Store) ListCreators(_ context.Context) ([]entities.CreatorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]entities.CreatorProfile, 0, len(s.creators))
	for _, profile := range s.creators {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

func (s *Store) AggregateCreator(_ context.Context, name string) (ports.CreatorAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aggregate := ports.CreatorAggregate{Name: entities.NormalizeCreatorName(name)}
	for _, video := range s.videos {
		if video.CreatorName != aggregate.Name || video.Status == entities.PaymentStatusRejected {
			continue
		}
		aggregate.LifetimeViews += video.ViewCount
		aggregate.VideoCount++
		switch video.Status {
		case entities.PaymentStatusPaid:
			aggregate.TotalPaid += video.TotalPayment
		case entities.PaymentStatusEligible:
			aggregate.UnpaidAmount += video.TotalPayment
		}
	}
	return aggregate, nil
}

func (s *Store) AggregateAllCreators(_ context.Context) ([]ports.CreatorAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := make(map[string]*ports.CreatorAggregate)
	for _, video := range s.videos {
		if video.Status == entities.PaymentStatusRejected {
			continue
		}
		aggregate, exists := byName[video.CreatorName]
		if !exists {
			aggregate = &ports.CreatorAggregate{Name: video.CreatorName}
			byName[video.CreatorName] = aggregate
		}
		aggregate.LifetimeViews += video.ViewCount
		aggregate.VideoCount++
		switch video.Status {
		case entities.PaymentStatusPaid:
			aggregate.TotalPaid += video.TotalPayment
		case entities.PaymentStatusEligible:
			aggregate.UnpaidAmount += video.TotalPayment
		}
	}

	aggregates := make([]ports.CreatorAggregate, 0, len(byName))
	for _, aggregate := range byName {
		aggregates = append(aggregates, *aggregate)
	}
	sort.Slice(aggregates, func(i, j int) bool { return aggregates[i].Name < aggregates[j].Name })
	return aggregates, nil
}

func (s *Store) AggregateStats(_ context.Context) (ports.StatsAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.StatsAggregate{}
	creators := make(map[string]struct{})
	for _, video := range s.videos {
		stats.TotalVideos++
		creators[video.CreatorName] = struct{}{}
		switch video.Status {
		case entities.PaymentStatusPending:
			stats.PendingCount++
		case entities.PaymentStatusEligible:
			stats.EligibleCount++
			stats.TotalOwed += video.TotalPayment
		case entities.PaymentStatusPaid:
			stats.PaidCount++
			stats.TotalPaidOut += video.TotalPayment
		case entities.PaymentStatusRejected:
			stats.RejectedCount++
		}
	}
	stats.UniqueCreators = len(creators)
	return stats, nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.idempotency[key]
	if !exists || now.After(record.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, outboxRow{
		message: ports.OutboxMessage{
			OutboxID:     uuid.NewString(),
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAt,
		},
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		messages = append(messages, row.message)
		if limit > 0 && len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].published = true
			return nil
		}
	}
	return nil
}

// SeedContentLookup registers a canned platform lookup result for tests.
func (s *Store) SeedContentLookup(url string, metadata ports.ContentMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups[url] = metadata
}

func (s *Store) Lookup(_ context.Context, url string) (ports.ContentMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metadata, exists := s.lookups[url]
	if !exists {
		return ports.ContentMetadata{}, domainerrors.ErrContentLookupUnavailable
	}
	return metadata, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func cloneVideo(video entities.VideoRecord) entities.VideoRecord {
	cloned := video
	cloned.ViewHistory = append([]entities.ViewHistoryEntry(nil), video.ViewHistory...)
	if video.DatePaid != nil {
		paidAt := *video.DatePaid
		cloned.DatePaid = &paidAt
	}
	return cloned
}

func sortVideos(items []entities.VideoRecord, status entities.PaymentStatus) {
	sort.Slice(items, func(i, j int) bool {
		switch status {
		case entities.PaymentStatusPending:
			if !items[i].DateEligible.Equal(items[j].DateEligible) {
				return items[i].DateEligible.Before(items[j].DateEligible)
			}
		case entities.PaymentStatusEligible:
			if items[i].TotalPayment != items[j].TotalPayment {
				return items[i].TotalPayment > items[j].TotalPayment
			}
		default:
			if !items[i].DateSubmitted.Equal(items[j].DateSubmitted) {
				return items[i].DateSubmitted.After(items[j].DateSubmitted)
			}
		}
		return items[i].VideoID < items[j].VideoID
	})
}

