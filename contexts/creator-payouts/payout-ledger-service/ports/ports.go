package ports

import (
	"context"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	contractsv1 "payline/contracts/gen/events/v1"
)

// VideoFilter narrows list queries. Adapters own the ordering rules:
// pending lists sort by date_eligible ascending, eligible lists by
// total_payment descending, everything else by date_submitted descending.
// A zero Limit means no limit.
type VideoFilter struct {
	Status      entities.PaymentStatus
	CreatorName string
	Limit       int
}

type VideoRepository interface {
	// CreateVideo persists the record and its initial history entry in one
	// atomic write.
	CreateVideo(ctx context.Context, video entities.VideoRecord) error
	// UpdateVideo persists the record's scalar fields and appends the given
	// history entries in one atomic write. Adapters ignore the record's own
	// ViewHistory field; stored history only ever grows through appended.
	UpdateVideo(ctx context.Context, video entities.VideoRecord, appended ...entities.ViewHistoryEntry) error
	DeleteVideo(ctx context.Context, videoID string) error
	GetVideo(ctx context.Context, videoID string) (entities.VideoRecord, error)
	ListVideos(ctx context.Context, filter VideoFilter) ([]entities.VideoRecord, error)
	// ListPendingDue returns pending records whose posting delay has elapsed
	// and whose views meet the floor, ordered by date_eligible.
	ListPendingDue(ctx context.Context, now time.Time, limit int) ([]entities.VideoRecord, error)
	ListVideosSubmittedSince(ctx context.Context, since time.Time) ([]entities.VideoRecord, error)
}

// CreatorAggregate is the repository-computed sum over one creator's
// non-rejected video records.
type CreatorAggregate struct {
	Name          string
	LifetimeViews int64
	VideoCount    int
	TotalPaid     int64
	UnpaidAmount  int64
}

type StatsAggregate struct {
	TotalVideos    int
	PendingCount   int
	EligibleCount  int
	PaidCount      int
	RejectedCount  int
	TotalOwed      int64
	TotalPaidOut   int64
	UniqueCreators int
}

type CreatorRepository interface {
	GetCreator(ctx context.Context, name string) (entities.CreatorProfile, error)
	UpsertCreator(ctx context.Context, profile entities.CreatorProfile) error
	ListCreators(ctx context.Context) ([]entities.CreatorProfile, error)
	// AggregateCreator recomputes the creator's sums from scratch; rejected
	// records never contribute. A creator with no records yields zeros.
	AggregateCreator(ctx context.Context, name string) (CreatorAggregate, error)
	AggregateAllCreators(ctx context.Context) ([]CreatorAggregate, error)
	AggregateStats(ctx context.Context) (StatsAggregate, error)
}

type Repository interface {
	VideoRepository
	CreatorRepository
}

// ContentMetadata is what the platform lookup returns for a video URL.
// Any subset of fields may be absent.
type ContentMetadata struct {
	Views      *int64
	DatePosted *time.Time
	Username   string
}

type ContentSource interface {
	Lookup(ctx context.Context, url string) (ContentMetadata, error)
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
