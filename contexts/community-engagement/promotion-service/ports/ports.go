package ports

import (
	"context"
	"time"

	contractsv1 "payline/contracts/gen/events/v1"
)

type EventEnvelope = contractsv1.Envelope

// RoleGrant is one community role awarded for a rank promotion. Grants
// stay listed until an operator acknowledges them.
type RoleGrant struct {
	GrantID        string
	CreatorName    string
	ExternalUserID string
	PreviousRank   string
	NewRank        string
	Role           string
	LifetimeViews  int64
	OccurredAt     time.Time
	Acknowledged   bool
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}

type GrantFilter struct {
	CreatorName    string
	Unacknowledged bool
	Limit          int
}

type Repository interface {
	AddGrant(ctx context.Context, grant RoleGrant) error
	GetGrant(ctx context.Context, grantID string) (RoleGrant, error)
	UpdateGrant(ctx context.Context, grant RoleGrant) error
	ListGrants(ctx context.Context, filter GrantFilter) ([]RoleGrant, error)
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}

type EventDedupStore interface {
	ReserveEvent(ctx context.Context, eventID string, payloadHash string, expiresAt time.Time) (bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
