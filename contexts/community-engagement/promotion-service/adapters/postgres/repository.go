package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the GORM-backed store for role grants and consumer-side
// event dedup rows.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) AddGrant(ctx context.Context, grant ports.RoleGrant) error {
	row := grantModelFromPort(grant)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetGrant(ctx context.Context, grantID string) (ports.RoleGrant, error) {
	var row grantModel
	if err := r.db.WithContext(ctx).
		Where("grant_id = ?", grantID).
		First(&row).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RoleGrant{}, domainerrors.ErrGrantNotFound
		}
		return ports.RoleGrant{}, err
	}
	return row.toPort(), nil
}

func (r *Repository) UpdateGrant(ctx context.Context, grant ports.RoleGrant) error {
	updates := map[string]any{
		"acknowledged":    grant.Acknowledged,
		"acknowledged_at": normalizeOptionalTime(grant.AcknowledgedAt),
	}
	result := r.db.WithContext(ctx).
		Model(&grantModel{}).
		Where("grant_id = ?", grant.GrantID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGrantNotFound
	}
	return nil
}

func (r *Repository) ListGrants(ctx context.Context, filter ports.GrantFilter) ([]ports.RoleGrant, error) {
	query := r.db.WithContext(ctx).Model(&grantModel{})
	if filter.CreatorName != "" {
		query = query.Where("creator_name = ?", filter.CreatorName)
	}
	if filter.Unacknowledged {
		query = query.Where("acknowledged = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []grantModel
	if err := query.
		Order("occurred_at DESC, grant_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.RoleGrant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

// ReserveEvent claims an event id for this consumer. The first caller wins
// and gets alreadyProcessed=false; replays with the same payload hash get
// true; a different hash under a live reservation is a conflict. Expired
// reservations are reclaimed in place.
func (r *Repository) ReserveEvent(
	ctx context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	now := time.Now().UTC()
	row := eventDedupModel{
		EventID:     eventID,
		PayloadHash: payloadHash,
		ExpiresAt:   expiresAt.UTC(),
		ProcessedAt: now,
	}

	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return false, createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return false, nil
	}

	var existing eventDedupModel
	if err := r.db.WithContext(ctx).
		Select("payload_hash", "expires_at").
		Where("event_id = ?", eventID).
		First(&existing).
		Error; err != nil {
		return false, err
	}
	if now.After(existing.ExpiresAt) {
		if err := r.db.WithContext(ctx).
			Model(&eventDedupModel{}).
			Where("event_id = ?", eventID).
			Updates(map[string]any{
				"payload_hash": payloadHash,
				"expires_at":   expiresAt.UTC(),
				"processed_at": now,
			}).
			Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if existing.PayloadHash != payloadHash {
		return false, domainerrors.ErrEventPayloadConflict
	}
	return true, nil
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

type grantModel struct {
	GrantID        string     `gorm:"column:grant_id;primaryKey"`
	CreatorName    string     `gorm:"column:creator_name"`
	ExternalUserID string     `gorm:"column:external_user_id"`
	PreviousRank   string     `gorm:"column:previous_rank"`
	NewRank        string     `gorm:"column:new_rank"`
	Role           string     `gorm:"column:role"`
	LifetimeViews  int64      `gorm:"column:lifetime_views"`
	OccurredAt     time.Time  `gorm:"column:occurred_at"`
	Acknowledged   bool       `gorm:"column:acknowledged"`
	AcknowledgedAt *time.Time `gorm:"column:acknowledged_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (grantModel) TableName() string {
	return "promotion_role_grants"
}

func grantModelFromPort(grant ports.RoleGrant) grantModel {
	return grantModel{
		GrantID:        grant.GrantID,
		CreatorName:    grant.CreatorName,
		ExternalUserID: grant.ExternalUserID,
		PreviousRank:   grant.PreviousRank,
		NewRank:        grant.NewRank,
		Role:           grant.Role,
		LifetimeViews:  grant.LifetimeViews,
		OccurredAt:     grant.OccurredAt.UTC(),
		Acknowledged:   grant.Acknowledged,
		AcknowledgedAt: normalizeOptionalTime(grant.AcknowledgedAt),
		CreatedAt:      grant.CreatedAt.UTC(),
	}
}

func (m grantModel) toPort() ports.RoleGrant {
	grant := ports.RoleGrant{
		GrantID:        m.GrantID,
		CreatorName:    m.CreatorName,
		ExternalUserID: m.ExternalUserID,
		PreviousRank:   m.PreviousRank,
		NewRank:        m.NewRank,
		Role:           m.Role,
		LifetimeViews:  m.LifetimeViews,
		OccurredAt:     m.OccurredAt.UTC(),
		Acknowledged:   m.Acknowledged,
		CreatedAt:      m.CreatedAt.UTC(),
	}
	if m.AcknowledgedAt != nil {
		utc := m.AcknowledgedAt.UTC()
		grant.AcknowledgedAt = &utc
	}
	return grant
}

type eventDedupModel struct {
	EventID     string    `gorm:"column:event_id;primaryKey"`
	PayloadHash string    `gorm:"column:payload_hash"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
	ProcessedAt time.Time `gorm:"column:processed_at"`
}

func (eventDedupModel) TableName() string {
	return "promotion_event_dedup"
}
