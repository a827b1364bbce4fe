package postgresadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateVideo(ctx context.Context, video entities.VideoRecord) error {
	row := videoModelFromEntity(video)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateVideo
			}
			return err
		}
		for _, entry := range video.ViewHistory {
			historyRow := viewHistoryModelFromEntry(video.VideoID, entry)
			if err := tx.Create(&historyRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpdateVideo(ctx context.Context, video entities.VideoRecord, appended ...entities.ViewHistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&videoModel{}).
			Where("video_id = ?", strings.TrimSpace(video.VideoID)).
			Updates(videoUpdatesFromEntity(video))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrVideoNotFound
		}
		for _, entry := range appended {
			historyRow := viewHistoryModelFromEntry(video.VideoID, entry)
			if err := tx.Create(&historyRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) DeleteVideo(ctx context.Context, videoID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("video_id = ?", strings.TrimSpace(videoID)).
			Delete(&viewHistoryModel{}).
			Error; err != nil {
			return err
		}
		result := tx.
			Where("video_id = ?", strings.TrimSpace(videoID)).
			Delete(&videoModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrVideoNotFound
		}
		return nil
	})
}

func (r *Repository) GetVideo(ctx context.Context, videoID string) (entities.VideoRecord, error) {
	var row videoModel
	err := r.db.WithContext(ctx).
		Where("video_id = ?", strings.TrimSpace(videoID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VideoRecord{}, domainerrors.ErrVideoNotFound
		}
		return entities.VideoRecord{}, err
	}

	items, err := r.attachHistory(ctx, []entities.VideoRecord{row.toEntity()})
	if err != nil {
		return entities.VideoRecord{}, err
	}
	return items[0], nil
}

func (r *Repository) ListVideos(ctx context.Context, filter ports.VideoFilter) ([]entities.VideoRecord, error) {
	tx := r.db.WithContext(ctx).Model(&videoModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if strings.TrimSpace(filter.CreatorName) != "" {
		tx = tx.Where("creator_name = ?", entities.NormalizeCreatorName(filter.CreatorName))
	}
	switch filter.Status {
	case entities.PaymentStatusPending:
		tx = tx.Order("date_eligible ASC, video_id ASC")
	case entities.PaymentStatusEligible:
		tx = tx.Order("total_payment DESC, video_id ASC")
	default:
		tx = tx.Order("date_submitted DESC, video_id ASC")
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []videoModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.attachHistory(ctx, toVideoEntities(rows))
}

func (r *Repository) ListPendingDue(ctx context.Context, now time.Time, limit int) ([]entities.VideoRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []videoModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.PaymentStatusPending)).
		Where("date_eligible <= ?", now.UTC()).
		Where("view_count >= ?", entities.EligibilityFloorViews).
		Order("date_eligible ASC, video_id ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return r.attachHistory(ctx, toVideoEntities(rows))
}

func (r *Repository) ListVideosSubmittedSince(ctx context.Context, since time.Time) ([]entities.VideoRecord, error) {
	var rows []videoModel
	if err := r.db.WithContext(ctx).
		Where("date_submitted >= ?", since.UTC()).
		Order("date_submitted DESC, video_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return r.attachHistory(ctx, toVideoEntities(rows))
}

func (r *Repository) GetCreator(ctx context.Context, name string) (entities.CreatorProfile, error) {
	var row creatorModel
	err := r.db.WithContext(ctx).
		Where("name = ?", entities.NormalizeCreatorName(name)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CreatorProfile{}, domainerrors.ErrCreatorNotFound
		}
		return entities.CreatorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpsertCreator(ctx context.Context, profile entities.CreatorProfile) error {
	row := creatorModelFromEntity(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"external_user_id": row.ExternalUserID,
				"lifetime_views":   row.LifetimeViews,
				"current_rank":     row.CurrentRank,
				"video_count":      row.VideoCount,
				"total_paid":       row.TotalPaid,
				"unpaid_amount":    row.UnpaidAmount,
				"updated_at":       row.UpdatedAt,
			}),
		}).
		Create(&row).
		Error
}

func (r *Repository) ListCreators(ctx context.Context) ([]entities.CreatorProfile, error) {
	var rows []creatorModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.CreatorProfile, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) AggregateCreator(ctx context.Context, name string) (ports.CreatorAggregate, error) {
	normalized := entities.NormalizeCreatorName(name)
	var row creatorAggregateRow
	err := r.db.WithContext(ctx).
		Model(&videoModel{}).
		Select(aggregateSelect, string(entities.PaymentStatusPaid), string(entities.PaymentStatusEligible)).
		Where("creator_name = ?", normalized).
		Where("status <> ?", string(entities.PaymentStatusRejected)).
		Group("creator_name").
		Scan(&row).
		Error
	if err != nil {
		return ports.CreatorAggregate{}, err
	}
	if row.Name == "" {
		return ports.CreatorAggregate{Name: normalized}, nil
	}
	return row.toAggregate(), nil
}

func (r *Repository) AggregateAllCreators(ctx context.Context) ([]ports.CreatorAggregate, error) {
	var rows []creatorAggregateRow
	err := r.db.WithContext(ctx).
		Model(&videoModel{}).
		Select(aggregateSelect, string(entities.PaymentStatusPaid), string(entities.PaymentStatusEligible)).
		Where("status <> ?", string(entities.PaymentStatusRejected)).
		Group("creator_name").
		Order("creator_name ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.CreatorAggregate, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toAggregate())
	}
	return items, nil
}

func (r *Repository) AggregateStats(ctx context.Context) (ports.StatsAggregate, error) {
	var row statsRow
	err := r.db.WithContext(ctx).
		Model(&videoModel{}).
		Select(statsSelect,
			string(entities.PaymentStatusPending),
			string(entities.PaymentStatusEligible),
			string(entities.PaymentStatusPaid),
			string(entities.PaymentStatusRejected),
			string(entities.PaymentStatusEligible),
			string(entities.PaymentStatusPaid),
		).
		Scan(&row).
		Error
	if err != nil {
		return ports.StatsAggregate{}, err
	}
	return ports.StatsAggregate{
		TotalVideos:    row.TotalVideos,
		PendingCount:   row.PendingCount,
		EligibleCount:  row.EligibleCount,
		PaidCount:      row.PaidCount,
		RejectedCount:  row.RejectedCount,
		TotalOwed:      row.TotalOwed,
		TotalPaidOut:   row.TotalPaidOut,
		UniqueCreators: row.UniqueCreators,
	}, nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).
			Error; err != nil {
			return ports.IdempotencyRecord{}, false, err
		}
		return ports.IdempotencyRecord{}, false, nil
	}

	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: append([]byte(nil), row.ResponsePayload...),
		ExpiresAt:       row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             strings.TrimSpace(record.Key),
		RequestHash:     record.RequestHash,
		ResponsePayload: append([]byte(nil), record.ResponsePayload...),
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).
		Error; err != nil {
		return err
	}
	if existing.RequestHash != row.RequestHash || !bytes.Equal(existing.ResponsePayload, row.ResponsePayload) {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing outboxModel
	if err := r.db.WithContext(ctx).
		Select("payload").
		Where("outbox_id = ?", row.OutboxID).
		First(&existing).
		Error; err != nil {
		return err
	}
	if !bytes.Equal(existing.Payload, row.Payload) {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		}).
		Error
}

// attachHistory loads view history for a batch of videos in one query.
func (r *Repository) attachHistory(ctx context.Context, items []entities.VideoRecord) ([]entities.VideoRecord, error) {
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.VideoID)
	}

	var rows []viewHistoryModel
	if err := r.db.WithContext(ctx).
		Where("video_id IN ?", ids).
		Order("recorded_at ASC, entry_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	byVideo := make(map[string][]entities.ViewHistoryEntry, len(items))
	for _, row := range rows {
		byVideo[row.VideoID] = append(byVideo[row.VideoID], entities.ViewHistoryEntry{
			Views:      row.Views,
			RecordedAt: row.RecordedAt.UTC(),
			Note:       row.Note,
		})
	}
	for i := range items {
		items[i].ViewHistory = byVideo[items[i].VideoID]
	}
	return items, nil
}

const aggregateSelect = "creator_name AS name, " +
	"COALESCE(SUM(view_count), 0) AS lifetime_views, " +
	"COUNT(*) AS video_count, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN total_payment ELSE 0 END), 0) AS total_paid, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN total_payment ELSE 0 END), 0) AS unpaid_amount"

const statsSelect = "COUNT(*) AS total_videos, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_count, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS eligible_count, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS paid_count, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS rejected_count, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN total_payment ELSE 0 END), 0) AS total_owed, " +
	"COALESCE(SUM(CASE WHEN status = ? THEN total_payment ELSE 0 END), 0) AS total_paid_out, " +
	"COUNT(DISTINCT creator_name) AS unique_creators"

type videoModel struct {
	VideoID         string     `gorm:"column:video_id;primaryKey"`
	URL             string     `gorm:"column:url"`
	CreatorName     string     `gorm:"column:creator_name"`
	ViewCount       int64      `gorm:"column:view_count"`
	DatePosted      time.Time  `gorm:"column:date_posted"`
	DateEligible    time.Time  `gorm:"column:date_eligible"`
	DateSubmitted   time.Time  `gorm:"column:date_submitted"`
	BasePayment     int64      `gorm:"column:base_payment"`
	BonusAmount     int64      `gorm:"column:bonus_amount"`
	TotalPayment    int64      `gorm:"column:total_payment"`
	Status          string     `gorm:"column:status"`
	RejectionReason string     `gorm:"column:rejection_reason"`
	DatePaid        *time.Time `gorm:"column:date_paid"`
}

func (videoModel) TableName() string {
	return "payout_videos"
}

func videoModelFromEntity(item entities.VideoRecord) videoModel {
	return videoModel{
		VideoID:         strings.TrimSpace(item.VideoID),
		URL:             strings.TrimSpace(item.URL),
		CreatorName:     entities.NormalizeCreatorName(item.CreatorName),
		ViewCount:       item.ViewCount,
		DatePosted:      item.DatePosted.UTC(),
		DateEligible:    item.DateEligible.UTC(),
		DateSubmitted:   item.DateSubmitted.UTC(),
		BasePayment:     item.BasePayment,
		BonusAmount:     item.BonusAmount,
		TotalPayment:    item.TotalPayment,
		Status:          string(item.Status),
		RejectionReason: strings.TrimSpace(item.RejectionReason),
		DatePaid:        normalizeOptionalTime(item.DatePaid),
	}
}

func videoUpdatesFromEntity(item entities.VideoRecord) map[string]any {
	row := videoModelFromEntity(item)
	return map[string]any{
		"url":              row.URL,
		"creator_name":     row.CreatorName,
		"view_count":       row.ViewCount,
		"date_posted":      row.DatePosted,
		"date_eligible":    row.DateEligible,
		"date_submitted":   row.DateSubmitted,
		"base_payment":     row.BasePayment,
		"bonus_amount":     row.BonusAmount,
		"total_payment":    row.TotalPayment,
		"status":           row.Status,
		"rejection_reason": row.RejectionReason,
		"date_paid":        row.DatePaid,
	}
}

func (m videoModel) toEntity() entities.VideoRecord {
	return entities.VideoRecord{
		VideoID:         m.VideoID,
		URL:             m.URL,
		CreatorName:     m.CreatorName,
		ViewCount:       m.ViewCount,
		DatePosted:      m.DatePosted.UTC(),
		DateEligible:    m.DateEligible.UTC(),
		DateSubmitted:   m.DateSubmitted.UTC(),
		BasePayment:     m.BasePayment,
		BonusAmount:     m.BonusAmount,
		TotalPayment:    m.TotalPayment,
		Status:          entities.PaymentStatus(m.Status),
		RejectionReason: m.RejectionReason,
		DatePaid:        normalizeOptionalTime(m.DatePaid),
	}
}

func toVideoEntities(rows []videoModel) []entities.VideoRecord {
	items := make([]entities.VideoRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type viewHistoryModel struct {
	EntryID    string    `gorm:"column:entry_id;primaryKey"`
	VideoID    string    `gorm:"column:video_id"`
	Views      int64     `gorm:"column:views"`
	RecordedAt time.Time `gorm:"column:recorded_at"`
	Note       string    `gorm:"column:note"`
}

func (viewHistoryModel) TableName() string {
	return "payout_video_history"
}

func viewHistoryModelFromEntry(videoID string, entry entities.ViewHistoryEntry) viewHistoryModel {
	recordedAt := entry.RecordedAt.UTC()
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	return viewHistoryModel{
		EntryID:    uuid.NewString(),
		VideoID:    strings.TrimSpace(videoID),
		Views:      entry.Views,
		RecordedAt: recordedAt,
		Note:       strings.TrimSpace(entry.Note),
	}
}

type creatorModel struct {
	Name           string    `gorm:"column:name;primaryKey"`
	ExternalUserID string    `gorm:"column:external_user_id"`
	LifetimeViews  int64     `gorm:"column:lifetime_views"`
	CurrentRank    string    `gorm:"column:current_rank"`
	VideoCount     int       `gorm:"column:video_count"`
	TotalPaid      int64     `gorm:"column:total_paid"`
	UnpaidAmount   int64     `gorm:"column:unpaid_amount"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (creatorModel) TableName() string {
	return "payout_creators"
}

func creatorModelFromEntity(item entities.CreatorProfile) creatorModel {
	return creatorModel{
		Name:           entities.NormalizeCreatorName(item.Name),
		ExternalUserID: strings.TrimSpace(item.ExternalUserID),
		LifetimeViews:  item.LifetimeViews,
		CurrentRank:    string(item.CurrentRank),
		VideoCount:     item.VideoCount,
		TotalPaid:      item.TotalPaid,
		UnpaidAmount:   item.UnpaidAmount,
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func (m creatorModel) toEntity() entities.CreatorProfile {
	return entities.CreatorProfile{
		Name:           m.Name,
		ExternalUserID: m.ExternalUserID,
		LifetimeViews:  m.LifetimeViews,
		CurrentRank:    entities.Rank(m.CurrentRank),
		VideoCount:     m.VideoCount,
		TotalPaid:      m.TotalPaid,
		UnpaidAmount:   m.UnpaidAmount,
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type creatorAggregateRow struct {
	Name          string `gorm:"column:name"`
	LifetimeViews int64  `gorm:"column:lifetime_views"`
	VideoCount    int    `gorm:"column:video_count"`
	TotalPaid     int64  `gorm:"column:total_paid"`
	UnpaidAmount  int64  `gorm:"column:unpaid_amount"`
}

func (m creatorAggregateRow) toAggregate() ports.CreatorAggregate {
	return ports.CreatorAggregate{
		Name:          m.Name,
		LifetimeViews: m.LifetimeViews,
		VideoCount:    m.VideoCount,
		TotalPaid:     m.TotalPaid,
		UnpaidAmount:  m.UnpaidAmount,
	}
}

type statsRow struct {
	TotalVideos    int   `gorm:"column:total_videos"`
	PendingCount   int   `gorm:"column:pending_count"`
	EligibleCount  int   `gorm:"column:eligible_count"`
	PaidCount      int   `gorm:"column:paid_count"`
	RejectedCount  int   `gorm:"column:rejected_count"`
	TotalOwed      int64 `gorm:"column:total_owed"`
	TotalPaidOut   int64 `gorm:"column:total_paid_out"`
	UniqueCreators int   `gorm:"column:unique_creators"`
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "payout_idempotency"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "payout_outbox"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
