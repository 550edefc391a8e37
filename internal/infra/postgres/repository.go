package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"channel-insights-service/internal/domain"
)

// upsertColumns are the columns refreshed when a snapshot already exists.
var upsertColumns = []string{
	"channel_title", "thumbnail",
	"subscribers", "total_views", "video_count", "avg_views",
	"engagement", "engagement_rate", "growth_rate",
	"short_form_count", "long_form_count", "upload_frequency_days",
	"score_total", "score_scale", "score_performance",
	"score_growth", "score_engagement", "score_activity",
	"keywords", "analyzed_at", "updated_at",
}

// Repository implements domain.SnapshotRepository using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert creates or updates a single snapshot, keyed by channel id.
func (r *Repository) Upsert(ctx context.Context, snapshot *domain.Snapshot) error {
	model := FromDomain(snapshot)
	model.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(model).Error

	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}

	// Reflect database-generated timestamps back onto the domain object
	snapshot.CreatedAt = model.CreatedAt
	snapshot.UpdatedAt = model.UpdatedAt

	return nil
}

// BulkUpsert creates or updates multiple snapshots in a batch.
func (r *Repository) BulkUpsert(ctx context.Context, snapshots []*domain.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := FromDomainSlice(snapshots)
	for _, m := range models {
		m.UpdatedAt = now
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).CreateInBatches(models, 100).Error

	if err != nil {
		return fmt.Errorf("bulk upserting snapshots: %w", err)
	}

	for i, m := range models {
		snapshots[i].CreatedAt = m.CreatedAt
		snapshots[i].UpdatedAt = m.UpdatedAt
	}

	return nil
}

// GetByChannelID retrieves the stored snapshot for a channel.
func (r *Repository) GetByChannelID(ctx context.Context, channelID string) (*domain.Snapshot, error) {
	var model SnapshotModel
	err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting snapshot by channel id: %w", err)
	}

	return model.ToDomain(), nil
}

// ListTracked returns the ids of every channel with a stored snapshot.
func (r *Repository) ListTracked(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&SnapshotModel{}).
		Order("analyzed_at ASC").
		Pluck("channel_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("listing tracked channels: %w", err)
	}

	return ids, nil
}

// Rankings returns snapshots ordered by composite score descending.
// Channels with equal scores tie-break on subscriber count.
func (r *Repository) Rankings(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	var models []SnapshotModel
	err := r.db.WithContext(ctx).
		Order("score_total DESC").
		Order("subscribers DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing rankings: %w", err)
	}

	snapshots := make([]*domain.Snapshot, len(models))
	for i, m := range models {
		snapshots[i] = m.ToDomain()
	}

	return snapshots, nil
}

// Delete removes a channel's snapshot.
func (r *Repository) Delete(ctx context.Context, channelID string) error {
	result := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Delete(&SnapshotModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting snapshot: %w", result.Error)
	}

	return nil
}

// Count returns the number of stored snapshots.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&SnapshotModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting snapshots: %w", err)
	}

	return count, nil
}
