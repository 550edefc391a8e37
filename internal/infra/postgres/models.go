package postgres

import (
	"time"

	"channel-insights-service/internal/domain"

	"github.com/lib/pq"
)

// SnapshotModel is the GORM model for the channel_snapshots table.
type SnapshotModel struct {
	ChannelID    string `gorm:"type:varchar(64);primaryKey"`
	ChannelTitle string `gorm:"type:varchar(200);not null"`
	Thumbnail    string `gorm:"type:varchar(500)"`

	// Cumulative counters
	Subscribers int64 `gorm:"default:0"`
	TotalViews  int64 `gorm:"default:0"`
	VideoCount  int64 `gorm:"default:0"`
	AvgViews    int64 `gorm:"default:0"`

	// Derived metrics
	Engagement          float64 `gorm:"type:decimal(12,2);default:0"`
	EngagementRate      float64 `gorm:"type:decimal(8,4);default:0"`
	GrowthRate          float64 `gorm:"type:decimal(8,1);default:0"`
	ShortFormCount      int     `gorm:"default:0"`
	LongFormCount       int     `gorm:"default:0"`
	UploadFrequencyDays float64 `gorm:"type:decimal(8,1);default:0"`

	// Composite score breakdown
	ScoreTotal       int `gorm:"default:0;index"`
	ScoreScale       int `gorm:"default:0"`
	ScorePerformance int `gorm:"default:0"`
	ScoreGrowth      int `gorm:"default:0"`
	ScoreEngagement  int `gorm:"default:0"`
	ScoreActivity    int `gorm:"default:0"`

	Keywords pq.StringArray `gorm:"type:text[]"`

	// Timestamps
	AnalyzedAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for SnapshotModel.
func (SnapshotModel) TableName() string {
	return "channel_snapshots"
}

// ToDomain converts SnapshotModel to domain.Snapshot.
func (m *SnapshotModel) ToDomain() *domain.Snapshot {
	return &domain.Snapshot{
		ChannelID:           m.ChannelID,
		ChannelTitle:        m.ChannelTitle,
		Thumbnail:           m.Thumbnail,
		Subscribers:         m.Subscribers,
		TotalViews:          m.TotalViews,
		VideoCount:          m.VideoCount,
		AvgViews:            m.AvgViews,
		Engagement:          m.Engagement,
		EngagementRate:      m.EngagementRate,
		GrowthRate:          m.GrowthRate,
		ShortFormCount:      m.ShortFormCount,
		LongFormCount:       m.LongFormCount,
		UploadFrequencyDays: m.UploadFrequencyDays,
		ScoreTotal:          m.ScoreTotal,
		ScoreScale:          m.ScoreScale,
		ScorePerformance:    m.ScorePerformance,
		ScoreGrowth:         m.ScoreGrowth,
		ScoreEngagement:     m.ScoreEngagement,
		ScoreActivity:       m.ScoreActivity,
		Keywords:            m.Keywords,
		AnalyzedAt:          m.AnalyzedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain creates a SnapshotModel from domain.Snapshot.
func FromDomain(s *domain.Snapshot) *SnapshotModel {
	return &SnapshotModel{
		ChannelID:           s.ChannelID,
		ChannelTitle:        s.ChannelTitle,
		Thumbnail:           s.Thumbnail,
		Subscribers:         s.Subscribers,
		TotalViews:          s.TotalViews,
		VideoCount:          s.VideoCount,
		AvgViews:            s.AvgViews,
		Engagement:          s.Engagement,
		EngagementRate:      s.EngagementRate,
		GrowthRate:          s.GrowthRate,
		ShortFormCount:      s.ShortFormCount,
		LongFormCount:       s.LongFormCount,
		UploadFrequencyDays: s.UploadFrequencyDays,
		ScoreTotal:          s.ScoreTotal,
		ScoreScale:          s.ScoreScale,
		ScorePerformance:    s.ScorePerformance,
		ScoreGrowth:         s.ScoreGrowth,
		ScoreEngagement:     s.ScoreEngagement,
		ScoreActivity:       s.ScoreActivity,
		Keywords:            s.Keywords,
		AnalyzedAt:          s.AnalyzedAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// FromDomainSlice converts a slice of domain.Snapshot to SnapshotModels.
func FromDomainSlice(snapshots []*domain.Snapshot) []*SnapshotModel {
	models := make([]*SnapshotModel, len(snapshots))
	for i, s := range snapshots {
		models[i] = FromDomain(s)
	}

	return models
}
