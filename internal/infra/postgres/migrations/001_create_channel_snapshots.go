package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createChannelSnapshotsTable creates the channel_snapshots table with all indexes.
func createChannelSnapshotsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_channel_snapshots",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS channel_snapshots (
					channel_id VARCHAR(64) PRIMARY KEY,
					channel_title VARCHAR(200) NOT NULL,
					thumbnail VARCHAR(500),

					-- Cumulative counters
					subscribers BIGINT DEFAULT 0,
					total_views BIGINT DEFAULT 0,
					video_count BIGINT DEFAULT 0,
					avg_views BIGINT DEFAULT 0,

					-- Derived metrics
					engagement DECIMAL(12,2) DEFAULT 0,
					engagement_rate DECIMAL(8,4) DEFAULT 0,
					growth_rate DECIMAL(8,1) DEFAULT 0,
					short_form_count INTEGER DEFAULT 0,
					long_form_count INTEGER DEFAULT 0,
					upload_frequency_days DECIMAL(8,1) DEFAULT 0,

					-- Composite score breakdown
					score_total INTEGER DEFAULT 0,
					score_scale INTEGER DEFAULT 0,
					score_performance INTEGER DEFAULT 0,
					score_growth INTEGER DEFAULT 0,
					score_engagement INTEGER DEFAULT 0,
					score_activity INTEGER DEFAULT 0,

					keywords TEXT[],

					-- Timestamps
					analyzed_at TIMESTAMP NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
			if err != nil {
				return err
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_snapshots_score_total ON channel_snapshots(score_total DESC);",
				"CREATE INDEX IF NOT EXISTS idx_snapshots_analyzed_at ON channel_snapshots(analyzed_at);",
				"CREATE INDEX IF NOT EXISTS idx_snapshots_subscribers ON channel_snapshots(subscribers DESC);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS channel_snapshots;").Error
		},
	}
}
