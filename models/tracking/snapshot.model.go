package tracking

import (
	"time"

	"gorm.io/gorm"
)

// RevenueSnapshot is a materialized per-month revenue total written by the
// snapshot scheduler so dashboards can read monthly figures without
// re-aggregating the full record collection.
type RevenueSnapshot struct {
	gorm.Model
	Month         string    `json:"month" gorm:"uniqueIndex;size:7;not null"` // "MM/YYYY"
	TotalRevenue  float64   `json:"total_revenue" gorm:"default:0"`
	PlatformShare float64   `json:"platform_share" gorm:"default:0"`
	TrainerShare  float64   `json:"trainer_share" gorm:"default:0"`
	GeneratedAt   time.Time `json:"generated_at" gorm:"not null"`
}
