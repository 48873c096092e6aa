package course

import "gorm.io/gorm"

// Course represents a course sold on the marketplace, owned by a trainer
type Course struct {
	gorm.Model
	TrainerID    uint    `json:"trainer_id" gorm:"index;not null"`
	Title        string  `json:"title"`
	Description  string  `json:"description" gorm:"type:text"`
	Category     string  `json:"category" gorm:"default:''"`
	Price        float64 `json:"price" gorm:"default:0"`        // Listed price, snapshotted at enrollment time
	Duration     int64   `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string  `json:"thumbnail_url"`
	IsPublished  bool    `json:"is_published" gorm:"default:false"`
	IsDeleted    bool    `gorm:"default:false"`
}
