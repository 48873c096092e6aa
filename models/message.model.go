package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between a learner and a trainer/expert,
// optionally attached to a course.
type Message struct {
	gorm.Model
	SenderID    uint       `json:"sender_id" gorm:"index;not null"`
	RecipientID uint       `json:"recipient_id" gorm:"index;not null"`
	CourseID    *uint      `json:"course_id" gorm:"index"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body" gorm:"type:text"`
	ReadAt      *time.Time `json:"read_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
