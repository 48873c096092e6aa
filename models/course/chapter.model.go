package course

import "gorm.io/gorm"

// Chapter represents a section within a course
type Chapter struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Chapter order in course
	IsDeleted   bool   `gorm:"default:false"`
}
