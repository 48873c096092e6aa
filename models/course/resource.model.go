package course

import "gorm.io/gorm"

// Resource represents a learning resource within a chapter. Completion of
// resources is what drives a learner's progress percentage.
type Resource struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ChapterID   uint   `json:"chapter_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO, PDF, IMAGE
	TextContent string `json:"text_content" gorm:"type:text"`      // For TEXT type
	VideoURL    string `json:"video_url"`                          // For VIDEO type
	FileURL     string `json:"file_url"`                           // For PDF/IMAGE types
	OrderIndex  int    `json:"order_index" gorm:"default:0"`       // Order within chapter
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// PublishedResourceCount returns the number of published resources of a
// course, the total the progress percentage is computed against.
func PublishedResourceCount(db *gorm.DB, courseID uint) int {
	var total int64
	db.Model(&Resource{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Count(&total)
	return int(total)
}
