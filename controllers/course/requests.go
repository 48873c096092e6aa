package controllers

// Request payloads validated by the course validators and stored in Locals.

type CourseListRequest struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Category  string `json:"category"`
	TrainerID int    `json:"trainer_id"`
}

type CreateCourseRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"required,min=10"`
	Category     string  `json:"category" validate:"required,min=2,max=100"`
	Price        float64 `json:"price" validate:"gte=0"`
	Duration     int64   `json:"duration" validate:"gte=0"`
	ThumbnailURL string  `json:"thumbnail_url"`
}

type UpdateCourseRequest struct {
	Title        string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description  string   `json:"description" validate:"omitempty,min=10"`
	Category     string   `json:"category" validate:"omitempty,min=2,max=100"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration     int64    `json:"duration" validate:"gte=0"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Status       string   `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE INACTIVE"`
}

type ChapterRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

type ResourceRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description"`
	ContentType string `json:"content_type" validate:"required,oneof=TEXT VIDEO PDF IMAGE"`
	TextContent string `json:"text_content"`
	VideoURL    string `json:"video_url"`
	FileURL     string `json:"file_url"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}
