package tracking

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CertificateThresholdPercent is the progress percentage (inclusive) at which
// a course completion certificate is issued.
const CertificateThresholdPercent = 80

// Certificate is the completion certificate state embedded in a course
// enrollment. Issuance is one-way: once Issued is true it is never reset.
type Certificate struct {
	Issued         bool       `json:"issued" gorm:"default:false"`
	IssuedAt       *time.Time `json:"issued_at"`
	CertificateURL string     `json:"certificate_url"`
}

// CourseEnrollment is one learner's relationship to one purchased course.
type CourseEnrollment struct {
	gorm.Model
	RecordID             uint                      `json:"record_id" gorm:"index;not null"`
	CourseID             uint                      `json:"course_id" gorm:"index;not null"`
	PriceAtEnrollment    float64                   `json:"price_at_enrollment" gorm:"not null"` // Fixed at enrollment time, never updated
	EnrolledAt           time.Time                 `json:"enrolled_at" gorm:"not null"`
	CompletedResourceIDs datatypes.JSONSlice[uint] `json:"completed_resource_ids"`
	ProgressPercent      int                       `json:"progress_percent" gorm:"default:0"` // Derived, 0-100
	Certificate          Certificate               `json:"certificate" gorm:"embedded;embeddedPrefix:certificate_"`
}

// EnrollmentRecord aggregates all course enrollments, payments and progress
// of one learner (one row per learner). Records are never hard-deleted so
// certificate history stays verifiable.
type EnrollmentRecord struct {
	gorm.Model
	LearnerID         uint               `json:"learner_id" gorm:"uniqueIndex;not null"`
	CourseEnrollments []CourseEnrollment `json:"course_enrollments" gorm:"foreignKey:RecordID"`
	TotalPaid         float64            `json:"total_paid" gorm:"default:0"`
	PaymentDate       *time.Time         `json:"payment_date"`
	PaymentReference  string             `json:"payment_reference"`
}

// RecomputeTotal re-derives TotalPaid from the enrollment prices. Every
// mutation of CourseEnrollments goes through this so the total can never
// drift from the sum of its parts.
func (r *EnrollmentRecord) RecomputeTotal() {
	total := 0.0
	for _, e := range r.CourseEnrollments {
		total += e.PriceAtEnrollment
	}
	r.TotalPaid = total
}

// FindCourseEnrollment returns the enrollment for courseID, or nil.
func (r *EnrollmentRecord) FindCourseEnrollment(courseID uint) *CourseEnrollment {
	for i := range r.CourseEnrollments {
		if r.CourseEnrollments[i].CourseID == courseID {
			return &r.CourseEnrollments[i]
		}
	}
	return nil
}

// AddCourseEnrollment appends a new course enrollment and recomputes the
// total. A learner may not enroll twice in the same course.
func (r *EnrollmentRecord) AddCourseEnrollment(courseID uint, price float64, at time.Time) (*CourseEnrollment, error) {
	if price < 0 {
		return nil, ErrInvalidInput
	}
	if r.FindCourseEnrollment(courseID) != nil {
		return nil, ErrAlreadyEnrolled
	}
	r.CourseEnrollments = append(r.CourseEnrollments, CourseEnrollment{
		RecordID:             r.ID,
		CourseID:             courseID,
		PriceAtEnrollment:    price,
		EnrolledAt:           at,
		CompletedResourceIDs: datatypes.JSONSlice[uint]{},
	})
	r.RecomputeTotal()
	return &r.CourseEnrollments[len(r.CourseEnrollments)-1], nil
}

// MarkResourceComplete records a completed resource and re-derives the
// progress percentage against the caller-supplied resource total. Replays of
// the same resource are absorbed (set semantics) but still recompute, since
// the course's resource count may have changed since the last call.
func (e *CourseEnrollment) MarkResourceComplete(resourceID uint, totalResources int, at time.Time) {
	if !e.HasCompletedResource(resourceID) {
		e.CompletedResourceIDs = append(e.CompletedResourceIDs, resourceID)
	}
	e.ProgressPercent = progressPercent(len(e.CompletedResourceIDs), totalResources)

	if e.ProgressPercent >= CertificateThresholdPercent && !e.Certificate.Issued {
		e.Certificate.Issued = true
		e.Certificate.IssuedAt = &at
		e.Certificate.CertificateURL = CertificatePath(e.RecordID, e.CourseID)
	}
}

// HasCompletedResource reports whether resourceID is already recorded.
func (e *CourseEnrollment) HasCompletedResource(resourceID uint) bool {
	for _, id := range e.CompletedResourceIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}

// progressPercent computes completed/total as a percentage, rounded half up
// and clamped to 100. A course with no resources yields 0 rather than a
// divide-by-zero.
func progressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	percent := int(float64(completed)/float64(total)*100 + 0.5)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// CertificatePath derives the download path of an issued certificate from
// the record and course identifiers. The path is deterministic so re-deriving
// it for the same enrollment always yields the same URL.
func CertificatePath(recordID, courseID uint) string {
	return fmt.Sprintf("/certificates/record-%d/course-%d.pdf", recordID, courseID)
}
