package tracking

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Store operations on enrollment records. All mutations validate first and
// persist inside a transaction, so a failed call leaves no partial write.

// Enroll creates the learner's enrollment record on first enrollment, or
// appends a new course enrollment to the existing one. The stored total is
// re-derived here, never by callers.
func Enroll(db *gorm.DB, learnerID, courseID uint, priceAtEnrollment float64) (*EnrollmentRecord, error) {
	if priceAtEnrollment < 0 {
		return nil, ErrInvalidInput
	}

	var record EnrollmentRecord
	err := db.Preload("CourseEnrollments").Where("learner_id = ?", learnerID).First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// First enrollment for this learner
		record = EnrollmentRecord{LearnerID: learnerID}
		if _, err := record.AddCourseEnrollment(courseID, priceAtEnrollment, time.Now()); err != nil {
			return nil, err
		}
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}

	enrollment, err := record.AddCourseEnrollment(courseID, priceAtEnrollment, time.Now())
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	if err := tx.Create(enrollment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&EnrollmentRecord{}).Where("id = ?", record.ID).
		Update("total_paid", record.TotalPaid).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	return &record, nil
}

// RecordResourceCompletion handles a completed-resource event: set-adds the
// resource, recomputes the percentage against totalResourceCount and runs
// the certificate rule. The enrollment row is written on every successful
// call, replays included, because the resource total supplied by the catalog
// may differ from the previous call.
func RecordResourceCompletion(db *gorm.DB, learnerID, courseID, resourceID uint, totalResourceCount int) (*CourseEnrollment, error) {
	if totalResourceCount < 0 {
		return nil, ErrInvalidInput
	}

	_, enrollment, err := findCourseEnrollment(db, learnerID, courseID)
	if err != nil {
		return nil, err
	}

	enrollment.MarkResourceComplete(resourceID, totalResourceCount, time.Now())

	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Eligibility is the read-only certificate eligibility view of one
// course enrollment.
type Eligibility struct {
	Eligible        bool        `json:"eligible"`
	ProgressPercent int         `json:"progress_percent"`
	Certificate     Certificate `json:"certificate"`
}

// CheckCertificateEligibility reports whether the learner's progress has
// reached the certificate threshold. Read-only.
func CheckCertificateEligibility(db *gorm.DB, learnerID, courseID uint) (*Eligibility, error) {
	_, enrollment, err := findCourseEnrollment(db, learnerID, courseID)
	if err != nil {
		return nil, err
	}
	return &Eligibility{
		Eligible:        enrollment.ProgressPercent >= CertificateThresholdPercent,
		ProgressPercent: enrollment.ProgressPercent,
		Certificate:     enrollment.Certificate,
	}, nil
}

// RecordPayment marks the learner's record as paid. Course enrollments are
// left untouched.
func RecordPayment(db *gorm.DB, learnerID uint, paymentReference string, paidAt time.Time) (*EnrollmentRecord, error) {
	var record EnrollmentRecord
	if err := db.Where("learner_id = ?", learnerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record.PaymentDate = &paidAt
	record.PaymentReference = paymentReference

	if err := db.Model(&record).Updates(map[string]interface{}{
		"payment_date":      record.PaymentDate,
		"payment_reference": record.PaymentReference,
	}).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindRecord loads a learner's full enrollment record.
func FindRecord(db *gorm.DB, learnerID uint) (*EnrollmentRecord, error) {
	var record EnrollmentRecord
	err := db.Preload("CourseEnrollments").Where("learner_id = ?", learnerID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func findCourseEnrollment(db *gorm.DB, learnerID, courseID uint) (*EnrollmentRecord, *CourseEnrollment, error) {
	var record EnrollmentRecord
	if err := db.Where("learner_id = ?", learnerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var enrollment CourseEnrollment
	if err := db.Where("record_id = ? AND course_id = ?", record.ID, courseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return &record, &enrollment, nil
}
