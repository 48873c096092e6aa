package tracking

import (
	"time"

	"gorm.io/gorm"
)

// Revenue split between the platform and trainers. The 60/40 split is a
// global policy applied uniformly to every paid enrollment; both the
// aggregator and the reporting controllers read these constants so the
// ratio can never drift between views.
const (
	PlatformShareRate = 0.6
	TrainerShareRate  = 0.4
)

// MonthKeyLayout formats a payment date into the "MM/YYYY" period key used
// by the monthly revenue breakdowns.
const MonthKeyLayout = "01/2006"

// MonthlyRevenue is one month's revenue bucket.
type MonthlyRevenue struct {
	Total         float64 `json:"total"`
	PlatformShare float64 `json:"platform_share"`
	TrainerShare  float64 `json:"trainer_share"`
}

// RevenueReport is the platform-wide revenue breakdown over paid records.
type RevenueReport struct {
	TotalRevenue   float64                   `json:"total_revenue"`
	PlatformShare  float64                   `json:"platform_share"`
	TrainerShare   float64                   `json:"trainer_share"`
	RevenueByMonth map[string]MonthlyRevenue `json:"revenue_by_month"`
}

// ComputeRevenue aggregates paid enrollment records into total and monthly
// revenue, split at the platform/trainer ratio. Unpaid records contribute
// nothing; an empty collection yields an all-zero report, never an error.
// The optional filter narrows the record query (e.g. a date range).
func ComputeRevenue(db *gorm.DB, filter func(*gorm.DB) *gorm.DB) (*RevenueReport, error) {
	q := db.Model(&EnrollmentRecord{}).Where("payment_date IS NOT NULL")
	if filter != nil {
		q = filter(q)
	}

	var records []EnrollmentRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	report := &RevenueReport{RevenueByMonth: make(map[string]MonthlyRevenue)}
	for _, record := range records {
		report.TotalRevenue += record.TotalPaid

		month := record.PaymentDate.Format(MonthKeyLayout)
		bucket := report.RevenueByMonth[month]
		bucket.Total += record.TotalPaid
		bucket.PlatformShare = bucket.Total * PlatformShareRate
		bucket.TrainerShare = bucket.Total * TrainerShareRate
		report.RevenueByMonth[month] = bucket
	}
	report.PlatformShare = report.TotalRevenue * PlatformShareRate
	report.TrainerShare = report.TotalRevenue * TrainerShareRate

	return report, nil
}

// RevenueDetail is one paid enrollment line kept for auditability on the
// trainer dashboard.
type RevenueDetail struct {
	LearnerID    uint      `json:"learner_id"`
	LearnerName  string    `json:"learner_name"`
	LearnerEmail string    `json:"learner_email"`
	PaidAt       time.Time `json:"paid_at"`
	Amount       float64   `json:"amount"` // Trainer share of this enrollment
}

// CourseRevenue is a trainer's revenue for one course, bucketed by month of
// the payment event.
type CourseRevenue struct {
	CourseID     uint               `json:"course_id"`
	TrainerShare float64            `json:"trainer_share"`
	ByMonth      map[string]float64 `json:"by_month"`
	Details      []RevenueDetail    `json:"details"`
}

type paidEnrollmentRow struct {
	CourseEnrollment
	LearnerID   uint
	PaymentDate time.Time
}

// TrainerCourseRevenue aggregates, per course, the trainer's 40% share of
// every paid enrollment in the given courses. Detail lines are filled with
// learner identity via lookupLearner so the report stays auditable.
func TrainerCourseRevenue(db *gorm.DB, courseIDs []uint, lookupLearner func(id uint) (name, email string)) (map[uint]*CourseRevenue, error) {
	result := make(map[uint]*CourseRevenue)
	if len(courseIDs) == 0 {
		return result, nil
	}

	var rows []paidEnrollmentRow
	err := db.Table("course_enrollments").
		Select("course_enrollments.*, enrollment_records.learner_id, enrollment_records.payment_date").
		Joins("JOIN enrollment_records ON enrollment_records.id = course_enrollments.record_id").
		Where("course_enrollments.course_id IN ? AND enrollment_records.payment_date IS NOT NULL", courseIDs).
		Order("enrollment_records.payment_date asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		revenue := result[row.CourseID]
		if revenue == nil {
			revenue = &CourseRevenue{CourseID: row.CourseID, ByMonth: make(map[string]float64)}
			result[row.CourseID] = revenue
		}

		amount := row.PriceAtEnrollment * TrainerShareRate
		month := row.PaymentDate.Format(MonthKeyLayout)

		revenue.TrainerShare += amount
		revenue.ByMonth[month] += amount

		detail := RevenueDetail{
			LearnerID: row.LearnerID,
			PaidAt:    row.PaymentDate,
			Amount:    amount,
		}
		if lookupLearner != nil {
			detail.LearnerName, detail.LearnerEmail = lookupLearner(row.LearnerID)
		}
		revenue.Details = append(revenue.Details, detail)
	}

	return result, nil
}
