package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&EnrollmentRecord{}, &CourseEnrollment{}, &RevenueSnapshot{}))
	return db
}

func TestEnroll(t *testing.T) {
	db := setupTestDB(t)

	// First enrollment creates the record
	record, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, uint(1), record.LearnerID)
	assert.Equal(t, 100.0, record.TotalPaid)

	// Second enrollment appends to the same record
	record, err = Enroll(db, 1, 20, 50)
	require.NoError(t, err)
	assert.Equal(t, 150.0, record.TotalPaid)

	reloaded, err := FindRecord(db, 1)
	require.NoError(t, err)
	assert.Len(t, reloaded.CourseEnrollments, 2)
	assert.Equal(t, 150.0, reloaded.TotalPaid)

	// Enrollment order is preserved
	assert.Equal(t, uint(10), reloaded.CourseEnrollments[0].CourseID)
	assert.Equal(t, uint(20), reloaded.CourseEnrollments[1].CourseID)
}

func TestEnroll_Duplicate(t *testing.T) {
	db := setupTestDB(t)

	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)

	_, err = Enroll(db, 1, 10, 100)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Failed call left no partial write
	record, err := FindRecord(db, 1)
	require.NoError(t, err)
	assert.Len(t, record.CourseEnrollments, 1)
	assert.Equal(t, 100.0, record.TotalPaid)
}

func TestEnroll_NegativePrice(t *testing.T) {
	db := setupTestDB(t)

	_, err := Enroll(db, 1, 10, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindRecord(db, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordResourceCompletion(t *testing.T) {
	db := setupTestDB(t)

	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)

	// Unknown learner / course
	_, err = RecordResourceCompletion(db, 99, 10, 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = RecordResourceCompletion(db, 1, 99, 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	// Three of five resources
	for _, id := range []uint{1, 2, 3} {
		_, err = RecordResourceCompletion(db, 1, 10, id, 5)
		require.NoError(t, err)
	}
	enrollment, err := RecordResourceCompletion(db, 1, 10, 3, 5) // replay
	require.NoError(t, err)
	assert.Len(t, enrollment.CompletedResourceIDs, 3)
	assert.Equal(t, 60, enrollment.ProgressPercent)
	assert.False(t, enrollment.Certificate.Issued)

	// Fourth crosses the threshold and the state survives a reload
	_, err = RecordResourceCompletion(db, 1, 10, 4, 5)
	require.NoError(t, err)

	eligibility, err := CheckCertificateEligibility(db, 1, 10)
	require.NoError(t, err)
	assert.True(t, eligibility.Eligible)
	assert.Equal(t, 80, eligibility.ProgressPercent)
	assert.True(t, eligibility.Certificate.Issued)
	assert.NotEmpty(t, eligibility.Certificate.CertificateURL)
}

func TestRecordResourceCompletion_ZeroTotal(t *testing.T) {
	db := setupTestDB(t)

	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)

	enrollment, err := RecordResourceCompletion(db, 1, 10, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.ProgressPercent)

	_, err = RecordResourceCompletion(db, 1, 10, 1, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckCertificateEligibility_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := CheckCertificateEligibility(db, 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPayment(t *testing.T) {
	db := setupTestDB(t)

	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)

	paidAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	record, err := RecordPayment(db, 1, "pay_abc123", paidAt)
	require.NoError(t, err)
	require.NotNil(t, record.PaymentDate)
	assert.Equal(t, "pay_abc123", record.PaymentReference)

	reloaded, err := FindRecord(db, 1)
	require.NoError(t, err)
	require.NotNil(t, reloaded.PaymentDate)
	assert.Equal(t, paidAt.Format(MonthKeyLayout), reloaded.PaymentDate.Format(MonthKeyLayout))
	assert.Len(t, reloaded.CourseEnrollments, 1, "payment must not alter enrollments")

	_, err = RecordPayment(db, 99, "pay_x", paidAt)
	assert.ErrorIs(t, err, ErrNotFound)
}
