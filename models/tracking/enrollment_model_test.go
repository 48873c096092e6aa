package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, progressPercent(0, 5))
	assert.Equal(t, 60, progressPercent(3, 5))
	assert.Equal(t, 80, progressPercent(4, 5))
	assert.Equal(t, 100, progressPercent(5, 5))

	// Round half up
	assert.Equal(t, 17, progressPercent(1, 6))  // 16.67
	assert.Equal(t, 33, progressPercent(1, 3))  // 33.33
	assert.Equal(t, 13, progressPercent(1, 8))  // 12.5 rounds up
	assert.Equal(t, 38, progressPercent(3, 8))  // 37.5 rounds up

	// Guards
	assert.Equal(t, 0, progressPercent(3, 0), "zero total must not divide by zero")
	assert.Equal(t, 100, progressPercent(7, 5), "clamped when completions exceed total")
}

func TestAddCourseEnrollment(t *testing.T) {
	record := EnrollmentRecord{LearnerID: 1}

	first, err := record.AddCourseEnrollment(10, 100, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint(10), first.CourseID)
	assert.Equal(t, 100.0, record.TotalPaid)

	_, err = record.AddCourseEnrollment(20, 50, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 150.0, record.TotalPaid)

	// Duplicate course refused, total untouched
	_, err = record.AddCourseEnrollment(10, 100, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, 150.0, record.TotalPaid)
	assert.Len(t, record.CourseEnrollments, 2)

	// Negative price refused
	_, err = record.AddCourseEnrollment(30, -1, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecomputeTotal(t *testing.T) {
	record := EnrollmentRecord{
		CourseEnrollments: []CourseEnrollment{
			{CourseID: 1, PriceAtEnrollment: 19.99},
			{CourseID: 2, PriceAtEnrollment: 30.01},
		},
		TotalPaid: 999, // stale value must be overwritten
	}
	record.RecomputeTotal()
	assert.InDelta(t, 50.0, record.TotalPaid, 1e-9)
}

func TestMarkResourceComplete_CertificateAtThreshold(t *testing.T) {
	enrollment := CourseEnrollment{RecordID: 7, CourseID: 3}
	now := time.Now()

	// 3 of 5 resources: 60%, no certificate yet
	enrollment.MarkResourceComplete(1, 5, now)
	enrollment.MarkResourceComplete(2, 5, now)
	enrollment.MarkResourceComplete(3, 5, now)
	assert.Equal(t, 60, enrollment.ProgressPercent)
	assert.False(t, enrollment.Certificate.Issued)

	// 4th resource crosses the 80% threshold at this exact call
	enrollment.MarkResourceComplete(4, 5, now)
	assert.Equal(t, 80, enrollment.ProgressPercent)
	require.True(t, enrollment.Certificate.Issued)
	require.NotNil(t, enrollment.Certificate.IssuedAt)
	assert.Equal(t, CertificatePath(7, 3), enrollment.Certificate.CertificateURL)
	assert.NotEmpty(t, enrollment.Certificate.CertificateURL)
}

func TestMarkResourceComplete_Idempotent(t *testing.T) {
	enrollment := CourseEnrollment{RecordID: 1, CourseID: 1}
	now := time.Now()

	for _, id := range []uint{1, 2, 3, 4} {
		enrollment.MarkResourceComplete(id, 5, now)
	}
	issuedAt := enrollment.Certificate.IssuedAt

	// Replaying an already completed resource changes nothing
	enrollment.MarkResourceComplete(1, 5, now.Add(time.Hour))
	assert.Len(t, enrollment.CompletedResourceIDs, 4)
	assert.Equal(t, 80, enrollment.ProgressPercent)
	assert.True(t, enrollment.Certificate.Issued)
	assert.Equal(t, issuedAt, enrollment.Certificate.IssuedAt, "no duplicate issuance timestamp")
}

func TestMarkResourceComplete_CertificateMonotonic(t *testing.T) {
	enrollment := CourseEnrollment{RecordID: 1, CourseID: 1}
	now := time.Now()

	for _, id := range []uint{1, 2, 3, 4, 5} {
		enrollment.MarkResourceComplete(id, 5, now)
	}
	require.True(t, enrollment.Certificate.Issued)
	require.Equal(t, 100, enrollment.ProgressPercent)

	// The course grew to 10 resources: the percentage drops on recompute
	// but the issued certificate stays issued.
	enrollment.MarkResourceComplete(5, 10, now)
	assert.Equal(t, 50, enrollment.ProgressPercent)
	assert.True(t, enrollment.Certificate.Issued)
	assert.Equal(t, CertificatePath(1, 1), enrollment.Certificate.CertificateURL)
}
