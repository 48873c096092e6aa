package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRevenue_Empty(t *testing.T) {
	db := setupTestDB(t)

	report, err := ComputeRevenue(db, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0.0, report.PlatformShare)
	assert.Equal(t, 0.0, report.TrainerShare)
	assert.Empty(t, report.RevenueByMonth)
}

func TestComputeRevenue_Split(t *testing.T) {
	db := setupTestDB(t)

	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)
	_, err = RecordPayment(db, 1, "pay_1", march)
	require.NoError(t, err)

	_, err = Enroll(db, 2, 10, 50)
	require.NoError(t, err)
	_, err = RecordPayment(db, 2, "pay_2", april)
	require.NoError(t, err)

	// Unpaid record contributes nothing
	_, err = Enroll(db, 3, 10, 500)
	require.NoError(t, err)

	report, err := ComputeRevenue(db, nil)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 90.0, report.PlatformShare, 1e-9)
	assert.InDelta(t, 60.0, report.TrainerShare, 1e-9)
	assert.InDelta(t, report.TotalRevenue, report.PlatformShare+report.TrainerShare, 1e-9)

	require.Len(t, report.RevenueByMonth, 2)
	assert.InDelta(t, 100.0, report.RevenueByMonth["03/2026"].Total, 1e-9)
	assert.InDelta(t, 60.0, report.RevenueByMonth["03/2026"].PlatformShare, 1e-9)
	assert.InDelta(t, 40.0, report.RevenueByMonth["03/2026"].TrainerShare, 1e-9)
	assert.InDelta(t, 50.0, report.RevenueByMonth["04/2026"].Total, 1e-9)
}

func TestTrainerCourseRevenue(t *testing.T) {
	db := setupTestDB(t)

	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Learner 1 bought courses 10 and 20, learner 2 bought course 10
	_, err := Enroll(db, 1, 10, 100)
	require.NoError(t, err)
	_, err = Enroll(db, 1, 20, 80)
	require.NoError(t, err)
	_, err = RecordPayment(db, 1, "pay_1", march)
	require.NoError(t, err)

	_, err = Enroll(db, 2, 10, 100)
	require.NoError(t, err)
	_, err = RecordPayment(db, 2, "pay_2", march)
	require.NoError(t, err)

	// Learner 3 never paid
	_, err = Enroll(db, 3, 10, 100)
	require.NoError(t, err)

	names := map[uint][2]string{
		1: {"Alice Diop", "alice@example.com"},
		2: {"Bruno Marchand", "bruno@example.com"},
	}
	lookup := func(id uint) (string, string) {
		entry := names[id]
		return entry[0], entry[1]
	}

	result, err := TrainerCourseRevenue(db, []uint{10, 20}, lookup)
	require.NoError(t, err)
	require.Len(t, result, 2)

	course10 := result[10]
	require.NotNil(t, course10)
	assert.InDelta(t, 80.0, course10.TrainerShare, 1e-9) // 2 paid * 100 * 0.4
	assert.InDelta(t, 80.0, course10.ByMonth["03/2026"], 1e-9)
	require.Len(t, course10.Details, 2)
	assert.Equal(t, "Alice Diop", course10.Details[0].LearnerName)
	assert.Equal(t, "alice@example.com", course10.Details[0].LearnerEmail)
	assert.InDelta(t, 40.0, course10.Details[0].Amount, 1e-9)

	course20 := result[20]
	require.NotNil(t, course20)
	assert.InDelta(t, 32.0, course20.TrainerShare, 1e-9) // 80 * 0.4

	// No courses, no rows, no error
	empty, err := TrainerCourseRevenue(db, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
