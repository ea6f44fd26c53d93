package summaries

import (
	"testing"
	"time"

	"Backend-KidCheckin/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2025-03-09"

func childAged(age int, category models.Category) *models.Child {
	return &models.Child{
		FirstName: "Test",
		LastName:  "Child",
		BirthDate: time.Date(2025-age, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:  category,
	}
}

func assertInvariants(t *testing.T, s *models.AttendanceSummary) {
	t.Helper()

	assert.Equal(t, s.TotalP1+s.TotalP2, s.Total, "total must equal the sum of program totals")

	bucketTotal := 0
	bucketP1 := 0
	bucketP2 := 0
	for _, g := range models.AgeGroups {
		bucket := s.AgeGroups[g]
		assert.Equal(t, bucket.P1+bucket.P2, bucket.Total)
		bucketTotal += bucket.Total
		bucketP1 += bucket.P1
		bucketP2 += bucket.P2
	}
	assert.Equal(t, s.Total, bucketTotal, "age buckets must sum to the combined total")
	assert.Equal(t, s.TotalP1, bucketP1)
	assert.Equal(t, s.TotalP2, bucketP2)

	categoryTotal := 0
	for _, count := range s.Categories {
		categoryTotal += count
	}
	assert.Equal(t, s.Total, categoryTotal, "categories must sum to the combined total")
}

func TestApply(t *testing.T) {
	t.Run("TestFirstCheckIn", func(t *testing.T) {
		s := models.NewAttendanceSummary(testDate)
		Apply(s, childAged(4, models.CategoryMember), models.ProgramP1, true)

		assert.Equal(t, 1, s.TotalP1)
		assert.Equal(t, 0, s.TotalP2)
		assert.Equal(t, 1, s.Total)
		assert.Equal(t, 1, s.NewChildrenCount)
		assert.Equal(t, 1, s.AgeGroups[models.AgeGroup3to5].P1)
		assert.Equal(t, 1, s.Categories[string(models.CategoryMember)])
		assertInvariants(t, s)
	})

	t.Run("TestInvariantsHoldAfterEveryStep", func(t *testing.T) {
		s := models.NewAttendanceSummary(testDate)
		steps := []struct {
			age      int
			category models.Category
			program  models.Program
			isFirst  bool
		}{
			{2, models.CategoryMember, models.ProgramP1, true},
			{4, models.CategoryGuest, models.ProgramP1, false},
			{4, models.CategoryGuest, models.ProgramP2, false},
			{7, models.CategoryMember, models.ProgramP2, true},
			{10, models.CategoryMember, models.ProgramP1, false},
			{13, models.CategoryGuest, models.ProgramP2, true},
		}

		for _, step := range steps {
			Apply(s, childAged(step.age, step.category), step.program, step.isFirst)
			assertInvariants(t, s)
		}

		assert.Equal(t, 3, s.TotalP1)
		assert.Equal(t, 3, s.TotalP2)
		assert.Equal(t, 6, s.Total)
		assert.Equal(t, 3, s.NewChildrenCount)
		assert.Equal(t, 3, s.Categories[string(models.CategoryMember)])
		assert.Equal(t, 3, s.Categories[string(models.CategoryGuest)])
	})

	t.Run("TestDriftedTotalsRecomputed", func(t *testing.T) {
		// a corrupted stored total must not survive the next accumulation
		s := models.NewAttendanceSummary(testDate)
		Apply(s, childAged(4, models.CategoryMember), models.ProgramP1, false)
		s.Total = 99
		bucket := s.AgeGroups[models.AgeGroup3to5]
		bucket.Total = 42
		s.AgeGroups[models.AgeGroup3to5] = bucket

		Apply(s, childAged(5, models.CategoryMember), models.ProgramP2, false)

		assert.Equal(t, 2, s.Total)
		assert.Equal(t, 2, s.AgeGroups[models.AgeGroup3to5].Total)
	})

	t.Run("TestAllBucketsPresentOnZeroSummary", func(t *testing.T) {
		s := models.NewAttendanceSummary(testDate)
		require.Len(t, s.AgeGroups, 5)
		for _, g := range models.AgeGroups {
			_, ok := s.AgeGroups[g]
			assert.True(t, ok, "bucket %s must exist on the zero summary", g)
		}
		assertInvariants(t, s)
	})

	t.Run("TestNeverDecrements", func(t *testing.T) {
		s := models.NewAttendanceSummary(testDate)
		Apply(s, childAged(4, models.CategoryMember), models.ProgramP1, true)
		before := *s

		Apply(s, childAged(4, models.CategoryMember), models.ProgramP1, false)

		assert.GreaterOrEqual(t, s.TotalP1, before.TotalP1)
		assert.GreaterOrEqual(t, s.Total, before.Total)
		assert.GreaterOrEqual(t, s.NewChildrenCount, before.NewChildrenCount)
	})
}
