package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroupOn(t *testing.T) {
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("TestBucketBoundaries", func(t *testing.T) {
		cases := []struct {
			birth time.Time
			want  string
		}{
			{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AgeGroup0to2},   // 0
			{time.Date(2022, 3, 9, 0, 0, 0, 0, time.UTC), AgeGroup3to5},   // 3rd birthday today
			{time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC), AgeGroup0to2},  // 3rd birthday tomorrow
			{time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), AgeGroup3to5},   // 5
			{time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), AgeGroup6to8},   // 8
			{time.Date(2014, 2, 1, 0, 0, 0, 0, time.UTC), AgeGroup9to11},  // 11
			{time.Date(2013, 3, 9, 0, 0, 0, 0, time.UTC), AgeGroup12Plus}, // 12 today
			{time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), AgeGroup12Plus},
		}
		for _, tc := range cases {
			child := &Child{BirthDate: tc.birth}
			assert.Equal(t, tc.want, child.AgeGroupOn(date), "birth %s", tc.birth.Format("2006-01-02"))
		}
	})

	t.Run("TestFutureBirthDateClampsToZero", func(t *testing.T) {
		child := &Child{BirthDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 0, child.AgeOn(date))
		assert.Equal(t, AgeGroup0to2, child.AgeGroupOn(date))
	})

	t.Run("TestFiveBuckets", func(t *testing.T) {
		assert.Len(t, AgeGroups, 5)
	})
}

func TestInitials(t *testing.T) {
	t.Run("TestAsciiNames", func(t *testing.T) {
		child := &Child{FirstName: "Ana", LastName: "Popescu"}
		assert.Equal(t, "AP", child.Initials())
	})

	t.Run("TestLowercaseUppercased", func(t *testing.T) {
		child := &Child{FirstName: "bogdan", LastName: "ionescu"}
		assert.Equal(t, "BI", child.Initials())
	})

	t.Run("TestMultibyteRunes", func(t *testing.T) {
		child := &Child{FirstName: "Ștefan", LastName: "Țuca"}
		assert.Equal(t, "ȘȚ", child.Initials())
	})
}

func TestMedicalCheckPassed(t *testing.T) {
	t.Run("TestAllConfirmed", func(t *testing.T) {
		check := MedicalCheck{TemperatureNormal: true, NoSymptoms: true, GoodCondition: true}
		assert.True(t, check.Passed())
	})

	t.Run("TestAnyUnconfirmedFails", func(t *testing.T) {
		cases := []MedicalCheck{
			{TemperatureNormal: false, NoSymptoms: true, GoodCondition: true},
			{TemperatureNormal: true, NoSymptoms: false, GoodCondition: true},
			{TemperatureNormal: true, NoSymptoms: true, GoodCondition: false},
			{},
		}
		for _, check := range cases {
			assert.False(t, check.Passed())
		}
	})
}

func TestNewAttendanceSummary(t *testing.T) {
	s := NewAttendanceSummary("2025-03-09")

	assert.Equal(t, "2025-03-09", s.Date)
	assert.Zero(t, s.Total)
	assert.Len(t, s.AgeGroups, 5)
	assert.Contains(t, s.Categories, string(CategoryMember))
	assert.Contains(t, s.Categories, string(CategoryGuest))
}

func TestProgramIsValid(t *testing.T) {
	assert.True(t, ProgramP1.IsValid())
	assert.True(t, ProgramP2.IsValid())
	assert.False(t, ProgramBoth.IsValid(), "combined marker is display-only")
	assert.False(t, Program("P3").IsValid())
}
