package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program one of the two fixed session slots on a given date.
type Program string

const (
	ProgramP1 Program = "P1"
	ProgramP2 Program = "P2"

	// ProgramBoth is a display-only marker for a combined two-session tag.
	// It is never stored on an AttendanceRecord.
	ProgramBoth Program = "P1+P2"
)

// IsValid reports whether p names a real session slot.
func (p Program) IsValid() bool {
	return p == ProgramP1 || p == ProgramP2
}

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// MedicalCheck การคัดกรองสุขภาพสามข้อก่อนเช็คอิน
type MedicalCheck struct {
	TemperatureNormal bool `bson:"temperatureNormal" json:"temperatureNormal"`
	NoSymptoms        bool `bson:"noSymptoms" json:"noSymptoms"`
	GoodCondition     bool `bson:"goodCondition" json:"goodCondition"`
}

// Passed reports whether all three screening answers are confirmed.
// The gate is all-or-nothing; a partial confirmation never checks in.
func (m MedicalCheck) Passed() bool {
	return m.TemperatureNormal && m.NoSymptoms && m.GoodCondition
}

// AttendanceRecord one fact per (child, date, program). A repeat check-in for
// the same tuple replaces the prior record instead of appending a duplicate.
type AttendanceRecord struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildID           primitive.ObjectID `bson:"childId" json:"childId"`
	ChildName         string             `bson:"childName" json:"childName"`
	Date              string             `bson:"date" json:"date" example:"2025-03-09"`
	Program           Program            `bson:"program" json:"program" example:"P1"`
	Status            AttendanceStatus   `bson:"status" json:"status"`
	UniqueCode        string             `bson:"uniqueCode,omitempty" json:"uniqueCode,omitempty" example:"AP01P1"`
	MedicalCheck      MedicalCheck       `bson:"medicalCheck" json:"medicalCheck"`
	CheckedInBy       string             `bson:"checkedInBy" json:"checkedInBy"`
	CheckedInAt       time.Time          `bson:"checkedInAt" json:"checkedInAt"`
	IsFirstAttendance bool               `bson:"isFirstAttendance" json:"isFirstAttendance"`
	TagPrintedAt      *time.Time         `bson:"tagPrintedAt,omitempty" json:"tagPrintedAt,omitempty"`
}

// AgeGroupCount per-program counts inside one age bucket. Total is always
// recomputed from P1+P2, never trusted from storage.
type AgeGroupCount struct {
	P1    int `bson:"p1" json:"p1"`
	P2    int `bson:"p2" json:"p2"`
	Total int `bson:"total" json:"total"`
}

// AttendanceSummary one aggregate per calendar date, additively maintained by
// the accumulator. There is no un-check-in, so counts never decrease.
type AttendanceSummary struct {
	ID               primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Date             string                   `bson:"date" json:"date" example:"2025-03-09"`
	TotalP1          int                      `bson:"totalP1" json:"totalP1"`
	TotalP2          int                      `bson:"totalP2" json:"totalP2"`
	Total            int                      `bson:"total" json:"total"`
	NewChildrenCount int                      `bson:"newChildrenCount" json:"newChildrenCount"`
	AgeGroups        map[string]AgeGroupCount `bson:"ageGroups" json:"ageGroups"`
	Categories       map[string]int           `bson:"categories" json:"categories"`
}

// NewAttendanceSummary returns the zero-initialized summary for a date with
// all five age buckets and both categories present.
func NewAttendanceSummary(date string) *AttendanceSummary {
	ageGroups := make(map[string]AgeGroupCount, len(AgeGroups))
	for _, g := range AgeGroups {
		ageGroups[g] = AgeGroupCount{}
	}
	return &AttendanceSummary{
		Date:      date,
		AgeGroups: ageGroups,
		Categories: map[string]int{
			string(CategoryMember): 0,
			string(CategoryGuest):  0,
		},
	}
}

// TodayTotals dashboard view over the active session date.
type TodayTotals struct {
	TotalP1     int `json:"totalP1"`
	TotalP2     int `json:"totalP2"`
	Total       int `json:"total"`
	NewChildren int `json:"newChildren"`
}
