package models

import (
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category แบ่งเด็กเป็นสมาชิกประจำหรือผู้มาเยือน
type Category string

const (
	CategoryMember Category = "member"
	CategoryGuest  Category = "guest"
)

// Age-group buckets, fixed at five. AgeGroups keeps the reporting order.
const (
	AgeGroup0to2   = "0-2"
	AgeGroup3to5   = "3-5"
	AgeGroup6to8   = "6-8"
	AgeGroup9to11  = "9-11"
	AgeGroup12Plus = "12+"
)

var AgeGroups = []string{AgeGroup0to2, AgeGroup3to5, AgeGroup6to8, AgeGroup9to11, AgeGroup12Plus}

// Guardian ผู้ปกครองและช่องทางติดต่อ
type Guardian struct {
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Relation string `bson:"relation" json:"relation" example:"mother"`
}

// Child profile owned by the child directory. The check-in core only reads it
// and patches isNew / firstAttendanceDate on the first recorded presence.
type Child struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FirstName           string               `bson:"firstName" json:"firstName"`
	LastName            string               `bson:"lastName" json:"lastName"`
	FullName            string               `bson:"fullName" json:"fullName"`
	BirthDate           time.Time            `bson:"birthDate" json:"birthDate"`
	Category            Category             `bson:"category" json:"category" example:"member"`
	Guardians           []Guardian           `bson:"guardians" json:"guardians"`
	Allergies           string               `bson:"allergies,omitempty" json:"allergies,omitempty"`
	SpecialNeeds        bool                 `bson:"specialNeeds" json:"specialNeeds"`
	MedicalNotes        string               `bson:"medicalNotes,omitempty" json:"medicalNotes,omitempty"`
	IsNew               bool                 `bson:"isNew" json:"isNew"`
	FirstAttendanceDate string               `bson:"firstAttendanceDate,omitempty" json:"firstAttendanceDate,omitempty" example:"2025-03-09"`
	SiblingIDs          []primitive.ObjectID `bson:"siblingIds,omitempty" json:"siblingIds,omitempty"`
	CreatedAt           time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// AgeOn returns the child's age in full years on the given day.
func (c *Child) AgeOn(date time.Time) int {
	age := date.Year() - c.BirthDate.Year()
	// birthday not reached yet this year
	anniversary := time.Date(date.Year(), c.BirthDate.Month(), c.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(date) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// AgeGroupOn buckets the child's age on the given day into one of the five
// fixed age groups.
func (c *Child) AgeGroupOn(date time.Time) string {
	age := c.AgeOn(date)
	switch {
	case age <= 2:
		return AgeGroup0to2
	case age <= 5:
		return AgeGroup3to5
	case age <= 8:
		return AgeGroup6to8
	case age <= 11:
		return AgeGroup9to11
	default:
		return AgeGroup12Plus
	}
}

// Initials returns the uppercased first letters of the first and last name.
func (c *Child) Initials() string {
	return upperFirstRune(c.FirstName) + upperFirstRune(c.LastName)
}

func upperFirstRune(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
