package checkin

import (
	"Backend-KidCheckin/src/models"
	"time"
)

// previewOrdinal is the fixed placeholder shown before a check-in commits;
// the true ordinal is unknown until then.
const previewOrdinal = "00"

// ProgramLabel renders a program id for tag display. The combined marker is
// shown as both session labels, never as a literal id.
func ProgramLabel(program models.Program) string {
	switch program {
	case models.ProgramP1:
		return "Session 1"
	case models.ProgramP2:
		return "Session 2"
	case models.ProgramBoth:
		return "Session 1 + Session 2"
	default:
		return string(program)
	}
}

// ToTagData materializes the printable tag fields for a committed check-in.
// Pure transform; nothing is persisted.
func ToTagData(child *models.Child, program models.Program, code, date string) models.TagData {
	sessionDate, _ := time.Parse("2006-01-02", date)

	tag := models.TagData{
		ChildName:    child.FullName,
		Code:         code,
		AgeGroup:     child.AgeGroupOn(sessionDate),
		Program:      ProgramLabel(program),
		Date:         date,
		Allergies:    child.Allergies,
		SpecialNeeds: child.SpecialNeeds,
	}
	if len(child.Guardians) > 0 {
		tag.GuardianPhone = child.Guardians[0].Phone
	}
	return tag
}

// PreviewTag synthesizes a provisional tag for the live preview pane while
// the program selection is still uncommitted. The code carries the "00"
// ordinal placeholder and must never be persisted or treated as authoritative.
func PreviewTag(child *models.Child, program models.Program, date string) models.TagData {
	code := child.Initials() + previewOrdinal + string(program)
	tag := ToTagData(child, program, code, date)
	tag.Preview = true
	return tag
}
