package checkin

import (
	"Backend-KidCheckin/src/models"
	"fmt"
)

// CheckInChild validates and records one child's presence for one program on
// the active session date. Precondition order: child must resolve, then all
// three screening answers must be true; a failed precondition mutates nothing.
//
// On success the record replaces any prior record for the same
// (child, date, program) tuple, the per-date summary is folded exactly once,
// and the child directory is patched on the first-ever attendance only.
func (s *Service) CheckInChild(childID string, program models.Program, check models.MedicalCheck, checkedInBy string) (*models.AttendanceRecord, error) {
	if !program.IsValid() {
		return nil, ErrInvalidProgram
	}

	child, err := s.Children.GetByID(childID)
	if err != nil {
		return nil, err
	}

	if !check.Passed() {
		return nil, ErrIncompleteScreening
	}

	date, err := s.ActiveDate()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session date: %w", err)
	}

	// ordinal sequences are independent per program per date
	count, err := s.Ledger.CountPresent(date, program)
	if err != nil {
		return nil, fmt.Errorf("failed to read check-in ordinal: %w", err)
	}
	ordinal := count + 1

	// "new child" spans the entire ledger history, not just today
	hasPrior, err := s.Ledger.HasAnyPresent(childID)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance history: %w", err)
	}
	isFirst := !hasPrior

	if isFirst {
		if err := s.Children.MarkFirstAttendance(childID, date); err != nil {
			return nil, fmt.Errorf("failed to mark first attendance: %w", err)
		}
	}

	if checkedInBy == "" {
		checkedInBy = "front-desk"
	}

	rec := &models.AttendanceRecord{
		ChildID:           child.ID,
		ChildName:         child.FullName,
		Date:              date,
		Program:           program,
		Status:            models.StatusPresent,
		UniqueCode:        GenerateCode(child, program, ordinal),
		MedicalCheck:      check,
		CheckedInBy:       checkedInBy,
		CheckedInAt:       s.now(),
		IsFirstAttendance: isFirst,
	}

	if err := s.Ledger.Upsert(rec); err != nil {
		return nil, fmt.Errorf("failed to write attendance record: %w", err)
	}

	if _, err := s.Summaries.ApplyCheckIn(date, child, program, isFirst); err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}

	if s.AfterCheckIn != nil {
		s.AfterCheckIn(rec, ToTagData(child, program, rec.UniqueCode, date))
	}

	return rec, nil
}

// GetAttendanceForDate returns all attendance records for a calendar date.
func (s *Service) GetAttendanceForDate(date string) ([]models.AttendanceRecord, error) {
	return s.Ledger.ForDate(date)
}

// GetAttendanceForChild returns a child's full attendance history.
func (s *Service) GetAttendanceForChild(childID string) ([]models.AttendanceRecord, error) {
	return s.Ledger.ForChild(childID)
}
