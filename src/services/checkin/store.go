package checkin

import (
	"Backend-KidCheckin/src/models"
	"errors"
	"time"
)

// Business-rule failures. These are expected, user-correctable states returned
// as values; only storage faults propagate as wrapped errors.
var (
	ErrChildNotFound       = errors.New("child not found")
	ErrIncompleteScreening = errors.New("medical screening incomplete")
	ErrInvalidProgram      = errors.New("invalid program")
)

// ChildStore is the narrow contract the orchestrator needs from the child
// directory.
type ChildStore interface {
	GetByID(id string) (*models.Child, error)
	MarkFirstAttendance(id, date string) error
}

// Ledger stores one attendance record per (child, date, program). The ordinal
// read and the upsert are not atomic together; simultaneous stations can race
// to the same ordinal (accepted, see Service docs).
type Ledger interface {
	CountPresent(date string, program models.Program) (int, error)
	HasAnyPresent(childID string) (bool, error)
	Upsert(rec *models.AttendanceRecord) error
	ForDate(date string) ([]models.AttendanceRecord, error)
	ForChild(childID string) ([]models.AttendanceRecord, error)
}

// SummaryStore folds completed check-ins into per-date aggregates.
type SummaryStore interface {
	ApplyCheckIn(date string, child *models.Child, program models.Program, isFirstAttendance bool) (*models.AttendanceSummary, error)
}

// Service is the check-in orchestrator. Stores are injected so the flow can be
// exercised without MongoDB; the package-level default is wired to the shared
// collections.
type Service struct {
	Children  ChildStore
	Ledger    Ledger
	Summaries SummaryStore

	// ActiveDate returns the active session date (YYYY-MM-DD).
	ActiveDate func() (string, error)
	Now        func() time.Time

	// AfterCheckIn runs once per successful check-in, after ledger and
	// summary are durable. Used to hand the tag to the print queue.
	AfterCheckIn func(rec *models.AttendanceRecord, tag models.TagData)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
