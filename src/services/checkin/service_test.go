package checkin

import (
	"testing"
	"time"

	"Backend-KidCheckin/src/models"
	"Backend-KidCheckin/src/services/summaries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// in-memory stores standing in for MongoDB

type memChildren struct {
	children map[string]*models.Child
	marked   []string
}

func (m *memChildren) GetByID(id string) (*models.Child, error) {
	child, ok := m.children[id]
	if !ok {
		return nil, ErrChildNotFound
	}
	return child, nil
}

func (m *memChildren) MarkFirstAttendance(id, date string) error {
	child, ok := m.children[id]
	if !ok {
		return ErrChildNotFound
	}
	child.IsNew = true
	child.FirstAttendanceDate = date
	m.marked = append(m.marked, id)
	return nil
}

type memLedger struct {
	records []models.AttendanceRecord
}

func (m *memLedger) CountPresent(date string, program models.Program) (int, error) {
	count := 0
	for _, r := range m.records {
		if r.Date == date && r.Program == program && r.Status == models.StatusPresent {
			count++
		}
	}
	return count, nil
}

func (m *memLedger) HasAnyPresent(childID string) (bool, error) {
	for _, r := range m.records {
		if r.ChildID.Hex() == childID && r.Status == models.StatusPresent {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLedger) Upsert(rec *models.AttendanceRecord) error {
	for i, r := range m.records {
		if r.ChildID == rec.ChildID && r.Date == rec.Date && r.Program == rec.Program {
			m.records[i] = *rec
			return nil
		}
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *memLedger) ForDate(date string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range m.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memLedger) ForChild(childID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range m.records {
		if r.ChildID.Hex() == childID {
			out = append(out, r)
		}
	}
	return out, nil
}

// memSummaries runs the real accumulator against in-memory snapshots and
// counts invocations.
type memSummaries struct {
	byDate  map[string]*models.AttendanceSummary
	applies int
}

func (m *memSummaries) ApplyCheckIn(date string, child *models.Child, program models.Program, isFirst bool) (*models.AttendanceSummary, error) {
	m.applies++
	summary, ok := m.byDate[date]
	if !ok {
		summary = models.NewAttendanceSummary(date)
		m.byDate[date] = summary
	}
	summaries.Apply(summary, child, program, isFirst)
	return summary, nil
}

const testDate = "2025-03-09"

func newTestService() (*Service, *memChildren, *memLedger, *memSummaries) {
	mc := &memChildren{children: map[string]*models.Child{}}
	ml := &memLedger{}
	ms := &memSummaries{byDate: map[string]*models.AttendanceSummary{}}
	svc := &Service{
		Children:   mc,
		Ledger:     ml,
		Summaries:  ms,
		ActiveDate: func() (string, error) { return testDate, nil },
		Now:        func() time.Time { return time.Date(2025, 3, 9, 9, 30, 0, 0, time.UTC) },
	}
	return svc, mc, ml, ms
}

func addChild(mc *memChildren, first, last string, ageYears int, category models.Category) string {
	id := primitive.NewObjectID()
	child := &models.Child{
		ID:        id,
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
		BirthDate: time.Date(2025-ageYears, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:  category,
	}
	mc.children[id.Hex()] = child
	return id.Hex()
}

func passedCheck() models.MedicalCheck {
	return models.MedicalCheck{TemperatureNormal: true, NoSymptoms: true, GoodCondition: true}
}

func TestCheckInFirstAttendance(t *testing.T) {
	svc, mc, _, ms := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)

	rec, err := svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "desk-1")
	require.NoError(t, err)

	t.Run("TestRecordFields", func(t *testing.T) {
		assert.Equal(t, "AP01P1", rec.UniqueCode)
		assert.Equal(t, models.StatusPresent, rec.Status)
		assert.True(t, rec.IsFirstAttendance)
		assert.Equal(t, testDate, rec.Date)
		assert.Equal(t, "desk-1", rec.CheckedInBy)
	})

	t.Run("TestDirectoryPatched", func(t *testing.T) {
		child := mc.children[anaID]
		assert.True(t, child.IsNew)
		assert.Equal(t, testDate, child.FirstAttendanceDate)
		assert.Equal(t, []string{anaID}, mc.marked)
	})

	t.Run("TestSummaryUpdated", func(t *testing.T) {
		summary := ms.byDate[testDate]
		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.TotalP1)
		assert.Equal(t, 0, summary.TotalP2)
		assert.Equal(t, 1, summary.Total)
		assert.Equal(t, 1, summary.NewChildrenCount)
		assert.Equal(t, 1, summary.Categories[string(models.CategoryMember)])
		assert.Equal(t, 1, summary.AgeGroups[models.AgeGroup3to5].P1)
	})

	t.Run("TestFirstAttendanceNeverRetriggers", func(t *testing.T) {
		rec2, err := svc.CheckInChild(anaID, models.ProgramP2, passedCheck(), "desk-1")
		require.NoError(t, err)
		assert.False(t, rec2.IsFirstAttendance)
		assert.Equal(t, []string{anaID}, mc.marked, "directory patch must happen exactly once per child")
		assert.Equal(t, 1, ms.byDate[testDate].NewChildrenCount)
	})
}

func TestOrdinalsPerProgramPerDate(t *testing.T) {
	svc, mc, _, _ := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)
	bogdanID := addChild(mc, "Bogdan", "Ionescu", 7, models.CategoryGuest)
	mariaID := addChild(mc, "Maria", "Ilie", 9, models.CategoryMember)

	recA, err := svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)
	recB, err := svc.CheckInChild(bogdanID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)

	// P2 sequence is independent from P1 on the same date
	recC, err := svc.CheckInChild(mariaID, models.ProgramP2, passedCheck(), "")
	require.NoError(t, err)

	assert.Equal(t, "AP01P1", recA.UniqueCode)
	assert.Equal(t, "BI02P1", recB.UniqueCode)
	assert.Equal(t, "MI01P2", recC.UniqueCode)
}

func TestRepeatCheckInReplaces(t *testing.T) {
	svc, mc, ml, ms := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)

	_, err := svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)
	_, err = svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)

	t.Run("TestSinglePresentRecordPerTuple", func(t *testing.T) {
		records, err := ml.ForDate(testDate)
		require.NoError(t, err)
		present := 0
		for _, r := range records {
			if r.Program == models.ProgramP1 && r.Status == models.StatusPresent {
				present++
			}
		}
		assert.Equal(t, 1, present, "replace must not leave a duplicate")
	})

	t.Run("TestAccumulatorOncePerCall", func(t *testing.T) {
		assert.Equal(t, 2, ms.applies, "one accumulator invocation per orchestrator call")
	})
}

func TestFailedScreeningMutatesNothing(t *testing.T) {
	svc, mc, ml, ms := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)

	check := models.MedicalCheck{TemperatureNormal: true, NoSymptoms: false, GoodCondition: true}
	rec, err := svc.CheckInChild(anaID, models.ProgramP1, check, "")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrIncompleteScreening)
	assert.Empty(t, ml.records, "no ledger write on failed screening")
	assert.Zero(t, ms.applies, "no summary mutation on failed screening")
	assert.Empty(t, mc.marked)
	assert.False(t, mc.children[anaID].IsNew)
}

func TestUnknownChildMutatesNothing(t *testing.T) {
	svc, mc, ml, ms := newTestService()

	rec, err := svc.CheckInChild(primitive.NewObjectID().Hex(), models.ProgramP1, passedCheck(), "")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrChildNotFound)
	assert.Empty(t, ml.records)
	assert.Zero(t, ms.applies)
	assert.Empty(t, mc.marked, "directory update must never run for an unknown id")
}

func TestInvalidProgramRejected(t *testing.T) {
	svc, mc, _, _ := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)

	rec, err := svc.CheckInChild(anaID, models.ProgramBoth, passedCheck(), "")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrInvalidProgram, "the combined marker is display-only, not a session")
}

func TestBothProgramsFlow(t *testing.T) {
	svc, mc, ml, _ := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)
	bogdanID := addChild(mc, "Bogdan", "Ionescu", 7, models.CategoryGuest)

	// Bogdan is already second in P1 but first in P2
	_, err := svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)

	recP1, err := svc.CheckInChild(bogdanID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)
	recP2, err := svc.CheckInChild(bogdanID, models.ProgramP2, passedCheck(), "")
	require.NoError(t, err)

	t.Run("TestIndependentRecords", func(t *testing.T) {
		assert.Equal(t, "BI02P1", recP1.UniqueCode)
		assert.Equal(t, "BI01P2", recP2.UniqueCode)

		records, err := ml.ForChild(bogdanID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("TestCombinedTagSingleCode", func(t *testing.T) {
		combined := CombineCode(recP1.UniqueCode)
		assert.Equal(t, "BI02P1+P2", combined)

		tag := ToTagData(mc.children[bogdanID], models.ProgramBoth, combined, testDate)
		assert.Equal(t, "Session 1 + Session 2", tag.Program)
		assert.Equal(t, combined, tag.Code)
	})
}

func TestTagPreview(t *testing.T) {
	_, mc, _, _ := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)
	ana := mc.children[anaID]

	tag := PreviewTag(ana, models.ProgramP2, testDate)

	assert.True(t, tag.Preview)
	assert.Equal(t, "AP00P2", tag.Code, "preview ordinal is a fixed placeholder")
	assert.Equal(t, "Session 2", tag.Program)
	assert.Equal(t, models.AgeGroup3to5, tag.AgeGroup)
}

func TestAfterCheckInHook(t *testing.T) {
	svc, mc, _, _ := newTestService()
	anaID := addChild(mc, "Ana", "Popescu", 4, models.CategoryMember)

	var gotTag models.TagData
	hookCalls := 0
	svc.AfterCheckIn = func(rec *models.AttendanceRecord, tag models.TagData) {
		hookCalls++
		gotTag = tag
	}

	rec, err := svc.CheckInChild(anaID, models.ProgramP1, passedCheck(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, rec.UniqueCode, gotTag.Code)
	assert.False(t, gotTag.Preview)
}
