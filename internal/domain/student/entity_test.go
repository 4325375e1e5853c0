package student

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-hub/student-roster/internal/domain/shared"
)

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord(NewRecordParams{
		Name:   "Amit Kumar",
		Roll:   "20CS1001",
		Branch: BranchCSE,
		Level:  LevelUndergraduate,
		Marks:  Marks{Assignment: 15, Midterm: 24, Lab: 10, FinalExam: 45},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Amit Kumar", rec.Name())
	assert.Equal(t, "20CS1001", rec.Roll())
	assert.Equal(t, BranchCSE, rec.Branch())
	assert.Equal(t, LevelUndergraduate, rec.Level())
	assert.Equal(t, "BTech", rec.Type())
	assert.Equal(t, 94.0, rec.TotalMarks())
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestNewRecord_InvalidFields(t *testing.T) {
	_, err := NewRecord(NewRecordParams{Name: "SingleName", Roll: "20CS1002", Level: LevelUndergraduate})
	assert.ErrorIs(t, err, shared.ErrNoSecondName)

	_, err = NewRecord(NewRecordParams{Name: "Maya Rao", Roll: "20CS#1003", Level: LevelUndergraduate})
	assert.ErrorIs(t, err, shared.ErrInvalidRoll)

	_, err = NewRecord(NewRecordParams{Name: "Maya Rao", Roll: "20CS1003", Level: Level("postdoc")})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestLevelConstructors(t *testing.T) {
	assert.Equal(t, "BTech", NewUndergraduate().Type())
	assert.Equal(t, "MTech", NewGraduate().Type())
	assert.Equal(t, "PhD", NewDoctoral().Type())

	// Blank records default to CSE with empty identity fields.
	rec := NewUndergraduate()
	assert.Equal(t, BranchCSE, rec.Branch())
	assert.Empty(t, rec.Name())
	assert.Empty(t, rec.Roll())
}

func TestRecord_SetName_StrongSafety(t *testing.T) {
	rec := NewUndergraduate()
	require.NoError(t, rec.SetName("Amit Kumar"))

	// A failed update leaves the stored value unchanged.
	assert.Error(t, rec.SetName("SingleName"))
	assert.Equal(t, "Amit Kumar", rec.Name())

	assert.Error(t, rec.SetName("Amit Kum4r"))
	assert.Equal(t, "Amit Kumar", rec.Name())
}

func TestRecord_SetRoll_StrongSafety(t *testing.T) {
	rec := NewUndergraduate()
	require.NoError(t, rec.SetRoll("20CS1001"))

	assert.Error(t, rec.SetRoll("20CS#1003"))
	assert.Equal(t, "20CS1001", rec.Roll())
}

func TestRecord_FieldFailureIsLocal(t *testing.T) {
	// A failed name update must not disturb a previously stored roll.
	rec := NewUndergraduate()
	require.NoError(t, rec.SetRoll("20CS1001"))
	assert.Error(t, rec.SetName("SingleName"))
	assert.Equal(t, "20CS1001", rec.Roll())
}

func TestRecord_BufferCapacity(t *testing.T) {
	rec := NewUndergraduate()

	longName := strings.Repeat("a", NameMax-3) + " bb" // NameMax bytes total
	err := rec.SetName(longName)
	assert.ErrorIs(t, err, shared.ErrBufferTooLong)
	assert.Empty(t, rec.Name())

	longRoll := strings.Repeat("1", RollMax)
	err = rec.SetRoll(longRoll)
	assert.ErrorIs(t, err, shared.ErrBufferTooLong)
	assert.Empty(t, rec.Roll())

	// One byte under capacity is accepted.
	okName := strings.Repeat("a", NameMax-4) + " bb"
	assert.NoError(t, rec.SetName(okName))
	okRoll := strings.Repeat("1", RollMax-1)
	assert.NoError(t, rec.SetRoll(okRoll))
}

func TestRecord_SetMarksAndTotal(t *testing.T) {
	rec := NewGraduate()

	rec.SetMarks(Marks{Assignment: 18, Midterm: 28, Lab: 12, FinalExam: 40})
	assert.Equal(t, 98.0, rec.TotalMarks())

	// Wholesale replacement: total tracks the new aggregate immediately.
	m := rec.Marks()
	m.FinalExam = 42.5
	rec.SetMarks(m)
	assert.Equal(t, 100.5, rec.TotalMarks())

	// Values are not policed.
	rec.SetMarks(Marks{Assignment: -5})
	assert.Equal(t, -5.0, rec.TotalMarks())
}

func TestMarks_Component(t *testing.T) {
	m := Marks{Assignment: 1, Midterm: 2, Lab: 3, FinalExam: 4}

	assert.Equal(t, 1.0, m.Component(ComponentAssignment))
	assert.Equal(t, 2.0, m.Component(ComponentMidterm))
	assert.Equal(t, 3.0, m.Component(ComponentLab))
	assert.Equal(t, 4.0, m.Component(ComponentFinalExam))
	assert.Equal(t, 0.0, m.Component(Component("attendance")))
	assert.Equal(t, 10.0, m.Total())
}

func TestRecord_Clone(t *testing.T) {
	rec, err := NewRecord(NewRecordParams{
		Name: "Rahul Verma", Roll: "19CS0999", Level: LevelDoctoral,
	})
	require.NoError(t, err)

	clone := rec.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, rec.Roll(), clone.Roll())

	clone.SetMarks(Marks{Midterm: 30})
	assert.Equal(t, 0.0, rec.TotalMarks())

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
}

func TestBranch(t *testing.T) {
	assert.True(t, BranchCSE.IsValid())
	assert.True(t, BranchECE.IsValid())
	assert.False(t, Branch("MECH").IsValid())

	rec := NewUndergraduate()
	assert.NoError(t, rec.SetBranch(BranchECE))
	assert.Equal(t, BranchECE, rec.Branch())
	assert.ErrorIs(t, rec.SetBranch(Branch("MECH")), shared.ErrInvalidInput)
	assert.Equal(t, BranchECE, rec.Branch())
}
