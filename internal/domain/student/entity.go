// Package student contains the student record domain model: the Record
// entity, the Marks score aggregate, the academic level and branch
// enumerations, and the pure validation rules that guard record fields.
package student

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roster-hub/student-roster/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS & ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Storage capacities for record string fields. The bounds are inherited from
// the reference system's fixed buffers; exceeding one fails with
// shared.ErrBufferTooLong.
const (
	NameMax = 64
	RollMax = 32
)

// Branch identifies the academic branch a student belongs to.
type Branch string

const (
	// BranchCSE - Computer Science and Engineering.
	BranchCSE Branch = "CSE"
	// BranchECE - Electronics and Communication Engineering.
	BranchECE Branch = "ECE"
)

// IsValid checks that the branch is one of the known values.
func (b Branch) IsValid() bool {
	switch b {
	case BranchCSE, BranchECE:
		return true
	default:
		return false
	}
}

// String returns the display label of the branch.
func (b Branch) String() string {
	return string(b)
}

// Level identifies the academic level of a record. The level is fixed at
// construction and never changes for the lifetime of the record.
type Level string

const (
	// LevelUndergraduate - bachelor programme student.
	LevelUndergraduate Level = "undergraduate"
	// LevelGraduate - master programme student.
	LevelGraduate Level = "graduate"
	// LevelDoctoral - doctoral programme student.
	LevelDoctoral Level = "doctoral"
)

// IsValid checks that the level is one of the known values.
func (l Level) IsValid() bool {
	switch l {
	case LevelUndergraduate, LevelGraduate, LevelDoctoral:
		return true
	default:
		return false
	}
}

// Tag returns the short programme tag used in rendered output.
func (l Level) Tag() string {
	switch l {
	case LevelGraduate:
		return "MTech"
	case LevelDoctoral:
		return "PhD"
	default:
		return "BTech"
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MARKS (SCORE AGGREGATE)
// ══════════════════════════════════════════════════════════════════════════════

// Marks is the four-component score aggregate of a record. It has no
// lifecycle of its own: a record replaces it wholesale on every update.
// Component values are not policed; callers own their ranges.
type Marks struct {
	Assignment float64
	Midterm    float64
	Lab        float64
	FinalExam  float64
}

// Total returns the sum of all four components.
func (m Marks) Total() float64 {
	return m.Assignment + m.Midterm + m.Lab + m.FinalExam
}

// Component selects one score component for sorting and reporting.
type Component string

const (
	ComponentAssignment Component = "assignment"
	ComponentMidterm    Component = "midterm"
	ComponentLab        Component = "lab"
	ComponentFinalExam  Component = "final"
)

// IsValid checks that the component is one of the known values.
func (c Component) IsValid() bool {
	switch c {
	case ComponentAssignment, ComponentMidterm, ComponentLab, ComponentFinalExam:
		return true
	default:
		return false
	}
}

// String returns the component name.
func (c Component) String() string {
	return string(c)
}

// Component returns the value of the selected score component.
// Unknown components read as zero.
func (m Marks) Component(c Component) float64 {
	switch c {
	case ComponentAssignment:
		return m.Assignment
	case ComponentMidterm:
		return m.Midterm
	case ComponentLab:
		return m.Lab
	case ComponentFinalExam:
		return m.FinalExam
	default:
		return 0
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record is a single student record. Name, roll and branch are hidden behind
// validated setters; each setter is atomic for its own field, so a failed
// update leaves the stored value untouched and never affects other fields.
//
// The roll is the record's identity by convention. Uniqueness among records
// is a roster concern, not enforced here.
type Record struct {
	// ID - internal unique identifier (UUID in string form).
	ID string

	name   string
	roll   string
	branch Branch
	level  Level
	marks  Marks

	// CreatedAt - time the record was constructed.
	CreatedAt time.Time

	// UpdatedAt - time of the last field update.
	UpdatedAt time.Time
}

// NewRecordParams contains the parameters for creating a fully populated
// record in one step.
type NewRecordParams struct {
	Name   string
	Roll   string
	Branch Branch
	Level  Level
	Marks  Marks
}

// NewRecord creates a new record with all fields validated up front.
func NewRecord(params NewRecordParams) (*Record, error) {
	if !params.Level.IsValid() {
		return nil, shared.NewDomainError("student", "New", shared.ErrInvalidInput, "invalid academic level")
	}

	r := newBlank(params.Level)
	if err := r.SetName(params.Name); err != nil {
		return nil, err
	}
	if err := r.SetRoll(params.Roll); err != nil {
		return nil, err
	}
	if params.Branch != "" {
		if err := r.SetBranch(params.Branch); err != nil {
			return nil, err
		}
	}
	r.SetMarks(params.Marks)

	return r, nil
}

// NewUndergraduate creates a blank undergraduate record for setter-driven
// population. Name and roll are empty until set.
func NewUndergraduate() *Record { return newBlank(LevelUndergraduate) }

// NewGraduate creates a blank graduate record.
func NewGraduate() *Record { return newBlank(LevelGraduate) }

// NewDoctoral creates a blank doctoral record.
func NewDoctoral() *Record { return newBlank(LevelDoctoral) }

func newBlank(level Level) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        uuid.New().String(),
		branch:    BranchCSE,
		level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS & DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// SetName validates the name and stores it. On failure the stored name is
// unchanged.
func (r *Record) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if len(name) >= NameMax {
		return shared.ErrBufferTooLong
	}
	r.name = name
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Name returns the stored name.
func (r *Record) Name() string { return r.name }

// SetRoll validates the roll number and stores it. On failure the stored
// roll is unchanged.
func (r *Record) SetRoll(roll string) error {
	if err := ValidateRoll(roll); err != nil {
		return err
	}
	if len(roll) >= RollMax {
		return shared.ErrBufferTooLong
	}
	r.roll = roll
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Roll returns the stored roll number.
func (r *Record) Roll() string { return r.roll }

// SetBranch stores the branch.
func (r *Record) SetBranch(b Branch) error {
	if !b.IsValid() {
		return shared.NewDomainError("student", "SetBranch", shared.ErrInvalidInput, "invalid branch")
	}
	r.branch = b
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Branch returns the stored branch.
func (r *Record) Branch() Branch { return r.branch }

// Level returns the academic level fixed at construction.
func (r *Record) Level() Level { return r.level }

// Type returns the fixed programme tag for the record's level.
func (r *Record) Type() string { return r.level.Tag() }

// SetMarks replaces the score aggregate wholesale. Values are accepted as-is.
func (r *Record) SetMarks(m Marks) {
	r.marks = m
	r.UpdatedAt = time.Now().UTC()
}

// Marks returns a copy of the score aggregate.
func (r *Record) Marks() Marks { return r.marks }

// TotalMarks returns the sum of the four score components, recomputed on
// every call.
func (r *Record) TotalMarks() float64 {
	return r.marks.Total()
}

// String returns a compact representation for logging.
func (r *Record) String() string {
	return fmt.Sprintf(
		"Record{Roll: %s, Name: %s, Level: %s, Branch: %s, Total: %g}",
		r.roll, r.name, r.Type(), r.branch, r.TotalMarks(),
	)
}

// Clone creates a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	clone := *r
	return &clone
}
