package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-hub/student-roster/internal/domain/student"
)

func TestFormatLine(t *testing.T) {
	rec, err := student.NewRecord(student.NewRecordParams{
		Name:   "Amit Kumar",
		Roll:   "20CS1001",
		Branch: student.BranchCSE,
		Level:  student.LevelUndergraduate,
		Marks:  student.Marks{Assignment: 15, Midterm: 24, Lab: 10, FinalExam: 45},
	})
	require.NoError(t, err)

	line := NewRecordPresenter().FormatLine(rec)
	assert.Equal(t,
		"Roll: 20CS1001 | Name: Amit Kumar | Level: BTech | Branch: CSE | Marks: A=15 M=24 L=10 F=45 | Total=94",
		line)
}

func TestFormatList(t *testing.T) {
	a, err := student.NewRecord(student.NewRecordParams{
		Name: "Amit Kumar", Roll: "20CS1001", Level: student.LevelUndergraduate,
	})
	require.NoError(t, err)
	b, err := student.NewRecord(student.NewRecordParams{
		Name: "Sunita Sharma", Roll: "21EC2001", Level: student.LevelGraduate,
	})
	require.NoError(t, err)

	out := NewRecordPresenter().FormatList([]*student.Record{a, b})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "20CS1001")
	assert.Contains(t, lines[1], "MTech")
}

func TestFormatTotals(t *testing.T) {
	rec, err := student.NewRecord(student.NewRecordParams{
		Name:  "Rahul Verma",
		Roll:  "19CS0999",
		Level: student.LevelDoctoral,
		Marks: student.Marks{Assignment: 20, Midterm: 30, Lab: 15, FinalExam: 50},
	})
	require.NoError(t, err)

	out := NewRecordPresenter().FormatTotals([]*student.Record{rec})
	assert.Equal(t, "19CS0999 -> Total = 115\n", out)
}
