// Package console formats roster data for text output. Presenters handle
// the conversion from domain objects to printable lines; the domain core
// itself never writes output.
package console

import (
	"fmt"
	"strings"

	"github.com/roster-hub/student-roster/internal/domain/student"
)

// RecordPresenter formats student records for the console.
type RecordPresenter struct{}

// NewRecordPresenter creates a new record presenter.
func NewRecordPresenter() *RecordPresenter {
	return &RecordPresenter{}
}

// FormatLine renders a single record as one line.
func (p *RecordPresenter) FormatLine(rec *student.Record) string {
	m := rec.Marks()
	return fmt.Sprintf(
		"Roll: %s | Name: %s | Level: %s | Branch: %s | Marks: A=%g M=%g L=%g F=%g | Total=%g",
		rec.Roll(), rec.Name(), rec.Type(), rec.Branch(),
		m.Assignment, m.Midterm, m.Lab, m.FinalExam, rec.TotalMarks(),
	)
}

// FormatList renders a sequence of records, one line each.
func (p *RecordPresenter) FormatList(recs []*student.Record) string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(p.FormatLine(rec))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatTotals renders roll -> total pairs for a sequence of records.
func (p *RecordPresenter) FormatTotals(recs []*student.Record) string {
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s -> Total = %g\n", rec.Roll(), rec.TotalMarks())
	}
	return b.String()
}
