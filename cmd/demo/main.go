// Package main - scripted walkthrough of the student roster core.
//
// The demo is the only presentation layer: it seeds a roster, mutates a
// record through a roll lookup, runs every sort, and demonstrates each
// typed validation failure. The domain core never prints; everything the
// user sees goes through the console presenter or the structured logger.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roster-hub/student-roster/config"
	"github.com/roster-hub/student-roster/internal/domain/roster"
	"github.com/roster-hub/student-roster/internal/domain/shared"
	"github.com/roster-hub/student-roster/internal/domain/sorting"
	"github.com/roster-hub/student-roster/internal/domain/student"
	"github.com/roster-hub/student-roster/internal/interface/console"
	"github.com/roster-hub/student-roster/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	}).With(logger.String("app", cfg.App.Name))

	if err := run(cfg, log); err != nil {
		log.Fatal("demo failed", logger.Err(err))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	r := roster.New()
	p := console.NewRecordPresenter()

	if cfg.Demo.SeedRecords {
		if err := seed(r, log); err != nil {
			return err
		}
	}

	fmt.Println("All students (insertion order, most recent first):")
	fmt.Print(p.FormatList(r.Export()))

	// In-place update through a roll lookup.
	fmt.Println("\nModifying marks for roll 21EC2001")
	rec, err := r.ByRoll("21EC2001")
	if err != nil {
		return err
	}
	m := rec.Marks()
	m.FinalExam = 42.5
	rec.SetMarks(m)
	log.Info("record updated",
		logger.Roll(rec.Roll()),
		logger.Component(student.ComponentFinalExam.String()),
		logger.Total(rec.TotalMarks()))
	fmt.Println("After modification:")
	fmt.Println(p.FormatLine(rec))

	fmt.Println("\nTotals:")
	fmt.Print(p.FormatTotals(r.Export()))

	fmt.Println("\nSorted by roll:")
	byRoll := r.Export()
	sorting.ByRoll(byRoll)
	fmt.Print(p.FormatList(byRoll))

	fmt.Println("\nSorted by midterm marks:")
	byMidterm := r.Export()
	sorting.ByComponent(byMidterm, student.ComponentMidterm)
	fmt.Print(p.FormatList(byMidterm))

	fmt.Println("\nSorted by name (prefix tree):")
	byName, err := sorting.ByName(r.Export())
	if err != nil {
		return err
	}
	fmt.Print(p.FormatList(byName))

	if cfg.Demo.ShowFailures {
		showFailures(r, log)
	}

	log.Info("demo finished", logger.RosterSize(r.Len()))
	return nil
}

// seed populates the roster with the three sample records.
func seed(r *roster.Roster, log *logger.Logger) error {
	samples := []student.NewRecordParams{
		{
			Name:   "Amit Kumar",
			Roll:   "20CS1001",
			Branch: student.BranchCSE,
			Level:  student.LevelUndergraduate,
			Marks:  student.Marks{Assignment: 15, Midterm: 24, Lab: 10, FinalExam: 45},
		},
		{
			Name:   "Sunita Sharma",
			Roll:   "21EC2001",
			Branch: student.BranchECE,
			Level:  student.LevelGraduate,
			Marks:  student.Marks{Assignment: 18, Midterm: 28, Lab: 12, FinalExam: 40},
		},
		{
			Name:   "Rahul Verma",
			Roll:   "19CS0999",
			Branch: student.BranchCSE,
			Level:  student.LevelDoctoral,
			Marks:  student.Marks{Assignment: 20, Midterm: 30, Lab: 15, FinalExam: 50},
		},
	}

	for _, params := range samples {
		rec, err := student.NewRecord(params)
		if err != nil {
			return err
		}
		r.Add(rec)
		log.Debug("record added", logger.Roll(rec.Roll()), logger.RecordID(rec.ID))
	}
	return nil
}

// showFailures demonstrates each typed failure path. Every error here is
// expected and caught; the roster must be unchanged afterwards.
func showFailures(r *roster.Roster, log *logger.Logger) {
	sizeBefore := r.Len()

	s4 := student.NewUndergraduate()
	if err := s4.SetName("SingleName"); err != nil {
		fmt.Printf("\nCaught error while adding student: %v\n", err)
		log.Warn("rejected name",
			logger.StudentName("SingleName"),
			logger.Bool("no_second_name", errors.Is(err, shared.ErrNoSecondName)))
	}

	s5 := student.NewUndergraduate()
	if err := s5.SetName("Maya Rao"); err != nil {
		log.Error("unexpected rejection", logger.Err(err))
	}
	if err := s5.SetRoll("20CS#1003"); err != nil {
		fmt.Printf("Caught error while adding student: %v\n", err)
		log.Warn("rejected roll",
			logger.Roll("20CS#1003"),
			logger.Bool("invalid_roll", errors.Is(err, shared.ErrInvalidRoll)))
	}

	if _, err := r.ByRoll("0000/NOTFOUND"); err != nil {
		fmt.Printf("Caught error while accessing student: %v\n", err)
		log.Warn("lookup failed",
			logger.Roll("0000/NOTFOUND"),
			logger.Bool("not_found", shared.IsNotFound(err)))
	}

	if r.Len() != sizeBefore {
		log.Error("roster size changed during failure demo",
			logger.RosterSize(r.Len()))
	}
}
