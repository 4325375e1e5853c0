package student

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roster-hub/student-roster/internal/domain/shared"
)

func TestValidateName_Valid(t *testing.T) {
	valid := []string{
		"Amit Kumar",
		"Sunita Sharma",
		"Rahul Verma",
		"Jean-Paul Sartre",
		"Anna Maria Lopez",
		"a b",
		"Mary Jane-Watson",
	}

	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "name %q should be valid", name)
	}
}

func TestValidateName_NoSecondName(t *testing.T) {
	cases := []string{
		"",
		"SingleName",
		"Amit",
		"Jean-Paul", // hyphenated but still a single word
		"   ",
	}

	for _, name := range cases {
		err := ValidateName(name)
		assert.ErrorIs(t, err, shared.ErrNoSecondName, "name %q", name)
	}
}

func TestValidateName_InvalidSecondName(t *testing.T) {
	cases := []string{
		"Amit Kum4r",   // digit in second word
		"Amit Kumar!",  // special character
		"Am1t Kumar",   // digit anywhere reports the same failure
		"Maya R@o",
		"John_Smith Doe",
	}

	for _, name := range cases {
		err := ValidateName(name)
		assert.ErrorIs(t, err, shared.ErrInvalidSecondName, "name %q", name)
	}
}

func TestValidateName_BadCharacterWinsOverWordCount(t *testing.T) {
	// A single-word name with an out-of-class character reports the
	// character failure, not the missing second name.
	err := ValidateName("Am1t")
	assert.ErrorIs(t, err, shared.ErrInvalidSecondName)
	assert.NotErrorIs(t, err, shared.ErrNoSecondName)
}

func TestValidateRoll_Valid(t *testing.T) {
	valid := []string{
		"20CS1001",
		"21EC2001",
		"19CS0999",
		"2020/CS/042",
		"PHD-019",
		"a",
		"0",
	}

	for _, roll := range valid {
		assert.NoError(t, ValidateRoll(roll), "roll %q should be valid", roll)
	}
}

func TestValidateRoll_Invalid(t *testing.T) {
	cases := []string{
		"",
		"20CS#1003",
		"20 CS 1001",
		"roll№1",
		"20CS.1001",
	}

	for _, roll := range cases {
		err := ValidateRoll(roll)
		assert.ErrorIs(t, err, shared.ErrInvalidRoll, "roll %q", roll)
	}
}

func TestValidation_IsSideEffectFree(t *testing.T) {
	// Standalone calls: no record involved, same input always same result.
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, ValidateName("SingleName"), shared.ErrNoSecondName)
		assert.NoError(t, ValidateRoll("20CS1001"))
	}
}

func TestValidationErrors_MatchGeneralCapability(t *testing.T) {
	var de *shared.DomainError

	err := ValidateName("SingleName")
	assert.True(t, errors.As(err, &de))
	assert.True(t, shared.IsValidation(err))

	err = ValidateRoll("20CS#1003")
	assert.True(t, errors.As(err, &de))
	assert.True(t, shared.IsValidation(err))
}
