package student

import (
	"github.com/roster-hub/student-roster/internal/domain/shared"
)

// Validation is deliberately byte-wise and ASCII-only: the roster inherits
// the reference system's character classes, and names are folded to a 27
// symbol alphabet downstream by the name index. No Unicode handling.

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNameChar reports whether c may appear anywhere in a name.
func isNameChar(c byte) bool {
	return isAlpha(c) || c == ' ' || c == '-'
}

// isRollChar reports whether c may appear in a roll number.
func isRollChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '/' || c == '-'
}

// ValidateName checks a student name against the roster's naming rules:
// at least two space-separated words, every character alphabetic, space or
// hyphen, and the second word restricted to alphabetic or hyphen characters.
//
// Returns shared.ErrNoSecondName for an empty or single-word name and
// shared.ErrInvalidSecondName for any out-of-class character. The character
// check runs while words are counted, so a bad character anywhere in the
// name reports ErrInvalidSecondName even if the name is also single-word.
//
// ValidateName is side-effect free and usable standalone.
func ValidateName(name string) error {
	if name == "" {
		return shared.ErrNoSecondName
	}

	words := 0
	inWord := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isNameChar(c) {
			return shared.ErrInvalidSecondName
		}
		if c != ' ' && !inWord {
			inWord = true
			words++
		} else if c == ' ' {
			inWord = false
		}
	}
	if words < 2 {
		return shared.ErrNoSecondName
	}

	// The second word must be alphabetic-or-hyphen only.
	wordCount := 0
	inWord = false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != ' ' && !inWord {
			inWord = true
			wordCount++
			if wordCount == 2 {
				for j := i; j < len(name) && name[j] != ' '; j++ {
					if !isAlpha(name[j]) && name[j] != '-' {
						return shared.ErrInvalidSecondName
					}
				}
				break
			}
		} else if c == ' ' {
			inWord = false
		}
	}

	return nil
}

// ValidateRoll checks a roll number: non-empty, characters limited to
// alphanumerics, '/' and '-'. Returns shared.ErrInvalidRoll otherwise.
//
// ValidateRoll is side-effect free and usable standalone.
func ValidateRoll(roll string) error {
	if roll == "" {
		return shared.ErrInvalidRoll
	}
	for i := 0; i < len(roll); i++ {
		if !isRollChar(roll[i]) {
			return shared.ErrInvalidRoll
		}
	}
	return nil
}
