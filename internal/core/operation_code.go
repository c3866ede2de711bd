package core

import (
	"strings"
	"unicode"
)

// OperationCode is a promotional code that changes the commitment term.
type OperationCode string

const (
	OperationCodeBlank     OperationCode = "BLANK"
	OperationCodeSemester1 OperationCode = "SEMESTER1"
	OperationCodeSemester2 OperationCode = "SEMESTER2"
	OperationCodeFullYear  OperationCode = "FULLYEAR"
	OperationCodeUnknown   OperationCode = "UNKNOWN"
)

// DefaultMonthsDue is the commitment term when no operation code applies.
const DefaultMonthsDue = 12

var knownOperationCodes = map[string]OperationCode{
	string(OperationCodeBlank):     OperationCodeBlank,
	string(OperationCodeSemester1): OperationCodeSemester1,
	string(OperationCodeSemester2): OperationCodeSemester2,
	string(OperationCodeFullYear):  OperationCodeFullYear,
}

var monthsDueByOperationCode = map[OperationCode]int{
	OperationCodeSemester1: 5,
	OperationCodeSemester2: 5,
	OperationCodeFullYear:  10,
	OperationCodeBlank:     DefaultMonthsDue,
}

// ParseOperationCode normalizes a human-supplied code: every non-alphanumeric
// rune is dropped and the rest is uppercased, so "full year", "FULL_YEAR" and
// "full.year" all resolve to FULLYEAR. Empty input is BLANK.
func ParseOperationCode(raw string) OperationCode {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return -1
	}, raw)

	if cleaned == "" {
		return OperationCodeBlank
	}
	if code, ok := knownOperationCodes[cleaned]; ok {
		return code
	}
	return OperationCodeUnknown
}

// MonthsDue returns the commitment length for a resolved code. UNKNOWN has
// no duration.
func (c OperationCode) MonthsDue() (int, bool) {
	m, ok := monthsDueByOperationCode[c]
	return m, ok
}

func (c OperationCode) IsBlank() bool {
	return c == OperationCodeBlank
}
