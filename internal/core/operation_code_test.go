package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperationCode(t *testing.T) {
	tests := []struct {
		raw  string
		want OperationCode
	}{
		{"FULLYEAR", OperationCodeFullYear},
		{"full year", OperationCodeFullYear},
		{"FULL_YEAR", OperationCodeFullYear},
		{"full.year", OperationCodeFullYear},
		{"Semester-1", OperationCodeSemester1},
		{"semester 2", OperationCodeSemester2},
		{"", OperationCodeBlank},
		{"  ", OperationCodeBlank},
		{"blank", OperationCodeBlank},
		{"SUMMER24", OperationCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOperationCode(tt.raw))
		})
	}
}

func TestOperationCode_MonthsDue(t *testing.T) {
	tests := []struct {
		code   OperationCode
		months int
		ok     bool
	}{
		{OperationCodeSemester1, 5, true},
		{OperationCodeSemester2, 5, true},
		{OperationCodeFullYear, 10, true},
		{OperationCodeBlank, 12, true},
		{OperationCodeUnknown, 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			months, ok := tt.code.MonthsDue()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.months, months)
		})
	}
}
