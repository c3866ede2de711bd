package core

import (
	"errors"
	"fmt"
	"time"
)

// Kinds. Every error returned by the core wraps exactly one of these so the
// transport layer can map it with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidState  = errors.New("invalid state transition")
	ErrConflict      = errors.New("conflict")
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden operation")
	ErrConfiguration = errors.New("partner configuration error")
)

// Eligibility.
var (
	ErrRoomCountNotInsurable    = fmt.Errorf("%w: room count not insurable", ErrValidation)
	ErrPropertyTypeNotInsurable = fmt.Errorf("%w: property type not insurable", ErrValidation)
	ErrOccupancyNotInsurable    = fmt.Errorf("%w: occupancy not insurable", ErrValidation)
	ErrRoommatesNotAllowed      = fmt.Errorf("%w: roommates not allowed", ErrValidation)
	ErrRoommateCountExceeded    = fmt.Errorf("%w: too many roommates", ErrValidation)
	ErrQuestionNotFound         = fmt.Errorf("%w: question not found", ErrConfiguration)
)

// Pricing and terms.
var (
	ErrOperationCodeNotApplicable = fmt.Errorf("%w: operation code not applicable", ErrValidation)
	ErrStartDateBeforeToday       = fmt.Errorf("%w: start date is before today", ErrValidation)
)

// RoommateCountExceededError carries the limit that was broken so callers can
// build a precise message.
type RoommateCountExceededError struct {
	Max       int
	RoomCount int
	Requested int
}

func (e *RoommateCountExceededError) Error() string {
	return fmt.Sprintf("%v: %d requested, at most %d allowed for %d room(s)",
		ErrRoommateCountExceeded, e.Requested, e.Max, e.RoomCount)
}

func (e *RoommateCountExceededError) Unwrap() error { return ErrRoommateCountExceeded }

// OperationCodeNotApplicableError reports the raw code as the caller sent it.
type OperationCodeNotApplicableError struct {
	Code        string
	PartnerCode string
}

func (e *OperationCodeNotApplicableError) Error() string {
	return fmt.Sprintf("%v: %q for partner %q", ErrOperationCodeNotApplicable, e.Code, e.PartnerCode)
}

func (e *OperationCodeNotApplicableError) Unwrap() error { return ErrOperationCodeNotApplicable }

// StartDateBeforeTodayError holds both dates after UTC day normalization.
type StartDateBeforeTodayError struct {
	StartDate time.Time
	Today     time.Time
}

func (e *StartDateBeforeTodayError) Error() string {
	return fmt.Sprintf("%v: %s < %s", ErrStartDateBeforeToday,
		e.StartDate.Format(time.DateOnly), e.Today.Format(time.DateOnly))
}

func (e *StartDateBeforeTodayError) Unwrap() error { return ErrStartDateBeforeToday }

// QuestionNotFoundError names the partner whose configuration is incomplete.
type QuestionNotFoundError struct {
	PartnerCode  string
	QuestionCode QuestionCode
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s for partner %q", ErrQuestionNotFound, e.QuestionCode, e.PartnerCode)
}

func (e *QuestionNotFoundError) Unwrap() error { return ErrQuestionNotFound }
