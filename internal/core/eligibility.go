package core

import "fmt"

// IsRoomCountInsurable reports whether roomCount is one of the partner's room
// count options with a non-reject next step. A partner without a room count
// question insures nothing.
func IsRoomCountInsurable(qs QuestionSet, roomCount int) bool {
	q := qs.RoomCount
	if q == nil {
		return false
	}
	if len(q.Options) == 0 {
		return roomCount == q.DefaultValue
	}
	for _, opt := range q.Options {
		if opt.Value == roomCount {
			return !opt.NextStep.IsReject()
		}
	}
	return false
}

// IsPropertyTypeInsurable scans the property type options. Without an option
// list the question's default value is the only accepted answer.
func IsPropertyTypeInsurable(qs QuestionSet, propertyType PropertyType) bool {
	q := qs.PropertyType
	if q == nil {
		return false
	}
	if len(q.Options) == 0 {
		return propertyType == q.DefaultValue
	}
	for _, opt := range q.Options {
		if opt.Value == propertyType {
			return !opt.NextStep.IsReject()
		}
	}
	return false
}

// IsOccupancyInsurable follows the same rules as IsPropertyTypeInsurable.
func IsOccupancyInsurable(qs QuestionSet, occupancy OccupancyType) bool {
	q := qs.Occupancy
	if q == nil {
		return false
	}
	if len(q.Options) == 0 {
		return occupancy == q.DefaultValue
	}
	for _, opt := range q.Options {
		if opt.Value == occupancy {
			return !opt.NextStep.IsReject()
		}
	}
	return false
}

// DoesPartnerAllowRoommates reads the roommate question's applicable flag.
// A partner without a roommate question is misconfigured.
func DoesPartnerAllowRoommates(partnerCode string, qs QuestionSet) (bool, error) {
	if qs.Roommate == nil {
		return false, &QuestionNotFoundError{PartnerCode: partnerCode, QuestionCode: QuestionRoommate}
	}
	return qs.Roommate.Applicable, nil
}

// MaxRoommatesForRoomCount returns 0 when the partner disallows roommates or
// has no limit for roomCount.
func MaxRoommatesForRoomCount(partnerCode string, qs QuestionSet, roomCount int) (int, error) {
	allowed, err := DoesPartnerAllowRoommates(partnerCode, qs)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, nil
	}
	for _, limit := range qs.Roommate.MaximumNumbers {
		if limit.RoomCount == roomCount {
			return limit.MaxRoommates, nil
		}
	}
	return 0, nil
}

// IsRoommateCountAllowed also returns the max so callers can tell "no
// roommates at all" (max == 0) from "too many roommates".
func IsRoommateCountAllowed(partnerCode string, qs QuestionSet, candidateCount, roomCount int) (bool, int, error) {
	limit, err := MaxRoommatesForRoomCount(partnerCode, qs, roomCount)
	if err != nil {
		return false, 0, err
	}
	return candidateCount <= limit, limit, nil
}

// ValidateRisk runs every eligibility rule against a risk and returns the
// first failure.
func ValidateRisk(partnerCode string, qs QuestionSet, risk Risk) error {
	roomCount := risk.Property.RoomCount
	if !IsRoomCountInsurable(qs, roomCount) {
		return fmt.Errorf("%w: %d room(s) for partner %q", ErrRoomCountNotInsurable, roomCount, partnerCode)
	}
	if !IsPropertyTypeInsurable(qs, risk.Property.Type) {
		return fmt.Errorf("%w: %q for partner %q", ErrPropertyTypeNotInsurable, risk.Property.Type, partnerCode)
	}
	if !IsOccupancyInsurable(qs, risk.Property.Occupancy) {
		return fmt.Errorf("%w: %q for partner %q", ErrOccupancyNotInsurable, risk.Property.Occupancy, partnerCode)
	}

	roommates := len(risk.OtherPeople)
	if roommates == 0 {
		return nil
	}
	ok, limit, err := IsRoommateCountAllowed(partnerCode, qs, roommates, roomCount)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if limit == 0 {
		return fmt.Errorf("%w: partner %q, %d room(s)", ErrRoommatesNotAllowed, partnerCode, roomCount)
	}
	return &RoommateCountExceededError{Max: limit, RoomCount: roomCount, Requested: roommates}
}
