package core

import "fmt"

type QuestionCode string

const (
	QuestionRoomCount    QuestionCode = "ROOM_COUNT"
	QuestionPropertyType QuestionCode = "PROPERTY_TYPE"
	QuestionOccupancy    QuestionCode = "OCCUPANCY"
	QuestionRoommate     QuestionCode = "ROOMMATE"
	QuestionAddress      QuestionCode = "ADDRESS"
)

// NextStep is where the subscription journey goes after an answer.
// NextStepReject is terminal: the answer makes the risk uninsurable.
type NextStep string

const (
	NextStepReject NextStep = "REJECT"
)

func (s NextStep) IsReject() bool { return s == NextStepReject }

type PropertyType string

const (
	PropertyTypeFlat  PropertyType = "FLAT"
	PropertyTypeHouse PropertyType = "HOUSE"
)

type OccupancyType string

const (
	OccupancyTenant   OccupancyType = "TENANT"
	OccupancyLandlord OccupancyType = "LANDLORD"
)

// PartnerQuestion is one of the closed set of question kinds below.
type PartnerQuestion interface {
	Code() QuestionCode
	isPartnerQuestion()
}

type RoomCountOption struct {
	Value    int      `json:"value"`
	NextStep NextStep `json:"next_step"`
}

type RoomCountQuestion struct {
	ToAsk        bool              `json:"to_ask"`
	Options      []RoomCountOption `json:"options,omitempty"`
	DefaultValue int               `json:"default_value"`
}

type PropertyTypeOption struct {
	Value    PropertyType `json:"value"`
	NextStep NextStep     `json:"next_step"`
}

type PropertyTypeQuestion struct {
	ToAsk        bool                 `json:"to_ask"`
	Options      []PropertyTypeOption `json:"options,omitempty"`
	DefaultValue PropertyType         `json:"default_value"`
}

type OccupancyOption struct {
	Value    OccupancyType `json:"value"`
	NextStep NextStep      `json:"next_step"`
}

type OccupancyQuestion struct {
	ToAsk        bool              `json:"to_ask"`
	Options      []OccupancyOption `json:"options,omitempty"`
	DefaultValue OccupancyType     `json:"default_value"`
}

// RoommateLimit caps the number of roommates for a given room count.
type RoommateLimit struct {
	RoomCount    int `json:"room_count"`
	MaxRoommates int `json:"max_roommates"`
}

type RoommateQuestion struct {
	Applicable     bool            `json:"applicable"`
	MaximumNumbers []RoommateLimit `json:"maximum_numbers,omitempty"`
}

type AddressQuestion struct {
	ToAsk bool `json:"to_ask"`
}

func (RoomCountQuestion) Code() QuestionCode    { return QuestionRoomCount }
func (PropertyTypeQuestion) Code() QuestionCode { return QuestionPropertyType }
func (OccupancyQuestion) Code() QuestionCode    { return QuestionOccupancy }
func (RoommateQuestion) Code() QuestionCode     { return QuestionRoommate }
func (AddressQuestion) Code() QuestionCode      { return QuestionAddress }

func (RoomCountQuestion) isPartnerQuestion()    {}
func (PropertyTypeQuestion) isPartnerQuestion() {}
func (OccupancyQuestion) isPartnerQuestion()    {}
func (RoommateQuestion) isPartnerQuestion()     {}
func (AddressQuestion) isPartnerQuestion()      {}

// QuestionSet is a partner's questionnaire, at most one question per code.
// Build it with NewQuestionSet; a nil field means the partner does not
// configure that question.
type QuestionSet struct {
	RoomCount    *RoomCountQuestion    `json:"room_count,omitempty"`
	PropertyType *PropertyTypeQuestion `json:"property_type,omitempty"`
	Occupancy    *OccupancyQuestion    `json:"occupancy,omitempty"`
	Roommate     *RoommateQuestion     `json:"roommate,omitempty"`
	Address      *AddressQuestion      `json:"address,omitempty"`
}

// NewQuestionSet indexes questions by code and rejects duplicates.
func NewQuestionSet(questions ...PartnerQuestion) (QuestionSet, error) {
	var qs QuestionSet
	seen := make(map[QuestionCode]bool, len(questions))

	for _, q := range questions {
		if q == nil {
			continue
		}
		if seen[q.Code()] {
			return QuestionSet{}, fmt.Errorf("%w: duplicate %s question", ErrConfiguration, q.Code())
		}
		seen[q.Code()] = true

		switch v := q.(type) {
		case RoomCountQuestion:
			qs.RoomCount = &v
		case PropertyTypeQuestion:
			qs.PropertyType = &v
		case OccupancyQuestion:
			qs.Occupancy = &v
		case RoommateQuestion:
			if err := validateRoommateLimits(v.MaximumNumbers); err != nil {
				return QuestionSet{}, err
			}
			qs.Roommate = &v
		case AddressQuestion:
			qs.Address = &v
		}
	}
	return qs, nil
}

// Questions lists the configured questions in a stable order.
func (qs QuestionSet) Questions() []PartnerQuestion {
	var out []PartnerQuestion
	if qs.RoomCount != nil {
		out = append(out, *qs.RoomCount)
	}
	if qs.PropertyType != nil {
		out = append(out, *qs.PropertyType)
	}
	if qs.Occupancy != nil {
		out = append(out, *qs.Occupancy)
	}
	if qs.Roommate != nil {
		out = append(out, *qs.Roommate)
	}
	if qs.Address != nil {
		out = append(out, *qs.Address)
	}
	return out
}

func validateRoommateLimits(limits []RoommateLimit) error {
	seen := make(map[int]bool, len(limits))
	for _, l := range limits {
		if l.MaxRoommates < 0 {
			return fmt.Errorf("%w: negative roommate limit for %d room(s)", ErrConfiguration, l.RoomCount)
		}
		if seen[l.RoomCount] {
			return fmt.Errorf("%w: duplicate roommate limit for %d room(s)", ErrConfiguration, l.RoomCount)
		}
		seen[l.RoomCount] = true
	}
	return nil
}
