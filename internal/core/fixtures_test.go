package core

import "time"

func demoQuestions() QuestionSet {
	qs, err := NewQuestionSet(
		RoomCountQuestion{
			ToAsk: true,
			Options: []RoomCountOption{
				{Value: 1}, {Value: 2}, {Value: 3},
				{Value: 4, NextStep: NextStepReject},
			},
			DefaultValue: 1,
		},
		PropertyTypeQuestion{
			ToAsk: true,
			Options: []PropertyTypeOption{
				{Value: PropertyTypeFlat},
				{Value: PropertyTypeHouse, NextStep: NextStepReject},
			},
			DefaultValue: PropertyTypeFlat,
		},
		OccupancyQuestion{DefaultValue: OccupancyTenant},
		RoommateQuestion{
			Applicable: true,
			MaximumNumbers: []RoommateLimit{
				{RoomCount: 1, MaxRoommates: 0},
				{RoomCount: 2, MaxRoommates: 1},
				{RoomCount: 3, MaxRoommates: 2},
			},
		},
		AddressQuestion{ToAsk: true},
	)
	if err != nil {
		panic(err)
	}
	return qs
}

func demoPartner() Partner {
	return Partner{
		Code:     "demo",
		Trigram:  "DEM",
		Currency: "EUR",
		Offer: Offer{
			PricingMatrix: map[int]PricingEntry{
				1: {MonthlyPrice: MustParseAmount("4.68"), DefaultDeductible: MustParseAmount("150"), DefaultCeiling: MustParseAmount("5000")},
				2: {MonthlyPrice: MustParseAmount("5.82"), DefaultDeductible: MustParseAmount("150"), DefaultCeiling: MustParseAmount("7000")},
				3: {MonthlyPrice: MustParseAmount("7.09"), DefaultDeductible: MustParseAmount("150"), DefaultCeiling: MustParseAmount("10000")},
			},
			SimplifiedCovers: []string{"ACDDE", "ACVOL"},
			ProductCode:      "MRH01",
			ProductVersion:   "v2020_1",
			ContractualTerms: "https://example.org/terms.pdf",
			IPID:             "https://example.org/ipid.pdf",
			OperationCodes:   []OperationCode{OperationCodeSemester1, OperationCodeSemester2, OperationCodeFullYear},
		},
		Questions: demoQuestions(),
	}
}

func flatRisk(rooms int, roommates ...string) Risk {
	r := Risk{Property: Property{RoomCount: rooms, Type: PropertyTypeFlat, Occupancy: OccupancyTenant}}
	for _, name := range roommates {
		r.OtherPeople = append(r.OtherPeople, Person{FirstName: name, LastName: "Doe"})
	}
	return r
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
