// Package catalog reads the partner catalogue, a YAML file describing each
// partner's offer and questionnaire. It is used to seed the partner store.
package catalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// File is the top-level document.
type File struct {
	Partners []PartnerEntry `yaml:"partners"`
}

type PartnerEntry struct {
	Code      string         `yaml:"code"`
	Trigram   string         `yaml:"trigram"`
	Currency  string         `yaml:"currency"`
	Offer     OfferEntry     `yaml:"offer"`
	Questions QuestionsEntry `yaml:"questions"`
}

type OfferEntry struct {
	PricingMatrix    []PricingEntry `yaml:"pricing_matrix"`
	SimplifiedCovers []string       `yaml:"simplified_covers"`
	ProductCode      string         `yaml:"product_code"`
	ProductVersion   string         `yaml:"product_version"`
	ContractualTerms string         `yaml:"contractual_terms"`
	IPID             string         `yaml:"ipid"`
	OperationCodes   []string       `yaml:"operation_codes"`
}

type PricingEntry struct {
	RoomCount         int    `yaml:"room_count"`
	MonthlyPrice      amount `yaml:"monthly_price"`
	DefaultDeductible amount `yaml:"default_deductible"`
	DefaultCeiling    amount `yaml:"default_ceiling"`
}

// QuestionsEntry lists at most one question of each kind; omitted kinds are
// not configured for the partner.
type QuestionsEntry struct {
	RoomCount    *ChoiceQuestion   `yaml:"room_count,omitempty"`
	PropertyType *ChoiceQuestion   `yaml:"property_type,omitempty"`
	Occupancy    *ChoiceQuestion   `yaml:"occupancy,omitempty"`
	Roommate     *RoommateQuestion `yaml:"roommate,omitempty"`
	Address      *AddressQuestion  `yaml:"address,omitempty"`
}

// ChoiceQuestion covers room count, property type and occupancy. Values are
// kept as strings and converted per kind.
type ChoiceQuestion struct {
	ToAsk        bool     `yaml:"to_ask"`
	Options      []Option `yaml:"options"`
	DefaultValue string   `yaml:"default_value"`
}

type Option struct {
	Value    string `yaml:"value"`
	NextStep string `yaml:"next_step"`
}

type RoommateQuestion struct {
	Applicable     bool            `yaml:"applicable"`
	MaximumNumbers []RoommateLimit `yaml:"maximum_numbers"`
}

type RoommateLimit struct {
	RoomCount    int `yaml:"room_count"`
	MaxRoommates int `yaml:"max_roommates"`
}

type AddressQuestion struct {
	ToAsk bool `yaml:"to_ask"`
}

// amount decodes a YAML scalar such as 5.82 or "5.82" without going
// through float64.
type amount struct {
	core.Amount
}

func (a *amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", n.Line)
	}
	v, err := core.ParseAmount(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	a.Amount = v
	return nil
}

// Load reads and converts the catalogue at path.
func Load(path string) ([]core.Partner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a catalogue and validates every partner.
func Parse(r io.Reader) ([]core.Partner, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	seen := make(map[string]bool, len(file.Partners))
	partners := make([]core.Partner, 0, len(file.Partners))
	for _, entry := range file.Partners {
		if seen[entry.Code] {
			return nil, fmt.Errorf("%w: duplicate partner %q", core.ErrConfiguration, entry.Code)
		}
		seen[entry.Code] = true

		p, err := entry.ToCore()
		if err != nil {
			return nil, fmt.Errorf("partner %q: %w", entry.Code, err)
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (e PartnerEntry) ToCore() (core.Partner, error) {
	matrix := make(map[int]core.PricingEntry, len(e.Offer.PricingMatrix))
	for _, pe := range e.Offer.PricingMatrix {
		if _, dup := matrix[pe.RoomCount]; dup {
			return core.Partner{}, fmt.Errorf("%w: duplicate price for %d room(s)", core.ErrConfiguration, pe.RoomCount)
		}
		matrix[pe.RoomCount] = core.PricingEntry{
			MonthlyPrice:      pe.MonthlyPrice.Amount,
			DefaultDeductible: pe.DefaultDeductible.Amount,
			DefaultCeiling:    pe.DefaultCeiling.Amount,
		}
	}

	codes := make([]core.OperationCode, 0, len(e.Offer.OperationCodes))
	for _, raw := range e.Offer.OperationCodes {
		codes = append(codes, core.ParseOperationCode(raw))
	}

	questions, err := e.Questions.toCore()
	if err != nil {
		return core.Partner{}, err
	}

	p := core.Partner{
		Code:     e.Code,
		Trigram:  e.Trigram,
		Currency: e.Currency,
		Offer: core.Offer{
			PricingMatrix:    matrix,
			SimplifiedCovers: e.Offer.SimplifiedCovers,
			ProductCode:      e.Offer.ProductCode,
			ProductVersion:   e.Offer.ProductVersion,
			ContractualTerms: e.Offer.ContractualTerms,
			IPID:             e.Offer.IPID,
			OperationCodes:   codes,
		},
		Questions: questions,
	}
	if err := p.Validate(); err != nil {
		return core.Partner{}, err
	}
	return p, nil
}

func (q QuestionsEntry) toCore() (core.QuestionSet, error) {
	var list []core.PartnerQuestion

	if q.RoomCount != nil {
		rc, err := roomCountQuestion(*q.RoomCount)
		if err != nil {
			return core.QuestionSet{}, err
		}
		list = append(list, rc)
	}
	if q.PropertyType != nil {
		pt := core.PropertyTypeQuestion{
			ToAsk:        q.PropertyType.ToAsk,
			DefaultValue: core.PropertyType(q.PropertyType.DefaultValue),
		}
		for _, o := range q.PropertyType.Options {
			pt.Options = append(pt.Options, core.PropertyTypeOption{
				Value:    core.PropertyType(o.Value),
				NextStep: core.NextStep(o.NextStep),
			})
		}
		list = append(list, pt)
	}
	if q.Occupancy != nil {
		oc := core.OccupancyQuestion{
			ToAsk:        q.Occupancy.ToAsk,
			DefaultValue: core.OccupancyType(q.Occupancy.DefaultValue),
		}
		for _, o := range q.Occupancy.Options {
			oc.Options = append(oc.Options, core.OccupancyOption{
				Value:    core.OccupancyType(o.Value),
				NextStep: core.NextStep(o.NextStep),
			})
		}
		list = append(list, oc)
	}
	if q.Roommate != nil {
		rm := core.RoommateQuestion{Applicable: q.Roommate.Applicable}
		for _, l := range q.Roommate.MaximumNumbers {
			rm.MaximumNumbers = append(rm.MaximumNumbers, core.RoommateLimit{
				RoomCount:    l.RoomCount,
				MaxRoommates: l.MaxRoommates,
			})
		}
		list = append(list, rm)
	}
	if q.Address != nil {
		list = append(list, core.AddressQuestion{ToAsk: q.Address.ToAsk})
	}

	return core.NewQuestionSet(list...)
}

func roomCountQuestion(c ChoiceQuestion) (core.RoomCountQuestion, error) {
	q := core.RoomCountQuestion{ToAsk: c.ToAsk}
	if c.DefaultValue != "" {
		v, err := atoiRoomCount(c.DefaultValue)
		if err != nil {
			return core.RoomCountQuestion{}, err
		}
		q.DefaultValue = v
	}
	for _, o := range c.Options {
		v, err := atoiRoomCount(o.Value)
		if err != nil {
			return core.RoomCountQuestion{}, err
		}
		q.Options = append(q.Options, core.RoomCountOption{Value: v, NextStep: core.NextStep(o.NextStep)})
	}
	return q, nil
}

func atoiRoomCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid room count %q", core.ErrConfiguration, s)
	}
	return n, nil
}
