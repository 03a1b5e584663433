package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/esgfocus/internal/disclosure"
	"github.com/rshade/esgfocus/internal/emissions"
)

// Defaults applied to an Input that leaves the fields unset.
const (
	DefaultCompany = "COMPANY"
	DefaultPeriod  = "01 April 2025 – 31 March 2026"
)

// Input is the raw form data a user supplies for one report.
// It decodes from YAML or JSON; the keys are the same for both.
type Input struct {
	Company    string   `yaml:"company"    json:"company"`
	Period     string   `yaml:"period"     json:"period"`
	Frameworks []string `yaml:"frameworks" json:"frameworks"`

	// Topics lists the selected material topics. Nil selects every topic.
	Topics []TopicInput `yaml:"topics" json:"topics"`

	// GenerateNarratives asks the NarrativeGenerator for per-topic text.
	GenerateNarratives bool `yaml:"generate_narratives" json:"generate_narratives"`

	Scope1    map[string]float64      `yaml:"scope1"     json:"scope1"`
	Scope2KWh float64                 `yaml:"scope2_kwh" json:"scope2_kwh"`
	Scope3    []emissions.Scope3Entry `yaml:"scope3"     json:"scope3"`

	Environmental EnvironmentalInput `yaml:"environmental" json:"environmental"`
	Social        SocialInput        `yaml:"social"        json:"social"`
	Governance    GovernanceInput    `yaml:"governance"    json:"governance"`
}

// TopicInput is the free text a user writes for one material topic.
// KPIs is a comma-separated list.
type TopicInput struct {
	Topic         string `yaml:"topic"         json:"topic"`
	Stakeholders  string `yaml:"stakeholders"  json:"stakeholders"`
	Risks         string `yaml:"risks"         json:"risks"`
	Opportunities string `yaml:"opportunities" json:"opportunities"`
	KPIs          string `yaml:"kpis"          json:"kpis"`
}

// EnvironmentalInput holds the non-emission environmental figures.
type EnvironmentalInput struct {
	EnergyGJ    float64 `yaml:"energy_gj"    json:"energy_gj"`
	RenewableGJ float64 `yaml:"renewable_gj" json:"renewable_gj"`
	WaterM3     float64 `yaml:"water_m3"     json:"water_m3"`
	WasteT      float64 `yaml:"waste_t"      json:"waste_t"`
}

// KPIs returns the figures keyed by their report names.
func (e EnvironmentalInput) KPIs() map[string]float64 {
	return map[string]float64{
		KeyEnergy:    e.EnergyGJ,
		KeyRenewable: e.RenewableGJ,
		KeyWater:     e.WaterM3,
		KeyWaste:     e.WasteT,
	}
}

// SocialInput holds the social KPIs.
type SocialInput struct {
	Employees     float64 `yaml:"employees"      json:"employees"`
	LTIFR         float64 `yaml:"ltifr"          json:"ltifr"`
	TrainingHours float64 `yaml:"training_hours" json:"training_hours"`
	FemalePct     float64 `yaml:"female_pct"     json:"female_pct"`
}

// KPIs returns the figures keyed by their report names.
func (s SocialInput) KPIs() map[string]float64 {
	return map[string]float64{
		KeyEmployees:     s.Employees,
		KeyLTIFR:         s.LTIFR,
		KeyTrainingHours: s.TrainingHours,
		KeyFemalePct:     s.FemalePct,
	}
}

// GovernanceInput holds the governance KPIs.
type GovernanceInput struct {
	EthicsTrainedPct     float64 `yaml:"ethics_trained_pct"    json:"ethics_trained_pct"`
	BoardSize            float64 `yaml:"board_size"            json:"board_size"`
	IndependentDirectors float64 `yaml:"independent_directors" json:"independent_directors"`
	DataBreaches         float64 `yaml:"data_breaches"         json:"data_breaches"`
}

// KPIs returns the figures keyed by their report names.
func (g GovernanceInput) KPIs() map[string]float64 {
	return map[string]float64{
		KeyEthicsTrainedPct:     g.EthicsTrainedPct,
		KeyDataBreaches:         g.DataBreaches,
		KeyBoardSize:            g.BoardSize,
		KeyIndependentDirectors: g.IndependentDirectors,
	}
}

// ApplyDefaults fills unset fields the way the original form did: a placeholder
// company and period, the default frameworks, and every topic selected.
func (in *Input) ApplyDefaults() {
	if strings.TrimSpace(in.Company) == "" {
		in.Company = DefaultCompany
	}
	if strings.TrimSpace(in.Period) == "" {
		in.Period = DefaultPeriod
	}
	if in.Frameworks == nil {
		in.Frameworks = disclosure.DefaultFrameworks()
	}
	if in.Topics == nil {
		for _, topic := range disclosure.MaterialTopics() {
			in.Topics = append(in.Topics, TopicInput{Topic: topic})
		}
	}
}

// TopicEntries converts the selected topics into disclosure entries.
// Unknown topics return ErrUnknownTopic; repeated topics return
// emissions.ErrInvalidInput.
func (in *Input) TopicEntries() (map[string]disclosure.TopicEntry, error) {
	out := make(map[string]disclosure.TopicEntry, len(in.Topics))
	for _, t := range in.Topics {
		topic := strings.TrimSpace(t.Topic)
		if !disclosure.IsMaterialTopic(topic) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, t.Topic)
		}
		if _, dup := out[topic]; dup {
			return nil, fmt.Errorf("%w: topic %q selected twice", emissions.ErrInvalidInput, topic)
		}
		out[topic] = disclosure.TopicEntry{
			Topic:         topic,
			Stakeholders:  strings.TrimSpace(t.Stakeholders),
			Risks:         strings.TrimSpace(t.Risks),
			Opportunities: strings.TrimSpace(t.Opportunities),
			KPIs:          disclosure.ParseKPIList(t.KPIs),
		}
	}
	return out, nil
}

// DecodeInput reads an Input document (YAML or JSON) from r and applies
// defaults. Unknown keys and non-numeric values fail with
// emissions.ErrInvalidInput.
func DecodeInput(r io.Reader) (*Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Input
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decoding input: %w", emissions.ErrInvalidInput, err)
	}
	in.ApplyDefaults()
	return &in, nil
}

// LoadInput reads an Input document from path.
func LoadInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	in, err := DecodeInput(f)
	if err != nil {
		return nil, fmt.Errorf("loading input %s: %w", path, err)
	}
	return in, nil
}
