package report

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rshade/esgfocus/internal/disclosure"
	"github.com/rshade/esgfocus/internal/emissions"
)

// Params carries everything Assemble needs. Calculator outputs are passed
// through as computed; Assemble only rounds the scope totals.
type Params struct {
	Company    string
	Period     string
	Frameworks []string

	// Topics maps a catalog topic to its disclosure entry.
	Topics map[string]disclosure.TopicEntry

	// Narratives maps a catalog topic to generated narrative text.
	Narratives map[string]string

	Scope1Total float64
	Scope2Total float64
	Scope3Rows  []emissions.CategoryRow
	Scope3Total float64

	// Environmental holds the non-emission environmental KPIs
	// (energy, renewable energy, water, waste).
	Environmental map[string]float64

	Social     map[string]float64
	Governance map[string]float64
}

// Assembler builds Records. The zero value is not usable; call NewAssembler.
type Assembler struct {
	now func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock replaces the wall clock used to stamp Record.Created.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAssembler returns an Assembler that stamps records with time.Now.
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds a Record from p.
//
// Company and period are required (ErrMissingField). Topic and narrative keys
// must be catalog topics (ErrUnknownTopic). KPI values must be finite and
// non-negative, and extra environmental KPIs may not reuse a scope key; both
// fail with emissions.ErrInvalidInput. The clock is read exactly once.
func (a *Assembler) Assemble(p Params) (*Record, error) {
	company := strings.TrimSpace(p.Company)
	if company == "" {
		return nil, fmt.Errorf("%w: company", ErrMissingField)
	}
	period := strings.TrimSpace(p.Period)
	if period == "" {
		return nil, fmt.Errorf("%w: period", ErrMissingField)
	}

	topics, err := copyTopics(p.Topics)
	if err != nil {
		return nil, err
	}
	for topic := range p.Narratives {
		if !disclosure.IsMaterialTopic(topic) {
			return nil, fmt.Errorf("%w: narrative for %q", ErrUnknownTopic, topic)
		}
	}

	environmental, err := environmentalKPIs(p)
	if err != nil {
		return nil, err
	}
	social, err := copyKPIs("social", p.Social)
	if err != nil {
		return nil, err
	}
	governance, err := copyKPIs("governance", p.Governance)
	if err != nil {
		return nil, err
	}

	narratives := maps.Clone(p.Narratives)
	if narratives == nil {
		narratives = map[string]string{}
	}
	rows := slices.Clone(p.Scope3Rows)
	if rows == nil {
		rows = []emissions.CategoryRow{}
	}

	return &Record{
		Company:       company,
		Period:        period,
		Frameworks:    dedupe(p.Frameworks),
		Topics:        topics,
		Narratives:    narratives,
		Environmental: environmental,
		Scope3Details: rows,
		Social:        social,
		Governance:    governance,
		Created:       a.now(),
	}, nil
}

func copyTopics(in map[string]disclosure.TopicEntry) (map[string]disclosure.TopicEntry, error) {
	out := make(map[string]disclosure.TopicEntry, len(in))
	for topic, entry := range in {
		if !disclosure.IsMaterialTopic(topic) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
		}
		e := entry.Clone()
		e.Topic = topic
		out[topic] = e
	}
	return out, nil
}

func environmentalKPIs(p Params) (map[string]float64, error) {
	out := map[string]float64{
		KeyScope1: emissions.Round2(p.Scope1Total),
		KeyScope2: emissions.Round2(p.Scope2Total),
		KeyScope3: emissions.Round2(p.Scope3Total),
	}
	for _, k := range []string{KeyScope1, KeyScope2, KeyScope3} {
		if err := checkKPI("environmental", k, out[k]); err != nil {
			return nil, err
		}
	}
	for k, v := range p.Environmental {
		if _, clash := out[k]; clash {
			return nil, fmt.Errorf("%w: environmental KPI %q is computed, not supplied",
				emissions.ErrInvalidInput, k)
		}
		if err := checkKPI("environmental", k, v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func copyKPIs(section string, in map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		if err := checkKPI(section, k, v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func checkKPI(section, key string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s KPI %q = %v", emissions.ErrInvalidInput, section, key, v)
	}
	return nil
}

// dedupe drops repeated and blank values, keeping first occurrences in order.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
