// Package report assembles ESG disclosure inputs and calculator output into
// a single Record that renderers consume without further computation.
package report

import (
	"maps"
	"slices"
	"time"

	"github.com/rshade/esgfocus/internal/disclosure"
	"github.com/rshade/esgfocus/internal/emissions"
)

// Environmental KPI keys. The scope keys hold totals rounded to 2 decimals.
const (
	KeyScope1    = "Scope 1"
	KeyScope2    = "Scope 2"
	KeyScope3    = "Scope 3"
	KeyEnergy    = "Energy"
	KeyRenewable = "Renewable"
	KeyWater     = "Water"
	KeyWaste     = "Waste"
)

// Social KPI keys.
const (
	KeyEmployees     = "Employees"
	KeyLTIFR         = "LTIFR"
	KeyTrainingHours = "Training Hours"
	KeyFemalePct     = "% Female"
)

// Governance KPI keys.
const (
	KeyEthicsTrainedPct     = "% Ethics Trained"
	KeyDataBreaches         = "Data Breaches"
	KeyBoardSize            = "Board Size"
	KeyIndependentDirectors = "Independent Directors"
)

// EnvironmentalKeys returns the environmental KPI keys in display order.
func EnvironmentalKeys() []string {
	return []string{KeyScope1, KeyScope2, KeyScope3, KeyEnergy, KeyRenewable, KeyWater, KeyWaste}
}

// SocialKeys returns the social KPI keys in display order.
func SocialKeys() []string {
	return []string{KeyEmployees, KeyLTIFR, KeyTrainingHours, KeyFemalePct}
}

// GovernanceKeys returns the governance KPI keys in display order.
func GovernanceKeys() []string {
	return []string{KeyEthicsTrainedPct, KeyDataBreaches, KeyBoardSize, KeyIndependentDirectors}
}

// Record is the assembled report. It is built once by an Assembler and is
// not modified afterwards; use Clone to hand out an independent copy.
//
// The JSON field names are the interchange format and must stay stable.
type Record struct {
	Company       string                           `json:"company"`
	Period        string                           `json:"period"`
	Frameworks    []string                         `json:"frameworks"`
	Topics        map[string]disclosure.TopicEntry `json:"topics"`
	Narratives    map[string]string                `json:"narratives"`
	Environmental map[string]float64               `json:"environmental"`
	Scope3Details []emissions.CategoryRow          `json:"scope3_details"`
	Social        map[string]float64               `json:"social"`
	Governance    map[string]float64               `json:"governance"`
	Created       time.Time                        `json:"created"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Frameworks = slices.Clone(r.Frameworks)
	out.Topics = make(map[string]disclosure.TopicEntry, len(r.Topics))
	for k, v := range r.Topics {
		out.Topics[k] = v.Clone()
	}
	out.Narratives = maps.Clone(r.Narratives)
	out.Environmental = maps.Clone(r.Environmental)
	out.Scope3Details = slices.Clone(r.Scope3Details)
	out.Social = maps.Clone(r.Social)
	out.Governance = maps.Clone(r.Governance)
	return &out
}

// TopicOrder returns the record's topics in catalog order.
func (r *Record) TopicOrder() []string {
	return disclosure.OrderTopics(r.Topics)
}

// NarrativeOrder returns the topics that have narratives, in catalog order.
func (r *Record) NarrativeOrder() []string {
	return disclosure.OrderTopics(r.Narratives)
}

// ScopeTotal returns the rounded total recorded for scope.
func (r *Record) ScopeTotal(scope emissions.Scope) float64 {
	return r.Environmental[scope.String()]
}

// TotalEmissions returns the sum of the three rounded scope totals.
func (r *Record) TotalEmissions() float64 {
	return r.Environmental[KeyScope1] + r.Environmental[KeyScope2] + r.Environmental[KeyScope3]
}

// OrderedKeys returns the keys of m with the preferred keys first (when
// present) followed by the rest in lexical order.
func OrderedKeys(m map[string]float64, preferred []string) []string {
	out := make([]string, 0, len(m))
	for _, k := range preferred {
		if _, ok := m[k]; ok {
			out = append(out, k)
		}
	}
	var rest []string
	for k := range m {
		if !slices.Contains(preferred, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}
