// Package disclosure holds the fixed catalogs of material topics and
// reporting frameworks, and the per-topic disclosure entries users fill in.
package disclosure

import (
	"slices"
	"strings"
)

// Material topics, in catalog order.
const (
	TopicHealthSafety       = "Employee Health, Safety & Wellbeing"
	TopicClimateAction      = "Climate Action"
	TopicProductStewardship = "Product Stewardship"
	TopicSupplyChain        = "Responsible Supply Chain"
	TopicTalent             = "Talent Management & Training"
	TopicHumanRights        = "Human Rights & Labour Practices"
	TopicCircularEconomy    = "Circular Economy"
	TopicEnvironmental      = "Environmental Protection"
	TopicBusinessEthics     = "Business Ethics"
	TopicCorruption         = "Corruption"
	TopicAirPollution       = "Air Pollution"
	TopicWater              = "Water"
	TopicCommunity          = "Community Relations"
	TopicDataPrivacy        = "Data Privacy"
)

// Reporting frameworks users may cite.
const (
	FrameworkGRI  = "GRI Standards 2021"
	FrameworkBRSR = "BRSR"
	FrameworkSDGs = "SDGs"
)

// MaterialTopics returns the topic catalog in declared order.
func MaterialTopics() []string {
	return []string{
		TopicHealthSafety, TopicClimateAction, TopicProductStewardship,
		TopicSupplyChain, TopicTalent, TopicHumanRights,
		TopicCircularEconomy, TopicEnvironmental, TopicBusinessEthics, TopicCorruption,
		TopicAirPollution, TopicWater, TopicCommunity, TopicDataPrivacy,
	}
}

// IsMaterialTopic reports whether topic is in the catalog.
func IsMaterialTopic(topic string) bool {
	return slices.Contains(MaterialTopics(), topic)
}

// Frameworks returns the supported frameworks.
func Frameworks() []string {
	return []string{FrameworkGRI, FrameworkBRSR, FrameworkSDGs}
}

// DefaultFrameworks returns the frameworks selected when the user names none.
func DefaultFrameworks() []string {
	return []string{FrameworkGRI, FrameworkSDGs}
}

// TopicEntry is the disclosure a user writes for one material topic.
type TopicEntry struct {
	Topic         string   `json:"topic"`
	Stakeholders  string   `json:"stakeholders"`
	Risks         string   `json:"risks"`
	Opportunities string   `json:"opportunities"`
	KPIs          []string `json:"kpis"`
}

// Clone returns a deep copy of e.
func (e TopicEntry) Clone() TopicEntry {
	out := e
	out.KPIs = slices.Clone(e.KPIs)
	if out.KPIs == nil {
		out.KPIs = []string{}
	}
	return out
}

// ParseKPIList splits a comma-separated KPI list, trimming blanks and
// dropping empty items. It never returns nil.
func ParseKPIList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if kpi := strings.TrimSpace(part); kpi != "" {
			out = append(out, kpi)
		}
	}
	return out
}

// OrderTopics returns the keys of entries in catalog order. Keys outside
// the catalog are appended in lexical order.
func OrderTopics[V any](entries map[string]V) []string {
	ordered := make([]string, 0, len(entries))
	for _, topic := range MaterialTopics() {
		if _, ok := entries[topic]; ok {
			ordered = append(ordered, topic)
		}
	}
	var extra []string
	for topic := range entries {
		if !IsMaterialTopic(topic) {
			extra = append(extra, topic)
		}
	}
	slices.Sort(extra)
	return append(ordered, extra...)
}
