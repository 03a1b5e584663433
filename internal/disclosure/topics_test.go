package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialTopics(t *testing.T) {
	topics := MaterialTopics()
	assert.Len(t, topics, 14)
	assert.Equal(t, TopicHealthSafety, topics[0])
	assert.Equal(t, TopicDataPrivacy, topics[13])

	// Callers get a fresh slice each time.
	topics[0] = "changed"
	assert.Equal(t, TopicHealthSafety, MaterialTopics()[0])
}

func TestIsMaterialTopic(t *testing.T) {
	assert.True(t, IsMaterialTopic(TopicWater))
	assert.False(t, IsMaterialTopic("Space Debris"))
}

func TestParseKPIList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"blanks only", " , ,", []string{}},
		{"trimmed", " LTIFR , Near misses ,", []string{"LTIFR", "Near misses"}},
		{"single", "Water intensity", []string{"Water intensity"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKPIList(tt.input))
		})
	}
}

func TestOrderTopics(t *testing.T) {
	entries := map[string]int{
		TopicWater:         1,
		"Zeta":             2,
		TopicHealthSafety:  3,
		"Alpha":            4,
		TopicClimateAction: 5,
	}
	assert.Equal(t,
		[]string{TopicHealthSafety, TopicClimateAction, TopicWater, "Alpha", "Zeta"},
		OrderTopics(entries))
}

func TestTopicEntry_Clone(t *testing.T) {
	orig := TopicEntry{Topic: TopicWater, KPIs: []string{"a"}}
	c := orig.Clone()
	c.KPIs[0] = "b"
	assert.Equal(t, "a", orig.KPIs[0])

	assert.NotNil(t, TopicEntry{}.Clone().KPIs)
}
