package disclosure

import (
	"context"
	"fmt"
)

// NarrativeDisabledText is what NoopNarrator returns for every topic.
const NarrativeDisabledText = "(AI narrative disabled: no generator configured)"

// NarrativeGenerator writes narrative text for a material topic.
// Real implementations (for example an LLM client) plug in here.
type NarrativeGenerator interface {
	Generate(ctx context.Context, topic string, entry TopicEntry) (string, error)
}

// NoopNarrator is the default NarrativeGenerator. It returns a fixed notice.
type NoopNarrator struct{}

// Generate returns NarrativeDisabledText.
func (NoopNarrator) Generate(context.Context, string, TopicEntry) (string, error) {
	return NarrativeDisabledText, nil
}

// NarratorFunc adapts a function to NarrativeGenerator.
type NarratorFunc func(ctx context.Context, topic string, entry TopicEntry) (string, error)

// Generate calls f.
func (f NarratorFunc) Generate(ctx context.Context, topic string, entry TopicEntry) (string, error) {
	return f(ctx, topic, entry)
}

// GenerateNarratives runs gen over every entry in catalog order and returns
// topic -> narrative. A nil gen uses NoopNarrator. The first error aborts.
func GenerateNarratives(
	ctx context.Context,
	gen NarrativeGenerator,
	entries map[string]TopicEntry,
) (map[string]string, error) {
	if gen == nil {
		gen = NoopNarrator{}
	}
	out := make(map[string]string, len(entries))
	for _, topic := range OrderTopics(entries) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := gen.Generate(ctx, topic, entries[topic])
		if err != nil {
			return nil, fmt.Errorf("generating narrative for %q: %w", topic, err)
		}
		out[topic] = text
	}
	return out, nil
}
