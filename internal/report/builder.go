package report

import (
	"context"
	"fmt"

	"github.com/rshade/esgfocus/internal/disclosure"
	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/logging"
)

// Builder runs an Input through the calculator, the narrative generator and
// the assembler.
type Builder struct {
	calc      *emissions.Calculator
	narrator  disclosure.NarrativeGenerator
	assembler *Assembler
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithNarrator sets the NarrativeGenerator. The default is disclosure.NoopNarrator.
func WithNarrator(gen disclosure.NarrativeGenerator) BuilderOption {
	return func(b *Builder) {
		if gen != nil {
			b.narrator = gen
		}
	}
}

// WithAssembler replaces the Assembler, typically to inject a clock.
func WithAssembler(a *Assembler) BuilderOption {
	return func(b *Builder) {
		if a != nil {
			b.assembler = a
		}
	}
}

// NewBuilder returns a Builder using calc.
func NewBuilder(calc *emissions.Calculator, opts ...BuilderOption) *Builder {
	b := &Builder{
		calc:      calc,
		narrator:  disclosure.NoopNarrator{},
		assembler: NewAssembler(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build computes emissions for in and assembles the Record. Any calculator
// or validation error aborts the build; no partial record is returned.
func (b *Builder) Build(ctx context.Context, in *Input) (*Record, error) {
	logger := logging.FromContext(ctx)

	if in == nil {
		return nil, fmt.Errorf("%w: input", ErrMissingField)
	}

	topics, err := in.TopicEntries()
	if err != nil {
		return nil, err
	}

	_, scope1, err := b.calc.Scope1(in.Scope1)
	if err != nil {
		return nil, fmt.Errorf("scope 1: %w", err)
	}
	scope2, err := b.calc.Scope2(in.Scope2KWh)
	if err != nil {
		return nil, fmt.Errorf("scope 2: %w", err)
	}
	rows, scope3, err := b.calc.Scope3(in.Scope3)
	if err != nil {
		return nil, fmt.Errorf("scope 3: %w", err)
	}
	logger.Debug().
		Float64("scope1", scope1).
		Float64("scope2", scope2).
		Float64("scope3", scope3).
		Msg("emissions computed")

	narratives := map[string]string{}
	if in.GenerateNarratives {
		narratives, err = disclosure.GenerateNarratives(ctx, b.narrator, topics)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("topics", len(narratives)).Msg("narratives generated")
	}

	rec, err := b.assembler.Assemble(Params{
		Company:       in.Company,
		Period:        in.Period,
		Frameworks:    in.Frameworks,
		Topics:        topics,
		Narratives:    narratives,
		Scope1Total:   scope1,
		Scope2Total:   scope2,
		Scope3Rows:    rows,
		Scope3Total:   scope3,
		Environmental: in.Environmental.KPIs(),
		Social:        in.Social.KPIs(),
		Governance:    in.Governance.KPIs(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("company", rec.Company).
		Int("topics", len(rec.Topics)).
		Float64("total_tco2e", rec.TotalEmissions()).
		Msg("report assembled")
	return rec, nil
}
