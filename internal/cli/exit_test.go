package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/esgfocus/internal/cli"
	"github.com/rshade/esgfocus/internal/config"
	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/render"
	"github.com/rshade/esgfocus/internal/report"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitOK},
		{"invalid input", fmt.Errorf("building report: scope 1: %w", emissions.ErrInvalidInput), cli.ExitInvalidInput},
		{"unknown category", emissions.ErrUnknownCategory, cli.ExitInvalidInput},
		{"unknown topic", report.ErrUnknownTopic, cli.ExitInvalidInput},
		{"missing field", report.ErrMissingField, cli.ExitInvalidInput},
		{"incompatible factor set", config.ErrIncompatibleFactorSet, cli.ExitInvalidInput},
		{"render failure", fmt.Errorf("%w: disk full", render.ErrRenderFailure), cli.ExitRenderFailed},
		{"anything else", errors.New("boom"), cli.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
