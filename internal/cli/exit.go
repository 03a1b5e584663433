package cli

import (
	"errors"

	"github.com/rshade/esgfocus/internal/config"
	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/render"
	"github.com/rshade/esgfocus/internal/report"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitRenderFailed = 3
)

// ExitCode maps an error returned by the root command to a process exit code.
// Input and configuration problems exit 2, rendering and export failures 3.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, emissions.ErrInvalidInput),
		errors.Is(err, emissions.ErrUnknownCategory),
		errors.Is(err, emissions.ErrCalculationOverflow),
		errors.Is(err, report.ErrMissingField),
		errors.Is(err, report.ErrUnknownTopic),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrIncompatibleFactorSet):
		return ExitInvalidInput
	case errors.Is(err, render.ErrRenderFailure):
		return ExitRenderFailed
	default:
		return ExitFailure
	}
}
