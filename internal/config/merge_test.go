package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/esgfocus/internal/config"
)

// newDefaultTarget returns a Config with known non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{
			DefaultFormat: "md",
			Precision:     2,
			OutDir:        "reports",
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Factors: config.FactorsConfig{Path: "/srv/factors.yaml"},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)
	// The whole section is replaced, so out_dir is cleared.
	assert.Empty(t, target.Output.OutDir)

	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "/srv/factors.yaml", target.Factors.Path)
}

func TestShallowMergeYAML_MultipleKeys(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: json
factors:
  path: ./factors/custom.yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, "./factors/custom.yaml", target.Factors.Path)
	assert.Equal(t, "md", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  aws-public:
    region: us-west-2
output:
  default_format: json
  precision: 2
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "json", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyOrCommentOnly(t *testing.T) {
	for _, content := range []string{"", "# just comments\n# nothing else\n"} {
		target := newDefaultTarget()
		original := *target

		require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
		assert.Equal(t, original.Output, target.Output)
		assert.Equal(t, original.Logging, target.Logging)
		assert.Equal(t, original.Factors, target.Factors)
	}
}

func TestShallowMergeYAML_InvalidOverlayLeavesTargetUntouched(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, `
logging:
  level: debug
output:
  precision: 42
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, original.Output, target.Output)
	assert.Equal(t, original.Logging, target.Logging)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "{{{{not valid yaml at all"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), "/nonexistent/path/overlay.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.ShallowMergeYAML(nil, writeOverlay(t, "output: {}\n")))
	})

	t.Run("section type mismatch", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [1, 2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "output"`)
	})
}
