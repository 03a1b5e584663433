package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/esgfocus/internal/disclosure"
)

func TestTopicsList(t *testing.T) {
	setupCLITest(t)

	out, err := runCLI(t, "", "topics", "list")
	require.NoError(t, err)
	for _, topic := range disclosure.MaterialTopics() {
		assert.Contains(t, out, topic)
	}
	assert.Contains(t, out, "14  Data Privacy")
	assert.Contains(t, out, "GRI Standards 2021 (default)")
	assert.Contains(t, out, "- BRSR\n")
}
