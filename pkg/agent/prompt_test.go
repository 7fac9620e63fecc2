package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_CarriesMarkers(t *testing.T) {
	p := BuildPrompt("Refactor the LoginButton", "system: boot\nuser: Refactor the LoginButton\n")

	// The template and the parser must agree on the marker literals.
	assert.Contains(t, p, MarkerPlan+":")
	assert.Contains(t, p, MarkerAction+":")
	assert.Contains(t, p, "Context so far: system: boot\nuser: Refactor the LoginButton\n\nUser Request:")
	assert.True(t, strings.HasSuffix(p, "User Request: Refactor the LoginButton"))
}
