package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Staging, ParseEnvironment("staging"))
	assert.Equal(t, Testing, ParseEnvironment("testing"))
	assert.Equal(t, Development, ParseEnvironment("development"))
	// Unknown values fall back to development.
	assert.Equal(t, Development, ParseEnvironment("qa"))
	assert.Equal(t, Development, ParseEnvironment(""))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, Production.IsProduction())
	assert.False(t, Development.IsProduction())
}
