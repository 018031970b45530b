package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("300:CAT,60:advance\n900:rats scatter:1")
	assert.Error(t, err, "tick must come first")
	assert.Nil(t, s)

	s, err = ParseScript("300:CAT,60:advance\n900:rats")
	require.NoError(t, err)
	assert.Equal(t, Script{
		{Tick: 60, Trigger: TriggerAdvance},
		{Tick: 300, Trigger: TriggerFormCat},
		{Tick: 900, Trigger: TriggerWalkRats},
	}, s)

	empty, err := ParseScript("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"advance", "-1:reset", "x:reset", "10:fly"} {
		_, err := ParseScript(in)
		assert.Error(t, err, in)
	}
}

func TestScriptDue(t *testing.T) {
	s := Script{{Tick: 1}, {Tick: 3}, {Tick: 3, Trigger: TriggerScatter}, {Tick: 8}}

	due, rest := s.Due(0)
	assert.Empty(t, due)
	assert.Len(t, rest, 4)

	due, rest = rest.Due(3)
	assert.Len(t, due, 3)
	assert.Equal(t, TriggerScatter, due[2].Trigger)
	assert.Equal(t, Script{{Tick: 8}}, rest)
}
