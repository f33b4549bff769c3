package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentClassIsValid(t *testing.T) {
	tests := []struct {
		class AgentClass
		valid bool
	}{
		{AgentClassIngest, true},
		{AgentClassQuery, true},
		{AgentClassManagement, true},
		{AgentClass("batch"), false},
		{AgentClass(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.class.IsValid())
		})
	}
}

func TestCanonicalInterrogativeOrder(t *testing.T) {
	expected := []Interrogative{
		InterrogativeWhat, InterrogativeWhere, InterrogativeWhen,
		InterrogativeWho, InterrogativeWhy, InterrogativeHow,
		InterrogativeWhich, InterrogativeHowMany, InterrogativeHowMuch,
		InterrogativeFromWhere, InterrogativeWhatKind,
	}
	assert.Equal(t, expected, CanonicalInterrogatives)

	// Ranks follow slice order and are contiguous from zero.
	for i, q := range CanonicalInterrogatives {
		assert.Equal(t, i, q.Rank(), "rank of %s", q)
		assert.True(t, q.IsValid())
	}
}

func TestInterrogativeUnknownSortsLast(t *testing.T) {
	unknown := Interrogative("whither")
	assert.False(t, unknown.IsValid())
	assert.Equal(t, len(CanonicalInterrogatives), unknown.Rank())
	for _, q := range CanonicalInterrogatives {
		assert.Less(t, q.Rank(), unknown.Rank())
	}
}

func TestInterrogativeLabels(t *testing.T) {
	assert.Equal(t, "What", InterrogativeWhat.Label())
	assert.Equal(t, "How many", InterrogativeHowMany.Label())
	assert.Equal(t, "From where", InterrogativeFromWhere.Label())
	assert.Equal(t, "What kind", InterrogativeWhatKind.Label())
}

func TestToolNameIsValid(t *testing.T) {
	for _, tool := range AllTools {
		assert.True(t, tool.IsValid(), "tool %s", tool)
	}
	assert.False(t, ToolName("shell").IsValid())
	assert.False(t, ToolName("").IsValid())
}

func TestEventKindIsTerminal(t *testing.T) {
	terminal := []EventKind{EventComplete, EventFailed, EventCancelled}
	for _, k := range terminal {
		assert.True(t, k.IsTerminal(), "kind %s", k)
	}

	nonTerminal := []EventKind{
		EventPlanLoaded, EventAgentStarted, EventToolInvoked, EventToolDone,
		EventToolFailed, EventAgentOK, EventAgentError, EventAgentTimeout,
		EventValidating, EventSynthesizing,
	}
	for _, k := range nonTerminal {
		assert.False(t, k.IsTerminal(), "kind %s", k)
	}
}
