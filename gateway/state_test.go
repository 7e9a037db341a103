package gateway

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
Generate all valid transition sequences and ensure that this test contains the exact same set of
valid transition sequences. The purpose of this test is to alert us if outside changes
impact the set of valid transitions.
*/
func TestRecurseTransitionResolution(t *testing.T) {
	allValidTransitionSequences := RecurseTransitionResolution(StatusConfigured, []Status{})
	knownValidTransitionSequences := [][]Status{
		{StatusConfigured, StatusSigned, StatusTokenPending, StatusTokenized},
		{StatusConfigured, StatusSigned, StatusTokenPending, StatusFailed},
		{StatusConfigured, StatusSigned, StatusRedirected},
		{StatusConfigured, StatusBillingVerifying},
	}
	// Ensure all generatedTransitionSequence have a matching knownValidTransitionSequences
	for _, generatedTransitionSequence := range allValidTransitionSequences {
		foundMatch := false
		for _, knownValidTransitionSequence := range knownValidTransitionSequences {
			if reflect.DeepEqual(generatedTransitionSequence, knownValidTransitionSequence) {
				foundMatch = true
			}
		}
		assert.True(t, foundMatch)
	}
	// Ensure all knownValidTransitionSequences have a matching generatedTransitionSequence
	for _, knownValidTransitionSequence := range knownValidTransitionSequences {
		foundMatch := false
		for _, generatedTransitionSequence := range allValidTransitionSequences {
			if reflect.DeepEqual(generatedTransitionSequence, knownValidTransitionSequence) {
				foundMatch = true
			}
		}
		assert.True(t, foundMatch)
	}
}

func TestNextStateValid(t *testing.T) {
	assert.True(t, StatusConfigured.NextStateValid(StatusSigned))
	assert.True(t, StatusConfigured.NextStateValid(StatusBillingVerifying))
	assert.True(t, StatusSigned.NextStateValid(StatusRedirected))
	assert.True(t, StatusTokenPending.NextStateValid(StatusFailed))

	// no skipping the signing step
	assert.False(t, StatusConfigured.NextStateValid(StatusTokenPending))

	// terminal states allow no forward transitions
	for _, terminal := range []Status{StatusTokenized, StatusFailed, StatusRedirected, StatusBillingVerifying} {
		assert.Empty(t, terminal.GetValidTransitions())
	}
}
