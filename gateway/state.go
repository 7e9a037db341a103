package gateway

// Status is a string representing where a transaction sits in the
// initiation protocol.
type Status string

const (
	// StatusConfigured represents a client that holds validated parameters but has not signed them.
	StatusConfigured Status = "configured"
	// StatusSigned represents a parameter set with a freshly computed digest.
	StatusSigned Status = "signed"
	// StatusTokenPending represents a token request in flight to the web service.
	StatusTokenPending Status = "tokenpending"
	// StatusTokenized represents a client holding an issued web service token.
	StatusTokenized Status = "tokenized"
	// StatusFailed represents a gateway rejection, terminal for this client.
	StatusFailed Status = "failed"
	// StatusRedirected represents control passed to the payer's browser, terminal here.
	StatusRedirected Status = "redirected"
	// StatusBillingVerifying represents control passed to the billing info verifier, terminal here.
	StatusBillingVerifying Status = "billingverifying"
)

// Transitions represents the valid forward-transitions for each given state.
var Transitions = map[Status][]Status{
	StatusConfigured:       {StatusSigned, StatusBillingVerifying},
	StatusSigned:           {StatusTokenPending, StatusRedirected},
	StatusTokenPending:     {StatusTokenized, StatusFailed},
	StatusTokenized:        {},
	StatusFailed:           {},
	StatusRedirected:       {},
	StatusBillingVerifying: {},
}

// GetValidTransitions returns valid transitions.
func (s Status) GetValidTransitions() []Status {
	return Transitions[s]
}

// NextStateValid reports whether to is a valid forward transition from s.
func (s Status) NextStateValid(to Status) bool {
	for _, valid := range s.GetValidTransitions() {
		if to == valid {
			return true
		}
	}
	return false
}

// GetAllValidTransitionSequences returns all valid transition sequences.
func GetAllValidTransitionSequences() [][]Status {
	return RecurseTransitionResolution(StatusConfigured, []Status{})
}

// RecurseTransitionResolution returns the list of valid transition paths that are
// possible for a given state.
func RecurseTransitionResolution(
	state Status,
	currentTree []Status,
) [][]Status {
	var (
		result      [][]Status
		updatedTree = append(currentTree, state)
	)
	possibleStates := state.GetValidTransitions()
	if len(possibleStates) == 0 {
		tempTree := make([]Status, len(updatedTree))
		copy(tempTree, updatedTree)
		result = append(result, tempTree)
		return result
	}
	for _, possibleState := range possibleStates {
		recursed := RecurseTransitionResolution(possibleState, updatedTree)
		result = append(result, recursed...)
	}
	return result
}
