package provisioning

// State holds the ids produced by workflow steps.
// It is populated as each step completes and read by later steps.
type State struct {
	ProjectID         string
	NetworkID         string
	SubnetID          string
	ExternalNetworkID string
	RouterID          string
	RouterPortID      string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
