// Package region resolves which DynamoDB instance an invocation writes to.
package region

// LocalName is the name reported by the Local location.
const LocalName = "local"

// DefaultLocalEndpoint is where DynamoDB Local listens by default.
const DefaultLocalEndpoint = "http://localhost:8000"

// Location identifies a DynamoDB target. It is either a [WellKnown] AWS region
// or a [Local] endpoint; callers dispatch with a type switch.
type Location interface {
	// Name returns the region identifier, or LocalName for Local.
	Name() string

	isLocation()
}

// WellKnown is a named AWS region reached through the default endpoint
// resolution and credential chain.
type WellKnown struct {
	Region string
}

func (w WellKnown) Name() string { return w.Region }
func (WellKnown) isLocation()    {}

// Local is an unauthenticated DynamoDB instance at an explicit endpoint,
// used for development and tests.
type Local struct {
	Endpoint string
}

func (Local) Name() string { return LocalName }
func (Local) isLocation()  {}

// DefaultLocation is substituted whenever no usable region is configured.
func DefaultLocation() Location {
	return Local{Endpoint: DefaultLocalEndpoint}
}
