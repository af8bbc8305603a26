package greeting

import "fmt"

// Event is the inbound greeting request.
type Event struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Output is returned to the caller after the event has been stored.
type Output struct {
	Message string `json:"message"`
}

// NewOutput builds the greeting for a validated event.
func NewOutput(e Event) Output {
	return Output{Message: fmt.Sprintf("Hello %s", e.FirstName)}
}
