package help

import (
	"fmt"

	"github.com/linkme/linkme-api/schema"
)

// Event triggers a status transition of a help request
type Event string

const (
	EventAccept   Event = "accept"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

// transitions lists every allowed move. Terminal statuses have no entry.
var transitions = map[schema.RequestStatus]map[Event]schema.RequestStatus{
	schema.HelpOpen: {
		EventAccept: schema.HelpAccepted,
		EventCancel: schema.HelpCancelled,
	},
	schema.HelpAccepted: {
		EventComplete: schema.HelpCompleted,
	},
}

// NextStatus returns the status an event moves a request to, or
// ErrInvalidTransition when the event is not allowed from the status
func NextStatus(from schema.RequestStatus, event Event) (schema.RequestStatus, error) {
	if to, ok := transitions[from][event]; ok {
		return to, nil
	}
	return "", fmt.Errorf("%w: cannot %s a request that is %s", ErrInvalidTransition, event, from)
}
