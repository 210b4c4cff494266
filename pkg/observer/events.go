package observer

import "context"

// Event names a record lifecycle phase the observer can attach to.
type Event string

const (
	EventCreating Event = "creating"
	EventUpdating Event = "updating"
)

// Hook is invoked with the event payload before the host proceeds with the
// lifecycle action. Returning an error aborts the action.
type Hook func(ctx context.Context, rec any) error

// Dispatcher is the host event boundary the observer registers onto.
// Implementations call every subscribed hook, in subscription order, before
// performing the lifecycle action, and stop on the first error.
type Dispatcher interface {
	Subscribe(event Event, hook Hook)
}
