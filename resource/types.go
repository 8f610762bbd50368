package resource

// Handle is an opaque reference to an entry in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType identifies a lifecycle event.
type EventType uint8

const (
	EventOpened EventType = iota
	EventClosed
)

// Event describes one lifecycle transition of a tracked entry.
type Event struct {
	Value  any
	Name   string
	Handle Handle
	Type   EventType
}

// Observer receives notifications about entry lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}
