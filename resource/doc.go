// Package resource provides the integer handle table behind the converter
// registry.
//
// Converters are exclusively-owned objects with an explicit open -> close
// lifetime. Callers that hold them across an FFI or RPC boundary cannot pass
// pointers, so the registry hands out small integer handles instead; this
// package implements the table that maps those handles back to live values.
//
// # Handle Table
//
// The Table maps handles to named values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle, err := table.Insert("UTF-8", conv)
//
//	// Retrieve value by handle
//	value, ok := table.Get(handle)
//
//	// Remove and get value back (for teardown)
//	value, ok := table.Remove(handle)
//
// Handle 0 is reserved and always invalid, so a zero value can be used as
// the "no handle" sentinel. Removing a handle twice returns (nil, false)
// rather than corrupting the table; the layer above maps that to a checked
// closed-handle error.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(obs) // obs.OnResourceEvent(Event) on open and close
//
// # Memory Management
//
// Entries are not garbage collected: the owner must call Remove (or Close,
// which drains everything) when an entry's lifetime ends. Freed slots are
// recycled through a free list.
package resource
