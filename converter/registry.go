package converter

import (
	"go.uber.org/zap"

	"github.com/wippyai/charset-runtime/engine"
	"github.com/wippyai/charset-runtime/errors"
	"github.com/wippyai/charset-runtime/resource"
)

// Handle is an integer reference to a registry-owned converter. Handle 0 is
// always invalid.
type Handle = resource.Handle

// Registry owns converters on behalf of callers that address them by integer
// handle instead of by pointer, typically across an FFI-style boundary. A
// zero or stale handle is a checked invalid_argument condition, never a
// crash; closing a handle twice fails the same way.
type Registry struct {
	table *resource.Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{table: resource.NewTable()}
}

// Open opens a converter for name and returns its handle.
func (g *Registry) Open(name string) (Handle, error) {
	conv, err := Open(name)
	if err != nil {
		return 0, err
	}
	h, err := g.table.Insert(conv.Name(), conv)
	if err != nil {
		_ = conv.Close()
		return 0, errors.New(errors.PhaseOpen, errors.KindInvalidArgument).
			Encoding(name).
			Detail("registry closed").
			Cause(err).
			Build()
	}
	engine.Logger().Debug("converter opened",
		zap.String("encoding", conv.Name()),
		zap.Uint32("handle", uint32(h)))
	return h, nil
}

// Get resolves a handle to its converter. The converter remains owned by the
// registry; callers must not Close it directly.
func (g *Registry) Get(h Handle) (*Converter, error) {
	v, ok := g.table.Get(h)
	if !ok {
		return nil, errors.New(errors.PhaseOpen, errors.KindInvalidArgument).
			Detail("unknown converter handle %d", h).
			Build()
	}
	return v.(*Converter), nil
}

// Close releases the handle and its converter. A second Close on the same
// handle fails with invalid_argument.
func (g *Registry) Close(h Handle) error {
	v, ok := g.table.Remove(h)
	if !ok {
		return errors.New(errors.PhaseClose, errors.KindInvalidArgument).
			Detail("unknown or already closed converter handle %d", h).
			Build()
	}
	return v.(*Converter).Close()
}

// Len returns the number of open handles.
func (g *Registry) Len() int {
	return g.table.Len()
}

// Subscribe registers an observer for open/close events.
func (g *Registry) Subscribe(o resource.Observer) {
	g.table.Subscribe(o)
}

// Unsubscribe removes an observer.
func (g *Registry) Unsubscribe(o resource.Observer) {
	g.table.Unsubscribe(o)
}

// CloseAll closes every open converter and stops accepting opens.
func (g *Registry) CloseAll() error {
	return g.table.Close(func(v any) {
		_ = v.(*Converter).Close()
	})
}
