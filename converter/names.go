package converter

import (
	"github.com/wippyai/charset-runtime/engine"
)

// AvailableNames returns the sorted engine canonical names of every
// supported encoding.
func AvailableNames() []string {
	return engine.Names()
}

// CanonicalName resolves name (or any alias) and returns the preferred
// external name: MIME-registered, then IANA-registered, then an existing
// "x-" alias, then a synthesized "x-" name. The ordering is stable across
// releases because callers persist these names.
func CanonicalName(name string) (string, error) {
	e, err := engine.Lookup(name)
	if err != nil {
		return "", err
	}
	return e.CanonicalName(), nil
}

// Aliases resolves name and returns its known alternate spellings.
func Aliases(name string) ([]string, error) {
	e, err := engine.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Aliases(), nil
}
