package dispatchers

import (
	"sort"
	"strconv"
	"strings"
)

// ParsedFlags is the set of flags given on a command line, with the
// "--" prefix already stripped. Duplicates collapse; order is irrelevant.
type ParsedFlags struct {
	set map[string]struct{}
}

// NewParsedFlags creates a ParsedFlags from a slice of flag names.
func NewParsedFlags(names []string) *ParsedFlags {
	f := &ParsedFlags{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		f.set[n] = struct{}{}
	}
	return f
}

// Has returns true if the flag is present (for boolean flags).
// A nil ParsedFlags has no flags.
func (f *ParsedFlags) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.set[name]
	return ok
}

// Names returns the flag names, sorted.
func (f *ParsedFlags) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.set))
	for n := range f.set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns the value of a name=value flag, or defaultVal if not
// present or empty. When the flag is repeated the lexically first
// value wins, which keeps lookups deterministic.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.Names() {
		if strings.HasPrefix(flag, prefix) {
			if v := strings.TrimPrefix(flag, prefix); v != "" {
				return v
			}
		}
	}
	return defaultVal
}

// Bool returns true if the flag is present bare or as name=true.
func (f *ParsedFlags) Bool(name string) bool {
	if f.Has(name) {
		return true
	}
	v, err := strconv.ParseBool(f.String(name, "false"))
	return err == nil && v
}
