// Package macro substitutes %(name) macros in naming patterns.
package macro

import "strings"

// Resolver replaces %(name) macros with registered values. Macros without
// a registered value are left verbatim.
type Resolver struct {
	values map[string]string
}

// New creates an empty macro resolver
func New() *Resolver {
	return &Resolver{values: make(map[string]string)}
}

// Add registers a value for a macro name, replacing any previous value
func (r *Resolver) Add(name, value string) *Resolver {
	r.values[name] = value
	return r
}

// Resolve substitutes all registered macros in s
func (r *Resolver) Resolve(s string) string {
	var sb strings.Builder
	for {
		start := strings.Index(s, "%(")
		if start < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		end := strings.Index(s[start:], ")")
		if end < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		end += start
		name := s[start+2 : end]
		if value, ok := r.values[name]; ok {
			sb.WriteString(s[:start])
			sb.WriteString(value)
		} else {
			sb.WriteString(s[:end+1])
		}
		s = s[end+1:]
	}
}
