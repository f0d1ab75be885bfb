package header

import "strings"

// Header is a case-insensitive, multi-valued HTTP header collection.
// Keys are stored in canonical MIME form.
type Header map[string][]string

// New creates an empty Header.
func New() Header {
	return make(Header)
}

// Canonical returns the canonical MIME form of a header name:
// the first letter and any letter following a hyphen is upper-cased,
// the rest lower-cased.
func Canonical(name string) string {
	b := []byte(strings.ToLower(name))
	upper := true
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			if upper {
				b[i] = c - 'a' + 'A'
			}
			upper = false
			continue
		}
		upper = c == '-'
	}
	return string(b)
}

// Set replaces all values stored under name with a single value.
func (h Header) Set(name, value string) {
	h[Canonical(name)] = []string{value}
}

// Add appends a value under name, preserving existing ones.
func (h Header) Add(name, value string) {
	key := Canonical(name)
	h[key] = append(h[key], value)
}

// Get returns the first value stored under name, or "" when absent.
func (h Header) Get(name string) string {
	if vv := h[Canonical(name)]; len(vv) > 0 {
		return vv[0]
	}
	return ""
}

// Values returns all values stored under name.
func (h Header) Values(name string) []string {
	return h[Canonical(name)]
}

// Has reports whether name is present.
func (h Header) Has(name string) bool {
	_, ok := h[Canonical(name)]
	return ok
}

// Del removes all values stored under name.
func (h Header) Del(name string) {
	delete(h, Canonical(name))
}

// Joined returns all values under name joined with ", ", the HTTP
// convention for folding a multi-valued header into one field line.
func (h Header) Joined(name string) string {
	return strings.Join(h[Canonical(name)], ", ")
}

// SetJoined stores the given values under name as a single field,
// joined with ", ".
func (h Header) SetJoined(name string, values ...string) {
	h.Set(name, strings.Join(values, ", "))
}

// Clone returns a deep copy of the collection.
func (h Header) Clone() Header {
	c := make(Header, len(h))
	for k, vv := range h {
		c[k] = append([]string(nil), vv...)
	}
	return c
}
