package appctx

// Globals is a string-keyed value namespace scoped to one application
// context. It backs the "g" object handler code uses to stash values for
// the duration of a single request.
type Globals struct {
	values map[string]any
}

// NewGlobals creates an empty namespace.
func NewGlobals() *Globals {
	return &Globals{values: make(map[string]any)}
}

// Set stores a value under key, replacing any previous one.
func (g *Globals) Set(key string, value any) {
	g.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (g *Globals) Get(key string) (any, bool) {
	v, ok := g.values[key]
	return v, ok
}

// GetOr returns the value stored under key, or def when absent.
func (g *Globals) GetOr(key string, def any) any {
	if v, ok := g.values[key]; ok {
		return v
	}
	return def
}

// Pop removes and returns the value stored under key, or def when absent.
func (g *Globals) Pop(key string, def any) any {
	if v, ok := g.values[key]; ok {
		delete(g.values, key)
		return v
	}
	return def
}

// Delete removes the value stored under key.
func (g *Globals) Delete(key string) {
	delete(g.values, key)
}

// Has reports whether key is present.
func (g *Globals) Has(key string) bool {
	_, ok := g.values[key]
	return ok
}

// Len returns the number of stored values.
func (g *Globals) Len() int {
	return len(g.values)
}
