package router

import (
	"fmt"
	"strings"

	"github.com/miroslava-go/miroslava/core/handler"
)

// Table is the ordered rule registry plus the endpoint-to-view table.
// Registration is append-only and happens before the server starts; the
// table is read-only during dispatch and therefore safe for concurrent
// readers without locking.
type Table struct {
	rules []*Rule
	views map[string]handler.ViewFunc
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{views: make(map[string]handler.ViewFunc)}
}

// Register validates and appends one rule. The pattern must begin with
// "/"; methods default to {GET}; the endpoint defaults to the pattern
// itself. Registering another pattern under an existing endpoint adds an
// alias; pass a nil view to reuse the endpoint's existing one.
func (t *Table) Register(pattern string, view handler.ViewFunc, opts ...RuleOption) (*Rule, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	var cfg ruleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	methods := make(map[string]struct{}, len(cfg.methods))
	for _, m := range cfg.methods {
		methods[strings.ToUpper(m)] = struct{}{}
	}
	if len(methods) == 0 {
		methods["GET"] = struct{}{}
	}

	endpoint := cfg.endpoint
	if endpoint == "" {
		endpoint = pattern
	}

	if view == nil {
		if _, ok := t.views[endpoint]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNilView, endpoint)
		}
	} else {
		t.views[endpoint] = view
	}

	defaults := make(map[string]any, len(cfg.defaults))
	for k, v := range cfg.defaults {
		defaults[k] = v
	}

	rule := &Rule{
		Pattern:  pattern,
		Methods:  methods,
		Endpoint: endpoint,
		Defaults: defaults,
	}

	if strings.Contains(pattern, "<") && strings.Contains(pattern, ">") {
		matcher, converters, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		rule.matcher = matcher
		rule.converters = converters
	}

	t.rules = append(t.rules, rule)
	return rule, nil
}

// Rules returns the registered rules in registration order.
func (t *Table) Rules() []*Rule {
	return t.rules
}

// View returns the view bound to endpoint.
func (t *Table) View(endpoint string) (handler.ViewFunc, bool) {
	v, ok := t.views[endpoint]
	return v, ok
}
