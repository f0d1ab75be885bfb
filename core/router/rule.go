package router

import (
	"regexp"
	"strings"
)

// Converter names form a fixed, closed set; any placeholder type other
// than "int" (including an omitted one) falls back to the string
// converter.
const (
	ConverterString = "str"
	ConverterInt    = "int"
)

// Rule is one registered endpoint binding. Rules are created once at
// registration time and never mutated afterwards; the table owns them for
// the process lifetime.
type Rule struct {
	// Pattern is the raw pattern string; always begins with "/".
	Pattern string

	// Methods is the set of allowed HTTP methods, uppercase, never empty.
	Methods map[string]struct{}

	// Endpoint is the key into the view table.
	Endpoint string

	// Defaults supplies path variables not present in every alias of the
	// same endpoint.
	Defaults map[string]any

	// matcher is non-nil only when Pattern contains dynamic segments.
	matcher *regexp.Regexp

	// converters maps each dynamic segment name to its converter.
	converters map[string]string
}

// IsDynamic reports whether the rule carries a compiled matcher.
func (r *Rule) IsDynamic() bool {
	return r.matcher != nil
}

// AllowsMethod reports whether method is in the rule's method set.
func (r *Rule) AllowsMethod(method string) bool {
	_, ok := r.Methods[strings.ToUpper(method)]
	return ok
}

// RuleOption customizes one registration.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	methods  []string
	endpoint string
	defaults map[string]any
}

// WithMethods restricts the rule to the given HTTP methods. Methods are
// normalized to uppercase; without this option the rule accepts GET only.
func WithMethods(methods ...string) RuleOption {
	return func(c *ruleConfig) { c.methods = methods }
}

// WithEndpoint names the endpoint explicitly. Registering several
// patterns under one endpoint stacks aliases on the same view.
func WithEndpoint(endpoint string) RuleOption {
	return func(c *ruleConfig) { c.endpoint = endpoint }
}

// WithDefaults supplies default values for path variables absent from
// this alias of the endpoint.
func WithDefaults(defaults map[string]any) RuleOption {
	return func(c *ruleConfig) { c.defaults = defaults }
}
