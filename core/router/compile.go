package router

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderRe matches one <name> or <type:name> dynamic segment.
var placeholderRe = regexp.MustCompile(`<(?:([a-zA-Z_][a-zA-Z0-9_]*):)?([a-zA-Z_][a-zA-Z0-9_]*)>`)

// compilePattern builds the full-path matcher and converter table for a
// pattern containing dynamic segments. Literal parts are quoted, so only
// placeholders match variably. The int type compiles to a digit-only
// group; every other type name (or none) compiles to a single-segment
// wildcard with the string converter.
func compilePattern(pattern string) (*regexp.Regexp, map[string]string, error) {
	converters := make(map[string]string)

	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))

		typeName := ""
		if loc[2] >= 0 {
			typeName = pattern[loc[2]:loc[3]]
		}
		name := pattern[loc[4]:loc[5]]
		if _, seen := converters[name]; seen {
			return nil, nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
		}

		if typeName == ConverterInt {
			converters[name] = ConverterInt
			fmt.Fprintf(&b, `(?P<%s>\d+)`, name)
		} else {
			converters[name] = ConverterString
			fmt.Fprintf(&b, `(?P<%s>[^/]+)`, name)
		}
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")

	matcher, err := regexp.Compile(b.String())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRegexp, err)
	}
	return matcher, converters, nil
}

// convert applies the named converter to a captured segment. A failing
// conversion makes the whole rule a non-match, never a server error.
func convert(converter, value string) (any, error) {
	switch converter {
	case ConverterInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return value, nil
	}
}

// matchPath runs the rule's compiled matcher against the full path and
// returns the raw captures on a structural match. Conversion is a
// separate step so the dispatcher can order it after the method check.
func (r *Rule) matchPath(path string) (map[string]string, bool) {
	if r.matcher == nil {
		return nil, false
	}
	m := r.matcher.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	captured := make(map[string]string, len(r.converters))
	for i, name := range r.matcher.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		captured[name] = m[i]
	}
	return captured, true
}

// convertCaptures applies each segment's converter to its raw capture.
// The first failing conversion fails the whole set.
func (r *Rule) convertCaptures(raw map[string]string) (map[string]any, error) {
	converted := make(map[string]any, len(raw))
	for name, value := range raw {
		v, err := convert(r.converters[name], value)
		if err != nil {
			return nil, err
		}
		converted[name] = v
	}
	return converted, nil
}
