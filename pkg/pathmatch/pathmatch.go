// Package pathmatch implements find -path matching semantics.
//
// It follows fnmatch(3) without FNM_PATHNAME:
//   - * matches any run of characters, / included
//   - ? matches exactly one character, / included
//   - [...] matches one character from the set, [!...] negates it
//   - \ escapes the next character
//
// Go's filepath.Match differs in that * stops at directory separators.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a set of compiled patterns.
// The zero value and a Matcher built from no patterns match nothing.
type Matcher struct {
	sources  []string
	compiled []*regexp.Regexp
}

// NewMatcher compiles patterns. The first invalid pattern aborts compilation.
func NewMatcher(patterns []string) (*Matcher, error) {
	matcher := &Matcher{
		sources:  make([]string, 0, len(patterns)),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		matcher.sources = append(matcher.sources, pattern)
		matcher.compiled = append(matcher.compiled, re)
	}

	return matcher, nil
}

// Len returns the number of patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}

	return len(m.compiled)
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	_, ok := m.First(path)

	return ok
}

// First returns the first pattern, in declaration order, that matches path.
func (m *Matcher) First(path string) (string, bool) {
	if m == nil {
		return "", false
	}

	for i, re := range m.compiled {
		if re.MatchString(path) {
			return m.sources[i], true
		}
	}

	return "", false
}

var cache sync.Map //nolint:gochecknoglobals // compiled patterns are immutable and shared

func compile(pattern string) (*regexp.Regexp, error) {
	if v, ok := cache.Load(pattern); ok {
		re, _ := v.(*regexp.Regexp) //nolint:errcheck // only *regexp.Regexp is stored

		return re, nil
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	actual, _ := cache.LoadOrStore(pattern, re)
	re, _ = actual.(*regexp.Regexp) //nolint:errcheck // only *regexp.Regexp is stored

	return re, nil
}

// translate rewrites a glob into an anchored regular expression.
func translate(pattern string) (string, error) {
	var out strings.Builder

	out.Grow(len(pattern) + 2) //nolint:mnd
	out.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			// Consecutive stars collapse; "**" means the same as "*" here.
			for i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
			}

			out.WriteString(".*")
		case '?':
			out.WriteByte('.')
		case '\\':
			if i+1 == len(pattern) {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

			i++
			out.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		case '[':
			end, err := classEnd(pattern, i)
			if err != nil {
				return "", err
			}

			out.WriteString(class(pattern[i+1 : end]))

			i = end
		default:
			out.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		}
	}

	out.WriteByte('$')

	return out.String(), nil
}

// classEnd returns the index of the ] closing the bracket expression opened at start.
// A ] directly after [ or [! is literal.
func classEnd(pattern string, start int) (int, error) {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	if end := strings.IndexByte(pattern[i:], ']'); end >= 0 {
		return i + end, nil
	}

	return 0, fmt.Errorf("unclosed character class in pattern %q", pattern)
}

// class converts the body of a bracket expression into a regexp class.
func class(body string) string {
	negate := strings.HasPrefix(body, "!")
	if negate {
		body = body[1:]
	}

	var out strings.Builder

	out.WriteByte('[')

	if negate {
		out.WriteByte('^')
	}

	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\', ']', '[', '^':
			out.WriteByte('\\')
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}

	out.WriteByte(']')

	return out.String()
}
