package htmlfix

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Rule rewrites the content of one file. path is relative to the site root.
type Rule interface {
	Name() string
	Apply(content, path string) (string, error)
}

// Match exposes the groups of one regexp2 match to rewrite functions
type Match struct {
	Text   string   // whole match
	Groups []string // Groups[0] == Text; non-participating groups are ""
}

// Group returns group i, or "" when out of range
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

func newMatch(m regexp2.Match) Match {
	groups := m.Groups()
	out := Match{Text: m.String(), Groups: make([]string, len(groups))}
	for i, g := range groups {
		if len(g.Captures) > 0 {
			out.Groups[i] = g.String()
		}
	}
	return out
}

func compile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

// replaceRule substitutes a .NET style template ($1, ${name}) for every match
type replaceRule struct {
	name string
	re   *regexp2.Regexp
	repl string
}

// Replace returns a rule that replaces every match of pattern with repl
func Replace(name, pattern, repl string) Rule {
	return &replaceRule{name: name, re: compile(pattern), repl: repl}
}

func (r *replaceRule) Name() string { return r.name }

func (r *replaceRule) Apply(content, _ string) (string, error) {
	out, err := r.re.Replace(content, r.repl, -1, -1)
	if err != nil {
		return content, fmt.Errorf("%s: %w", r.name, err)
	}
	return out, nil
}

// rewriteRule computes the replacement of every match with a function
type rewriteRule struct {
	name string
	re   *regexp2.Regexp
	fn   func(Match) string
}

// Rewrite returns a rule that replaces every match of pattern with fn(match)
func Rewrite(name, pattern string, fn func(Match) string) Rule {
	return &rewriteRule{name: name, re: compile(pattern), fn: fn}
}

func (r *rewriteRule) Name() string { return r.name }

func (r *rewriteRule) Apply(content, _ string) (string, error) {
	out, err := r.re.ReplaceFunc(content, func(m regexp2.Match) string {
		return r.fn(newMatch(m))
	}, -1, -1)
	if err != nil {
		return content, fmt.Errorf("%s: %w", r.name, err)
	}
	return out, nil
}

// EnsureClass returns a rule that appends add to the first class attribute of
// every match of pattern, unless the match already satisfies has.
func EnsureClass(name, pattern, has, add string) Rule {
	guard := compile(has)
	return Rewrite(name, pattern, func(m Match) string {
		if ok, _ := guard.MatchString(m.Text); ok {
			return m.Text
		}
		return appendClasses(m.Text, add)
	})
}

// Strip returns a rule that removes from every match the text between the
// groups named by keep, i.e. the match is replaced by the concatenation of
// those groups. unless, when set, leaves matches containing any of its
// substrings untouched.
func Strip(name, pattern string, keep []int, unless ...string) Rule {
	return Rewrite(name, pattern, func(m Match) string {
		for _, u := range unless {
			if strings.Contains(m.Text, u) {
				return m.Text
			}
		}
		var b strings.Builder
		for _, i := range keep {
			b.WriteString(m.Group(i))
		}
		return b.String()
	})
}

var classAttr = compile(`class="([^"]*)"`)

// appendClasses adds classes (leading space included) to the first class attribute in s.
// Trailing whitespace in the existing value is dropped so repeated removal and
// re-addition settle on the same text.
func appendClasses(s, add string) string {
	m, err := classAttr.FindStringMatch(s)
	if err != nil || m == nil {
		return s
	}
	// regexp2 reports rune offsets
	runes := []rune(s)
	existing := strings.TrimRight(m.GroupByNumber(1).String(), " \t")
	return string(runes[:m.Index]) + `class="` + existing + add + `"` + string(runes[m.Index+m.Length:])
}

// pathRule applies inner only to paths containing one of substrings
type pathRule struct {
	substrings []string
	inner      Rule
}

// ForPaths restricts rule to files whose relative path contains any of substrings
func ForPaths(substrings []string, rule Rule) Rule {
	return &pathRule{substrings: substrings, inner: rule}
}

func (r *pathRule) Name() string { return r.inner.Name() }

func (r *pathRule) Apply(content, path string) (string, error) {
	for _, s := range r.substrings {
		if strings.Contains(path, s) {
			return r.inner.Apply(content, path)
		}
	}
	return content, nil
}

// exceptRule applies inner to every path except those containing one of substrings
type exceptRule struct {
	substrings []string
	inner      Rule
}

// ExceptPaths skips rule for files whose relative path contains any of substrings
func ExceptPaths(substrings []string, rule Rule) Rule {
	return &exceptRule{substrings: substrings, inner: rule}
}

func (r *exceptRule) Name() string { return r.inner.Name() }

func (r *exceptRule) Apply(content, path string) (string, error) {
	for _, s := range r.substrings {
		if s != "" && strings.Contains(path, s) {
			return content, nil
		}
	}
	return r.inner.Apply(content, path)
}

// insertRule applies inner only when content contains require and lacks marker
type insertRule struct {
	require string
	marker  string
	inner   Rule
}

// InsertOnce applies rule when content contains require and does not yet contain marker
func InsertOnce(require, marker string, rule Rule) Rule {
	return &insertRule{require: require, marker: marker, inner: rule}
}

func (r *insertRule) Name() string { return r.inner.Name() }

func (r *insertRule) Apply(content, path string) (string, error) {
	if !strings.Contains(content, r.require) || strings.Contains(content, r.marker) {
		return content, nil
	}
	return r.inner.Apply(content, path)
}
