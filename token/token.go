// Package token matches ordered tag rules against the front of free text.
//
// Rules are tried in order and the first one with a matching pattern wins,
// so longer or more specific patterns must be listed before the short ones
// they would otherwise be mistaken for ("major seventh" before "major",
// "maj" before "m").
package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Rule[T any] struct {
	Patterns []string
	Tag      T

	// CaseSensitive patterns compare runes exactly, the rest fold case.
	CaseSensitive bool

	// Bounded patterns only match when followed by whitespace, a digit or
	// the end of the input.
	Bounded bool
}

type Recognizer[T any] struct {
	rules []Rule[T]
}

func NewRecognizer[T any](rules ...Rule[T]) Recognizer[T] {
	return Recognizer[T]{rules: rules}
}

// Match returns the tag of the first matching rule and the number of bytes
// of s consumed, leading whitespace included.
func (r Recognizer[T]) Match(s string) (T, int, bool) {
	start := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	for _, rule := range r.rules {
		for _, pattern := range rule.Patterns {
			end, ok := matchPrefix(s[start:], pattern, rule.CaseSensitive)
			if !ok {
				continue
			}
			if rule.Bounded && !atBoundary(s[start+end:]) {
				continue
			}
			return rule.Tag, start + end, true
		}
	}
	var zero T
	return zero, 0, false
}

// Patterns returns every pattern in priority order.
func (r Recognizer[T]) Patterns() []string {
	var res []string
	for _, rule := range r.rules {
		res = append(res, rule.Patterns...)
	}
	return res
}

// a space in the pattern stands for one or more whitespace runes
func matchPrefix(s string, pattern string, caseSensitive bool) (int, bool) {
	pos := 0
	for _, want := range pattern {
		if want == ' ' {
			n := 0
			for pos < len(s) {
				r, size := utf8.DecodeRuneInString(s[pos:])
				if !unicode.IsSpace(r) {
					break
				}
				pos += size
				n++
			}
			if n == 0 {
				return 0, false
			}
			continue
		}

		if pos >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[pos:])
		if !sameRune(got, want, caseSensitive) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func sameRune(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}

func atBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r) || unicode.IsDigit(r)
}
