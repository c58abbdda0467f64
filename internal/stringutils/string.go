// Package stringutils provides the string transforms used by URL normalization.
package stringutils

import (
	"regexp"
	"strings"
)

// Trim removes leading and trailing white space.
func Trim[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// Replace replaces every occurrence of old in s with new.
func Replace[T ~string](s T, old, new string) T {
	return T(strings.ReplaceAll(string(s), old, new))
}

// ReplacePattern replaces every match of re in s with repl.
// Inside repl, $ signs are interpreted as in [regexp.Regexp.ReplaceAllString].
func ReplacePattern[T ~string](s T, re *regexp.Regexp, repl string) T {
	return T(re.ReplaceAllString(string(s), repl))
}

// Transform is a single string transformation step.
type Transform func(string) string

// TrimStep returns a [Transform] that calls [Trim].
func TrimStep() Transform { return Trim[string] }

// ReplaceStep returns a [Transform] that calls [Replace] with old and new.
func ReplaceStep(old, new string) Transform {
	return func(s string) string { return Replace(s, old, new) }
}

// PatternStep returns a [Transform] that calls [ReplacePattern] with re and repl.
func PatternStep(re *regexp.Regexp, repl string) Transform {
	return func(s string) string { return ReplacePattern(s, re, repl) }
}

// Chain composes steps into a single [Transform] applied left to right.
func Chain(steps ...Transform) Transform {
	return func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}
