package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArgNotFound = errors.New("argument not found")
)

// Args is an ordered view over raw input tokens.
// Tokens may be read positionally, and flags may be looked up by name.
//
// Flags are given as '-name=value', '-name value', or a bare '-name'.
// A bare flag takes the following token as its value if that token isn't a flag itself, otherwise its value is empty.
// Double dash prefixes are accepted as well, and a token of just '-' or '--' is never a flag.
// Tokens that are neither flags nor values taken by a bare flag are positional.
type Args struct {
	tokens     []string
	positional []string
	keys       []string
	flags      map[string]string
}

// ParseArgs tokenizes argv into [Args].
// The first two tokens are expected to be the program name and the command name, but nothing is enforced here.
func ParseArgs(argv []string) *Args {
	a := &Args{
		tokens: make([]string, len(argv)),
		flags:  map[string]string{},
	}
	copy(a.tokens, argv)
	for i := 0; i < len(a.tokens); i++ {
		name, ok := flagName(a.tokens[i])
		if !ok {
			a.positional = append(a.positional, a.tokens[i])
			continue
		}
		var val string
		if key, inline, found := strings.Cut(name, "="); found {
			name, val = key, inline
		} else if i+1 < len(a.tokens) {
			if _, next := flagName(a.tokens[i+1]); !next {
				val = a.tokens[i+1]
				i++
			}
		}
		if len(name) == 0 {
			a.positional = append(a.positional, a.tokens[i])
			continue
		}
		if _, seen := a.flags[name]; !seen {
			a.keys = append(a.keys, name)
		}
		a.flags[name] = val
	}
	return a
}

func flagName(token string) (string, bool) {
	if token == "-" || token == "--" || !strings.HasPrefix(token, "-") {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(token, "-"), "-")
	return name, len(name) > 0
}

// Index returns the raw token at position i, or an empty string if i is out of range.
func (a *Args) Index(i int) string {
	if i < 0 || i >= len(a.tokens) {
		return ""
	}
	return a.tokens[i]
}

// Len returns the number of raw tokens.
func (a *Args) Len() int {
	return len(a.tokens)
}

// Has reports whether a flag with the given name was passed.
func (a *Args) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Get returns the value of the named flag.
// If a flag is repeated, then the last value wins.
func (a *Args) Get(name string) (string, bool) {
	val, ok := a.flags[name]
	return val, ok
}

// MustGet is like Get, but returns an error wrapping [ErrArgNotFound] if the flag wasn't passed.
func (a *Args) MustGet(name string) (string, error) {
	val, ok := a.flags[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrArgNotFound, name)
	}
	return val, nil
}

// Keys returns flag names in the order they first appeared.
func (a *Args) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Tokens returns a copy of all raw tokens in input order.
func (a *Args) Tokens() []string {
	tokens := make([]string, len(a.tokens))
	copy(tokens, a.tokens)
	return tokens
}

// Positional returns the tokens that are neither flags nor flag values, in input order.
// The program and command names are included when present.
func (a *Args) Positional() []string {
	positional := make([]string, len(a.positional))
	copy(positional, a.positional)
	return positional
}
