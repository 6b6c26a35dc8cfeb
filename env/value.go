package env

import (
	"github.com/saylorsolutions/jasily/convert"
	"os"
	"slices"
	"strings"
)

// lookup finds a variable by key, comparing keys case-insensitive.
func lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	for _, kv := range os.Environ() {
		k, val, found := strings.Cut(kv, "=")
		if found && strings.EqualFold(k, key) {
			return val, true
		}
	}
	return "", false
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

// Get interprets an environment variable as a T using [convert.As].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be converted.
func Get[T convert.Scalar](key string, defaultVal T) T {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	val, err := convert.As[T](sval)
	if err != nil {
		return defaultVal
	}
	return val
}

var (
	DefaultTrue  = []string{"yes", "on"} // DefaultTrue are values considered "true" by [Bool] in addition to what [convert.Bool] accepts, and can be changed.
	DefaultFalse = []string{"no", "off"} // DefaultFalse are values considered "false" by [Bool] in addition to what [convert.Bool] accepts, and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse] before falling back to [Get].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	switch {
	case slices.Contains(DefaultTrue, sval):
		return true
	case slices.Contains(DefaultFalse, sval):
		return false
	}
	return Get(key, defaultVal)
}
