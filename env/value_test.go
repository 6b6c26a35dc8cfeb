package env

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"time"
)

func TestVal(t *testing.T) {
	const key = "TEST_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestVal_CaseInsensitive(t *testing.T) {
	t.Setenv("TEST_MIXED_Case", "found")
	assert.Equal(t, "found", Val("test_mixed_case", "default"))
}

func TestBool(t *testing.T) {
	const key = "TEST_BOOL"
	tests := []struct {
		name       string
		unset      bool
		value      string
		defaultVal bool
		expected   bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: false,
		},
		{
			name:       "Empty",
			value:      "",
			defaultVal: true,
			expected:   true,
		},
		{
			name:       "Not a bool",
			value:      "blah",
			defaultVal: true,
			expected:   true,
		},
		{
			name:     "Truthy",
			value:    DefaultTrue[0],
			expected: true,
		},
		{
			name:     "Truthy Uppercase",
			value:    strings.ToUpper(DefaultTrue[0]),
			expected: true,
		},
		{
			name:       "Falsy",
			value:      DefaultFalse[0],
			defaultVal: true,
			expected:   false,
		},
		{
			name:     "Converted",
			value:    "1",
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Bool(key, tc.defaultVal))
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("TEST_GET_INT", "100")
	t.Setenv("TEST_GET_NEG", "-100")
	t.Setenv("TEST_GET_BAD", "blah")
	t.Setenv("TEST_GET_FLOAT", "2.5")
	t.Setenv("TEST_GET_DURATION", "1m")

	assert.Equal(t, int64(100), Get("TEST_GET_INT", int64(-17)))
	assert.Equal(t, -100, Get("TEST_GET_NEG", 0))
	assert.Equal(t, uint(7), Get("TEST_GET_NEG", uint(7)), "Negative values can't be unsigned")
	assert.Equal(t, -17, Get("TEST_GET_BAD", -17))
	assert.Equal(t, -17, Get("TEST_GET_UNSET", -17))
	assert.Equal(t, 2.5, Get("TEST_GET_FLOAT", 0.0))
	assert.Equal(t, time.Minute, Get("TEST_GET_DURATION", time.Second))
	assert.Equal(t, time.Second, Get("TEST_GET_BAD", time.Second))
	assert.Equal(t, "blah", Get("TEST_GET_BAD", "default"))
}
