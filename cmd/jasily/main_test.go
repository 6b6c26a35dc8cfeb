package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	var out strings.Builder
	code := run(append([]string{"jasily"}, args...), strings.NewReader(stdin), &out)
	return code, out.String()
}

func TestRun_Hash(t *testing.T) {
	path := writeTemp(t, "hello world")

	code, out := runCLI(t, "", "hash", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "crc32  0D4A1185\n")
	assert.Contains(t, out, "sha1   2AAE6C35C94FCFB415DBE95F408B9CE91EE846ED\n")

	code, out = runCLI(t, "", "hash", "-a=md5", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "md5    5EB63BBBE01EEED093CB22BB8F5ACDC3\n", out)

	code, out = runCLI(t, "", "hash", "-a=blake3", path)
	assert.Equal(t, 0, code, "The command was found, so it was attempted")
	assert.Contains(t, out, "error on command hash: unknown hash algorithm: 'blake3'")

	code, out = runCLI(t, "", "hash", "-a", "sha256", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "sha256 B94D27B9934D3E08A52E52D7DA7DABFAC484EFE37A5380EE9088F7ACE2EFCDE9\n", out)

	for _, argv := range [][]string{{"hash"}, {"hash", "-a=md5"}, {"hash", "-a", "md5"}} {
		code, out = runCLI(t, "", argv...)
		assert.Equal(t, 0, code)
		assert.Equal(t, "error on command hash: missing argument (PATH)\n", out, argv)
	}
}

func TestRun_Convert(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"Int":          {args: []string{"int", "42"}, expected: "42 (int)\n"},
		"Bool":         {args: []string{"bool", "1"}, expected: "true (bool)\n"},
		"Duration":     {args: []string{"duration", "90s"}, expected: "1m30s (time.Duration)\n"},
		"Invalid":      {args: []string{"int", "x"}, expected: "error on command convert: failed to convert value"},
		"Unknown type": {args: []string{"complex", "1"}, expected: "error on command convert: unknown type 'complex'"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			code, out := runCLI(t, "", append([]string{"convert"}, tc.args...)...)
			assert.Equal(t, 0, code)
			assert.Contains(t, out, tc.expected)
		})
	}
}

func TestRun_Distinct(t *testing.T) {
	path := writeTemp(t, "a\nA\nb\na\nc\n")

	code, out := runCLI(t, "", "distinct", "-file="+path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\nA\nb\nc\n", out)

	code, out = runCLI(t, "", "distinct", "-f", path, "-i=true", "-limit=2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\nb\n", out)

	code, out = runCLI(t, "", "distinct", "-f", path, "-file", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "error on command distinct: conflict arg flag: file and f")

	code, out = runCLI(t, "", "distinct", "-f", path, "-i=maybe")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "error on command distinct: arg ignore-case should be a boolean.")
}

func TestRun_Usage(t *testing.T) {
	code, out := runCLI(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "missing command")
	assert.Contains(t, out, "format: hash [-algorithms|a=crc32,sha1] PATH")

	code, out = runCLI(t, "", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown command: nope")

	code, out = runCLI(t, "", "usage")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Prints this usage information.")

	code, out = runCLI(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--interactive")

	code, _ = runCLI(t, "", "--bogus")
	assert.Equal(t, 2, code)
}

func TestRun_Interactive(t *testing.T) {
	path := writeTemp(t, "hello world")
	code, out := runCLI(t, "hash -a=crc32 "+path+"\nquit\n", "-i")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "crc32  0D4A1185")
}

func TestRun_EnvWidth(t *testing.T) {
	t.Setenv(envUsageWidth, "40")
	code, out := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "optional: [-ignore-case|i=false]\n")
	assert.Contains(t, out, "\t[-limit=0]\n")
}
