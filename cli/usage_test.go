package cli

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestManager_Usage(t *testing.T) {
	m, buf := testManager()
	m.Command("greet", noop, Required("name"), Optional("times", 1)).
		Alias("g").
		ArgAlias("name", "n").
		MustBuild()
	m.Command("version", noop).Alias("v").Describe("Prints the version.").MustBuild()

	padding := strings.Repeat(" ", len("version")) + "\t"
	expected := "usage:\n" +
		"   greet\tgreet command.\n" +
		padding + "require: -name|n\n" +
		padding + "optional: [-times=1]\n" +
		padding + "alias: g\n" +
		padding + "format: greet [-times=1] -name|n=?\n" +
		"\n" +
		"   version\tPrints the version.\n" +
		"\n"
	assert.Equal(t, expected, m.Usage())

	m.PrintCommands()
	assert.Equal(t, expected, buf.String())
}

func TestManager_Usage_Sorted(t *testing.T) {
	m, _ := testManager()
	m.Command("hash", noop, Required("path"), Optional("algorithms", "crc32,sha1")).
		Alias("sum").
		ArgAlias("algorithms", "a").
		Sorted().
		MustBuild()
	usage := m.Usage()
	assert.Contains(t, usage, "alias: sum\n"+strings.Repeat(" ", len("hash"))+"\tformat: hash [-algorithms|a=crc32,sha1] PATH\n")
	assert.NotContains(t, usage, "require:")
	assert.NotContains(t, usage, "optional:")
}

func TestManager_Usage_Wrap(t *testing.T) {
	m, _ := testManager(WithUsageWidth(20))
	m.Command("wrap", noop, Required("aaaaaaaa"), Required("bbbbbbbb"), Required("cccccccc")).MustBuild()
	padding := strings.Repeat(" ", len("wrap")) + "\t"
	usage := m.Usage()
	assert.Contains(t, usage, padding+"require: -aaaaaaaa\n")
	assert.Contains(t, usage, padding+"-bbbbbbbb -cccccccc\n")
}

func TestTerminalWidth(t *testing.T) {
	// A negative descriptor is never a terminal.
	assert.Equal(t, 42, TerminalWidth(-1, 42))
}
