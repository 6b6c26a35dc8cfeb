package cli

import (
	"fmt"
	"golang.org/x/term"
	"strings"
)

// DefaultUsageWidth is the column budget for wrapping argument lists when none is configured.
const DefaultUsageWidth = 80

// TerminalWidth returns the width of the terminal referred to by fd.
// The fallback is returned if fd isn't a terminal, or its size can't be read.
func TerminalWidth(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// PrintCommands prints [Manager.Usage] with the [Printer].
func (m *Manager) PrintCommands() {
	m.printer.Print(m.Usage())
}

// Usage renders the name, description, and argument format of every enabled command in registration order.
// Command aliases are listed just before the format line of commands that take arguments.
func (m *Manager) Usage() string {
	var buf strings.Builder
	buf.WriteString("usage:\n")
	padding := strings.Repeat(" ", m.maxName) + "\t"
	for _, reg := range m.commands {
		if !reg.enabled {
			continue
		}
		def := reg.def
		buf.WriteString(fmt.Sprintf("%-*s\t%s\n", m.maxName, "   "+def.name, def.desc))
		if len(def.required)+len(def.optional) == 0 {
			buf.WriteString("\n")
			continue
		}
		format := []string{"format:", def.name}
		optionals := make([]string, len(def.optional))
		for i, opt := range def.optional {
			optionals[i] = fmt.Sprintf("[-%s=%v]", def.displayArg(opt.Name), opt.Default)
		}
		format = append(format, optionals...)
		if def.sorted {
			for _, name := range def.required {
				format = append(format, strings.ToUpper(name))
			}
		} else {
			requires := make([]string, len(def.required))
			for i, name := range def.required {
				requires[i] = "-" + def.displayArg(name)
				format = append(format, requires[i]+"=?")
			}
			m.wrapArgs(&buf, padding, "require:", requires)
			m.wrapArgs(&buf, padding, "optional:", optionals)
		}
		if len(def.aliases) > 0 {
			buf.WriteString(padding + "alias: " + strings.Join(def.aliases, ", ") + "\n")
		}
		buf.WriteString(padding + strings.Join(format, " ") + "\n\n")
	}
	return buf.String()
}

// wrapArgs writes a labelled list of args, starting a new padded line when the budget would be exceeded.
func (m *Manager) wrapArgs(buf *strings.Builder, padding, label string, args []string) {
	if len(args) == 0 {
		return
	}
	line, n := label, 0
	for _, arg := range args {
		if n > 0 && len(line)+1+len(arg) > m.width {
			buf.WriteString(padding + line + "\n")
			line, n = "", 0
		}
		if len(line) > 0 {
			line += " "
		}
		line += arg
		n++
	}
	buf.WriteString(padding + line + "\n")
}

// displayArg joins an argument's name with its aliases, as in 'name|n'.
func (d *Definition) displayArg(name string) string {
	if aliases := d.argAliases[name]; len(aliases) > 0 {
		return name + "|" + strings.Join(aliases, "|")
	}
	return name
}
