package cli

import (
	"bufio"
	"context"
	"io"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that leading tokens should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// RunInteractive reads lines from in and executes each one as a command for program.
// Tokens are split on whitespace, and the program name is prepended before calling [Manager.ExecuteContext].
//
// The [UseCommand] pushes its tokens onto a stack, so they're prepended to every following line until [BackCommand] pops them.
// This loop returns nil when one of [InteractiveQuitCommands] is entered or in is exhausted, and returns the context error if ctx is done.
func (m *Manager) RunInteractive(ctx context.Context, program string, in io.Reader) error {
	var (
		commandStack [][]string
		p            = m.printer
		scanner      = bufio.NewScanner(in)
	)
	prefixTokens := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	p.Printf("Running '%s' interactively. Enter %s to exit.\n", program, strings.Join(InteractiveQuitCommands, " or "))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Printf("%s> ", strings.TrimSpace(program+" "+strings.Join(prefixTokens(), " ")))
		if !scanner.Scan() {
			return scanner.Err()
		}
		segments := strings.Fields(scanner.Text())
		if len(segments) == 0 {
			continue
		}
		switch {
		case len(segments) == 1 && slices.Contains(InteractiveQuitCommands, strings.ToLower(segments[0])):
			return nil
		case segments[0] == UseCommand:
			stack := append(slices.Clone(prefixTokens()), segments[1:]...)
			p.Printf("Using '%s'\n", strings.Join(stack, " "))
			commandStack = append(commandStack, stack)
		case segments[0] == BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
		default:
			argv := append([]string{program}, prefixTokens()...)
			m.ExecuteContext(ctx, append(argv, segments...))
		}
	}
}
