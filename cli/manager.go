package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ManagerOption configures a [Manager] at construction.
type ManagerOption func(m *Manager)

// WithPrinter sets the [Printer] used for user-visible output.
func WithPrinter(printer *Printer) ManagerOption {
	return func(m *Manager) {
		if printer != nil {
			m.printer = printer
		}
	}
}

// WithLogger sets the logger used for diagnostic tracing.
// Nothing is logged by default.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithUsageWidth sets the column budget used to wrap argument lists in usage output.
// Values less than 1 are ignored.
func WithUsageWidth(width int) ManagerOption {
	return func(m *Manager) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithPreExec adds functions that run right before each command is bound and executed.
func WithPreExec(fns ...PreExec) ManagerOption {
	return func(m *Manager) {
		for _, fn := range fns {
			m.AddPreExec(fn)
		}
	}
}

type registered struct {
	def     *Definition
	enabled bool
}

// Manager maps command names and aliases to their [Definition], and drives execution.
//
// Commands should be registered before any are executed.
// The Manager isn't safe for concurrent registration.
type Manager struct {
	commands []*registered
	mapper   map[string]*registered
	maxName  int
	printer  *Printer
	log      *slog.Logger
	width    int
	preExec  []PreExec
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		mapper:  map[string]*registered{},
		printer: NewPrinter(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		width:   DefaultUsageWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Printer returns the [Printer] for this Manager.
func (m *Manager) Printer() *Printer {
	return m.printer
}

// Register adds a [Definition] and maps its name and aliases to it.
// If any name or alias is already claimed, then an error wrapping [ErrNameCollision] is returned, and nothing is registered.
func (m *Manager) Register(def *Definition) error {
	if def == nil {
		return newDefinitionError("cannot register a nil command")
	}
	names := def.Names()
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		name = normalizeName(name)
		if seen[name] {
			return fmt.Errorf("%w: '%s' is claimed more than once by command '%s'", ErrNameCollision, name, def.name)
		}
		if other, ok := m.mapper[name]; ok {
			return fmt.Errorf("%w: '%s' is already registered to command '%s'", ErrNameCollision, name, other.def.name)
		}
		seen[name] = true
		names[i] = name
	}
	reg := &registered{def: def, enabled: !def.hidden}
	m.commands = append(m.commands, reg)
	for _, name := range names {
		m.mapper[name] = reg
		m.maxName = max(m.maxName, len(name))
	}
	m.log.Debug("Registered command", "command", def.name, "aliases", def.aliases)
	return nil
}

// MustRegister is like Register, but panics on error.
func (m *Manager) MustRegister(def *Definition) *Manager {
	if err := m.Register(def); err != nil {
		panic(err)
	}
	return m
}

// Command starts building a [Definition] that will be registered with this Manager when [Builder.Build] is called.
func (m *Manager) Command(name string, handler HandlerFunc, params ...Param) *Builder {
	b := Define(name, handler, params...)
	b.manager = m
	return b
}

// Lookup returns the [Definition] registered for a name or alias.
func (m *Manager) Lookup(name string) (*Definition, bool) {
	reg, ok := m.mapper[name]
	if !ok {
		return nil, false
	}
	return reg.def, true
}

// Commands returns registered definitions in registration order.
func (m *Manager) Commands() []*Definition {
	defs := make([]*Definition, len(m.commands))
	for i, reg := range m.commands {
		defs[i] = reg.def
	}
	return defs
}

// SetEnabled controls whether a command is listed in usage output.
// A disabled command may still be executed.
func (m *Manager) SetEnabled(name string, enabled bool) error {
	reg, ok := m.mapper[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	reg.enabled = enabled
	return nil
}

// Execute runs the command named by argv[1], with argv[0] being the program name.
// See [Manager.ExecuteContext].
func (m *Manager) Execute(argv []string) bool {
	return m.ExecuteContext(context.Background(), argv)
}

// ExecuteContext runs the command named by argv[1], with argv[0] being the program name.
//
// False is returned if no command was given, or the command is unknown, and usage is printed.
// Otherwise true is returned, because the command was found and attempted.
// Errors from binding or from the handler are reported with the [Printer] and never returned.
func (m *Manager) ExecuteContext(ctx context.Context, argv []string) bool {
	args := ParseArgs(argv)
	if args.Len() < 2 {
		m.printer.Println("missing command")
		m.PrintCommands()
		return false
	}
	reg, ok := m.mapper[args.Index(1)]
	if !ok {
		m.log.Debug("Unknown command", "command", args.Index(1))
		m.printer.Println("unknown command: " + args.Index(1))
		m.PrintCommands()
		return false
	}
	def := reg.def
	session := NewSession(ctx, m, args)
	m.log.Debug("Executing command", "command", def.name, "route", session.Command())
	err := m.runPreExec(session)
	if err == nil {
		err = def.Execute(session)
	}
	if err != nil {
		if !errors.Is(err, ErrRunning) {
			m.log.Error("Command failed", "command", def.name, "error", err)
		}
		m.printer.Printf("error on command %s: %s\n", def.name, err)
	}
	return true
}
