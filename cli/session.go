package cli

import (
	"context"
	"log/slog"
)

// Session is the per-invocation context passed to every [HandlerFunc].
type Session struct {
	ctx     context.Context
	manager *Manager
	args    *Args
}

// NewSession creates a [Session].
// A nil context is replaced with [context.Background].
func NewSession(ctx context.Context, manager *Manager, args *Args) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	if manager == nil {
		manager = NewManager()
	}
	if args == nil {
		args = ParseArgs(nil)
	}
	return &Session{ctx: ctx, manager: manager, args: args}
}

// Manager returns the [Manager] that routed to the current command.
func (s *Session) Manager() *Manager {
	return s.manager
}

func (s *Session) Args() *Args {
	return s.args
}

// Command returns the name or alias that routed to the current command.
func (s *Session) Command() string {
	return s.args.Index(1)
}

func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) Printer() *Printer {
	return s.manager.Printer()
}

func (s *Session) logger() *slog.Logger {
	return s.manager.log
}
