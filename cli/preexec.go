package cli

// PreExec is a function that may run before execution of a command.
type PreExec func(s *Session) error

// AddPreExec registers a function that will be executed right before any command is bound and run.
// If an error is returned from a [PreExec], then the command will not be executed, and the error is reported like any other command error.
// Note that no [PreExec] runs when the command is missing or unknown, since that just prints usage.
//
// Passing a nil [PreExec] function to this method will panic.
func (m *Manager) AddPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	m.preExec = append(m.preExec, fn)
}

func (m *Manager) runPreExec(s *Session) error {
	for _, fn := range m.preExec {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}
