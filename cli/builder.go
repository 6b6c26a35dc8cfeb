package cli

// Builder configures a [Definition] with chained calls.
// The first error encountered is kept and returned from [Builder.Build], and later calls become no-ops.
type Builder struct {
	def     *Definition
	err     error
	manager *Manager
}

// Define starts building a [Definition].
// See [NewDefinition] for the rules applied to name and params.
func Define(name string, handler HandlerFunc, params ...Param) *Builder {
	def, err := NewDefinition(name, handler, params...)
	return &Builder{def: def, err: err}
}

// Alias adds alternate command names.
func (b *Builder) Alias(aliases ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.def.addAliases(aliases...)
	return b
}

// Describe sets the description shown in usage output.
func (b *Builder) Describe(desc string) *Builder {
	if b.err != nil {
		return b
	}
	b.def.SetDescription(desc)
	return b
}

// ArgAlias adds alternate flag names for a declared argument.
func (b *Builder) ArgAlias(arg string, aliases ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.def.AddArgAlias(arg, aliases...)
	return b
}

// Sorted enables sorted binding. See [Definition.EnableSortedArgs].
func (b *Builder) Sorted() *Builder {
	if b.err != nil {
		return b
	}
	b.def.EnableSortedArgs()
	return b
}

// Hidden keeps the command out of usage output.
// It may still be executed.
func (b *Builder) Hidden() *Builder {
	if b.err != nil {
		return b
	}
	b.def.hidden = true
	return b
}

// Build returns the configured [Definition].
// If the Builder was created with [Manager.Command], then the Definition is registered as well.
// Registration happens once, so later calls return the same Definition.
func (b *Builder) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.def == nil {
		return nil, newDefinitionError("nothing to build")
	}
	if b.manager != nil {
		if err := b.manager.Register(b.def); err != nil {
			return nil, err
		}
		b.manager = nil
	}
	return b.def, nil
}

// MustBuild is like Build, but panics on error.
func (b *Builder) MustBuild() *Definition {
	return MustGet(b.Build())
}
