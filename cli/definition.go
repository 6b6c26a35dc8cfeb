package cli

import (
	"fmt"
	"github.com/saylorsolutions/jasily/convert"
	"reflect"
	"strings"
)

const sessionParam = "session"

// HandlerFunc is the function executed by a [Definition].
// The values map holds every required and optional argument, keyed by parameter name.
type HandlerFunc = func(s *Session, values Values) error

// Param declares one argument of a [Definition].
type Param struct {
	Name     string
	Default  any
	optional bool
}

// IsOptional reports whether this [Param] has a default value.
func (p Param) IsOptional() bool {
	return p.optional
}

// Required declares an argument that must be passed by the user.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares an argument that falls back to defaultVal.
// The type of defaultVal determines how a user-provided value is converted.
// Integer and float defaults are parsed, while any other type receives the raw string.
func Optional(name string, defaultVal any) Param {
	return Param{Name: name, Default: defaultVal, optional: true}
}

// Definition describes a command's calling convention, and knows how to bind a [Session]'s arguments to its handler.
type Definition struct {
	name       string
	aliases    []string
	desc       string
	handler    HandlerFunc
	required   []string
	optional   []Param
	declared   map[string]bool
	argAliases map[string][]string
	sorted     bool
	hidden     bool
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
}

// NewDefinition creates a [Definition] for the handler.
// Required params must be declared before any optional params.
// The name and aliases have underscores replaced with hyphens.
func NewDefinition(name string, handler HandlerFunc, params ...Param) (*Definition, error) {
	name = normalizeName(name)
	if len(name) == 0 {
		return nil, newDefinitionError("command name is empty")
	}
	if handler == nil {
		return nil, newDefinitionError("command '%s' has a nil handler", name)
	}
	def := &Definition{
		name:       name,
		desc:       fmt.Sprintf("%s command.", name),
		handler:    handler,
		declared:   map[string]bool{},
		argAliases: map[string][]string{},
	}
	for _, param := range params {
		switch {
		case len(param.Name) == 0:
			return nil, newDefinitionError("command '%s' declares a parameter with no name", name)
		case param.Name == sessionParam:
			return nil, newDefinitionError("command '%s' cannot declare reserved parameter '%s'", name, sessionParam)
		case def.declared[param.Name]:
			return nil, newDefinitionError("command '%s' declares parameter '%s' more than once", name, param.Name)
		}
		def.declared[param.Name] = true
		if !param.optional {
			if len(def.optional) > 0 {
				return nil, newDefinitionError("command '%s' declares required parameter '%s' after an optional parameter", name, param.Name)
			}
			def.required = append(def.required, param.Name)
			continue
		}
		if param.Default == nil {
			return nil, newDefinitionError("command '%s' declares optional parameter '%s' with a nil default", name, param.Name)
		}
		def.optional = append(def.optional, param)
	}
	return def, nil
}

func (d *Definition) String() string {
	return d.name
}

func (d *Definition) Name() string {
	return d.name
}

// Aliases returns the alternate names of this command.
func (d *Definition) Aliases() []string {
	aliases := make([]string, len(d.aliases))
	copy(aliases, d.aliases)
	return aliases
}

// Names returns the command name followed by its aliases.
func (d *Definition) Names() []string {
	return append([]string{d.name}, d.aliases...)
}

func (d *Definition) addAliases(aliases ...string) {
	for _, alias := range aliases {
		alias = normalizeName(alias)
		if len(alias) == 0 {
			continue
		}
		d.aliases = append(d.aliases, alias)
	}
}

func (d *Definition) Description() string {
	return d.desc
}

func (d *Definition) SetDescription(desc string) {
	d.desc = desc
}

// Required returns the names of required arguments in declaration order.
func (d *Definition) Required() []string {
	required := make([]string, len(d.required))
	copy(required, d.required)
	return required
}

// Optional returns the optional arguments in declaration order.
func (d *Definition) Optional() []Param {
	optional := make([]Param, len(d.optional))
	copy(optional, d.optional)
	return optional
}

// AddArgAlias registers additional flag names for a declared argument.
// An [*ArgumentAliasError] is returned if arg isn't declared, or an alias is empty or already names an argument.
// Nothing is added on error.
func (d *Definition) AddArgAlias(arg string, aliases ...string) error {
	if !d.declared[arg] {
		alias := ""
		if len(aliases) > 0 {
			alias = aliases[0]
		}
		return &ArgumentAliasError{Argument: arg, Alias: alias}
	}
	claimed := map[string]bool{}
	for name := range d.declared {
		claimed[name] = true
	}
	for _, existing := range d.argAliases {
		for _, alias := range existing {
			claimed[alias] = true
		}
	}
	for _, alias := range aliases {
		if len(alias) == 0 || claimed[alias] {
			return &ArgumentAliasError{Argument: arg, Alias: alias}
		}
		claimed[alias] = true
	}
	d.argAliases[arg] = append(d.argAliases[arg], aliases...)
	return nil
}

// ArgAliases returns the aliases registered for arg.
func (d *Definition) ArgAliases(arg string) []string {
	aliases := make([]string, len(d.argAliases[arg]))
	copy(aliases, d.argAliases[arg])
	return aliases
}

// EnableSortedArgs switches this command to sorted binding.
// Required arguments are then taken from trailing positional input, ignoring their names.
// Flags and the values they take are never counted as positional, as in 'cmd -a 1 value1 value2'.
func (d *Definition) EnableSortedArgs() {
	d.sorted = true
}

func (d *Definition) SortedArgs() bool {
	return d.sorted
}

// Execute binds the [Session]'s arguments and calls the handler.
//
// A missing required argument is reported to the user, and nil is returned without calling the handler.
// A [*RunningError] is returned for conflicting flags or an optional value that can't be converted.
func (d *Definition) Execute(s *Session) error {
	var (
		args   = s.Args()
		values = Values{}
		log    = s.logger()
	)
	if d.sorted {
		var inputs []string
		if positional := args.Positional(); len(positional) > 2 {
			inputs = positional[2:]
		}
		if missing := len(d.required) - len(inputs); missing > 0 {
			names := make([]string, missing)
			for i, name := range d.required[len(d.required)-missing:] {
				names[i] = strings.ToUpper(name)
			}
			log.Debug("Aborting command with missing sorted arguments", "command", d.name, "missing", names)
			s.Printer().Printf("error on command %s: missing argument (%s)\n", d.name, strings.Join(names, ","))
			return nil
		}
		inputs = inputs[len(inputs)-len(d.required):]
		for i, name := range d.required {
			values[name] = inputs[i]
		}
	} else {
		for _, name := range d.required {
			key, found, err := d.resolveKey(args, name)
			if err != nil {
				return err
			}
			if !found {
				log.Debug("Aborting command with missing argument", "command", d.name, "argument", name)
				s.Printer().Printf("missing argument on command %s: %s\n", d.name, name)
				return nil
			}
			val, err := args.MustGet(key)
			if err != nil {
				return err
			}
			values[name] = val
		}
	}
	for _, opt := range d.optional {
		key, found, err := d.resolveKey(args, opt.Name)
		if err != nil {
			return err
		}
		if !found {
			values[opt.Name] = opt.Default
			continue
		}
		raw, err := args.MustGet(key)
		if err != nil {
			return err
		}
		val, err := convertArg(opt, raw)
		if err != nil {
			return err
		}
		values[opt.Name] = val
	}
	log.Debug("Invoking command handler", "command", d.name, "sorted", d.sorted, "values", values.Len())
	return d.handler(s, values)
}

// resolveKey finds which of the argument's name or aliases was passed.
// It's an error for more than one of them to be passed.
func (d *Definition) resolveKey(args *Args, name string) (string, bool, error) {
	var key string
	if args.Has(name) {
		key = name
	}
	for _, alias := range d.argAliases[name] {
		if !args.Has(alias) {
			continue
		}
		if len(key) > 0 {
			return "", false, NewRunningError("conflict arg flag: %s and %s", key, alias)
		}
		key = alias
	}
	return key, len(key) > 0, nil
}

func convertArg(opt Param, raw string) (any, error) {
	// A string default covers both the "equals default" and "same type" cases, since raw is always a string.
	if _, ok := opt.Default.(string); ok {
		return raw, nil
	}
	t := reflect.TypeOf(opt.Default)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !isDigits(raw) {
			return nil, NewRunningError("arg %s should be digit.", opt.Name)
		}
		val, err := convert.To(t, raw)
		if err != nil {
			return nil, NewRunningError("arg %s should be digit.", opt.Name)
		}
		return val, nil
	case reflect.Float32, reflect.Float64:
		val, err := convert.To(t, raw)
		if err != nil {
			return nil, NewRunningError("arg %s should be digit.", opt.Name)
		}
		return val, nil
	default:
		return raw, nil
	}
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
