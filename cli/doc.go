/*
Package cli provides a small console command dispatch framework.

Commands are declared with an explicit argument list instead of flag declarations, and a [Manager] routes an invocation to the right [Definition].
There are a few policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Handlers always receive a [*Session] first, which carries the [Manager], the parsed [Args], and a context.
  - Bad user input never crashes the program. It's reported with the [Printer], and [Manager.Execute] returns normally.
  - Malformed definitions are programming errors, and are returned (or panic with the Must variants) at registration time.
  - Command names and aliases may not collide. Registering a name that's already claimed is an error wrapping [ErrNameCollision].

# Invocation

Invoking a command always follows this form:

	PROGRAM COMMAND [-flag=value...] [VALUES...]

The first token is the program name, and the second is the command name or alias.
Flags may be given as '-name=value', '-name value', or just '-name'.

# Binding

By default, required arguments are looked up by flag name or any alias registered with [Definition.AddArgAlias].
Passing both a name and its alias is a conflict, reported as a [RunningError].
If a required argument is missing, then a message is printed and the handler is not called.

Optional arguments use their default when absent.
When present, the value is converted to the type of the default for integers and floats, while other types receive the raw string.

Sorted binding is enabled with [Definition.EnableSortedArgs] (or [Builder.Sorted]).
Required arguments are then taken from trailing positional values in declaration order.
Flags and the values taken by bare flags are never counted as positional values.

	PROGRAM COMMAND -verbose=1 value1 value2

# Interactive mode

[Manager.RunInteractive] reads commands line by line and executes them in-process, which is handy while developing a tool.
Use the [UseCommand] to push leading tokens to an invocation stack, and the [BackCommand] to pop them.
To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.
*/
package cli
