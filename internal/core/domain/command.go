package domain

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env holds extra "KEY=VALUE" entries appended to the inherited environment.
	Env []string
}

// NewCommand returns a command running name with args.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
