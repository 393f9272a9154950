package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the remaining positional args.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a console line (e.g. "gravity").
// fs may be nil for commands without flags. Flag parse errors are returned by Execute,
// so fs output is silenced.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the usage line of a command, or "" if it is unknown.
func (r *Registry) Usage(name string) string {
	if cmd, ok := r.cmds[name]; ok {
		return cmd.Usage
	}
	return ""
}

// Parse tokenizes a console line by spaces. A leading "cmd " is accepted and dropped.
// Blank lines return nil, false.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimPrefix(strings.TrimLeft(line, " \t"), prefix)
	args = strings.Fields(line)
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Every flag starts from its default, so values from an earlier line (even a rejected one) never carry over.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: %s)", name, err, cmd.Usage)
	}
	return cmd.Run(cmd.FlagSet.Args())
}
