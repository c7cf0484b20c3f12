// Package commands runs "cmd <name> [flags] [args]" lines typed into the terminal.
package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Setup defines a command's flags on fs and returns the function run after fs.Parse.
// It is called for every execution, so flag state never leaks between runs.
type Setup func(fs *flag.FlagSet) (run func() error)

// Command is a subcommand with its own flags.
type Command struct {
	Name  string
	Usage string
	Setup Setup
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a flag set that reports parse errors instead of printing or exiting.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid") and
// usage a one-line synopsis shown by Help.
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, Setup: setup}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Help returns one "cmd <usage>" line per command, sorted by name.
func (r *Registry) Help() []string {
	names := r.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = "cmd " + r.cmds[name].Usage
	}
	return out
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	return strings.Fields(line[len(prefix):]), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
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
	fs := NewFlagSet(name)
	run := cmd.Setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: cmd %s)", name, err, cmd.Usage)
	}
	return run()
}
