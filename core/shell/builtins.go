package shell

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"
)

// Builtin is a command implemented inside the shell process itself.
type Builtin interface {
	Main(s *Shell, args []string) Continuation
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) Continuation

func (f BuiltinFunc) Main(s *Shell, args []string) Continuation {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

type builtinEntry struct {
	name    string
	builtin Builtin
}

// allBuiltins holds every registered builtin in registration order. It
// is populated by init and never mutated afterwards, so it is safe to
// read without locking.
var allBuiltins []builtinEntry

func registerBuiltin(name string, builtin Builtin) {
	allBuiltins = append(allBuiltins, builtinEntry{name: name, builtin: builtin})
}

// BuiltinCount reports the number of registered builtins.
func BuiltinCount() int {
	return len(allBuiltins)
}

// BuiltinNames returns the builtin names in registration order.
func BuiltinNames() []string {
	names := make([]string, 0, len(allBuiltins))
	for _, entry := range allBuiltins {
		names = append(names, entry.name)
	}
	return names
}

// LookupBuiltin finds a builtin by exact, case-sensitive name.
func LookupBuiltin(name string) (Builtin, bool) {
	for _, entry := range allBuiltins {
		if entry.name == name {
			return entry.builtin, true
		}
	}
	return nil, false
}

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) Continuation {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "%s: cd needs a path\n", Name)
		return Continue
	}

	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", Name, err)
	}
	return Continue
}

// Help writes the banner and the list of builtin names.
func Help(s *Shell, args []string) Continuation {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: help")
		fmt.Fprintln(w, "List the commands defined internally.")
		return Continue
	}

	w := s.stdout
	fmt.Fprintln(w, s.banner())
	fmt.Fprintln(w, "These commands are defined internally. Type a program name to run it.")
	fmt.Fprintln(w)
	for _, name := range BuiltinNames() {
		fmt.Fprintln(w, name)
	}
	return Continue
}

// Exit quits the shell with no other side effect.
func Exit(s *Shell, args []string) Continuation {
	return Terminate
}

func init() {
	registerBuiltin("cd", BuiltinFunc(Cd))
	registerBuiltin("help", BuiltinFunc(Help))
	registerBuiltin("exit", BuiltinFunc(Exit))
}
