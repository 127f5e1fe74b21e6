package shell

// Continuation tells the command loop whether to keep prompting. It is
// the only result that flows back up the call chain; errors are handled
// and reported where they occur.
type Continuation int

const (
	Continue Continuation = iota
	Terminate
)

// Dispatch runs a token sequence: nothing for an empty sequence, the
// matching builtin on an exact first-token match, an external program
// otherwise. Builtins are scanned in registration order so the first
// registered name wins.
func (s *Shell) Dispatch(args []string) Continuation {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := LookupBuiltin(args[0]); ok {
		return builtin.Main(s, args)
	}

	return s.Launch(args)
}
