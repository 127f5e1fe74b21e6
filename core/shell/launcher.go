package shell

import (
	"fmt"
	"os/exec"
)

// Launch spawns an external program with the shell's streams and
// environment and blocks until the child has exited or been killed by a
// signal. Wait does not wake for stopped children, so the shell stays
// blocked across suspension rather than regaining the prompt.
//
// Exit status is reaped and discarded: the shell's contract is only to
// wait for termination, never to interpret the result.
func (s *Shell) Launch(args []string) Continuation {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	if err := cmd.Start(); err != nil {
		// Unknown program, permission denied... no child is running.
		fmt.Fprintf(s.stderr, "%s: %v\n", Name, err)
		return Continue
	}

	_ = cmd.Wait()
	return Continue
}
