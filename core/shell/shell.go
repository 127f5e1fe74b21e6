package shell

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abiosoft/readline"
	"github.com/barkbuff/blsh/core/config"
	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
)

// Name prefixes every diagnostic the shell writes.
const Name = "blsh"

var promptColor = color.New(color.FgGreen, color.Bold)

// Shell ties the line reader, tokenizer and dispatcher together into a
// strictly serial command loop. At most one child process exists at a
// time and the shell blocks for its entire lifetime.
type Shell struct {
	Config *config.Configuration

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	reader   *LineReader
	readline *readline.Instance
}

// New creates a shell reading newline-delimited commands from stdin.
func New(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	return &Shell{
		Config: cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		reader: NewLineReader(stdin),
	}
}

// NewInteractive creates a shell on the process's terminal with line
// editing and history.
func NewInteractive(cfg *config.Configuration) (*Shell, error) {
	s := New(cfg, os.Stdin, os.Stdout, os.Stderr)

	rlCfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(os.Stdin),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		HistoryFile: cfg.HistoryFile,
		FuncIsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd())
		},
	}

	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	s.readline = rl
	return s, nil
}

// prompt returns the string written before each read, no trailing newline.
func (s *Shell) prompt() string {
	prompt := config.DefaultPrompt
	if s.Config != nil && s.Config.Prompt != "" {
		prompt = s.Config.Prompt
	}
	if s.readline != nil {
		return promptColor.Sprint(prompt)
	}
	return prompt
}

// banner is the first line the help builtin prints.
func (s *Shell) banner() string {
	if s.Config != nil && s.Config.Motd != "" {
		return s.Config.Motd
	}
	return config.DefaultMotd
}

// Run executes the command loop until exit is dispatched or input is
// exhausted. The returned code is the shell's process exit status.
func (s *Shell) Run() int {
	for {
		line, err := s.readLine()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		default:
			if s.RunCommand(line) == Terminate {
				return 0
			}
		}
	}
}

// RunCommand tokenizes and dispatches a single line.
func (s *Shell) RunCommand(line string) Continuation {
	return s.Dispatch(Tokenize(line))
}

func (s *Shell) readLine() (string, error) {
	if s.readline != nil {
		s.readline.SetPrompt(s.prompt())
		return s.readline.Readline()
	}

	fmt.Fprint(s.stdout, s.prompt())
	return s.reader.ReadLine()
}

// Close releases the terminal if the shell owns one.
func (s *Shell) Close() error {
	if s.readline != nil {
		return s.readline.Close()
	}
	return nil
}
