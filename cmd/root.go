package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/barkbuff/blsh/core/config"
	"github.com/barkbuff/blsh/core/shell"
	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// No config file is fine, the defaults cover everything.
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blsh",
	Short: "BarkBuff's LittleShell",
	Long:  `A minimal interactive command interpreter.`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		if commandLine != "" {
			s := shell.New(configuration, os.Stdin, os.Stdout, os.Stderr)
			s.RunCommand(commandLine)
			return nil
		}

		var s *shell.Shell
		if isatty.IsTerminal(os.Stdin.Fd()) {
			s, err = shell.NewInteractive(configuration)
			if err != nil {
				return err
			}
		} else {
			s = shell.New(configuration, os.Stdin, os.Stdout, os.Stderr)
		}

		code := s.Run()
		s.Close()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
