package cli

import (
	"fmt"
	"os"

	"github.com/pip-setup/pip-setup/internal/branding"
	"github.com/pip-setup/pip-setup/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// appFs is the filesystem every command works on.
var appFs afero.Fs = afero.NewOsFs()

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " <name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a skeleton Python project under <root>/<name>/
(src/, src/__init__.py, src/<name>.py, readme.md, requirements.txt, setup.py,
tests/) and writes a setup.py and a click entry point into it.

Existing files are kept; setup.py and src/<name>.py are overwritten on every run.

Examples:
  pip-setup mycli
  pip-setup mycli --root ~/src --package-version 0.2.0
  pip-setup mycli --dry -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, args[0], configFile)
		},
	}

	flags := rootCmd.Flags()
	flags.String("root", ".", "The root directory where the project is set up")
	flags.Bool("dry", false, "Don't change any files, only report what exists")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.String("package-version", scaffold.DefaultPackageVersion, "Version written into setup.py")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(&configFile))
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
