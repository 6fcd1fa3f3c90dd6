package cli

import (
	"github.com/pip-setup/pip-setup/internal/branding"
	"github.com/pip-setup/pip-setup/internal/config"
	"github.com/pip-setup/pip-setup/internal/logging"
	"github.com/pip-setup/pip-setup/internal/scaffold"
	"github.com/spf13/cobra"
)

func runScaffold(cmd *cobra.Command, name, configFile string) error {
	store, err := config.Load(appFs, configFile)
	if err != nil {
		return err
	}
	if err := store.Check(); err != nil {
		return err
	}
	if err := store.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	verbose := store.GetBool(config.KeyVerbose)
	logger := logging.New(cmd.ErrOrStderr(), branding.CLIName(), verbose)
	if verbose {
		logger.Debug("set the logging to debug mode")
	}

	s, err := scaffold.New(appFs, logger, scaffold.Options{
		Name:           name,
		Root:           store.Get(config.KeyRoot),
		PackageVersion: store.Get(config.KeyPackageVersion),
		Dry:            store.GetBool(config.KeyDry),
	})
	if err != nil {
		return err
	}

	opts := s.Options()
	logger.Info("setting up project",
		"name", opts.Name,
		"root", opts.Root,
		"dry", opts.Dry,
		"verbose", verbose,
	)

	report, err := s.Run()
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), s.ProjectDir(), report)
	return nil
}
