package cli

import (
	"fmt"
	"strings"

	"github.com/pip-setup/pip-setup/internal/branding"
	"github.com/pip-setup/pip-setup/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read, write and validate defaults stored at ~/` + branding.HomeDir() + `/config.yaml.

Known keys: ` + strings.Join(config.Keys(), ", ") + `.
Each key can also be set with an environment variable: ` + strings.Join(envVars(), ", ") + `.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Load(appFs, *configFile)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			if err := store.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Load(appFs, *configFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configFile
			if path == "" {
				path = config.FilePath()
			}

			result, err := config.ValidateFile(appFs, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintf(out, "%s is valid\n", path)
				return nil
			}

			fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
			for _, issue := range result.Issues {
				failColor.Fprintf(out, "  - %s\n", issue)
			}
			return fmt.Errorf("invalid config file %s", path)
		},
	})

	return cmd
}

// envVars lists the environment variable for every config key.
func envVars() []string {
	keys := config.Keys()
	vars := make([]string, len(keys))
	for i, k := range keys {
		vars[i] = branding.EnvVar(k)
	}
	return vars
}
