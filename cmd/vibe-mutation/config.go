package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newConfigCmd prints the merged settings; its subcommands read and
// persist single keys such as "genome" or "mutation_colors.<category>".
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the genome and color preferences",
		Example: `  vibe-mutation config
  vibe-mutation config set genome GRCh38
  vibe-mutation config set mutation_colors.Germline_Hit "#1f77b4"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := viper.AllSettings()
			if len(settings) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "# nothing configured in %s\n", configFilePath())
				return nil
			}
			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !viper.IsSet(args[0]) {
					return fmt.Errorf("%s: not configured", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store one preference in the config file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				viper.Set(key, value)

				path := configFilePath()
				if err := viper.WriteConfigAs(path); err != nil {
					return fmt.Errorf("save %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", key, value, path)
				return nil
			},
		},
	)

	return cmd
}
