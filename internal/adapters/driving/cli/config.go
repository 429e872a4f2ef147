package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long: `View and change settings stored in config.toml.

Keys use dot notation, for example fetch.user_agent or catalog.strategy.
List values such as catalog.sources are comma separated.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting, or all settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		value, err := settings.Value(args[0])
		if err != nil {
			return err
		}
		cmd.Println(value)
		return nil
	}

	for _, key := range settings.Keys() {
		value, err := settings.Value(key)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	if err := settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}
	cmd.Println(settings.ConfigPath())
	return nil
}
