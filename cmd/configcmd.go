package main

import (
	"github.com/spf13/cobra"

	"github.com/fen-lake/st2mqtt/config"
)

// ConfigCommand prints the default configuration, or writes it to the
// given path as a starting point for editing.
var ConfigCommand = &cobra.Command{
	Use:   "config [path]",
	Short: "Print or write the default config file",
	Long: `Print the default configuration as yaml, or write it to the given
path. Environment variable references are left unresolved so the output
can be used as a config file template.`,
	GroupID: "commands",
	Args:    cobra.MaximumNArgs(1),
	RunE:    writeConfig,
}

func init() {
	ConfigCommand.SetHelpTemplate(ConfigCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	RootCommand.AddCommand(ConfigCommand)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if len(args) > 0 {
		return cfg.WriteFile(args[0])
	}
	return cfg.Write(cmd.OutOrStdout())
}
