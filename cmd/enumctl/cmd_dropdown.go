package main

import (
	"github.com/spf13/cobra"
)

func (cli *CLI) addDropdownCommand() {
	dropdownCmd := &cobra.Command{
		Use:   "dropdown <file>",
		Short: "Print the value/label choices of a definition",
		Long: `Print the dropdown projection of an enum: one {value, label} pair per value,
in key order. Values can be left out by key or by name.

Examples:
  enumctl dropdown defs/step_type.yaml
  enumctl dropdown defs/step_type.yaml --exclude 2,optional --format json`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeDropdownCommand(cmd, args[0])
		},
	}

	dropdownCmd.Flags().StringSlice("exclude", []string{}, "Keys or names of values to leave out")

	cli.rootCmd.AddCommand(dropdownCmd)
}

func (cli *CLI) executeDropdownCommand(cmd *cobra.Command, path string) error {
	e, err := cli.newLoader().Load(cli.commandContext(cmd), path)
	if err != nil {
		return NewDefinitionError("build dropdown", err)
	}

	var excluded []any
	for _, raw := range cli.viperInst.GetStringSlice("exclude") {
		excluded = append(excluded, resolveArg(e, raw))
	}

	return cli.outputResult(cli.out(cmd), choiceRows(e.ChoicesExcluding(excluded...)))
}
