package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/enumerated/enum"
)

func (cli *CLI) addShowCommand() {
	showCmd := &cobra.Command{
		Use:   "show <file>",
		Short: "List the values of a definition in key order",
		Long: `Build the enum described by a file and list its values with index, name,
key, label and identity token. JSON and YAML output also include the fields of
structured values.

Examples:
  enumctl show defs/step_type.yaml
  enumctl show defs/step_type.yaml --format yaml`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeShowCommand(cmd, args[0])
		},
	}

	cli.rootCmd.AddCommand(showCmd)
}

func (cli *CLI) executeShowCommand(cmd *cobra.Command, path string) error {
	e, err := cli.newLoader().Load(cli.commandContext(cmd), path)
	if err != nil {
		return NewDefinitionError("show definition", err)
	}

	rows := enum.Map(e, func(v *enum.Value) (valueRow, enum.Step) {
		return newValueRow(v, true), enum.Continue
	})
	return cli.outputResult(cli.out(cmd), valueRows(rows))
}
