package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/enumerated/formats"
)

func (cli *CLI) addConvertCommand() {
	convertCmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a definition in another format",
		Long: `Build the enum described by a file and print its definition document in the
format given by --to. Values are written in key order.

Examples:
  enumctl convert defs/step_type.yaml --to toml > defs/step_type.toml`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeConvertCommand(cmd, args[0])
		},
	}

	convertCmd.Flags().String("to", "yaml", "Target definition format")

	cli.rootCmd.AddCommand(convertCmd)
}

func (cli *CLI) executeConvertCommand(cmd *cobra.Command, path string) error {
	target := cli.viperInst.GetString("to")
	if _, err := formats.Get(target); err != nil {
		return NewValidationError("convert definition", "target format", target,
			"Available formats: "+strings.Join(formats.List(), ", "))
	}

	e, err := cli.newLoader().Load(cli.commandContext(cmd), path)
	if err != nil {
		return NewDefinitionError("convert definition", err)
	}

	data, err := formats.Encode(target, e)
	if err != nil {
		return WrapError("convert definition", err)
	}

	_, err = cli.out(cmd).Write(data)
	return err
}
