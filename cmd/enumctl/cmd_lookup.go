package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/enumerated/enum"
)

func (cli *CLI) addLookupCommand() {
	lookupCmd := &cobra.Command{
		Use:   "lookup <file> <key>",
		Short: "Resolve a key to a value",
		Long: `Resolve a key (or a value name) to a value of the enum described by a file.

A miss falls back to the value named by --default. With --first, a miss
without --default falls back to the first value, as the key-field lookup does.

Examples:
  enumctl lookup defs/step_type.yaml 4
  enumctl lookup defs/step_type.yaml 10 --default and
  enumctl lookup defs/step_type.yaml 10 --first`,

		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeLookupCommand(cmd, args[0], args[1])
		},
	}

	lookupCmd.Flags().String("default", "", "Name of the value returned on a miss")
	lookupCmd.Flags().Bool("first", false, "Fall back to the first value on a miss")

	cli.rootCmd.AddCommand(lookupCmd)
}

func (cli *CLI) executeLookupCommand(cmd *cobra.Command, path, key string) error {
	e, err := cli.newLoader().Load(cli.commandContext(cmd), path)
	if err != nil {
		return NewDefinitionError("look up value", err)
	}

	var defaults []*enum.Value
	if name := cli.viperInst.GetString("default"); name != "" {
		def, ok := e.ByName(name)
		if !ok {
			return NewNotFoundError("look up value", "default value", name, CommonSuggestions.CheckKey)
		}
		defaults = append(defaults, def)
	}

	arg := resolveArg(e, key)
	var v *enum.Value
	if cli.viperInst.GetBool("first") {
		v = e.Lookup(arg, defaults...)
	} else {
		v = e.Value(arg, defaults...)
	}

	cli.logger.Debug("lookup", "enum", e.Name(), "key", key, "found", v != nil)
	if v == nil {
		return NewNotFoundError("look up value", e.Name()+" key", key,
			CommonSuggestions.CheckKey, "Pass --default NAME or --first to fall back on a miss")
	}

	return cli.outputResult(cli.out(cmd), valueRows{newValueRow(v, true)})
}
