package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/enumerated/catalog"
)

// validationResult is the outcome of validating one file
type validationResult struct {
	File   string `json:"file" yaml:"file"`
	Enum   string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Values int    `json:"values" yaml:"values"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

type validationResults []validationResult

func (r validationResults) headers() []string {
	return []string{"FILE", "STATUS", "ENUM", "VALUES", "ERROR"}
}

func (r validationResults) rows() [][]string {
	rows := make([][]string, len(r))
	for i, result := range r {
		status := "ok"
		if result.Error != "" {
			status = "FAIL"
		}
		rows[i] = []string{result.File, status, result.Enum, fmt.Sprint(result.Values), result.Error}
	}
	return rows
}

func (cli *CLI) addValidateCommand() {
	validateCmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that definition files build valid enums",
		Long: `Load every file and report construction errors. Type names must be unique
across the given files. The command fails if any file fails.

Examples:
  enumctl validate defs/step_type.yaml
  enumctl validate defs/*.toml --format json`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeValidateCommand(cmd, args)
		},
	}

	cli.rootCmd.AddCommand(validateCmd)
}

func (cli *CLI) executeValidateCommand(cmd *cobra.Command, paths []string) error {
	ctx := cli.commandContext(cmd)
	l := cli.newLoader()
	seen := catalog.New(catalog.WithLogger(cli.logger))

	results := make(validationResults, 0, len(paths))
	failed := 0
	for _, path := range paths {
		result := validationResult{File: path}

		e, err := l.Load(ctx, path)
		if err == nil {
			err = seen.Register(e)
		}
		if err != nil {
			failed++
			result.Error = err.Error()
			cli.logger.Info("definition invalid", "path", path, "error", err)
		} else {
			result.Enum = e.Name()
			result.Kind = e.Kind().String()
			result.Values = e.Len()
		}
		results = append(results, result)
	}

	if err := cli.outputResult(cli.out(cmd), results); err != nil {
		return err
	}

	if failed > 0 {
		return &CLIError{
			Operation: "validate definitions",
			Cause:     fmt.Sprintf("%d of %d files failed", failed, len(paths)),
		}
	}
	return nil
}
