package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/enumerated/enum"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// valueRow is the rendered form of one enum value
type valueRow struct {
	Index  int            `json:"index" yaml:"index"`
	Name   string         `json:"name" yaml:"name"`
	Key    enum.Key       `json:"key" yaml:"key"`
	Label  string         `json:"label" yaml:"label"`
	Token  string         `json:"token" yaml:"token"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func newValueRow(v *enum.Value, withFields bool) valueRow {
	row := valueRow{
		Index: v.Index(),
		Name:  v.Name(),
		Key:   v.Key(),
		Label: v.Label(),
		Token: v.Token().String(),
	}
	if withFields && v.Kind() == enum.Structured {
		row.Fields = v.Fields()
	}
	return row
}

// tabular is implemented by results that can render as a table
type tabular interface {
	headers() []string
	rows() [][]string
}

type valueRows []valueRow

func (r valueRows) headers() []string {
	return []string{"INDEX", "NAME", "KEY", "LABEL", "TOKEN"}
}

func (r valueRows) rows() [][]string {
	rows := make([][]string, len(r))
	for i, row := range r {
		rows[i] = []string{fmt.Sprint(row.Index), row.Name, row.Key.String(), row.Label, row.Token}
	}
	return rows
}

type choiceRows []enum.Choice

func (r choiceRows) headers() []string {
	return []string{"VALUE", "LABEL"}
}

func (r choiceRows) rows() [][]string {
	rows := make([][]string, len(r))
	for i, choice := range r {
		rows[i] = []string{choice.Key.String(), choice.Label}
	}
	return rows
}

// outputResult writes result in the configured format
func (cli *CLI) outputResult(w io.Writer, result tabular) error {
	switch cli.viperInst.GetString("format") {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return outputTable(w, result)
	}
}

// outputTable renders result as a bordered table
func outputTable(w io.Writer, result tabular) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(result.headers()...).
		Rows(result.rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
