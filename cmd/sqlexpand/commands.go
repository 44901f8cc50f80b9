package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-sqlexpand"
)

func newRootCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sqlexpand",
		Short:         "Locate, expand and rebind SQL placeholders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(locateCommand())
	cmd.AddCommand(expandCommand(logger))
	cmd.AddCommand(rebindCommand())
	return cmd
}

type placeholderJSON struct {
	Ordinal int    `json:"ordinal"`
	Offset  int    `json:"offset"`
	Name    string `json:"name,omitempty"`
}

type expandedJSON struct {
	SQL      string          `json:"sql"`
	Args     sqlexpand.Args  `json:"args"`
	Types    sqlexpand.Types `json:"types"`
	Expanded bool            `json:"expanded"`
}

// locateCommand creates a "locate" subcommand that prints the placeholders of
// a statement as JSON.
func locateCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "locate <sql>",
		Short: "List the placeholders of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bm, err := sqlexpand.ParseBindMode(mode)
			if err != nil {
				return err
			}
			ps := sqlexpand.Locate(sqlexpand.SQLQuery(args[0]), bm)
			out := make([]placeholderJSON, len(ps))
			for i, p := range ps {
				out[i] = placeholderJSON{
					Ordinal: p.Ordinal,
					Offset:  p.Offset,
					Name:    string(p.Name),
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "positional", `Placeholder style: "positional" (?) or "named" (:name)`)
	return cmd
}

// expandCommand creates an "expand" subcommand. A JSON array in --args means
// positional binding, a JSON object means named binding; --types must use the
// same shape.
func expandCommand(logger *slog.Logger) *cobra.Command {
	var (
		argsJSON  string
		typesJSON string
		strict    bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "expand <sql>",
		Short: "Expand array parameters into one placeholder per element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFunc, ok := sqlexpand.FormatParamFuncFor(format)
			if !ok {
				return fmt.Errorf("unknown format %q: use \"question\", \"dollar\" or \"atp\"", format)
			}
			params, types, err := decodeBindings(argsJSON, typesJSON)
			if err != nil {
				return err
			}
			x, err := sqlexpand.NewExpander(sqlexpand.ExpanderArgs{
				CacheSize: 1,
				Strict:    strict,
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			e, err := x.Expand(sqlexpand.SQLQuery(args[0]), params, types)
			if err != nil {
				return err
			}
			if e.Expanded {
				e.SQL, err = x.Rebind(e.SQL, formatFunc)
				if err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), expandedJSON{
				SQL:      e.QueryString(),
				Args:     e.Args,
				Types:    e.Types,
				Expanded: e.Expanded,
			})
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "[]", "Parameter values as a JSON array or object")
	cmd.Flags().StringVar(&typesJSON, "types", "[]", `Parameter types as a JSON array or object, e.g. ["int[]","string"]`)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of passing inputs through unchanged")
	cmd.Flags().StringVar(&format, "format", "question", `Placeholder output: "question", "dollar" or "atp"`)
	return cmd
}

// rebindCommand creates a "rebind" subcommand that renders ? placeholders in
// a driver-specific style.
func rebindCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rebind <sql>",
		Short: "Render ? placeholders for a target driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFunc, ok := sqlexpand.FormatParamFuncFor(format)
			if !ok {
				return fmt.Errorf("unknown format %q: use \"question\", \"dollar\" or \"atp\"", format)
			}
			sql, err := sqlexpand.Rebind(sqlexpand.SQLQuery(args[0]), formatFunc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(sql))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "dollar", `Placeholder output: "question", "dollar" or "atp"`)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func decodeJSON(s string, v any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	return dec.Decode(v)
}
