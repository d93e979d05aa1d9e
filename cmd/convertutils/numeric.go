package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/henghuiguo/convertutils"
)

// numericKind binds a --type name to the generic converter.
type numericKind struct {
	parse  func(text, def string) (string, error)
	format func(value string, precision int) string
}

// parseWithDefault parses text as T, falling back to def. def itself must parse.
func parseWithDefault[T convertutils.Number](text, def string) (string, error) {
	fallback := convertutils.ParseOr(def, T(0))
	if fallback != convertutils.ParseOr(def, T(1)) {
		return "", fmt.Errorf("invalid --default %q", def)
	}
	return convertutils.Format(convertutils.ParseOr(text, fallback)), nil
}

func integerKind[T convertutils.Integer]() numericKind {
	return numericKind{
		parse: parseWithDefault[T],
		format: func(value string, _ int) string {
			return convertutils.Format(convertutils.Parse[T](value))
		},
	}
}

func floatKind[T convertutils.Float]() numericKind {
	return numericKind{
		parse: parseWithDefault[T],
		format: func(value string, precision int) string {
			return convertutils.FormatPrec(convertutils.Parse[T](value), precision)
		},
	}
}

var numericKinds = map[string]numericKind{
	"int8":    integerKind[int8](),
	"uint8":   integerKind[uint8](),
	"int16":   integerKind[int16](),
	"uint16":  integerKind[uint16](),
	"int32":   integerKind[int32](),
	"uint32":  integerKind[uint32](),
	"int64":   integerKind[int64](),
	"uint64":  integerKind[uint64](),
	"float32": floatKind[float32](),
	"float64": floatKind[float64](),
}

func kindNames() string {
	names := make([]string, 0, len(numericKinds))
	for name := range numericKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func lookupKind(name string) (numericKind, error) {
	kind, ok := numericKinds[name]
	if !ok {
		return numericKind{}, fmt.Errorf("unknown type %q, want one of %s", name, kindNames())
	}
	return kind, nil
}

func newParseCmd(a *app) *cobra.Command {
	var (
		typeName string
		def      string
	)

	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse text as a numeric type",
		Long: `Parse text as a numeric type and print the resulting value.
Unparsable text yields the default (zero unless --default is set).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(typeName)
			if err != nil {
				return err
			}

			result, err := kind.parse(args[0], def)
			if err != nil {
				return err
			}

			a.logger.Debug("parsed value", "type", typeName, "text", args[0], "result", result)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "int32", "numeric type ("+kindNames()+")")
	cmd.Flags().StringVarP(&def, "default", "d", "0", "value returned when TEXT cannot be parsed")

	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var (
		typeName  string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Format a numeric value, optionally with a precision",
		Long: `Format a numeric value in its canonical decimal form.
--precision sets the significant digit count for float32 and float64.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(typeName)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Precision
			}

			result := kind.format(args[0], precision)
			a.logger.Debug("formatted value", "type", typeName, "value", args[0], "precision", precision, "result", result)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "float64", "numeric type ("+kindNames()+")")
	cmd.Flags().IntVarP(&precision, "precision", "p", DefaultPrecision, "significant digits for floats, negative for shortest")

	return cmd
}
