package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	cu "github.com/henghuiguo/convertutils"
)

type check struct {
	name string
	ok   bool
}

func equalFloat32(a, b float32) bool {
	const epsilon = 0x1p-23
	return a-b < epsilon && b-a < epsilon
}

func equalFloat64(a, b float64) bool {
	const epsilon = 0x1p-52
	return a-b < epsilon && b-a < epsilon
}

func hexChecks() []check {
	src := []byte("ABCDEFXYZ123456")
	encoded := make([]byte, cu.EncodedLen(len(src)))
	_, encErr := cu.Hex.Encode(encoded, src)

	decoded := make([]byte, cu.DecodedLen(len(encoded)))
	_, decErr := cu.Hex.Decode(decoded, encoded)

	return []check{
		{`hex encode "ABCDEFXYZ123456"`, encErr == nil && string(encoded) == "41424344454658595A313233343536"},
		{"hex decode roundtrip", decErr == nil && string(decoded) == string(src)},
	}
}

func selfChecks() []check {
	checks := []check{
		{`ParseInt8("") == 0`, cu.ParseInt8("") == 0},
		{`ParseInt8("-1") == -1`, cu.ParseInt8("-1") == -1},
		{`ParseInt8("1") == 1`, cu.ParseInt8("1") == 1},
		{`ParseInt8("12") == 12`, cu.ParseInt8("12") == 12},
		{`ParseUint8("255") == 255`, cu.ParseUint8("255") == 255},

		{`ParseInt16("") == 0`, cu.ParseInt16("") == 0},
		{`ParseInt16("-1") == -1`, cu.ParseInt16("-1") == -1},
		{`ParseInt16("12") == 12`, cu.ParseInt16("12") == 12},
		{`ParseUint16("255") == 255`, cu.ParseUint16("255") == 255},

		{`ParseInt32("") == 0`, cu.ParseInt32("") == 0},
		{`ParseInt32("-1") == -1`, cu.ParseInt32("-1") == -1},
		{`ParseInt32("1234") == 1234`, cu.ParseInt32("1234") == 1234},
		{`ParseUint32("255") == 255`, cu.ParseUint32("255") == 255},

		{`ParseInt64("") == 0`, cu.ParseInt64("") == 0},
		{`ParseInt64("-1") == -1`, cu.ParseInt64("-1") == -1},
		{`ParseInt64("12") == 12`, cu.ParseInt64("12") == 12},
		{`ParseUint64("255") == 255`, cu.ParseUint64("255") == 255},

		{`ParseFloat32("") == 0`, equalFloat32(cu.ParseFloat32(""), 0)},
		{`ParseFloat32("0.001")`, equalFloat32(cu.ParseFloat32("0.001"), 0.001)},
		{`ParseFloat32("10.001")`, equalFloat32(cu.ParseFloat32("10.001"), 10.001)},
		{`ParseFloat32("3.141592")`, equalFloat32(cu.ParseFloat32("3.141592"), 3.141592)},
		{`ParseFloat64("0.001")`, equalFloat64(cu.ParseFloat64("0.001"), 0.001)},
		{`ParseFloat64("10.001")`, equalFloat64(cu.ParseFloat64("10.001"), 10.001)},
		{`ParseFloat64("3.141592653589793")`, equalFloat64(cu.ParseFloat64("3.141592653589793"), math.Pi)},

		{`FormatUint8(1) == "1"`, cu.FormatUint8(1) == "1"},
		{`FormatUint8(255) == "255"`, cu.FormatUint8(255) == "255"},
		{`FormatInt16(255) == "255"`, cu.FormatInt16(255) == "255"},
		{`FormatUint16(255) == "255"`, cu.FormatUint16(255) == "255"},
		{`FormatInt32(1234) == "1234"`, cu.FormatInt32(1234) == "1234"},
		{`FormatUint32(255) == "255"`, cu.FormatUint32(255) == "255"},
		{`FormatInt64(255) == "255"`, cu.FormatInt64(255) == "255"},
		{`FormatUint64(255) == "255"`, cu.FormatUint64(255) == "255"},

		{`FormatFloat32(0.001) == "0.001"`, cu.FormatFloat32(0.001) == "0.001"},
		{`FormatFloat32(10.001) == "10.001"`, cu.FormatFloat32(10.001) == "10.001"},
		{`FormatFloat32(3.14159) == "3.14159"`, cu.FormatFloat32(3.14159) == "3.14159"},
		{`FormatFloat64(3.14159) == "3.14159"`, cu.FormatFloat64(3.14159) == "3.14159"},
		{`FormatFloat64Prec(3.141592653589793, 16)`, cu.FormatFloat64Prec(3.141592653589793, 16) == "3.141592653589793"},
		{`FormatFloat32Prec(3.141592, 7)`, cu.FormatFloat32Prec(3.141592, 7) == "3.141592"},
	}

	return append(checks, hexChecks()...)
}

func newSelftestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in conversion checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			failed := 0
			for _, c := range selfChecks() {
				if !c.ok {
					failed++
					a.logger.Error("check failed", "check", c.name)
					continue
				}
				a.logger.Debug("check passed", "check", c.name)
			}

			if failed > 0 {
				return fmt.Errorf("selftest: %d check(s) failed", failed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All tests passed!")
			return nil
		},
	}
}
