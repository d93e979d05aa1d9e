package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henghuiguo/convertutils"
)

func newHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Encode or decode hexadecimal text",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode TEXT",
		Short: "Print the uppercase hex encoding of TEXT's bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := []byte(args[0])
			dst := make([]byte, convertutils.EncodedLen(len(src)))

			n, err := convertutils.Hex.Encode(dst, src)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			a.logger.Debug("encoded hex", "bytes", len(src), "chars", n)
			fmt.Fprintln(cmd.OutOrStdout(), string(dst[:n]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode HEX",
		Short: "Decode HEX and print the resulting bytes",
		Long: `Decode HEX and print the resulting bytes.
Characters are not validated and a trailing odd character is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := []byte(args[0])
			dst := make([]byte, convertutils.DecodedLen(len(src)))

			n, err := convertutils.Hex.Decode(dst, src)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if len(src)%2 != 0 {
				a.logger.Warn("odd hex length, last character ignored", "chars", len(src))
			}
			a.logger.Debug("decoded hex", "chars", len(src), "bytes", n)
			fmt.Fprintln(cmd.OutOrStdout(), string(dst[:n]))
			return nil
		},
	})

	return cmd
}
