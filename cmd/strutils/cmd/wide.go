package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var (
	wideDecode bool
	wideZ      bool
)

var wideCmd = &cobra.Command{
	Use:   "wide [text | units...]",
	Short: "Convert between UTF-8 and UTF-16 code units",
	Long: `Prints the UTF-16 code units of the text as four-digit hex numbers.
With --decode, reads hex code units and prints the UTF-8 text.

--z appends a terminating zero unit when encoding, and stops at the
first zero unit when decoding.

Examples:
  strutils wide "Hi €"
  strutils wide --decode 0048 0069 0020 20ac`,
	RunE: runWide,
}

func init() {
	rootCmd.AddCommand(wideCmd)

	wideCmd.Flags().BoolVar(&wideDecode, "decode", false, "decode hex code units to text")
	wideCmd.Flags().BoolVar(&wideZ, "z", false, "zero-terminated units")
}

func runWide(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	if wideDecode {
		units, err := parseUnits(text)
		if err != nil {
			return err
		}
		var s string
		if wideZ {
			s, err = stringx.FromWideZ(units)
		} else {
			s, err = stringx.FromWide(units)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}

	var units []uint16
	if wideZ {
		units, err = stringx.ToWideZ(text)
	} else {
		units, err = stringx.ToWide(text)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatUnits(units))
	return err
}

func formatUnits(units []uint16) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04x", u)
	}
	return strings.Join(parts, " ")
}

func parseUnits(text string) ([]uint16, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || (r < 0x80 && stringx.IsSpace(byte(r)))
	})
	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		u, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, errors.InvalidInput(errors.ModuleCLI, "wide", f, "a hex UTF-16 code unit")
		}
		units = append(units, uint16(u))
	}
	return units, nil
}
