package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var (
	trimLeft  bool
	trimRight bool
)

var trimCmd = &cobra.Command{
	Use:   "trim [text]",
	Short: "Strip leading and trailing whitespace",
	Long: `Strips space, tab, newline, vertical tab, form feed and carriage
return from both ends of the text, or only one end with --left/--right.

Examples:
  strutils trim "   padded   "
  printf '\t x \n' | strutils trim --left`,
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().BoolVar(&trimLeft, "left", false, "only trim the start")
	trimCmd.Flags().BoolVar(&trimRight, "right", false, "only trim the end")
	trimCmd.MarkFlagsMutuallyExclusive("left", "right")
}

func runTrim(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	switch {
	case trimLeft:
		text = stringx.TrimLeft(text)
	case trimRight:
		text = stringx.TrimRight(text)
	default:
		text = stringx.Trim(text)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
