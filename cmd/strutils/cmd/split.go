package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/core/log"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var (
	splitDelim string
	splitMax   int
	joinSep    string
)

var splitCmd = &cobra.Command{
	Use:   "split [text]",
	Short: "Split text at a delimiter, one field per line",
	Long: `Splits the text at a single-byte delimiter and prints one field per
line. A trailing delimiter does not produce an empty last field.

--max limits the number of fields split off: -1 splits everywhere, 0
prints the text unchanged, n splits off n fields and prints the rest as
the last line.

Config: [split] delimiter, max

Examples:
  strutils split "a,b,c"
  strutils split --delim ';' --max 1 "k;v;w"`,
	RunE: runSplit,
}

var joinCmd = &cobra.Command{
	Use:   "join [items...]",
	Short: "Join items with a separator",
	Long: `Joins the arguments, or the lines of stdin, with a separator.

Config: [join] separator

Examples:
  strutils join a b c
  strutils join --sep ' | ' a b c`,
	RunE: runJoin,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(joinCmd)

	splitCmd.Flags().StringVarP(&splitDelim, "delim", "d", ",", "delimiter byte")
	splitCmd.Flags().IntVarP(&splitMax, "max", "m", -1, "maximum number of splits (-1: all)")
	joinCmd.Flags().StringVarP(&joinSep, "sep", "s", stringx.DefaultSeparator, "separator")
}

func runSplit(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	delimValue := splitDelim
	if !cmd.Flags().Changed("delim") {
		delimValue = cfg.GetString("split.delimiter", splitDelim)
	}
	delim, err := singleByte("delimiter", delimValue)
	if err != nil {
		return err
	}

	maxSplits := splitMax
	if !cmd.Flags().Changed("max") {
		maxSplits = cfg.GetInt("split.max", splitMax)
	}

	fields := stringx.Split(text, delim, maxSplits)
	logger.Debug("split", log.Int("fields", len(fields)), log.Int("max", maxSplits))

	return writeLines(cmd.OutOrStdout(), fields)
}

func runJoin(cmd *cobra.Command, args []string) error {
	items := args
	if len(items) == 0 {
		text, err := inputText(cmd, nil)
		if err != nil {
			return err
		}
		items = stringx.Split(strings.ReplaceAll(text, "\r\n", "\n"), '\n', -1)
	}

	sep := joinSep
	if !cmd.Flags().Changed("sep") {
		sep = cfg.GetString("join.separator", joinSep)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), stringx.Join(items, sep))
	return err
}
