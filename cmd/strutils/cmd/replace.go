package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var (
	replaceFrom string
	replaceTo   string

	eraseAll         string
	eraseFrom        string
	eraseTo          string
	eraseConsecutive string
)

var replaceCmd = &cobra.Command{
	Use:   "replace --from S --to S [text]",
	Short: "Replace every occurrence of a substring",
	Long: `Replaces every occurrence of --from with --to, left to right. The
inserted text is not searched again.

Examples:
  strutils replace --from bc --to cb "abcabc"
  strutils replace --from ' ' --to '' "a b c"`,
	RunE: runReplace,
}

var eraseCmd = &cobra.Command{
	Use:   "erase (--all S | --from S | --to S | --consecutive C) [text]",
	Short: "Erase parts of the text",
	Long: `Erases parts of the text. Exactly one mode is required:

  --all S          remove every occurrence of S
  --from S         cut the text at the first S (S removed)
  --to S           drop everything before the first S (S kept)
  --consecutive C  collapse runs of the byte C into one

Examples:
  strutils erase --from '#' "value # comment"
  strutils erase --consecutive ' ' "a    b"`,
	RunE: runErase,
}

func init() {
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(eraseCmd)

	replaceCmd.Flags().StringVar(&replaceFrom, "from", "", "substring to replace")
	replaceCmd.Flags().StringVar(&replaceTo, "to", "", "replacement")
	_ = replaceCmd.MarkFlagRequired("from")

	eraseCmd.Flags().StringVar(&eraseAll, "all", "", "remove every occurrence of this substring")
	eraseCmd.Flags().StringVar(&eraseFrom, "from", "", "cut at the first occurrence of this marker")
	eraseCmd.Flags().StringVar(&eraseTo, "to", "", "drop everything before this marker")
	eraseCmd.Flags().StringVar(&eraseConsecutive, "consecutive", "", "collapse runs of this byte")
	eraseCmd.MarkFlagsMutuallyExclusive("all", "from", "to", "consecutive")
	eraseCmd.MarkFlagsOneRequired("all", "from", "to", "consecutive")
}

func runReplace(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), stringx.ReplaceAll(text, replaceFrom, replaceTo))
	return err
}

func runErase(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("all"):
		text = stringx.EraseAll(text, eraseAll)
	case flags.Changed("from"):
		text = stringx.EraseFrom(text, eraseFrom)
	case flags.Changed("to"):
		text = stringx.EraseTo(text, eraseTo)
	case flags.Changed("consecutive"):
		ch, err := singleByte("consecutive", eraseConsecutive)
		if err != nil {
			return err
		}
		text = stringx.EraseConsecutive(text, ch)
	default:
		return errors.InvalidInput(errors.ModuleCLI, "erase", "", "one of --all, --from, --to, --consecutive")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
