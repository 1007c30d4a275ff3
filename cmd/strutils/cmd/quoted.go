package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/core/log"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var quotedChar string

var quotedCmd = &cobra.Command{
	Use:   "quoted [text]",
	Short: "Print the quoted strings found in the text",
	Long: `Prints the text between each pair of quote characters, one per line.

Config: [quoted] char

Examples:
  strutils quoted "'Hello', 'World'"
  strutils quoted --quote '"' 'say "hi"'`,
	RunE: runQuoted,
}

func init() {
	rootCmd.AddCommand(quotedCmd)

	quotedCmd.Flags().StringVarP(&quotedChar, "quote", "q", string(rune(stringx.DefaultQuote)), "quote byte")
}

func runQuoted(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	value := quotedChar
	if !cmd.Flags().Changed("quote") {
		value = cfg.GetString("quoted.char", quotedChar)
	}
	quote, err := singleByte("quote", value)
	if err != nil {
		return err
	}

	found := stringx.ExtractQuoted(text, quote)
	logger.Debug("quoted strings extracted", log.Int("count", len(found)))
	return writeLines(cmd.OutOrStdout(), found)
}
