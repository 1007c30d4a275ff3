package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/core/log"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var caseLang string

var upperCmd = &cobra.Command{
	Use:   "upper [text]",
	Short: "Convert to upper case",
	Long: `Converts ASCII letters to upper case. With --lang, applies the full
Unicode mapping of that language instead.

Examples:
  strutils upper hello
  strutils upper --lang de "grüße"
  strutils upper --lang tr istanbul`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCase(cmd, args, stringx.ToUpper, stringx.ToUpperIn)
	},
}

var lowerCmd = &cobra.Command{
	Use:   "lower [text]",
	Short: "Convert to lower case",
	Long: `Converts ASCII letters to lower case. With --lang, applies the full
Unicode mapping of that language instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCase(cmd, args, stringx.ToLower, stringx.ToLowerIn)
	},
}

func init() {
	rootCmd.AddCommand(upperCmd)
	rootCmd.AddCommand(lowerCmd)

	upperCmd.Flags().StringVar(&caseLang, "lang", "", "BCP 47 language tag for Unicode case mapping")
	lowerCmd.Flags().StringVar(&caseLang, "lang", "", "BCP 47 language tag for Unicode case mapping")
}

func runCase(cmd *cobra.Command, args []string, ascii func(string) string, unicode func(string, language.Tag) string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	if caseLang == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ascii(text))
		return err
	}

	tag, err := stringx.ParseLanguage(caseLang)
	if err != nil {
		return errors.InvalidInput(errors.ModuleCLI, cmd.Name(), caseLang, "a BCP 47 language tag")
	}
	logger.Debug("unicode case mapping", log.String("lang", tag.String()))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), unicode(text, tag))
	return err
}
