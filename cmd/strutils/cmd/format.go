package cmd

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var formatCmd = &cobra.Command{
	Use:   "format FORMAT [args...]",
	Short: "printf-style formatting",
	Long: `Formats the arguments with a printf-style format string.

Arguments are converted to match their verb: %d %x %X %o %b take
integers, %e %f %g take floats, %c takes a character or a code point and
%s %q %v take the text as is. A * width or precision takes an integer
argument. Arguments that do not convert are passed as text. C forms such
as %i, %u and %ld are accepted.

Examples:
  strutils format "%s has %d items" cart 3
  strutils format "%08.3f" 3.14159
  strutils format "%*d|" 5 42
  strutils format "%lu bytes" 1024`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	format, values := coerceArgs(args[0], args[1:])
	out := cmd.OutOrStdout()
	if _, err := stringx.PrintFormat(out, format, values...); err != nil {
		return err
	}
	_, err := out.Write([]byte{'\n'})
	return err
}

// coerceArgs converts each argument to the type its verb expects, walking
// the format left to right, and rewrites C conversions Go does not know:
// length modifiers (h l ll z j t L) are dropped and %i, %u become %d.
// Arguments past the last verb stay strings.
func coerceArgs(format string, args []string) (string, []interface{}) {
	values := make([]interface{}, 0, len(args))
	next := func(conv func(string) interface{}) {
		if len(values) < len(args) {
			values = append(values, conv(args[len(values)]))
		}
	}

	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); i++ {
		b.WriteByte(format[i])
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.WriteByte('%')
			continue
		}

		specStart := i
		for i < len(format) && isFormatFlag(format[i]) {
			i++
		}
		i = skipWidth(format, i, next)
		if i < len(format) && format[i] == '.' {
			i = skipWidth(format, i+1, next)
		}
		b.WriteString(format[specStart:i])
		for i < len(format) && isLengthModifier(format[i]) {
			i++
		}
		if i >= len(format) {
			break
		}

		verb := format[i]
		switch verb {
		case 'd', 'i', 'u', 'x', 'X', 'o', 'O', 'b':
			if verb == 'i' || verb == 'u' {
				verb = 'd'
			}
			next(toInt)
		case 'c', 'U':
			next(toRune)
		case 'e', 'E', 'f', 'F', 'g', 'G':
			next(toFloat)
		default:
			next(toString)
		}
		b.WriteByte(verb)
	}

	for len(values) < len(args) {
		values = append(values, args[len(values)])
	}
	return b.String(), values
}

func skipWidth(format string, i int, next func(func(string) interface{})) int {
	if i < len(format) && format[i] == '*' {
		next(toInt)
		return i + 1
	}
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	return i
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'L', 'z', 'j', 't':
		return true
	}
	return false
}

func isFormatFlag(c byte) bool {
	switch c {
	case '+', '-', '#', ' ', '0':
		return true
	}
	return false
}

func toString(s string) interface{} { return s }

func toInt(s string) interface{} {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return int(n)
	}
	return s
}

func toFloat(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func toRune(s string) interface{} {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		return rune(n)
	}
	return s
}
