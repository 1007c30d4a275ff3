// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples for the most common helpers.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/Wosser1sProductions/utils/utils/stringx"
)

func ExampleContains() {
	fmt.Println(stringx.Contains("key=value", "=", 0))
	fmt.Println(stringx.Contains("key=value", ":", 0))
	// Output:
	// true 3
	// false -1
}

func ExampleTrim() {
	fmt.Printf("%q\n", stringx.Trim("\t  padded \r\n"))
	fmt.Printf("%q\n", stringx.TrimLeft("  left"))
	// Output:
	// "padded"
	// "left"
}

func ExampleSplit() {
	fmt.Printf("%q\n", stringx.Split("a,b,,c,", ',', -1))
	fmt.Printf("%q\n", stringx.Split("a,b,c", ',', 1))
	fmt.Printf("%q\n", stringx.Split("a,b,c", ',', 0))
	// Output:
	// ["a" "b" "" "c"]
	// ["a" "b,c"]
	// ["a,b,c"]
}

func ExampleExtractQuoted() {
	fmt.Printf("%q\n", stringx.ExtractQuoted("'Hello', 'Wo'rld'", '\''))
	// Output:
	// ["Hello" "Wo"]
}

func ExampleJoinChars() {
	fmt.Println(stringx.JoinChars([]byte("abc"), '-'))
	fmt.Println(stringx.JoinChars([]rune("xyz"), 0))
	// Output:
	// a-b-c
	// xyz
}

func ExampleEraseConsecutive() {
	fmt.Printf("%q\n", stringx.EraseConsecutive("     abcd     ", ' '))
	// Output:
	// " abcd "
}

func ExampleFormat() {
	fmt.Println(stringx.Format("0x%08X", 0xBEEF))

	// without args the format is not expanded
	plain := "100%"
	fmt.Println(stringx.Format(plain))
	// Output:
	// 0x0000BEEF
	// 100%
}

func ExamplePrintFormat() {
	_, _ = stringx.PrintFormat(os.Stdout, "%c%c%c%s\n", 'a', 'b', 'c', "Haha")
	// Output:
	// abcHaha
}

func ExampleToWide() {
	units, _ := stringx.ToWide("a😀")
	fmt.Printf("%04X\n", units)
	// Output:
	// [0061 D83D DE00]
}

func ExampleBase64DecodeString() {
	s, _ := stringx.Base64DecodeString("SGVsbG8=")
	fmt.Println(s)

	_, err := stringx.Base64DecodeString("xx=y")
	fmt.Println(errors.Is(err, stringx.ErrBase64Padding))
	// Output:
	// Hello
	// true
}
