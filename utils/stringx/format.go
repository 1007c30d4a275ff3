// File: format.go
// Title: Printf-style Formatting
// Description: Formats arguments into a format string; a format without arguments
//              is passed through verbatim.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"io"
)

// Format expands args into format with fmt verbs. With no args the format
// is returned as is, so Format("100%") stays "100%".
func Format(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// PrintFormat writes Format(format, args...) to w.
func PrintFormat(w io.Writer, format string, args ...interface{}) (int, error) {
	if len(args) == 0 {
		return io.WriteString(w, format)
	}
	return fmt.Fprintf(w, format, args...)
}
