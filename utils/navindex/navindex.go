// File: navindex.go
// Title: Navigation Index Parser
// Description: Parses Doxygen navtree fragments of the form
//              var <name> = [ [ "<symbol>", "<page>.html#<anchor>", <child> ], ... ];
//              The array literal is JSON-compatible and decoded as JSON.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package navindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Wosser1sProductions/utils/core/errors"
)

// Index is one parsed navtree file.
type Index struct {
	// Name is the JavaScript variable the array is assigned to.
	Name    string
	Source  string
	Entries []Entry
}

// Entry is one [ symbol, link, child ] triple.
type Entry struct {
	Symbol string
	Link   string

	// Exactly one of Leaf, Children and ChildRef describes the third element:
	// null, a nested array, or the name of another navtree file.
	Leaf     bool
	Children []Entry
	ChildRef string

	// Raw holds the entry as found in the file.
	Raw json.RawMessage

	// problem is set when the entry does not have the triple shape.
	problem string
}

// Page returns the part of Link before '#'.
func (e Entry) Page() string {
	page, _, _ := strings.Cut(e.Link, "#")
	return page
}

// Anchor returns the part of Link after '#', or "" when there is none.
func (e Entry) Anchor() string {
	_, anchor, _ := strings.Cut(e.Link, "#")
	return anchor
}

// Parse reads a navtree fragment from r.
func Parse(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NavindexSyntax("input", "read failed", err)
	}
	return parse("input", data)
}

// ParseString parses a navtree fragment held in s.
func ParseString(s string) (*Index, error) {
	return parse("input", []byte(s))
}

// ParseFile parses the navtree file at path.
func ParseFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NavindexSyntax(path, "read failed", err)
	}
	return parse(path, data)
}

func parse(source string, data []byte) (*Index, error) {
	rest := skipSpaceAndComments(data)

	if !bytes.HasPrefix(rest, []byte("var")) || len(rest) == 3 || !isSpace(rest[3]) {
		return nil, errors.NavindexSyntax(source, "expected 'var' declaration", nil)
	}
	rest = skipSpaceAndComments(rest[3:])

	n := 0
	for n < len(rest) && isIdentByte(rest[n], n == 0) {
		n++
	}
	if n == 0 {
		return nil, errors.NavindexSyntax(source, "expected variable name", nil)
	}
	name := string(rest[:n])
	rest = skipSpaceAndComments(rest[n:])

	if len(rest) == 0 || rest[0] != '=' {
		return nil, errors.NavindexSyntax(source, "expected '=' after "+name, nil)
	}
	rest = skipSpaceAndComments(rest[1:])

	if len(rest) == 0 || rest[0] != '[' {
		return nil, errors.NavindexSyntax(source, "expected array literal", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(rest))
	var top []json.RawMessage
	if err := dec.Decode(&top); err != nil {
		return nil, errors.NavindexSyntax(source, "invalid array literal", err)
	}

	tail := skipSpaceAndComments(rest[dec.InputOffset():])
	if len(tail) > 0 && tail[0] == ';' {
		tail = skipSpaceAndComments(tail[1:])
	}
	if len(tail) > 0 {
		return nil, errors.NavindexSyntax(source, fmt.Sprintf("unexpected content after array: %q", truncate(tail, 20)), nil)
	}

	entries, err := decodeEntries(top)
	if err != nil {
		return nil, errors.NavindexSyntax(source, "invalid entry", err)
	}

	return &Index{Name: name, Source: source, Entries: entries}, nil
}

func decodeEntries(raw []json.RawMessage) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		e, err := decodeEntry(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// decodeEntry only fails on nested arrays that are not arrays of entries;
// shape problems of the entry itself are recorded for Validate.
func decodeEntry(raw json.RawMessage) (Entry, error) {
	e := Entry{Raw: raw}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		e.problem = "entry is not an array"
		return e, nil
	}
	if len(parts) != 3 {
		e.problem = fmt.Sprintf("entry has %d elements, want 3", len(parts))
	}

	if len(parts) > 0 {
		if err := json.Unmarshal(parts[0], &e.Symbol); err != nil && e.problem == "" {
			e.problem = "symbol is not a string"
		}
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &e.Link); err != nil && e.problem == "" {
			e.problem = "link is not a string"
		}
	}
	if len(parts) > 2 {
		child := bytes.TrimSpace(parts[2])
		switch {
		case bytes.Equal(child, []byte("null")):
			e.Leaf = true
		case len(child) > 0 && child[0] == '"':
			if err := json.Unmarshal(child, &e.ChildRef); err != nil {
				return e, err
			}
		case len(child) > 0 && child[0] == '[':
			var nested []json.RawMessage
			if err := json.Unmarshal(child, &nested); err != nil {
				return e, err
			}
			children, err := decodeEntries(nested)
			if err != nil {
				return e, err
			}
			e.Children = children
		default:
			if e.problem == "" {
				e.problem = "third element must be null, an array or a string"
			}
		}
	}
	return e, nil
}

// Symbols returns the distinct top-level symbol names in first-seen order.
func (idx *Index) Symbols() []string {
	seen := make(map[string]bool, len(idx.Entries))
	out := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		if !seen[e.Symbol] {
			seen[e.Symbol] = true
			out = append(out, e.Symbol)
		}
	}
	return out
}

// Overloads counts the top-level entries per symbol name.
func (idx *Index) Overloads() map[string]int {
	counts := make(map[string]int, len(idx.Entries))
	for _, e := range idx.Entries {
		counts[e.Symbol]++
	}
	return counts
}

func skipSpaceAndComments(b []byte) []byte {
	for {
		b = bytes.TrimLeft(b, " \t\r\n\f\v")
		switch {
		case bytes.HasPrefix(b, []byte("//")):
			if i := bytes.IndexByte(b, '\n'); i >= 0 {
				b = b[i+1:]
			} else {
				return b[len(b):]
			}
		case bytes.HasPrefix(b, []byte("/*")):
			if i := bytes.Index(b[2:], []byte("*/")); i >= 0 {
				b = b[i+4:]
			} else {
				return b[len(b):]
			}
		default:
			return b
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_' || c == '$':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
