// File: validate.go
// Title: Navigation Index Validation
// Description: Checks every entry of a parsed index for the triple shape,
//              a non-empty symbol and a <page>.html#<anchor> link.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package navindex

import (
	"fmt"
	"strings"

	"github.com/Wosser1sProductions/utils/core/errors"
)

// Options controls validation.
type Options struct {
	// RequireLeaves demands a null third element on every entry, as in the
	// index of a single header file. When false, nested entries are
	// validated recursively and string references are accepted.
	RequireLeaves bool
}

// DefaultOptions validates a per-file index.
func DefaultOptions() Options {
	return Options{RequireLeaves: true}
}

// Issue is one malformed entry.
type Issue struct {
	// Path is the source the index was parsed from.
	Path string
	// Index is the position of the top-level entry, or of the top-level
	// ancestor for nested entries.
	Index  int
	Symbol string
	Reason string
}

// Error implements the error interface.
func (i Issue) Error() string {
	if i.Symbol == "" {
		return fmt.Sprintf("%s: entry %d: %s", i.Path, i.Index, i.Reason)
	}
	return fmt.Sprintf("%s: entry %d (%s): %s", i.Path, i.Index, i.Symbol, i.Reason)
}

// Validate returns every violation in idx, in file order. An empty result
// means the index is well formed.
func Validate(idx *Index, opts Options) []Issue {
	var issues []Issue
	for i, e := range idx.Entries {
		issues = validateEntry(issues, idx.Source, i, "", e, opts)
	}
	return issues
}

// Check is Validate reduced to a single coded error, nil when the index is
// well formed.
func Check(idx *Index, opts Options) error {
	if issues := Validate(idx, opts); len(issues) > 0 {
		return errors.NavindexInvalid(idx.Source, len(issues))
	}
	return nil
}

func validateEntry(issues []Issue, source string, index int, parent string, e Entry, opts Options) []Issue {
	symbol := e.Symbol
	if parent != "" {
		symbol = parent + "/" + e.Symbol
	}
	report := func(reason string) {
		issues = append(issues, Issue{Path: source, Index: index, Symbol: symbol, Reason: reason})
	}

	if e.problem != "" {
		report(e.problem)
		return issues
	}

	if strings.TrimSpace(e.Symbol) == "" {
		report("empty symbol name")
	}
	if !validLink(e.Link) {
		if e.Link == "" {
			report("empty link")
		} else {
			report(fmt.Sprintf("link %q is not of the form <page>.html#<anchor>", e.Link))
		}
	}

	switch {
	case opts.RequireLeaves && !e.Leaf:
		report("third element is not null")
	case !opts.RequireLeaves:
		for _, child := range e.Children {
			issues = validateEntry(issues, source, index, symbol, child, opts)
		}
	}
	return issues
}

func validLink(link string) bool {
	page, anchor, ok := strings.Cut(link, "#")
	if !ok || anchor == "" {
		return false
	}
	name, found := strings.CutSuffix(page, ".html")
	return found && name != ""
}
