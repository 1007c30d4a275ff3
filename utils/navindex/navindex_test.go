// File: navindex_test.go
// Title: Navigation Index Tests
// Description: Parses the bundled navtree fixtures and checks every
//              validation rule.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package navindex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liberr "github.com/Wosser1sProductions/utils/core/error"
	"github.com/Wosser1sProductions/utils/core/errors"
)

func TestParseHeaderIndex(t *testing.T) {
	idx, err := ParseFile("testdata/utils__string_8hpp.js")
	require.NoError(t, err)

	assert.Equal(t, "utils__string_8hpp", idx.Name)
	assert.Equal(t, "testdata/utils__string_8hpp.js", idx.Source)
	require.Len(t, idx.Entries, 44)

	first := idx.Entries[0]
	assert.Equal(t, "base64_decode", first.Symbol)
	assert.Equal(t, "utils__string_8hpp.html", first.Page())
	assert.Equal(t, "aa055a29a398188baa5eb80b9c453b064", first.Anchor())
	assert.True(t, first.Leaf)

	last := idx.Entries[len(idx.Entries)-1]
	assert.Equal(t, "_base64_chars", last.Symbol)

	assert.Empty(t, Validate(idx, DefaultOptions()))
	assert.NoError(t, Check(idx, DefaultOptions()))
}

func TestSymbolsAndOverloads(t *testing.T) {
	idx, err := ParseFile("testdata/utils__string_8hpp.js")
	require.NoError(t, err)

	symbols := idx.Symbols()
	assert.Len(t, symbols, 28)
	assert.Equal(t, []string{"base64_decode", "base64_encode", "contains"}, symbols[:3])

	overloads := idx.Overloads()
	assert.Equal(t, 3, overloads["starts_with"])
	assert.Equal(t, 3, overloads["strJoin"])
	assert.Equal(t, 2, overloads["str2wstr"])
	assert.Equal(t, 1, overloads["strSplit"])
	assert.Equal(t, 0, overloads["missing"])
}

func TestParseNested(t *testing.T) {
	idx, err := ParseFile("testdata/nested.js")
	require.NoError(t, err)

	assert.Equal(t, "files_dup", idx.Name)
	require.Len(t, idx.Entries, 2)

	assert.Equal(t, "dir_a1b2", idx.Entries[0].ChildRef)
	assert.False(t, idx.Entries[0].Leaf)
	require.Len(t, idx.Entries[1].Children, 2)
	assert.Equal(t, "trim", idx.Entries[1].Children[0].Symbol)

	issues := Validate(idx, Options{RequireLeaves: false})
	require.Len(t, issues, 2)
	assert.Equal(t, 0, issues[0].Index)
	assert.Contains(t, issues[0].Reason, "dir_a1b2.html")
	assert.Equal(t, 1, issues[1].Index)
	assert.Equal(t, "utils_string.hpp/", issues[1].Symbol)
	assert.Equal(t, "empty symbol name", issues[1].Reason)

	strict := Validate(idx, DefaultOptions())
	require.Len(t, strict, 3)
	assert.Equal(t, "third element is not null", strict[1].Reason)
	assert.Equal(t, "third element is not null", strict[2].Reason)
}

func TestParseNestedTree(t *testing.T) {
	idx, err := ParseFile("testdata/nested.js")
	require.NoError(t, err)

	want := []Entry{
		{Symbol: "utils_lib", Link: "dir_a1b2.html", ChildRef: "dir_a1b2"},
		{Symbol: "utils_string.hpp", Link: "utils__string_8hpp.html#details", Children: []Entry{
			{Symbol: "trim", Link: "utils__string_8hpp.html#a84fe", Leaf: true},
			{Symbol: "", Link: "utils__string_8hpp.html#a0000", Leaf: true},
		}},
	}
	opts := cmp.Options{
		cmpopts.IgnoreFields(Entry{}, "Raw"),
		cmpopts.IgnoreUnexported(Entry{}),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(want, idx.Entries, opts); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMalformed(t *testing.T) {
	idx, err := ParseFile("testdata/malformed.js")
	require.NoError(t, err)
	require.Len(t, idx.Entries, 9)

	issues := Validate(idx, DefaultOptions())

	want := []struct {
		index  int
		reason string
	}{
		{1, "entry has 2 elements, want 3"},
		{2, "empty symbol name"},
		{3, "empty link"},
		{4, `link "page.htm#a5" is not of the form <page>.html#<anchor>`},
		{5, `link "page.html#" is not of the form <page>.html#<anchor>`},
		{6, "third element is not null"},
		{7, "entry is not an array"},
		{8, "symbol is not a string"},
	}
	require.Len(t, issues, len(want))
	for i, w := range want {
		assert.Equal(t, w.index, issues[i].Index, "issue %d", i)
		assert.Equal(t, w.reason, issues[i].Reason, "issue %d", i)
		assert.Equal(t, "testdata/malformed.js", issues[i].Path)
	}

	err = Check(idx, DefaultOptions())
	require.Error(t, err)
	assert.True(t, liberr.HasCode(err, errors.CodeNavindexInvalid))
	assert.Equal(t, 8, errors.ExtractDetails(err)["issues"])
}

func TestIssueError(t *testing.T) {
	assert.Equal(t, "f.js: entry 3 (trim): empty link",
		Issue{Path: "f.js", Index: 3, Symbol: "trim", Reason: "empty link"}.Error())
	assert.Equal(t, "f.js: entry 0: entry is not an array",
		Issue{Path: "f.js", Index: 0, Reason: "entry is not an array"}.Error())
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"empty", "", "expected 'var' declaration"},
		{"no var", `x = [];`, "expected 'var' declaration"},
		{"var prefix only", `variable = [];`, "expected 'var' declaration"},
		{"no name", `var = [];`, "expected variable name"},
		{"no equals", `var x [];`, "expected '=' after x"},
		{"no array", `var x = {};`, "expected array literal"},
		{"bad json", `var x = [ [ "a", 'b', null ] ];`, "invalid array literal"},
		{"unterminated", `var x = [ [ "a", "b.html#c", null ]`, "invalid array literal"},
		{"trailing content", `var x = []; y = 1;`, "unexpected content after array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, liberr.HasCode(err, errors.CodeNavindexSyntax))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no semicolon", `var a = [ [ "s", "p.html#x", null ] ]`},
		{"line comment", "// generated\nvar a = [ [ \"s\", \"p.html#x\", null ] ];\n"},
		{"trailing comment", "var a = [ [ \"s\", \"p.html#x\", null ] ]; // end\n"},
		{"compact", `var a=[["s","p.html#x",null]];`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "a", idx.Name)
			require.Len(t, idx.Entries, 1)
			assert.Empty(t, Validate(idx, DefaultOptions()))
		})
	}
}

func TestParseReader(t *testing.T) {
	idx, err := Parse(strings.NewReader(`var empty = [];`))
	require.NoError(t, err)
	assert.Empty(t, idx.Entries)
	assert.Empty(t, idx.Symbols())
	assert.Equal(t, "input", idx.Source)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.js")
	require.Error(t, err)
	assert.True(t, liberr.HasCode(err, errors.CodeNavindexSyntax))
}
