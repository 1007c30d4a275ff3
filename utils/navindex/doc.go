// Package navindex reads the navtree fragments Doxygen writes next to its
// HTML output and checks that they are well formed.
//
// A fragment assigns a JSON-compatible array to a variable:
//
//	var utils__string_8hpp =
//	[
//	    [ "contains", "utils__string_8hpp.html#a7e11...", null ],
//	    ...
//	];
//
// Each entry is a triple of symbol name, link and child. The child is null
// for a leaf, a nested array of entries, or the name of another fragment.
//
//	idx, err := navindex.ParseFile("docs/utils__string_8hpp.js")
//	if err != nil {
//		return err
//	}
//	for _, issue := range navindex.Validate(idx, navindex.DefaultOptions()) {
//		fmt.Println(issue)
//	}
package navindex
