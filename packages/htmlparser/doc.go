// Package htmlparser holds the building blocks of an HTML5 tokenizer.
//
// Main sub-packages:
//
//   - core: code point constants and the classification predicates the
//     tokenizer branches on (whitespace, ASCII letters and digits, controls,
//     surrogates, noncharacters), a Class bit set and unicode.RangeTable
//     forms of the same classes
//
// Every function in core is pure and safe for concurrent use. The tables
// are built during package initialization and are read-only afterwards.
package htmlparser
