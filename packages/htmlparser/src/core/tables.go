package core

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range tables for each class, for use with unicode.Is and unicode.In.
// They are built during package initialization and must not be modified.
var (
	WhitespaceTable    = rangetable.New(CharTAB, CharLF, CharFF, CharCR, CharSPACE)
	UpperLetterTable   = rangetable.New(span(CharA, CharZ)...)
	LowerLetterTable   = rangetable.New(span(CharLowerA, CharLowerZ)...)
	DigitTable         = rangetable.New(span(Char0, Char9)...)
	UpperHexDigitTable = rangetable.New(span(CharA, CharF)...)
	LowerHexDigitTable = rangetable.New(span(CharLowerA, CharLowerF)...)
	ControlTable       = rangetable.Merge(rangetable.New(span(0x00, 0x1F)...), rangetable.New(span(0x7F, 0x9F)...))
	SurrogateTable     = rangetable.New(span(0xD800, 0xDFFF)...)
	LowSurrogateTable  = rangetable.New(span(0xDC00, 0xDFFF)...)
	NonCharacterTable  = rangetable.Merge(rangetable.New(span(0xFDD0, 0xFDEF)...), rangetable.New(planeEnds()...))
	LetterTable        = rangetable.Merge(UpperLetterTable, LowerLetterTable)
	HexDigitTable      = rangetable.Merge(DigitTable, UpperHexDigitTable, LowerHexDigitTable)
)

// Table returns the range table for c, or nil when c is not a single class
// or one of ClassLetter and ClassHexDigit.
func Table(c Class) *unicode.RangeTable {
	switch c {
	case ClassWhitespace:
		return WhitespaceTable
	case ClassUpperLetter:
		return UpperLetterTable
	case ClassLowerLetter:
		return LowerLetterTable
	case ClassDigit:
		return DigitTable
	case ClassUpperHexDigit:
		return UpperHexDigitTable
	case ClassLowerHexDigit:
		return LowerHexDigitTable
	case ClassControl:
		return ControlTable
	case ClassSurrogate:
		return SurrogateTable
	case ClassLowSurrogate:
		return LowSurrogateTable
	case ClassNonCharacter:
		return NonCharacterTable
	case ClassLetter:
		return LetterTable
	case ClassHexDigit:
		return HexDigitTable
	}
	return nil
}

func span(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// planeEnds returns U+xFFFE and U+xFFFF for all 17 planes.
func planeEnds() []rune {
	out := make([]rune, 0, 34)
	for plane := rune(0); plane <= 0x10; plane++ {
		out = append(out, plane<<16|0xFFFE, plane<<16|0xFFFF)
	}
	return out
}
