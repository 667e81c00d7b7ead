package core

// Code point constants compared literally by the HTML tokenizer.
const (
	CharEOF   = -1
	CharNULL  = 0x00
	CharTAB   = 0x09
	CharLF    = 0x0A
	CharFF    = 0x0C
	CharCR    = 0x0D
	CharSPACE = 0x20

	CharBANG      = 0x21 // !
	CharDQ        = 0x22 // "
	CharHASH      = 0x23 // #
	CharAMPERSAND = 0x26 // &
	CharSQ        = 0x27 // '
	CharLPAREN    = 0x28 // (
	CharRPAREN    = 0x29 // )
	CharSTAR      = 0x2A // *
	CharMINUS     = 0x2D // -
	CharSLASH     = 0x2F // /
	CharCOLON     = 0x3A // :
	CharSEMICOLON = 0x3B // ;
	CharLT        = 0x3C // <
	CharEQ        = 0x3D // =
	CharGT        = 0x3E // >
	CharQUESTION  = 0x3F // ?

	Char0 = 0x30
	Char9 = 0x39

	CharA = 0x41
	CharD = 0x44
	CharF = 0x46
	CharX = 0x58
	CharZ = 0x5A

	CharLBRACKET  = 0x5B // [
	CharBACKSLASH = 0x5C // \
	CharRBRACKET  = 0x5D // ]
	CharBT        = 0x60 // `

	CharLowerA = 0x61
	CharLowerF = 0x66
	CharLowerX = 0x78
	CharLowerZ = 0x7A

	CharLBRACE = 0x7B // {
	CharRBRACE = 0x7D // }

	// CharNullReplacement is substituted for NUL and invalid code points.
	CharNullReplacement = 0xFFFD
)

// IsWhitespace reports whether cp is ASCII whitespace: TAB, LF, FF, CR or SPACE.
func IsWhitespace(cp rune) bool {
	return cp == CharTAB || cp == CharLF || cp == CharFF || cp == CharCR || cp == CharSPACE
}

// IsUpperLetter reports whether cp is in A-Z.
func IsUpperLetter(cp rune) bool {
	return cp >= CharA && cp <= CharZ
}

// IsLowerLetter reports whether cp is in a-z.
func IsLowerLetter(cp rune) bool {
	return cp >= CharLowerA && cp <= CharLowerZ
}

// IsLetter reports whether cp is an ASCII letter.
func IsLetter(cp rune) bool {
	return IsLowerLetter(cp) || IsUpperLetter(cp)
}

// IsDigit checks if a code point is an ASCII digit
func IsDigit(cp rune) bool {
	return Char0 <= cp && cp <= Char9
}

func IsUpperHexDigit(cp rune) bool {
	return cp >= CharA && cp <= CharF
}

func IsLowerHexDigit(cp rune) bool {
	return cp >= CharLowerA && cp <= CharLowerF
}

// IsHexDigit reports whether cp is in 0-9, A-F or a-f.
func IsHexDigit(cp rune) bool {
	return IsDigit(cp) || IsUpperHexDigit(cp) || IsLowerHexDigit(cp)
}

// IsControl reports whether cp is a C0 or C1 control, DEL included.
func IsControl(cp rune) bool {
	return (cp >= 0 && cp <= 0x1F) || (cp >= 0x7F && cp <= 0x9F)
}

// IsSurrogate reports whether cp is in 0xD800-0xDFFF.
func IsSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

// IsSurrogatePair reports whether cp is a low surrogate (0xDC00-0xDFFF).
// It tests a single code point; it does not validate a pair.
func IsSurrogatePair(cp rune) bool {
	return cp >= 0xDC00 && cp <= 0xDFFF
}

// IsNonCharacter reports whether cp is a Unicode noncharacter: U+FDD0-U+FDEF
// or the last two code points of any of the 17 planes.
func IsNonCharacter(cp rune) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	// cp >= 0 keeps EOF out: -1&0xFFFE == 0xFFFE.
	return cp >= 0 && cp <= 0x10FFFF && cp&0xFFFE == 0xFFFE
}

// ToLowerCodePoint converts an ASCII upper case letter to lower case.
//
// The argument is not checked. Callers must test IsUpperLetter first;
// any other input is shifted by 0x20 all the same.
func ToLowerCodePoint(cp rune) rune {
	return cp + 0x20
}
