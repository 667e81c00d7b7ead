package core

import "strings"

// Class is a set of code point classes, one bit per predicate.
type Class uint16

const (
	ClassWhitespace Class = 1 << iota
	ClassUpperLetter
	ClassLowerLetter
	ClassDigit
	ClassUpperHexDigit
	ClassLowerHexDigit
	ClassControl
	ClassSurrogate
	ClassLowSurrogate
	ClassNonCharacter

	ClassNone     Class = 0
	ClassLetter         = ClassUpperLetter | ClassLowerLetter
	ClassHexDigit       = ClassDigit | ClassUpperHexDigit | ClassLowerHexDigit
)

var classNames = []struct {
	class Class
	name  string
}{
	{ClassWhitespace, "whitespace"},
	{ClassUpperLetter, "upper-letter"},
	{ClassLowerLetter, "lower-letter"},
	{ClassDigit, "digit"},
	{ClassUpperHexDigit, "upper-hex-digit"},
	{ClassLowerHexDigit, "lower-hex-digit"},
	{ClassControl, "control"},
	{ClassSurrogate, "surrogate"},
	{ClassLowSurrogate, "low-surrogate"},
	{ClassNonCharacter, "noncharacter"},
}

// asciiClasses is filled once by init and only read afterwards.
var asciiClasses [0x80]Class

func init() {
	for cp := rune(0); cp < 0x80; cp++ {
		asciiClasses[cp] = classify(cp)
	}
}

// Classify returns every class cp belongs to.
func Classify(cp rune) Class {
	if cp >= 0 && cp < 0x80 {
		return asciiClasses[cp]
	}
	return classify(cp)
}

func classify(cp rune) Class {
	var c Class
	if IsWhitespace(cp) {
		c |= ClassWhitespace
	}
	if IsUpperLetter(cp) {
		c |= ClassUpperLetter
	}
	if IsLowerLetter(cp) {
		c |= ClassLowerLetter
	}
	if IsDigit(cp) {
		c |= ClassDigit
	}
	if IsUpperHexDigit(cp) {
		c |= ClassUpperHexDigit
	}
	if IsLowerHexDigit(cp) {
		c |= ClassLowerHexDigit
	}
	if IsControl(cp) {
		c |= ClassControl
	}
	if IsSurrogate(cp) {
		c |= ClassSurrogate
	}
	if IsSurrogatePair(cp) {
		c |= ClassLowSurrogate
	}
	if IsNonCharacter(cp) {
		c |= ClassNonCharacter
	}
	return c
}

// Has reports whether c shares any class with other. For a derived mask
// such as ClassLetter this is the union of its members.
func (c Class) Has(other Class) bool {
	return c&other != 0
}

// Classes lists the single-bit classes in declaration order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i, n := range classNames {
		out[i] = n.class
	}
	return out
}

func (c Class) String() string {
	if c == ClassNone {
		return "none"
	}
	var parts []string
	for _, n := range classNames {
		if c&n.class != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
