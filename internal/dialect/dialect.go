package dialect

import (
	"fmt"
	"strings"
)

// Mask is a set of dialects.
type Mask uint16

const (
	C    Mask = 0x0001
	CPP  Mask = 0x0002
	D    Mask = 0x0004
	CS   Mask = 0x0008
	Java Mask = 0x0010
	OC   Mask = 0x0020
	Vala Mask = 0x0040
	Pawn Mask = 0x0080
	ECMA Mask = 0x0100

	// AllC is every C-family dialect; Pawn is the odd one out.
	AllC Mask = 0x017f
	// All covers every dialect bit, including ones reserved for future use.
	All Mask = 0x0fff

	// PP restricts a keyword to preprocessor directives.
	PP Mask = 0x8000

	langBits = All
)

var maskNames = []struct {
	bit  Mask
	name string
}{
	{C, "C"},
	{CPP, "CPP"},
	{D, "D"},
	{CS, "CS"},
	{Java, "JAVA"},
	{OC, "OC"},
	{Vala, "VALA"},
	{Pawn, "PAWN"},
	{ECMA, "ECMA"},
}

// Intersects reports whether m and other share a dialect bit. The PP bit is
// not a dialect and never counts.
func (m Mask) Intersects(other Mask) bool {
	return m&other&langBits != 0
}

// Langs strips the PP bit.
func (m Mask) Langs() Mask { return m & langBits }

// PreprocOnly reports whether the PP bit is set.
func (m Mask) PreprocOnly() bool { return m&PP != 0 }

// Empty reports whether m selects no dialect.
func (m Mask) Empty() bool { return m.Langs() == 0 }

func (m Mask) String() string {
	if m == 0 {
		return "NONE"
	}
	if m.Langs() == All {
		if m.PreprocOnly() {
			return "ALL|PP"
		}
		return "ALL"
	}
	var parts []string
	rest := m
	for _, n := range maskNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest&PP != 0 {
		parts = append(parts, "PP")
		rest &^= PP
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

func (m Mask) GoString() string {
	return fmt.Sprintf("dialect.Mask(%s)", m.String())
}
