// Package pattern maps statement keywords to the shape of the statement
// they open, e.g. "if" takes a parenthesised condition and a braced body.
package pattern

import "kwclass/internal/token"

// Class is a statement shape.
type Class uint8

const (
	None            Class = iota // no statement shape
	Braced                       // keyword {}
	OptBracedExpr                // keyword [()] {}
	ParenBraced                  // keyword () {}
	NamespaceBraced              // keyword [name] {}
	ElseLike                     // else, possibly followed by if
	InvariantParen               // invariant ()
	WhileOfDoParen               // the while of do {} while ()
)

func (c Class) String() string {
	switch c {
	case None:
		return "NONE"
	case Braced:
		return "BRACED"
	case OptBracedExpr:
		return "OPBRACED"
	case ParenBraced:
		return "PBRACED"
	case NamespaceBraced:
		return "VBRACED"
	case ElseLike:
		return "ELSE"
	case InvariantParen:
		return "OPPAREN"
	case WhileOfDoParen:
		return "PAREN"
	default:
		return "unknown"
	}
}

var shapes = map[token.Kind]Class{
	token.If:           ParenBraced,
	token.ElseIf:       ParenBraced,
	token.Switch:       ParenBraced,
	token.For:          ParenBraced,
	token.While:        ParenBraced,
	token.Synchronized: ParenBraced,
	token.UsingStmt:    ParenBraced,
	token.Lock:         ParenBraced,
	token.DWith:        ParenBraced,
	token.DVersionIf:   ParenBraced,
	token.DScopeIf:     ParenBraced,

	token.Else: ElseLike,

	token.Do:       Braced,
	token.Try:      Braced,
	token.Finally:  Braced,
	token.Body:     Braced,
	token.Unittest: Braced,
	token.Unsafe:   Braced,
	token.Volatile: Braced,
	token.GetSet:   Braced,

	token.Catch:    OptBracedExpr,
	token.DVersion: OptBracedExpr,
	token.Debug:    OptBracedExpr,

	token.Namespace: NamespaceBraced,
	token.WhileOfDo: WhileOfDoParen,
	token.Invariant: InvariantParen,
}

// ShapeOf returns the statement shape opened by kind, or None.
func ShapeOf(kind token.Kind) Class {
	return shapes[kind]
}
