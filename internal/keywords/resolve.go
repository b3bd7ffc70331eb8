package keywords

import (
	"kwclass/internal/dialect"
	"kwclass/internal/token"
)

// Preproc is the scanner's position relative to preprocessor directives.
type Preproc uint8

const (
	// PreprocNone is ordinary code.
	PreprocNone Preproc = iota
	// PreprocDirective is inside a directive line such as "#if" or "#pragma".
	PreprocDirective
	// PreprocDefine is inside the body of a "#define". Directive names are
	// not recognised there: "if" in a macro body is a statement keyword.
	PreprocDefine
)

func (p Preproc) String() string {
	switch p {
	case PreprocNone:
		return "none"
	case PreprocDirective:
		return "directive"
	case PreprocDefine:
		return "define"
	default:
		return "unknown"
	}
}

// InDirective reports whether directive-only keywords apply.
func (p Preproc) InDirective() bool { return p == PreprocDirective }

// pragmaOperators open a directive wherever they appear.
var pragmaOperators = map[string]struct{}{
	"_Pragma":  {},
	"__pragma": {},
}

// Resolve classifies word under mask. reg may be nil. When word is one of
// the pragma operators and the view knows it, *state is set to
// PreprocDirective before the alternatives are matched.
func Resolve(view *View, reg *Registry, word string, mask dialect.Mask, state *Preproc) token.Kind {
	if word == "" {
		return token.None
	}
	if kind, ok := reg.Lookup(word); ok {
		return kind
	}

	run := view.Run(word)
	if len(run) == 0 {
		return token.Word
	}
	if _, ok := pragmaOperators[word]; ok && state != nil {
		*state = PreprocDirective
	}

	inDirective := state != nil && state.InDirective()
	for _, e := range run {
		if e.matches(mask, inDirective) {
			return e.Kind
		}
	}
	return token.Word
}
