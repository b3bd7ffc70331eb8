package keywords

import (
	"testing"

	"kwclass/internal/dialect"
	"kwclass/internal/token"
)

func mustView(t *testing.T, mask dialect.Mask) *View {
	t.Helper()
	v, err := BuildView(mask)
	if err != nil {
		t.Fatalf("BuildView(%v): %v", mask, err)
	}
	return v
}

func TestResolve(t *testing.T) {
	tests := []struct {
		word  string
		mask  dialect.Mask
		state Preproc
		want  token.Kind
	}{
		{"", dialect.All, PreprocNone, token.None},
		{"class", dialect.CPP, PreprocNone, token.Class},
		{"class", dialect.C, PreprocNone, token.Word},
		{"char", dialect.Pawn, PreprocNone, token.Char},
		{"char", dialect.C, PreprocNone, token.Type},
		{"if", dialect.All, PreprocNone, token.If},
		{"if", dialect.All, PreprocDirective, token.PPIf},
		{"if", dialect.All, PreprocDefine, token.If},
		{"define", dialect.C, PreprocNone, token.Word},
		{"define", dialect.C, PreprocDirective, token.PPDefine},
		{"assert", dialect.Java, PreprocNone, token.Assert},
		{"assert", dialect.D, PreprocNone, token.Function},
		{"assert", dialect.Pawn, PreprocDirective, token.PPAssert},
		{"assert", dialect.C, PreprocNone, token.Word},
		{"@interface", dialect.OC, PreprocNone, token.OCIntf},
		{"@interface", dialect.Java, PreprocNone, token.Class},
		{"frobnicate", dialect.All, PreprocNone, token.Word},
	}
	for _, tt := range tests {
		v := mustView(t, tt.mask)
		state := tt.state
		got := Resolve(v, nil, tt.word, tt.mask, &state)
		if got != tt.want {
			t.Fatalf("Resolve(%q, %v, %v) = %v, want %v", tt.word, tt.mask, tt.state, got, tt.want)
		}
	}
}

func TestResolvePragmaOperators(t *testing.T) {
	v := mustView(t, dialect.All)
	for _, word := range []string{"_Pragma", "__pragma"} {
		state := PreprocNone
		if got := Resolve(v, nil, word, dialect.All, &state); got != token.PPPragma {
			t.Fatalf("Resolve(%q) = %v, want PP_PRAGMA", word, got)
		}
		if state != PreprocDirective {
			t.Fatalf("%q left state %v, want directive", word, state)
		}
	}

	// "pragma" alone only names a directive; it does not open one.
	state := PreprocNone
	if got := Resolve(v, nil, "pragma", dialect.All, &state); got != token.Word {
		t.Fatalf("Resolve(pragma) outside directive = %v, want WORD", got)
	}
	if state != PreprocNone {
		t.Fatalf("pragma changed state to %v", state)
	}
}

func TestResolveNilState(t *testing.T) {
	v := mustView(t, dialect.All)
	if got := Resolve(v, nil, "_Pragma", dialect.All, nil); got != token.Word {
		t.Fatalf("Resolve with nil state = %v, want WORD", got)
	}
	if got := Resolve(v, nil, "while", dialect.All, nil); got != token.While {
		t.Fatalf("Resolve(while) = %v", got)
	}
}

func TestResolveRegistryWins(t *testing.T) {
	v := mustView(t, dialect.CPP)
	reg := NewRegistry(nil)
	reg.Upsert("class", token.Type)
	reg.Upsert("u8", token.Type)

	state := PreprocDirective
	if got := Resolve(v, reg, "class", dialect.CPP, &state); got != token.Type {
		t.Fatalf("registered class = %v, want TYPE", got)
	}
	if got := Resolve(v, reg, "u8", dialect.CPP, &state); got != token.Type {
		t.Fatalf("registered u8 = %v, want TYPE", got)
	}
}

// Every non-WORD result must come from an entry that covers the dialect and
// the directive state the lookup ran in.
func TestResolveNoDialectLeak(t *testing.T) {
	langs := []dialect.Mask{
		dialect.C, dialect.CPP, dialect.D, dialect.CS, dialect.Java,
		dialect.OC, dialect.Vala, dialect.Pawn, dialect.ECMA,
	}
	for _, lang := range langs {
		v := mustView(t, lang)
		for _, e := range Static() {
			for _, start := range []Preproc{PreprocNone, PreprocDirective} {
				state := start
				got := Resolve(v, nil, e.Tag, lang, &state)
				if got == token.Word {
					continue
				}
				found := false
				for _, alt := range Lookup(e.Tag) {
					if alt.Kind == got && alt.Mask.Intersects(lang) && alt.PreprocOnly() == state.InDirective() {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("%q under %v (%v) resolved to %v with no covering entry", e.Tag, lang, start, got)
				}
			}
		}
	}
}

func TestPreprocString(t *testing.T) {
	cases := map[Preproc]string{
		PreprocNone:      "none",
		PreprocDirective: "directive",
		PreprocDefine:    "define",
		Preproc(9):       "unknown",
	}
	for p, want := range cases {
		if p.String() != want {
			t.Fatalf("Preproc(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
	if PreprocDefine.InDirective() {
		t.Fatalf("a #define body is not a directive for matching")
	}
}
