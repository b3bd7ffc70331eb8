package token_test

import (
	"testing"

	"kwclass/internal/token"
)

func TestKindNamesComplete(t *testing.T) {
	seen := make(map[string]token.Kind)
	for _, k := range token.Kinds() {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", uint8(k))
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q used by both %d and %d", name, uint8(prev), uint8(k))
		}
		seen[name] = k
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]token.Kind{
		"TYPE":          token.Type,
		"type":          token.Type,
		"CT_PP_PRAGMA":  token.PPPragma,
		" macro_open ":  token.MacroOpen,
		"WORD_":         token.WordUnderscore,
		"oc_intf":       token.OCIntf,
		"WHILE_OF_DO":   token.WhileOfDo,
		"ct_qualifier":  token.Qualifier,
	}
	for name, want := range cases {
		got, err := token.ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, name := range []string{"", "CT_", "NOT_A_KIND", "PP"} {
		if _, err := token.ParseKind(name); err == nil {
			t.Fatalf("ParseKind(%q) succeeded, want error", name)
		}
	}
}

func TestRoundTripNames(t *testing.T) {
	for _, k := range token.Kinds() {
		got, err := token.ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
}

func TestIsPreproc(t *testing.T) {
	pp := []token.Kind{token.PPAsm, token.PPDefine, token.PPPragma, token.PPUndef}
	for _, k := range pp {
		if !k.IsPreproc() {
			t.Fatalf("%v should be a directive name", k)
		}
	}
	non := []token.Kind{token.Preproc, token.If, token.Word, token.QEmit}
	for _, k := range non {
		if k.IsPreproc() {
			t.Fatalf("%v must NOT be a directive name", k)
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := token.Kind(250).String(); got != "Kind(250)" {
		t.Fatalf("String() = %q", got)
	}
	if token.Kind(250).Valid() {
		t.Fatalf("Kind(250) must not be valid")
	}
}
