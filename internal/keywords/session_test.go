package keywords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kwclass/internal/dialect"
	"kwclass/internal/token"
	"kwclass/internal/trace"
)

func newSession(t *testing.T, mask dialect.Mask, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(mask, opts...)
	if err != nil {
		t.Fatalf("NewSession(%v): %v", mask, err)
	}
	return s
}

func TestSessionEmptyMask(t *testing.T) {
	if _, err := NewSession(0); err == nil {
		t.Fatalf("NewSession(0) succeeded")
	}
	if _, err := NewSession(dialect.PP); err == nil {
		t.Fatalf("NewSession(PP) succeeded")
	}
}

func TestSessionDropsPPBit(t *testing.T) {
	s := newSession(t, dialect.CPP|dialect.PP)
	if s.Mask() != dialect.CPP {
		t.Fatalf("Mask() = %v, want CPP", s.Mask())
	}
	if got := s.Classify("if"); got != token.If {
		t.Fatalf("Classify(if) = %v, want IF", got)
	}
}

func TestSessionConfigureDialect(t *testing.T) {
	s := newSession(t, dialect.CPP)
	if got := s.Classify("class"); got != token.Class {
		t.Fatalf("C++ class = %v", got)
	}
	if err := s.ConfigureDialect(dialect.C); err != nil {
		t.Fatal(err)
	}
	if got := s.Classify("class"); got != token.Word {
		t.Fatalf("C class = %v, want WORD", got)
	}
	if s.View().Mask() != dialect.C {
		t.Fatalf("view was not rebuilt")
	}
	if err := s.ConfigureDialect(0); err == nil {
		t.Fatalf("ConfigureDialect(0) succeeded")
	}
	if s.Mask() != dialect.C {
		t.Fatalf("failed reconfigure changed the mask to %v", s.Mask())
	}
}

func TestSessionRegisterThenClear(t *testing.T) {
	s := newSession(t, dialect.All)
	before := s.Classify("while")

	s.RegisterKeyword("while", token.Type)
	if got := s.Classify("while"); got != token.Type {
		t.Fatalf("registered while = %v, want TYPE", got)
	}
	s.ClearKeywords()
	if got := s.Classify("while"); got != before {
		t.Fatalf("after clear while = %v, want %v", got, before)
	}
}

func TestSessionPragmaState(t *testing.T) {
	s := newSession(t, dialect.C)
	if got := s.Classify("_Pragma"); got != token.PPPragma {
		t.Fatalf("Classify(_Pragma) = %v", got)
	}
	if s.Preproc() != PreprocDirective {
		t.Fatalf("Preproc() = %v, want directive", s.Preproc())
	}
	if got := s.Classify("if"); got != token.PPIf {
		t.Fatalf("if inside directive = %v, want PP_IF", got)
	}
	s.SetPreproc(PreprocNone)
	if got := s.Classify("if"); got != token.If {
		t.Fatalf("if after reset = %v, want IF", got)
	}
}

func TestSessionClassifyAs(t *testing.T) {
	s := newSession(t, dialect.All)
	kind, state := s.ClassifyAs("__pragma", dialect.CPP, PreprocNone)
	if kind != token.PPPragma || state != PreprocDirective {
		t.Fatalf("ClassifyAs(__pragma) = %v, %v", kind, state)
	}
	if s.Preproc() != PreprocNone {
		t.Fatalf("ClassifyAs changed the session state")
	}
	kind, _ = s.ClassifyAs("char", dialect.Pawn, PreprocNone)
	if kind != token.Char {
		t.Fatalf("ClassifyAs(char, PAWN) = %v", kind)
	}
}

func TestSessionSharedRegistry(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Upsert("u8", token.Type)
	s := newSession(t, dialect.C, WithRegistry(reg))
	if got := s.Classify("u8"); got != token.Type {
		t.Fatalf("Classify(u8) = %v", got)
	}
	if s.Registry() != reg {
		t.Fatalf("Registry() is not the supplied registry")
	}
}

func TestSessionLoadKeywordFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.txt")
	if err := os.WriteFile(path, []byte("u8\nu16 # unsigned\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	s := newSession(t, dialect.C, WithTracer(ring))
	if err := s.LoadKeywordFile(path); err != nil {
		t.Fatalf("LoadKeywordFile: %v", err)
	}
	if got := s.Classify("u16"); got != token.Type {
		t.Fatalf("u16 = %v", got)
	}

	var end *trace.Event
	events := ring.Snapshot()
	for i := range events {
		if events[i].Kind == trace.KindSpanEnd && events[i].Name == "keywords:load" {
			end = &events[i]
		}
	}
	if end == nil || end.Extra["count"] != "2" {
		t.Fatalf("missing load span end event: %+v", events)
	}

	if err := s.LoadKeywordFile(filepath.Join(dir, "missing.txt")); ExitCode(err) != ExitIOErr {
		t.Fatalf("missing file: %v", err)
	}
}

func TestSessionDescribe(t *testing.T) {
	s := newSession(t, dialect.Pawn)
	out := s.Describe("assert")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Describe(assert) = %q", out)
	}
	if !strings.HasPrefix(lines[0], "  ASSERT") {
		t.Fatalf("java alternative must not be marked: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "* FUNCTION") {
		t.Fatalf("pawn statement alternative must be marked: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "* PP_ASSERT") {
		t.Fatalf("pawn directive alternative must be marked: %q", lines[2])
	}
	if s.Describe("nothing_here") != "" {
		t.Fatalf("unknown word must describe to nothing")
	}
}
