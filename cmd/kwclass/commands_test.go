package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"kwclass/internal/dialect"
	"kwclass/internal/driver"
	"kwclass/internal/keywords"
	"kwclass/internal/pattern"
	"kwclass/internal/token"
)

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func newTestSession(t *testing.T, mask dialect.Mask) *keywords.Session {
	t.Helper()
	sess, err := keywords.NewSession(mask)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestClassifyWords(t *testing.T) {
	sess := newTestSession(t, dialect.CPP)
	sess.RegisterKeyword("u8", token.Type)

	got := classifyWords(sess, []string{"class", "if", "u8", "_Pragma", ""}, keywords.PreprocNone)
	want := []classification{
		{Word: "class", Kind: "CLASS", Preproc: "none", kind: token.Class},
		{Word: "if", Kind: "IF", Pattern: "PBRACED", Preproc: "none", kind: token.If},
		{Word: "u8", Kind: "TYPE", Preproc: "none", kind: token.Type},
		{Word: "_Pragma", Kind: "PP_PRAGMA", Preproc: "directive", kind: token.PPPragma},
		{Word: "", Kind: "NONE", Preproc: "none", kind: token.None},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("classifyWords[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	inPP := classifyWords(sess, []string{"if"}, keywords.PreprocDirective)
	if inPP[0].Kind != "PP_IF" || inPP[0].Pattern != "" {
		t.Fatalf("directive if = %+v", inPP[0])
	}
	if sess.Preproc() != keywords.PreprocNone {
		t.Fatalf("classify must not leak state into the session")
	}
}

func TestRenderClassifyPretty(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	renderClassifyPretty(&buf, []classification{
		{Word: "while", Kind: "WHILE", Pattern: "PBRACED"},
		{Word: "x", Kind: "WORD"},
	})
	want := "while  WHILE  (PBRACED)\nx      WORD\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestKindColor(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want *color.Color
	}{
		{token.Word, nil},
		{token.None, nil},
		{token.PPDefine, directiveColor},
		{token.PPPragma, directiveColor},
		{token.Preproc, directiveColor},
		{token.If, keywordColor},
		{token.Type, keywordColor},
	}
	for _, tt := range tests {
		if got := kindColor(tt.kind); got != tt.want {
			t.Fatalf("kindColor(%v) picked the wrong colour", tt.kind)
		}
	}
}

func TestRenderExplain(t *testing.T) {
	noColor(t)
	sess := newTestSession(t, dialect.C)
	var buf bytes.Buffer
	renderExplain(&buf, sess, "if")
	out := buf.String()
	if !strings.HasPrefix(out, "if (dialects C)\n") {
		t.Fatalf("header: %q", out)
	}
	if !strings.Contains(out, "* IF") || !strings.Contains(out, "* PP_IF") {
		t.Fatalf("explain if = %q", out)
	}

	buf.Reset()
	sess.RegisterKeyword("zork", token.Type)
	renderExplain(&buf, sess, "zork")
	if !strings.Contains(buf.String(), "user keyword") || !strings.Contains(buf.String(), "no static entry") {
		t.Fatalf("explain zork = %q", buf.String())
	}
}

func TestWriteDump(t *testing.T) {
	reg := keywords.NewRegistry(nil)
	reg.Upsert("u8", token.Type)

	var text bytes.Buffer
	if err := writeDump(&text, reg, "text"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text.String(), "custom type") || !strings.HasSuffix(text.String(), " u8\n") {
		t.Fatalf("text dump = %q", text.String())
	}

	var bin bytes.Buffer
	if err := writeDump(&bin, reg, "MSGPACK"); err != nil {
		t.Fatal(err)
	}
	back := keywords.NewRegistry(nil)
	if _, err := keywords.DecodeSnapshot(&bin, back); err != nil {
		t.Fatal(err)
	}
	if _, ok := back.Lookup("u8"); !ok {
		t.Fatalf("msgpack dump lost u8")
	}

	if err := writeDump(&text, reg, "xml"); err == nil {
		t.Fatalf("unknown format accepted")
	}
}

func TestRunCheck(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	if err := runCheck(&buf); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "303 entries") || !strings.Contains(out, "150/384") {
		t.Fatalf("check output = %q", out)
	}
}

func TestRenderScanJSON(t *testing.T) {
	rep := &driver.Report{
		Files: []driver.FileReport{
			{Path: "a.c", Mask: dialect.C, Words: 2, Kinds: map[token.Kind]int{token.If: 1, token.Word: 1}},
			{Path: "b.x", Err: errors.New("cannot determine dialect")},
		},
		Kinds:  map[token.Kind]int{token.If: 1, token.Word: 1},
		Shapes: map[pattern.Class]int{pattern.ParenBraced: 1},
	}
	var buf bytes.Buffer
	if err := renderScanJSON(&buf, rep); err != nil {
		t.Fatal(err)
	}
	var got scanJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Failed != 1 || got.Kinds["IF"] != 1 || got.Patterns["PBRACED"] != 1 {
		t.Fatalf("payload = %+v", got)
	}
	if got.Files[0].Dialect != "C" || got.Files[1].Error == "" {
		t.Fatalf("files = %+v", got.Files)
	}
}

func TestSortedCounts(t *testing.T) {
	got := sortedCounts(map[token.Kind]int{token.Word: 5, token.If: 2, token.For: 2})
	names := []string{"WORD", "FOR", "IF"}
	for i, n := range names {
		if got[i].name != n {
			t.Fatalf("sortedCounts = %+v", got)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode("ui", in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := readUIMode("color", "always"); err == nil || !strings.Contains(err.Error(), "--color") {
		t.Fatalf("readUIMode(always) = %v", err)
	}
}
