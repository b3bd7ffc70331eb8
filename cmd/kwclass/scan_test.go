package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"kwclass/internal/driver"
)

func scanTempFile(t *testing.T, keep bool) *driver.Report {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.c")
	if err := os.WriteFile(path, []byte("x = 1;\r\nwhile (x) return;\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	rep, err := driver.Scan(context.Background(), []string{path}, driver.Options{KeepLexemes: keep})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return rep
}

func TestRenderLexemes(t *testing.T) {
	rep := scanTempFile(t, true)
	path := rep.Files[0].Path

	var buf bytes.Buffer
	renderLexemes(&buf, rep)
	want := []string{
		path + ":1:1 x WORD",
		path + ":2:1 while WHILE",
		path + ":2:8 x WORD",
		path + ":2:11 return RETURN",
	}
	if got := strings.Split(strings.TrimSpace(buf.String()), "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lexemes:\n%s\nwant:\n%s", buf.String(), strings.Join(want, "\n"))
	}

	buf.Reset()
	renderLexemes(&buf, scanTempFile(t, false))
	if buf.Len() != 0 {
		t.Fatalf("lexemes listed without KeepLexemes: %q", buf.String())
	}
}

func TestRenderScanPrettyNormalisation(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	renderScanPretty(&buf, scanTempFile(t, true))
	out := buf.String()
	if !strings.Contains(out, "4 words  (crlf)") {
		t.Fatalf("missing normalisation note:\n%s", out)
	}
	if !strings.Contains(out, ":2:1 while WHILE") {
		t.Fatalf("missing lexeme listing:\n%s", out)
	}
}

func TestRenderScanJSONLexemes(t *testing.T) {
	var buf bytes.Buffer
	if err := renderScanJSON(&buf, scanTempFile(t, true)); err != nil {
		t.Fatal(err)
	}
	var got scanJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	f := got.Files[0]
	if f.Normalized != "crlf" || len(f.Lexemes) != 4 {
		t.Fatalf("file = %+v", f)
	}
	if lx := f.Lexemes[3]; lx != (lexemeJSON{Line: 2, Col: 11, Word: "return", Kind: "RETURN"}) {
		t.Fatalf("lexeme = %+v", lx)
	}
}

func TestErrNoSources(t *testing.T) {
	msg := errNoSources().Error()
	if !strings.HasPrefix(msg, "no source files found (known extensions: .") {
		t.Fatalf("message = %q", msg)
	}
	for _, ext := range []string{".c", ".java", ".vala"} {
		if !strings.Contains(msg, ext+" ") && !strings.HasSuffix(msg, ext+")") {
			t.Fatalf("%s missing from %q", ext, msg)
		}
	}
}
