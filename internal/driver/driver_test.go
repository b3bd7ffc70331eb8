package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/pattern"
	"kwclass/internal/token"
	"kwclass/internal/trace"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func TestListFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.c":          "",
		"sub/b.cpp":    "",
		"sub/notes.md": "",
		".git/x.c":     "",
		"Main.java":    "",
	})
	got, err := ListFiles([]string{dir, filepath.Join(dir, "a.c"), filepath.Join(dir, "sub", "notes.md")})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "Main.java"),
		filepath.Join(dir, "a.c"),
		filepath.Join(dir, "sub", "b.cpp"),
		filepath.Join(dir, "sub", "notes.md"),
	}
	if len(got) != len(want) {
		t.Fatalf("ListFiles = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListFiles = %v, want %v", got, want)
		}
	}

	if _, err := ListFiles([]string{filepath.Join(dir, "missing")}); !os.IsNotExist(err) {
		t.Fatalf("missing root: %v", err)
	}
}

func TestScanPerFileDialect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.c":   "u8 x; class y;\nif (x) {}\n",
		"b.cpp": "class y { };\n",
	})
	files, err := ListFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}

	base := keywords.NewRegistry(nil)
	base.Upsert("u8", token.Type)
	rec := &recorder{}
	rep, err := Scan(context.Background(), files, Options{Registry: base, Jobs: 2, Progress: rec, KeepLexemes: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rep.Failed() != 0 {
		t.Fatalf("unexpected failures: %+v", rep.Files)
	}

	c := rep.Files[0]
	if c.Mask != dialect.C || c.Words != 6 {
		t.Fatalf("a.c: mask %v words %d", c.Mask, c.Words)
	}
	if c.Kinds[token.Type] != 1 || c.Kinds[token.Class] != 0 || c.Kinds[token.If] != 1 {
		t.Fatalf("a.c kinds = %v", c.Kinds)
	}
	if c.Shapes[pattern.ParenBraced] != 1 {
		t.Fatalf("a.c shapes = %v", c.Shapes)
	}
	if len(c.Lexemes) != 6 || c.Lexemes[0].Text != "u8" {
		t.Fatalf("a.c lexemes = %v", c.Lexemes)
	}

	cpp := rep.Files[1]
	if cpp.Kinds[token.Class] != 1 {
		t.Fatalf("b.cpp kinds = %v", cpp.Kinds)
	}
	if rep.Kinds[token.Class] != 1 || rep.Kinds[token.Word] != 5 {
		t.Fatalf("totals = %v", rep.Kinds)
	}

	if base.Len() != 1 {
		t.Fatalf("scan modified the base registry")
	}

	done := 0
	for _, evt := range rec.events {
		if evt.Stage == StageScan && evt.Status == StatusDone {
			done++
		}
	}
	if done != 2 {
		t.Fatalf("got %d done events, want 2: %+v", done, rec.events)
	}
}

func TestScanUnknownExtension(t *testing.T) {
	dir := writeFiles(t, map[string]string{"script.txt": "while x"})
	path := filepath.Join(dir, "script.txt")

	rep, err := Scan(context.Background(), []string{path}, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !errors.Is(rep.Files[0].Err, ErrNoDialect) {
		t.Fatalf("err = %v, want ErrNoDialect", rep.Files[0].Err)
	}

	rep, err = Scan(context.Background(), []string{path}, Options{Fallback: dialect.C})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rep.Files[0].Err != nil || rep.Files[0].Kinds[token.While] != 1 {
		t.Fatalf("fallback scan = %+v", rep.Files[0])
	}
}

func TestScanMissingFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.c")
	rec := &recorder{}
	rep, err := Scan(context.Background(), []string{path}, Options{Progress: rec})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rep.Failed() != 1 || !os.IsNotExist(rep.Files[0].Err) {
		t.Fatalf("report = %+v", rep.Files[0])
	}
	last := rec.events[len(rec.events)-1]
	if last.Status != StatusError {
		t.Fatalf("last event = %+v", last)
	}
}

func TestScanCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Scan(ctx, []string{filepath.Join(dir, "a.c")}, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestScanTraces(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;"})
	ring := trace.NewRingTracer(256, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := Scan(ctx, []string{filepath.Join(dir, "a.c")}, Options{}); err != nil {
		t.Fatal(err)
	}
	var sawPass, sawFile bool
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanEnd {
			continue
		}
		switch ev.Name {
		case "scan":
			sawPass = ev.Extra["files"] == "1"
		case "file":
			sawFile = ev.Extra["dialect"] == "C"
		}
	}
	if !sawPass || !sawFile {
		t.Fatalf("missing spans: pass=%v file=%v", sawPass, sawFile)
	}
}
