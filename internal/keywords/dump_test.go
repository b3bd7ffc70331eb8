package keywords

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"kwclass/internal/token"
)

func TestDumpKeywords(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Upsert("u8", token.Type)
	reg.Upsert("BEGIN_MSG_MAP", token.MacroOpen)
	reg.Upsert("END_MSG_MAP", token.MacroClose)
	reg.Upsert("ELSE_MSG", token.MacroElse)
	reg.Upsert("__packed", token.Qualifier)

	var buf bytes.Buffer
	if err := DumpKeywords(&buf, reg); err != nil {
		t.Fatalf("DumpKeywords: %v", err)
	}
	line := func(label, tag string) string {
		return fmt.Sprintf("%-32s %s\n", label, tag)
	}
	want := line("macro-open", "BEGIN_MSG_MAP") +
		line("macro-else", "ELSE_MSG") +
		line("macro-close", "END_MSG_MAP") +
		line("set QUALIFIER", "__packed") +
		line("custom type", "u8")
	if buf.String() != want {
		t.Fatalf("dump mismatch:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDumpKeywordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpKeywords(&buf, NewRegistry(nil)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty registry dumped %q", buf.String())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Upsert("u8", token.Type)
	reg.Upsert("BEGIN_MSG_MAP", token.MacroOpen)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, reg); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	out := NewRegistry(nil)
	out.Upsert("stale", token.Type)
	n, err := DecodeSnapshot(&buf, out)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if n != 2 {
		t.Fatalf("decoded %d entries, want 2", n)
	}
	if got, _ := out.Lookup("BEGIN_MSG_MAP"); got != token.MacroOpen {
		t.Fatalf("BEGIN_MSG_MAP = %v", got)
	}
	if out.Len() != 3 {
		t.Fatalf("decoded registry has %d entries, want 3", out.Len())
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader("not msgpack"), NewRegistry(nil))
	if !errors.Is(err, ErrMalformedKeywordFile) {
		t.Fatalf("garbage decoded with err = %v, want ErrMalformedKeywordFile", err)
	}
}

func TestDecodeSnapshotUnknownKindIsAtomic(t *testing.T) {
	snap := Snapshot{Schema: snapshotSchema, Keywords: []SnapshotEntry{
		{Tag: "good", Kind: "TYPE"},
		{Tag: "bad", Kind: "NOT_A_KIND"},
	}}
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&snap); err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry(nil)
	_, err := DecodeSnapshot(&buf, reg)
	if !errors.Is(err, ErrMalformedKeywordFile) {
		t.Fatalf("err = %v, want ErrMalformedKeywordFile", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("failed decode registered %d entries", reg.Len())
	}
}

func TestDecodeSnapshotSchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&Snapshot{Schema: snapshotSchema + 1}); err != nil {
		t.Fatal(err)
	}
	_, err := DecodeSnapshot(&buf, NewRegistry(nil))
	if !errors.Is(err, ErrMalformedKeywordFile) || ExitCode(err) != ExitSoftware {
		t.Fatalf("err = %v, want ErrMalformedKeywordFile with exit %d", err, ExitSoftware)
	}
}

func TestLoadSnapshotFile(t *testing.T) {
	src := NewRegistry(nil)
	src.Upsert("u8", token.Type)
	src.Upsert("__packed", token.Qualifier)
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, src); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "kw.msgpack")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry(nil)
	n, err := LoadSnapshotFile(reg, path)
	if err != nil || n != 2 {
		t.Fatalf("LoadSnapshotFile = %d, %v; want 2", n, err)
	}
	if got, _ := reg.Lookup("__packed"); got != token.Qualifier {
		t.Fatalf("__packed = %v, want QUALIFIER", got)
	}

	_, err = LoadSnapshotFile(reg, filepath.Join(dir, "absent.msgpack"))
	if !errors.Is(err, ErrKeywordFileIO) || ExitCode(err) != ExitIOErr {
		t.Fatalf("missing snapshot: err = %v", err)
	}
}
