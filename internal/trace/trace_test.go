package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":       LevelOff,
		"off":    LevelOff,
		"ERROR":  LevelError,
		"phase":  LevelPhase,
		"Detail": LevelDetail,
		"debug":  LevelDebug,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Fatalf("phase must drop file scope")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) {
		t.Fatalf("detail must keep file scope")
	}
	if LevelDetail.ShouldEmit(ScopeKeyword) {
		t.Fatalf("detail must drop keyword scope")
	}
	if !LevelDebug.ShouldEmit(ScopeKeyword) {
		t.Fatalf("debug must keep keyword scope")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Fatalf("error level must drop non-error events")
	}
}

func TestStreamTracer_Text(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	span := Begin(tr, ScopePass, "scan", 0)
	Point(tr, ScopeKeyword, "keyword:add", "u8", "kind", "TYPE")
	span.WithExtra("files", "2").End("ok")

	out := buf.String()
	for _, want := range []string{"\u2192 scan", "\u2022 keyword:add (u8) {kind=TYPE}", "\u2190 scan (ok) {files=2}"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStreamTracer_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	Point(tr, ScopeKeyword, "keyword:add", "u8")
	Point(tr, ScopeFile, "view", "")
	if buf.Len() != 0 {
		t.Fatalf("phase level leaked detail events: %q", buf.String())
	}
	Error(tr, ScopeKeyword, "load", errors.New("boom"))
	if !strings.Contains(buf.String(), "! load (boom)") {
		t.Fatalf("error event missing: %q", buf.String())
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	Point(tr, ScopeFile, "view", "rebuilt", "count", "42")

	var got map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["name"] != "view" || got["kind"] != "point" || got["scope"] != "file" {
		t.Fatalf("unexpected event: %v", got)
	}
}

func TestRingTracer_Wraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeKeyword, name, "")
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len(snapshot) = %d, want 3", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Fatalf("snapshot[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
}

func TestMultiTracer_FansOut(t *testing.T) {
	var buf bytes.Buffer
	ring := NewRingTracer(8, LevelDebug)
	m := NewMultiTracer(LevelDebug, NewStreamTracer(&buf, LevelDebug, FormatText), ring)
	Point(m, ScopeDriver, "classify", "")
	if len(ring.Snapshot()) != 1 || buf.Len() == 0 {
		t.Fatalf("event not delivered to both tracers")
	}
	if m.Ring() != ring {
		t.Fatalf("Ring() did not return the ring child")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatalf("off tracer must be disabled")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	r := NewRingTracer(1, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	if FromContext(ctx) != Tracer(r) {
		t.Fatalf("tracer not propagated")
	}
}

func TestInertSpan(t *testing.T) {
	span := Begin(Nop, ScopePass, "scan", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("span on Nop tracer must be inert")
	}
}
