package keywords

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"kwclass/internal/token"
)

// optionNameWidth is the column where the tag starts in DumpKeywords output.
const optionNameWidth = 32

// DumpKeywords writes reg in tag order, one configuration line per keyword:
//
//	custom type                      u8
//	macro-open                       BEGIN_MESSAGE_MAP
//	set QUALIFIER                    __packed
func DumpKeywords(w io.Writer, reg *Registry) error {
	bw := bufio.NewWriter(w)
	var werr error
	reg.ForEach(func(tag string, kind token.Kind) bool {
		label := dumpLabel(kind)
		_, werr = fmt.Fprintf(bw, "%s %s\n", runewidth.FillRight(label, optionNameWidth), tag)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

func dumpLabel(kind token.Kind) string {
	switch kind {
	case token.Type:
		return "custom type"
	case token.MacroOpen:
		return "macro-open"
	case token.MacroClose:
		return "macro-close"
	case token.MacroElse:
		return "macro-else"
	default:
		return "set " + kind.String()
	}
}

// snapshotSchema is bumped whenever Snapshot changes shape.
const snapshotSchema uint16 = 1

// Snapshot is the serialised form of a Registry.
type Snapshot struct {
	Schema   uint16
	Keywords []SnapshotEntry
}

// SnapshotEntry is one registry entry; Kind is stored by name so snapshots
// survive renumbering of token.Kind.
type SnapshotEntry struct {
	Tag  string `msgpack:"tag"`
	Kind string `msgpack:"kind"`
}

// EncodeSnapshot writes reg to w as msgpack.
func EncodeSnapshot(w io.Writer, reg *Registry) error {
	snap := Snapshot{Schema: snapshotSchema, Keywords: make([]SnapshotEntry, 0, reg.Len())}
	reg.ForEach(func(tag string, kind token.Kind) bool {
		snap.Keywords = append(snap.Keywords, SnapshotEntry{Tag: tag, Kind: kind.String()})
		return true
	})
	return msgpack.NewEncoder(w).Encode(&snap)
}

// DecodeSnapshot reads a snapshot from r and upserts its entries into reg.
// A snapshot that does not decode, carries another schema or names an
// unknown kind yields ErrMalformedKeywordFile and leaves reg untouched.
func DecodeSnapshot(r io.Reader, reg *Registry) (int, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("%w: decode keyword snapshot: %w", ErrMalformedKeywordFile, err)
	}
	if snap.Schema != snapshotSchema {
		return 0, fmt.Errorf("%w: keyword snapshot schema %d, want %d",
			ErrMalformedKeywordFile, snap.Schema, snapshotSchema)
	}
	kinds := make([]token.Kind, len(snap.Keywords))
	for i, e := range snap.Keywords {
		kind, err := token.ParseKind(e.Kind)
		if err != nil {
			return 0, fmt.Errorf("%w: keyword snapshot entry %q: %w", ErrMalformedKeywordFile, e.Tag, err)
		}
		kinds[i] = kind
	}
	for i, e := range snap.Keywords {
		reg.Upsert(e.Tag, kinds[i])
	}
	return len(snap.Keywords), nil
}

// LoadSnapshotFile decodes the snapshot stored at path into reg, as written
// by "kwclass dump --format msgpack".
func LoadSnapshotFile(reg *Registry, path string) (int, error) {
	// #nosec G304 -- path comes from the command line
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrKeywordFileIO, err)
	}
	defer f.Close()
	n, err := DecodeSnapshot(bufio.NewReader(f), reg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
