package source

import "strings"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records what normalisation Load applied.
	FileFlags uint8
)

const (
	FileHadBOM FileFlags = 1 << iota
	FileNormalizedCRLF
	FileNormalizedNFC
)

var flagNames = []struct {
	flag FileFlags
	name string
}{
	{FileHadBOM, "bom"},
	{FileNormalizedCRLF, "crlf"},
	{FileNormalizedNFC, "nfc"},
}

// String lists the applied normalisations, e.g. "bom,crlf"; "" for none.
func (f FileFlags) String() string {
	var parts []string
	for _, n := range flagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
