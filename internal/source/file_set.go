package source

import (
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
)

// FileSet owns loaded sources. It is safe for concurrent use; the batch
// driver loads files from several workers.
type FileSet struct {
	mu    sync.RWMutex
	files []*File
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// Add stores already-normalised content and returns a new FileID, even when
// a file with the same path exists.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) (FileID, error) {
	lineIdx, err := buildLineIndex(content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	f := &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: lineIdx,
		Flags:   flags,
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		return 0, fmt.Errorf("too many files: %w", err)
	}
	f.ID = FileID(n)
	fs.files = append(fs.files, f)
	return f.ID, nil
}

// Load reads path, strips a UTF-8 BOM, folds CRLF to LF, applies NFC
// normalisation and adds the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	content, changed := removeBOM(content)
	if changed {
		flags |= FileHadBOM
	}
	content, changed = normalizeCRLF(content)
	if changed {
		flags |= FileNormalizedCRLF
	}
	content, changed = normalizeNFC(content)
	if changed {
		flags |= FileNormalizedNFC
	}
	return fs.Add(path, content, flags)
}

// Get returns the file for id, or nil. A nil FileSet holds no files.
func (fs *FileSet) Get(id FileID) *File {
	if fs == nil {
		return nil
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

// Resolve converts a span into line and column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return f.Position(span.Start), f.Position(span.End)
}

// Position converts a byte offset into a line and column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}
