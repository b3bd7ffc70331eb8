package keywords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"kwclass/internal/token"
)

// LoadKeywordFile registers every keyword listed in path as token.Type and
// returns how many lines it registered. A file that cannot be opened or
// read yields ErrKeywordFileIO; a bad line yields ErrMalformedKeywordFile.
func LoadKeywordFile(reg *Registry, path string) (int, error) {
	// #nosec G304 -- path comes from the user's configuration
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrKeywordFileIO, err)
	}
	defer f.Close()
	return LoadKeywords(reg, f, path)
}

// maxKeywordLine bounds a single line of a keyword file.
const maxKeywordLine = 1 << 20

// LoadKeywords reads keyword lines from r. The format is one identifier per
// line; '#' starts a comment that runs to the end of the line; blank lines
// are skipped. Either the whole input is registered or, on the first bad
// line, nothing is.
func LoadKeywords(reg *Registry, r io.Reader, name string) (int, error) {
	var tags []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxKeywordLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && isKeywordStart(fields[0]):
			tags = append(tags, fields[0])
		default:
			return 0, fmt.Errorf("%w: %s:%d: invalid line (starts with %q)",
				ErrMalformedKeywordFile, name, lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return 0, fmt.Errorf("%w: %s:%d: line longer than %d bytes",
				ErrMalformedKeywordFile, name, lineNo+1, maxKeywordLine)
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrKeywordFileIO, name, err)
	}

	for _, tag := range tags {
		reg.Upsert(tag, token.Type)
	}
	return len(tags), nil
}

// isKeywordStart reports whether word may begin a keyword: an ASCII letter,
// '_', '@' (Objective-C), '$' or any non-ASCII byte.
func isKeywordStart(word string) bool {
	if word == "" {
		return false
	}
	b := word[0]
	switch {
	case b == '_' || b == '@' || b == '$':
		return true
	case b >= utf8.RuneSelf:
		return true
	default:
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}
}
