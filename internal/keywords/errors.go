package keywords

import "errors"

// Configuration errors: the user supplied something unusable.
var (
	// ErrKeywordFileIO reports that a keyword file could not be read.
	ErrKeywordFileIO = errors.New("keyword file i/o failure")
	// ErrMalformedKeywordFile reports a keyword file line that is not a
	// single identifier.
	ErrMalformedKeywordFile = errors.New("malformed keyword file")
)

// Invariant errors: the compiled-in table is broken. These signal a bad
// build, never bad input.
var (
	ErrTableUnsorted = errors.New("static keyword table is not sorted")
	ErrAmbiguousRun  = errors.New("static keyword table has an ambiguous run")
	ErrViewOverflow  = errors.New("dialect view exceeds keyword capacity")
)

// Exit codes, matching sysexits.h.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitSoftware = 70 // EX_SOFTWARE: malformed content or broken invariant
	ExitIOErr    = 74 // EX_IOERR
)

// IsInvariant reports whether err stems from a broken table invariant
// rather than from user configuration.
func IsInvariant(err error) bool {
	return errors.Is(err, ErrTableUnsorted) ||
		errors.Is(err, ErrAmbiguousRun) ||
		errors.Is(err, ErrViewOverflow)
}

// ExitCode maps err to the process exit code a CLI should use.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrKeywordFileIO):
		return ExitIOErr
	case errors.Is(err, ErrMalformedKeywordFile), IsInvariant(err):
		return ExitSoftware
	default:
		return ExitFailure
	}
}
