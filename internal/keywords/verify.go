package keywords

import (
	"fmt"
	"sync"
)

// VerifySorted checks that the static table is in byte-wise ascending order.
func VerifySorted() error { return verifySorted(static) }

// VerifyRuns checks that no two alternatives of a run can match the same
// dialect in the same preprocessor state. Such a pair would leave the
// winner to declaration order.
func VerifyRuns() error { return verifyRuns(static) }

// Verify runs every table self-check.
func Verify() error {
	if err := VerifySorted(); err != nil {
		return err
	}
	return VerifyRuns()
}

// tableCheck caches Verify; the table is compiled in, so one run per
// process is enough.
var tableCheck = sync.OnceValue(Verify)

// CheckTable runs Verify on first use and returns its cached result.
// NewSession calls it, so a broken table fails every session.
func CheckTable() error { return tableCheck() }

func verifySorted(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Tag > entries[i].Tag {
			return fmt.Errorf("%w: bad order at index %d, words %q and %q",
				ErrTableUnsorted, i-1, entries[i-1].Tag, entries[i].Tag)
		}
	}
	return nil
}

func verifyRuns(entries []Entry) error {
	for start := 0; start < len(entries); {
		end := start + 1
		for end < len(entries) && entries[end].Tag == entries[start].Tag {
			end++
		}
		run := entries[start:end]
		for i := range run {
			for j := i + 1; j < len(run); j++ {
				a, b := run[i], run[j]
				if a.Mask.Intersects(b.Mask) && a.PreprocOnly() == b.PreprocOnly() {
					return fmt.Errorf("%w: %q is both %v and %v for %v (preprocessor only: %t)",
						ErrAmbiguousRun, a.Tag, a.Kind, b.Kind, (a.Mask & b.Mask).Langs(), a.PreprocOnly())
				}
			}
		}
		start = end
	}
	return nil
}
