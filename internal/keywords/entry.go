package keywords

import (
	"sort"

	"kwclass/internal/dialect"
	"kwclass/internal/token"
)

// Entry is one static keyword definition.
type Entry struct {
	Tag  string
	Kind token.Kind
	// Mask holds the dialects the entry applies to plus, optionally, the
	// dialect.PP bit.
	Mask dialect.Mask
}

// PreprocOnly reports whether the entry only matches inside a directive.
func (e Entry) PreprocOnly() bool { return e.Mask.PreprocOnly() }

// matches reports whether e applies under mask with the given directive state.
func (e Entry) matches(mask dialect.Mask, inDirective bool) bool {
	return e.Mask.Intersects(mask) && e.PreprocOnly() == inDirective
}

// Static returns the compiled-in table. The slice must not be modified.
func Static() []Entry { return static }

// Lookup returns every static alternative for tag regardless of dialect.
func Lookup(tag string) []Entry {
	return lookupRun(static, tag)
}

// lookupRun finds the run for tag in sorted entries with a lower-bound
// search, so the first alternative is found without backing up.
func lookupRun(entries []Entry, tag string) []Entry {
	lo := sort.Search(len(entries), func(i int) bool {
		return entries[i].Tag >= tag
	})
	hi := lo
	for hi < len(entries) && entries[hi].Tag == tag {
		hi++
	}
	if lo == hi {
		return nil
	}
	return entries[lo:hi:hi]
}
