package keywords

import (
	"fmt"

	"kwclass/internal/dialect"
)

// MaxKeywords bounds the number of static entries a single view may select.
const MaxKeywords = 384

// View is the static table filtered to one dialect mask. It is immutable;
// a dialect change builds a new View.
type View struct {
	mask      dialect.Mask
	entries   []Entry
	runs      map[string][]Entry
	conflicts []string
}

// BuildView selects every static entry whose dialects intersect mask.
func BuildView(mask dialect.Mask) (*View, error) {
	return buildView(static, mask, MaxKeywords)
}

// buildView filters entries in one pass. Filtering keeps order, so the view
// stays sorted and runs stay contiguous; each run is indexed by its tag as a
// subslice of the view.
func buildView(entries []Entry, mask dialect.Mask, limit int) (*View, error) {
	selected := make([]Entry, 0, limit)
	for _, e := range entries {
		if !e.Mask.Intersects(mask) {
			continue
		}
		if len(selected) == limit {
			return nil, fmt.Errorf("%w: more than %d keywords for %v", ErrViewOverflow, limit, mask)
		}
		selected = append(selected, e)
	}

	v := &View{mask: mask, entries: selected, runs: make(map[string][]Entry, len(selected))}
	for start := 0; start < len(selected); {
		end := start + 1
		for end < len(selected) && selected[end].Tag == selected[start].Tag {
			end++
		}
		run := selected[start:end:end]
		v.runs[run[0].Tag] = run
		if hasConflict(run, mask) {
			v.conflicts = append(v.conflicts, run[0].Tag)
		}
		start = end
	}
	return v, nil
}

// hasConflict reports whether two alternatives of run both match under mask
// in the same preprocessor state. Resolve then picks the earlier one.
func hasConflict(run []Entry, mask dialect.Mask) bool {
	for i := range run {
		for j := i + 1; j < len(run); j++ {
			shared := run[i].Mask & run[j].Mask & mask
			if shared.Langs() != 0 && run[i].PreprocOnly() == run[j].PreprocOnly() {
				return true
			}
		}
	}
	return false
}

// Mask returns the dialect mask the view was built for.
func (v *View) Mask() dialect.Mask { return v.mask }

// Len returns the number of selected entries.
func (v *View) Len() int { return len(v.entries) }

// Entries returns the selected entries in table order. The slice must not be
// modified.
func (v *View) Entries() []Entry { return v.entries }

// Conflicts lists tags whose alternatives overlap under the view's mask.
func (v *View) Conflicts() []string { return v.conflicts }

// Run returns the alternatives for tag, or nil.
func (v *View) Run(tag string) []Entry {
	if v == nil {
		return nil
	}
	return v.runs[tag]
}
