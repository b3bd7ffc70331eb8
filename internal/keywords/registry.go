package keywords

import (
	"sort"

	"kwclass/internal/token"
	"kwclass/internal/trace"
)

// Registry holds user-defined keywords. Entries apply to every dialect and
// take precedence over the static table. A Registry is not goroutine-safe.
type Registry struct {
	words  map[string]token.Kind
	tracer trace.Tracer
}

// NewRegistry creates an empty registry. A nil tracer means trace.Nop.
func NewRegistry(t trace.Tracer) *Registry {
	if t == nil {
		t = trace.Nop
	}
	return &Registry{
		words:  make(map[string]token.Kind),
		tracer: t,
	}
}

// Upsert adds tag or replaces its category; the last write wins.
func (r *Registry) Upsert(tag string, kind token.Kind) {
	if prev, ok := r.words[tag]; ok {
		r.words[tag] = kind
		trace.Point(r.tracer, trace.ScopeKeyword, "keyword:change", tag,
			"from", prev.String(), "to", kind.String())
		return
	}
	r.words[tag] = kind
	trace.Point(r.tracer, trace.ScopeKeyword, "keyword:add", tag, "kind", kind.String())
}

// Lookup returns the category registered for tag.
func (r *Registry) Lookup(tag string) (token.Kind, bool) {
	if r == nil {
		return token.None, false
	}
	k, ok := r.words[tag]
	return k, ok
}

// Clear removes every entry.
func (r *Registry) Clear() {
	clear(r.words)
	trace.Point(r.tracer, trace.ScopeFile, "keyword:clear", "")
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.words)
}

// ForEach visits entries in byte-wise ascending tag order. Returning false
// stops the walk.
func (r *Registry) ForEach(fn func(tag string, kind token.Kind) bool) {
	if r == nil {
		return
	}
	for _, tag := range r.sortedTags() {
		if !fn(tag, r.words[tag]) {
			return
		}
	}
}

// Clone returns an independent copy that logs to t.
func (r *Registry) Clone(t trace.Tracer) *Registry {
	out := NewRegistry(t)
	if r == nil {
		return out
	}
	for tag, kind := range r.words {
		out.words[tag] = kind
	}
	return out
}

func (r *Registry) sortedTags() []string {
	tags := make([]string, 0, len(r.words))
	for tag := range r.words {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
