package keywords

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"kwclass/internal/dialect"
	"kwclass/internal/token"
	"kwclass/internal/trace"
)

// Session is the classification state of one scan: the active dialects,
// the view built for them, the user registry and the preprocessor state.
type Session struct {
	mask    dialect.Mask
	view    *View
	reg     *Registry
	preproc Preproc
	tracer  trace.Tracer
}

// Option configures a Session.
type Option func(*Session)

// WithTracer routes session and registry events to t.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithRegistry makes the session use reg instead of an empty registry.
func WithRegistry(reg *Registry) Option {
	return func(s *Session) { s.reg = reg }
}

// NewSession builds a session for mask. It fails with ErrTableUnsorted or
// ErrAmbiguousRun when the static table is broken.
func NewSession(mask dialect.Mask, opts ...Option) (*Session, error) {
	if err := CheckTable(); err != nil {
		return nil, err
	}
	s := &Session{tracer: trace.Nop}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = NewRegistry(s.tracer)
	}
	if err := s.ConfigureDialect(mask); err != nil {
		return nil, err
	}
	return s, nil
}

// ConfigureDialect rebuilds the view for mask. It must not run while a
// Classify call on this session is in progress.
func (s *Session) ConfigureDialect(mask dialect.Mask) error {
	if mask.Empty() {
		return fmt.Errorf("configure dialect: no dialect selected")
	}
	view, err := BuildView(mask.Langs())
	if err != nil {
		trace.Error(s.tracer, trace.ScopeFile, "view", err)
		return err
	}
	for _, tag := range view.Conflicts() {
		trace.Error(s.tracer, trace.ScopeFile, "view",
			fmt.Errorf("%w: %q under %v, first alternative wins", ErrAmbiguousRun, tag, mask))
	}
	s.mask = mask.Langs()
	s.view = view
	trace.Point(s.tracer, trace.ScopeFile, "view", s.mask.String(),
		"keywords", strconv.Itoa(view.Len()))
	return nil
}

// Classify returns the category of word. It may move the session into a
// directive; see Resolve.
func (s *Session) Classify(word string) token.Kind {
	return Resolve(s.view, s.reg, word, s.mask, &s.preproc)
}

// ClassifyAs classifies word under an explicit mask and preprocessor state,
// leaving the session's own state untouched. The returned state reflects
// any change Classify would have made.
func (s *Session) ClassifyAs(word string, mask dialect.Mask, state Preproc) (token.Kind, Preproc) {
	kind := Resolve(s.view, s.reg, word, mask, &state)
	return kind, state
}

// RegisterKeyword adds or replaces a user keyword.
func (s *Session) RegisterKeyword(tag string, kind token.Kind) {
	s.reg.Upsert(tag, kind)
}

// ClearKeywords drops every user keyword.
func (s *Session) ClearKeywords() {
	s.reg.Clear()
}

// LoadKeywordFile registers the keywords listed in path as types.
func (s *Session) LoadKeywordFile(path string) error {
	span := trace.Begin(s.tracer, trace.ScopeFile, "keywords:load", 0)
	n, err := LoadKeywordFile(s.reg, path)
	if err != nil {
		trace.Error(s.tracer, trace.ScopeFile, "keywords:load", err)
		span.End("failed")
		return err
	}
	span.WithExtra("path", path).WithExtra("count", strconv.Itoa(n)).End("")
	return nil
}

// DumpKeywords writes the user keywords to w.
func (s *Session) DumpKeywords(w io.Writer) error {
	return DumpKeywords(w, s.reg)
}

// Preproc returns the preprocessor state.
func (s *Session) Preproc() Preproc { return s.preproc }

// SetPreproc sets the preprocessor state; the scanner calls it on '#' and
// at the end of a directive line.
func (s *Session) SetPreproc(p Preproc) { s.preproc = p }

// Mask returns the active dialects.
func (s *Session) Mask() dialect.Mask { return s.mask }

// View returns the active view.
func (s *Session) View() *View { return s.view }

// Registry returns the user registry.
func (s *Session) Registry() *Registry { return s.reg }

// Describe renders the static alternatives for word, one per line. A '*'
// marks each alternative Resolve would pick under the session's dialects,
// one for ordinary code and one inside a directive.
func (s *Session) Describe(word string) string {
	var sb strings.Builder
	picked := map[bool]bool{}
	for _, e := range Lookup(word) {
		marker := " "
		if e.Mask.Intersects(s.mask) && !picked[e.PreprocOnly()] {
			picked[e.PreprocOnly()] = true
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %-16s %v\n", marker, e.Kind, e.Mask)
	}
	return sb.String()
}
