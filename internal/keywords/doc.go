// Package keywords decides which token category a scanned word denotes.
//
// Classification consults, in order:
//
//   - the dynamic Registry of user keywords, which always wins;
//   - the View: the static table filtered down to the active dialects, with
//     entries sharing a tag grouped into a run of alternatives;
//   - the preprocessor state, which picks between a keyword and the
//     directive name spelled the same way ("if" vs "#if").
//
// A Session bundles the dialect mask, view, registry and preprocessor state
// of one scan. Sessions are not goroutine-safe; give each goroutine its own.
// Note that Classify may change the preprocessor state: the pragma operators
// _Pragma and __pragma put the scanner inside a directive.
package keywords
