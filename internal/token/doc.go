// Package token defines the closed vocabulary of token categories that the
// keyword engine assigns to lexemes.
// Invariants:
//   - Kind values are stable for the life of the process; names follow the
//     upper-case spelling used in beautifier configuration files (PP_IF,
//     OC_PROPERTY_ATTR, ...).
//   - None means "no lexeme", Word means "ordinary identifier".
//   - ParseKind accepts the plain name and the legacy "CT_" prefixed form.
package token
