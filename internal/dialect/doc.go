// Package dialect models the set of source-language dialects a keyword can
// belong to. A Mask is a bitset; a keyword applies to a file when the masks
// intersect. The PP bit is reserved: it never names a language and marks
// keywords that only exist inside a preprocessor directive.
package dialect
