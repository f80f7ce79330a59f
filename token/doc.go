// Package token implements the line tokenizer used by the architecture
// compiler: comment stripping, whitespace and comma delimited token
// extraction, quoted strings, indirect "[...]" operands, and numeric literals
// with configurable one-character radix prefixes.
//
// All syntax keys live in a Config value; there is no package-level state.
package token
