package rdf

import (
	"strings"

	"github.com/riverrdf/turtle/rdf/xsd"
)

// canonicalizeLexical applies the per-datatype lexical canonicalisation
// rule required of every Typed literal this library produces. Only
// xsd:integer gets real normalisation; xsd:decimal, xsd:double and
// xsd:boolean are expected to already be canonical from the lexer's
// numeric-literal grammar, and every other datatype is left untouched.
func canonicalizeLexical(datatype, lex string) string {
	switch datatype {
	case xsd.Integer:
		return canonicalizeInteger(lex)
	default:
		return lex
	}
}

// canonicalizeInteger strips a leading '+', strips leading zeros down to
// a single digit, and normalises "-0" to "0":
//
//	"+007" -> "7"
//	"-0"   -> "0"
//	"042"  -> "42"
//	"-42"  -> "-42"
func canonicalizeInteger(lex string) string {
	s := lex
	negative := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if negative && s != "0" {
		return "-" + s
	}
	return s
}
