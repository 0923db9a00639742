package rdf

import "fmt"

// NodeKind identifies which variant of Node a value holds.
type NodeKind int

const (
	KindIRI NodeKind = iota
	KindBlankNamed
	KindBlankGen
	KindLiteral
)

func (k NodeKind) String() string {
	switch k {
	case KindIRI:
		return "IRI"
	case KindBlankNamed:
		return "BlankNamed"
	case KindBlankGen:
		return "BlankGen"
	case KindLiteral:
		return "Literal"
	default:
		return "unknown"
	}
}

// Node is the closed sum type over the four kinds of RDF term this
// library produces: IRI, BlankNamed, BlankGen, and Literal. The variants
// are exported struct types built as composite literals (IRI{Text: ...});
// literal values come from NewPlain, NewPlainLang and NewTyped.
type Node interface {
	Kind() NodeKind
	String() string
}

// IRI is an absolute (or, during parsing of a relative reference with no
// base, not-yet-absolute) IRI reference.
type IRI struct {
	Text string
}

func (n IRI) Kind() NodeKind { return KindIRI }
func (n IRI) String() string { return n.Text }

// BlankNamed is a blank node carrying the label the source document gave
// it (the text after "_:").
type BlankNamed struct {
	Label string
}

func (n BlankNamed) Kind() NodeKind { return KindBlankNamed }
func (n BlankNamed) String() string { return "_:" + n.Label }

// BlankGen is a blank node the parser invented — from "[]" or "[ ... ]"
// syntax, or desugared from a collection — identified by a strictly
// increasing counter scoped to one parse.
type BlankGen struct {
	ID int
}

func (n BlankGen) Kind() NodeKind { return KindBlankGen }
func (n BlankGen) String() string { return fmt.Sprintf("_:g%d", n.ID) }

// Literal wraps an LValue so it can appear as a Node (only valid as an
// object, never a subject or predicate).
type Literal struct {
	Value LValue
}

func (n Literal) Kind() NodeKind { return KindLiteral }
func (n Literal) String() string { return n.Value.String() }

// LValueKind identifies which variant of LValue a value holds.
type LValueKind int

const (
	LPlain LValueKind = iota
	LPlainLang
	LTyped
)

// LValue is the closed sum type for literal values: a plain string, a
// string with a language tag, or a string with a datatype IRI. Typed
// values are canonicalised on construction (see NewTyped).
type LValue interface {
	Kind() LValueKind
	Lexical() string
	String() string
}

// PlainValue is a literal with no language tag and no datatype.
type PlainValue struct {
	Lex string
}

func (v PlainValue) Kind() LValueKind { return LPlain }
func (v PlainValue) Lexical() string  { return v.Lex }
func (v PlainValue) String() string   { return fmt.Sprintf("%q", v.Lex) }

// PlainLangValue is a literal tagged with a BCP 47 language tag.
type PlainLangValue struct {
	Lex  string
	Lang string
}

func (v PlainLangValue) Kind() LValueKind { return LPlainLang }
func (v PlainLangValue) Lexical() string  { return v.Lex }
func (v PlainLangValue) String() string   { return fmt.Sprintf("%q@%s", v.Lex, v.Lang) }

// TypedValue is a literal carrying an explicit datatype IRI. Lex is
// always the canonical lexical form for that datatype, never the raw
// source text (see NewTyped).
type TypedValue struct {
	Lex      string
	Datatype IRI
}

func (v TypedValue) Kind() LValueKind { return LTyped }
func (v TypedValue) Lexical() string  { return v.Lex }
func (v TypedValue) String() string   { return fmt.Sprintf("%q^^%s", v.Lex, v.Datatype.Text) }

// NewPlain builds an untagged, untyped literal value.
func NewPlain(lex string) LValue { return PlainValue{Lex: lex} }

// NewPlainLang builds a language-tagged literal value.
func NewPlainLang(lex, lang string) LValue { return PlainLangValue{Lex: lex, Lang: lang} }

// NewTyped builds a datatype-tagged literal value, canonicalising lex
// against datatype first (see canonicalizeLexical in literal.go).
func NewTyped(datatype IRI, lex string) LValue {
	return TypedValue{Lex: canonicalizeLexical(datatype.Text, lex), Datatype: datatype}
}

// Triple is one (subject, predicate, object) statement. The zero value
// is not a valid Triple; use NewTriple.
type Triple struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// NewTriple constructs a Triple, enforcing the shape invariant: the
// subject must be an IRI or blank node, the predicate must be an IRI.
// Violating this is a programming error in the caller and panics with a
// *StructuralError rather than returning one, per the error taxonomy.
func NewTriple(s, p, o Node) Triple {
	if s == nil || !isValidSubjectKind(s.Kind()) {
		panic(&StructuralError{Message: fmt.Sprintf("rdf: invalid triple subject %v", s)})
	}
	if p == nil || p.Kind() != KindIRI {
		panic(&StructuralError{Message: fmt.Sprintf("rdf: invalid triple predicate %v, must be an IRI", p)})
	}
	if o == nil {
		panic(&StructuralError{Message: "rdf: triple object must not be nil"})
	}
	return Triple{Subject: s, Predicate: p, Object: o}
}

func isValidSubjectKind(k NodeKind) bool {
	switch k {
	case KindIRI, KindBlankNamed, KindBlankGen:
		return true
	default:
		return false
	}
}

// nodeRank places a Node into the total order's six buckets:
// IRI < BlankNamed < BlankGen < Literal(Plain) < Literal(PlainLang) < Literal(Typed).
func nodeRank(n Node) int {
	switch v := n.(type) {
	case IRI:
		return 0
	case BlankNamed:
		return 1
	case BlankGen:
		return 2
	case Literal:
		switch v.Value.Kind() {
		case LPlain:
			return 3
		case LPlainLang:
			return 4
		case LTyped:
			return 5
		}
	}
	panic(fmt.Sprintf("rdf: unknown node type %T", n))
}

// CompareNodes implements the total order over Node values described by
// the data model: exactly one of CompareNodes(a,b) < 0, == 0, > 0 holds
// for any a, b, and the relation is transitive.
func CompareNodes(a, b Node) int {
	ra, rb := nodeRank(a), nodeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case IRI:
		return compareStrings(av.Text, b.(IRI).Text)
	case BlankNamed:
		return compareStrings(av.Label, b.(BlankNamed).Label)
	case BlankGen:
		bv := b.(BlankGen)
		switch {
		case av.ID < bv.ID:
			return -1
		case av.ID > bv.ID:
			return 1
		default:
			return 0
		}
	case Literal:
		return compareLValue(av.Value, b.(Literal).Value)
	}
	return 0
}

// compareLValue orders literal values of the same LValueKind: Plain by
// lexical form; PlainLang by language then lexical form; Typed by
// lexical form then datatype IRI.
func compareLValue(a, b LValue) int {
	switch av := a.(type) {
	case PlainValue:
		return compareStrings(av.Lex, b.(PlainValue).Lex)
	case PlainLangValue:
		bv := b.(PlainLangValue)
		if c := compareStrings(av.Lang, bv.Lang); c != 0 {
			return c
		}
		return compareStrings(av.Lex, bv.Lex)
	case TypedValue:
		bv := b.(TypedValue)
		if c := compareStrings(av.Lex, bv.Lex); c != 0 {
			return c
		}
		return compareStrings(av.Datatype.Text, bv.Datatype.Text)
	}
	return 0
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// EqualNodes reports whether a and b are the same Node under the total
// order (equivalently, structurally equal).
func EqualNodes(a, b Node) bool { return CompareNodes(a, b) == 0 }

// CompareTriples orders Triple values lexicographically over
// (Subject, Predicate, Object).
func CompareTriples(a, b Triple) int {
	if c := CompareNodes(a.Subject, b.Subject); c != 0 {
		return c
	}
	if c := CompareNodes(a.Predicate, b.Predicate); c != 0 {
		return c
	}
	return CompareNodes(a.Object, b.Object)
}

// EqualTriples reports whether a and b are the same Triple.
func EqualTriples(a, b Triple) bool { return CompareTriples(a, b) == 0 }
