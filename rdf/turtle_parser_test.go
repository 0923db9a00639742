package rdf

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) Graph {
	t.Helper()
	g, err := ParseTurtle(src, "http://example.org/")
	if err != nil {
		t.Fatalf("ParseTurtle(%q) failed: %v", src, err)
	}
	return g
}

func TestParseSimpleTriple(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p "o" .`)
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	tr := g.Triples()[0]
	if tr.Subject.(IRI).Text != "http://example.org/s" {
		t.Errorf("subject = %v", tr.Subject)
	}
	if tr.Predicate.(IRI).Text != "http://example.org/p" {
		t.Errorf("predicate = %v", tr.Predicate)
	}
	lit, ok := tr.Object.(Literal)
	if !ok || lit.Value.Lexical() != "o" {
		t.Errorf("object = %v", tr.Object)
	}
}

func TestParseAKeywordDesugarsToRdfType(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s a ex:Thing .`)
	tr := g.Triples()[0]
	if tr.Predicate.(IRI).Text != rdfType.Text {
		t.Errorf("predicate = %v, want rdf:type", tr.Predicate)
	}
}

func TestParsePredicateObjectListSharesSubject(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p1 "a" ; ex:p2 "b" .`)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	for _, tr := range g.Triples() {
		if tr.Subject.(IRI).Text != "http://example.org/s" {
			t.Errorf("subject = %v", tr.Subject)
		}
	}
}

func TestParseObjectListSharesSubjectAndPredicate(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p "a", "b" .`)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
}

func TestParseTrailingSemicolon(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p "a" ; .`)
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
}

// TestParseBlankNodePropertyListAsObject mirrors a nested property list
// used as an object: the generated blank node is both the object of the
// outer triple and the subject of the bracketed triples.
func TestParseBlankNodePropertyListAsObject(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p [ ex:q "v" ] .`)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	var outer, inner *Triple
	for i, tr := range g.Triples() {
		tr := tr
		if tr.Predicate.(IRI).Text == "http://example.org/p" {
			outer = &g.triples[i]
		} else {
			inner = &g.triples[i]
		}
	}
	if outer == nil || inner == nil {
		t.Fatal("expected one outer and one inner triple")
	}
	if !EqualNodes(outer.Object, inner.Subject) {
		t.Errorf("blank node identity mismatch: outer object %v, inner subject %v", outer.Object, inner.Subject)
	}
	if outer.Object.Kind() != KindBlankGen {
		t.Errorf("expected generated blank node, got %v", outer.Object.Kind())
	}
}

// TestParseBlankNodePropertyListAsSubject covers "[ p o ; q o2 ] r o3 .":
// the blank subject stays in scope for predicates appearing after the
// closing bracket.
func TestParseBlankNodePropertyListAsSubject(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> .
		[ ex:p "o1" ; ex:q "o2" ] ex:r "o3" .`)
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	subj := g.triples[0].Subject
	for _, tr := range g.Triples() {
		if !EqualNodes(tr.Subject, subj) {
			t.Errorf("expected all triples to share subject %v, got %v", subj, tr.Subject)
		}
	}
}

func TestParseEmptyBlankNode(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . [] ex:p "o" .`)
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	if g.triples[0].Subject.Kind() != KindBlankGen {
		t.Errorf("subject kind = %v", g.triples[0].Subject.Kind())
	}
}

func TestParseCollectionDesugars(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p ( "a" "b" ) .`)
	// one triple linking s->p->first-list-node, two rdf:first, one rdf:rest
	// chaining to the second node, and one rdf:rest to rdf:nil: 5 triples.
	if g.Len() != 5 {
		t.Fatalf("Len() = %d, want 5:\n%s", g.Len(), g.String())
	}
	firsts := g.Query(nil, rdfFirst, nil)
	if len(firsts) != 2 {
		t.Fatalf("expected 2 rdf:first triples, got %d", len(firsts))
	}
	nils := g.Query(nil, rdfRest, rdfNil)
	if len(nils) != 1 {
		t.Fatalf("expected exactly one rdf:rest rdf:nil triple, got %d", len(nils))
	}
}

func TestParseEmptyCollectionIsRdfNil(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p ( ) .`)
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	if !EqualNodes(g.triples[0].Object, rdfNil) {
		t.Errorf("object = %v, want rdf:nil", g.triples[0].Object)
	}
}

func TestParseBaseDirectiveResolvesRelativeIRIs(t *testing.T) {
	g := mustParse(t, `@base <http://example.org/base/> . <s> <p> <o> .`)
	tr := g.triples[0]
	if tr.Subject.(IRI).Text != "http://example.org/base/s" {
		t.Errorf("subject = %v", tr.Subject)
	}
}

func TestParseNumericAndBooleanLiterals(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> .
		ex:s ex:n 42 ;
		     ex:d 3.14 ;
		     ex:e 1.0e10 ;
		     ex:b true .`)
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	for _, tr := range g.Triples() {
		lit, ok := tr.Object.(Literal)
		if !ok {
			t.Fatalf("expected literal object, got %v", tr.Object)
		}
		typed, ok := lit.Value.(TypedValue)
		if !ok {
			t.Fatalf("expected typed literal, got %T", lit.Value)
		}
		switch tr.Predicate.(IRI).Text {
		case "http://example.org/n":
			if typed.Datatype.Text != xsdInteger.Text || typed.Lex != "42" {
				t.Errorf("n = %+v", typed)
			}
		case "http://example.org/b":
			if typed.Datatype.Text != xsdBoolean.Text || typed.Lex != "true" {
				t.Errorf("b = %+v", typed)
			}
		}
	}
}

func TestParseLangTaggedLiteral(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p "hello"@en .`)
	lit := g.triples[0].Object.(Literal)
	pl, ok := lit.Value.(PlainLangValue)
	if !ok || pl.Lang != "en" {
		t.Fatalf("value = %+v", lit.Value)
	}
}

func TestParseUnresolvedPrefixFails(t *testing.T) {
	_, err := ParseTurtle(`ex:s ex:p "o" .`, "")
	if err == nil {
		t.Fatal("expected error for unresolved prefix")
	}
	if Code(err) != "unresolved_prefix" {
		t.Errorf("Code() = %q, want unresolved_prefix", Code(err))
	}
}

func TestParseUnterminatedStatementFails(t *testing.T) {
	_, err := ParseTurtle(`@prefix ex: <http://example.org/> . ex:s ex:p "o"`, "")
	if err == nil {
		t.Fatal("expected error for missing terminating '.'")
	}
}

func TestParseUnterminatedCollectionFails(t *testing.T) {
	_, err := ParseTurtle(`@prefix ex: <http://example.org/> . ex:s ex:p ( "a" "b" .`, "")
	if err == nil {
		t.Fatal("expected error for unterminated collection")
	}
}

func TestParseRespectsMaxDepth(t *testing.T) {
	_, err := ParseTurtle(`@prefix ex: <http://example.org/> . ex:s ex:p [ ex:q [ ex:r "v" ] ] .`, "", WithMaxDepth(1))
	if err == nil {
		t.Fatal("expected depth-exceeded error")
	}
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("error = %v, want to wrap ErrDepthExceeded", err)
	}
}

func TestParseBlankNodeIDsMonotonic(t *testing.T) {
	g := mustParse(t, `@prefix ex: <http://example.org/> . ex:s ex:p [ ex:q "a" ], [ ex:q "b" ] .`)
	var ids []int
	for _, tr := range g.Triples() {
		if b, ok := tr.Object.(BlankGen); ok {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) != 2 || ids[0] >= ids[1] {
		t.Fatalf("expected strictly increasing blank ids, got %v", ids)
	}
}
