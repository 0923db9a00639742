package rdf

import "testing"

func TestNewTripleRejectsLiteralSubject(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for literal subject")
		}
	}()
	NewTriple(Literal{Value: NewPlain("x")}, rdfType, IRI{Text: "http://example.org/o"})
}

func TestNewTripleRejectsNonIRIPredicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for blank node predicate")
		}
	}()
	NewTriple(IRI{Text: "http://example.org/s"}, BlankNamed{Label: "p"}, IRI{Text: "http://example.org/o"})
}

func TestNewTripleAcceptsBlankSubject(t *testing.T) {
	tr := NewTriple(BlankGen{ID: 0}, rdfType, IRI{Text: "http://example.org/o"})
	if tr.Subject.Kind() != KindBlankGen {
		t.Fatalf("subject kind = %v, want KindBlankGen", tr.Subject.Kind())
	}
}

func TestCompareNodesTotalOrder(t *testing.T) {
	nodes := []Node{
		IRI{Text: "http://example.org/a"},
		BlankNamed{Label: "b1"},
		BlankGen{ID: 0},
		Literal{Value: NewPlain("x")},
		Literal{Value: NewPlainLang("x", "en")},
		Literal{Value: NewTyped(xsdInteger, "1")},
	}
	for i := range nodes {
		for j := range nodes {
			switch {
			case i < j:
				if CompareNodes(nodes[i], nodes[j]) >= 0 {
					t.Errorf("expected nodes[%d] < nodes[%d]", i, j)
				}
			case i > j:
				if CompareNodes(nodes[i], nodes[j]) <= 0 {
					t.Errorf("expected nodes[%d] > nodes[%d]", i, j)
				}
			default:
				if CompareNodes(nodes[i], nodes[j]) != 0 {
					t.Errorf("expected nodes[%d] == nodes[%d]", i, j)
				}
			}
		}
	}
}

func TestCompareNodesIsTotal(t *testing.T) {
	a := IRI{Text: "http://example.org/a"}
	b := IRI{Text: "http://example.org/b"}
	if CompareNodes(a, b) == 0 && !EqualNodes(a, b) {
		t.Fatal("CompareNodes and EqualNodes disagree")
	}
	if !(CompareNodes(a, b) < 0 || CompareNodes(a, b) > 0 || CompareNodes(a, b) == 0) {
		t.Fatal("CompareNodes produced a value outside {-1,0,1} semantics")
	}
}

func TestEqualTriples(t *testing.T) {
	s := IRI{Text: "http://example.org/s"}
	o := IRI{Text: "http://example.org/o"}
	a := NewTriple(s, rdfType, o)
	b := NewTriple(s, rdfType, o)
	if !EqualTriples(a, b) {
		t.Fatal("expected identical triples to compare equal")
	}
}
