package rdf

import "testing"

func TestAbsolutiseWithBase(t *testing.T) {
	base := NewBaseUrl("http://example.org/base/")
	got := absolutise(&base, nil, "rel")
	want := "http://example.org/base/rel"
	if got != want {
		t.Fatalf("absolutise = %q, want %q", got, want)
	}
}

func TestAbsolutisePassesThroughAbsoluteLooking(t *testing.T) {
	base := NewBaseUrl("http://example.org/base/")
	got := absolutise(&base, nil, "urn:foo:bar")
	if got != "urn:foo:bar" {
		t.Fatalf("absolutise = %q, want unchanged urn:foo:bar", got)
	}
}

func TestResolveQNameDefaultPrefix(t *testing.T) {
	mappings := NewPrefixMappings()
	mappings[""] = IRI{Text: "http://example.org/"}
	ns, err := resolveQName(nil, "", mappings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns != "http://example.org/" {
		t.Fatalf("ns = %q, want http://example.org/", ns)
	}
}

func TestResolveQNameUnboundPrefixFails(t *testing.T) {
	mappings := NewPrefixMappings()
	_, err := resolveQName(nil, "ex", mappings)
	if err == nil {
		t.Fatal("expected error for unbound prefix")
	}
	if Code(wrapParseError("turtle", 0, 0, err)) != "unresolved_prefix" {
		t.Fatalf("Code() = %q, want unresolved_prefix", Code(wrapParseError("turtle", 0, 0, err)))
	}
}

func TestPrefixMappingsCloneIsIndependent(t *testing.T) {
	m := NewPrefixMappings()
	m["ex"] = IRI{Text: "http://example.org/"}
	clone := m.Clone()
	clone["ex"] = IRI{Text: "http://other.org/"}
	if m["ex"].Text != "http://example.org/" {
		t.Fatal("mutating clone affected the original map")
	}
}
