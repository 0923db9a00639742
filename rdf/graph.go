package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is an immutable snapshot of a parsed Turtle document: its
// triples, the base URI in effect when parsing finished, and the final
// prefix mapping table. Triples are stored in the order the parser
// produced them; use Select or the listing helpers to query them.
type Graph struct {
	triples []Triple
	base    *BaseUrl
	prefix  PrefixMappings
}

// emptyGraph returns a Graph with no triples, no base, and no prefix
// mappings — the identity element for Merge.
func emptyGraph() Graph {
	return Graph{prefix: NewPrefixMappings()}
}

// buildGraph assembles a Graph from a finished parse's triple buffer,
// base URI, and prefix table.
func buildGraph(triples []Triple, base *BaseUrl, prefix PrefixMappings) Graph {
	out := make([]Triple, len(triples))
	copy(out, triples)
	if prefix == nil {
		prefix = NewPrefixMappings()
	}
	return Graph{triples: out, base: base, prefix: prefix.Clone()}
}

// Triples returns the graph's triples in parse order. The returned slice
// is a copy; mutating it does not affect the Graph.
func (g Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Len reports the number of triples in the graph.
func (g Graph) Len() int { return len(g.triples) }

// IsEmpty reports whether the graph has no triples.
func (g Graph) IsEmpty() bool { return len(g.triples) == 0 }

// BaseURL returns the base URI in effect at the end of the parse, and
// whether one was ever established.
func (g Graph) BaseURL() (IRI, bool) {
	if g.base == nil {
		return IRI{}, false
	}
	return g.base.IRI, true
}

// PrefixMappings returns a copy of the graph's final prefix table.
func (g Graph) PrefixMappings() PrefixMappings { return g.prefix.Clone() }

// AddPrefixMapping returns a copy of g with prefix bound to ns,
// overwriting any existing binding for that prefix name. It is a
// convenience wrapper around AddPrefixMappings for binding one name.
func (g Graph) AddPrefixMapping(prefix string, ns IRI) Graph {
	return g.AddPrefixMappings(PrefixMappings{prefix: ns}, true)
}

// AddPrefixMappings returns a copy of g with every binding in extra
// folded into g's prefix table. When a prefix name is bound in both,
// overwrite decides which wins: true means extra's binding replaces
// g's, false means g's existing binding is kept.
func (g Graph) AddPrefixMappings(extra PrefixMappings, overwrite bool) Graph {
	next := g.prefix.Clone()
	for k, v := range extra {
		if _, exists := next[k]; exists && !overwrite {
			continue
		}
		next[k] = v
	}
	return Graph{triples: g.triples, base: g.base, prefix: next}
}

// Query returns every triple matching the given positions exactly. A
// nil argument for a position matches anything in that position; a
// non-nil argument must compare equal under EqualNodes.
func (g Graph) Query(subject, predicate, object Node) []Triple {
	return g.Select(
		exactMatcher(subject),
		exactMatcher(predicate),
		exactMatcher(object),
	)
}

// exactMatcher returns a Select matcher that accepts any Node when want
// is nil, and otherwise accepts only nodes EqualNodes to want.
func exactMatcher(want Node) func(Node) bool {
	if want == nil {
		return nil
	}
	return func(n Node) bool { return EqualNodes(n, want) }
}

// Select returns every triple whose subject, predicate, and object each
// satisfy the corresponding matcher function. A nil matcher for a
// position matches anything in that position, so callers can select by
// predicate over a position — e.g. "any IRI subject" via
// func(n Node) bool { return n.Kind() == KindIRI } — rather than only by
// exact node identity; see Query for the exact-match case.
func (g Graph) Select(matchSubject, matchPredicate, matchObject func(Node) bool) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if matchSubject != nil && !matchSubject(t.Subject) {
			continue
		}
		if matchPredicate != nil && !matchPredicate(t.Predicate) {
			continue
		}
		if matchObject != nil && !matchObject(t.Object) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ContainsNode reports whether n appears in any position of any triple.
func (g Graph) ContainsNode(n Node) bool {
	for _, t := range g.triples {
		if EqualNodes(t.Subject, n) || EqualNodes(t.Predicate, n) || EqualNodes(t.Object, n) {
			return true
		}
	}
	return false
}

// SubjectsWithPredicate returns every distinct subject that has a triple
// with the given predicate, in first-seen order.
func (g Graph) SubjectsWithPredicate(predicate Node) []Node {
	var out []Node
	seen := make([]Node, 0, 8)
	for _, t := range g.triples {
		if !EqualNodes(t.Predicate, predicate) {
			continue
		}
		already := false
		for _, s := range seen {
			if EqualNodes(s, t.Subject) {
				already = true
				break
			}
		}
		if !already {
			seen = append(seen, t.Subject)
			out = append(out, t.Subject)
		}
	}
	return out
}

// ObjectsOfPredicate returns every object of triples with the given
// subject and predicate, in first-seen order.
func (g Graph) ObjectsOfPredicate(subject, predicate Node) []Node {
	var out []Node
	for _, t := range g.triples {
		if EqualNodes(t.Subject, subject) && EqualNodes(t.Predicate, predicate) {
			out = append(out, t.Object)
		}
	}
	return out
}

func isUNode(n Node) bool { return n.Kind() == KindIRI }

func isBNode(n Node) bool { return n.Kind() == KindBlankNamed || n.Kind() == KindBlankGen }

func isLNode(n Node) bool { return n.Kind() == KindLiteral }

// Subjects returns every distinct subject in the graph, in first-seen
// order, split into named (IRI) and blank subjects.
func (g Graph) Subjects() (named []Node, blank []Node) {
	seen := make([]Node, 0, 8)
	for _, t := range g.triples {
		already := false
		for _, s := range seen {
			if EqualNodes(s, t.Subject) {
				already = true
				break
			}
		}
		if already {
			continue
		}
		seen = append(seen, t.Subject)
		switch {
		case isUNode(t.Subject):
			named = append(named, t.Subject)
		case isBNode(t.Subject):
			blank = append(blank, t.Subject)
		}
	}
	return named, blank
}

// LiteralObjects returns every object in the graph that is a Literal,
// in parse order, duplicates included.
func (g Graph) LiteralObjects() []Node {
	var out []Node
	for _, t := range g.triples {
		if isLNode(t.Object) {
			out = append(out, t.Object)
		}
	}
	return out
}

// blankIdentityKey returns a string identifying n's original blank node
// identity (its generated ID or its source label), or ok=false if n
// isn't a blank node at all.
func blankIdentityKey(n Node) (key string, ok bool) {
	switch v := n.(type) {
	case BlankNamed:
		return "named:" + v.Label, true
	case BlankGen:
		return fmt.Sprintf("gen:%d", v.ID), true
	default:
		return "", false
	}
}

// blankCanonicalizer renumbers every blank node it sees, in first-seen
// order, to a BlankGen with a sequential ID starting at 0 — regardless
// of whether the original node was a BlankNamed (from "_:label", or
// from an N-Triples fixture's conventional "_:genid0" spelling of a
// parser-generated blank node) or a BlankGen (from "[]"). This is what
// lets IsomorphicTo treat "_:a <p> <o> ." the same as "[] <p> <o> .":
// both graphs' sole blank node canonicalizes to BlankGen{ID: 0}.
type blankCanonicalizer struct {
	next int
	seen map[string]int
}

func newBlankCanonicalizer() *blankCanonicalizer {
	return &blankCanonicalizer{seen: make(map[string]int)}
}

func (c *blankCanonicalizer) canonicalize(n Node) Node {
	key, ok := blankIdentityKey(n)
	if !ok {
		return n
	}
	id, seen := c.seen[key]
	if !seen {
		id = c.next
		c.next++
		c.seen[key] = id
	}
	return BlankGen{ID: id}
}

// canonicalizeBlankNodes returns a copy of triples with every blank
// node renumbered by a fresh blankCanonicalizer, in the triples' given
// order. Two graphs whose blank nodes differ only in generated ID or
// source label produce identical output here.
func canonicalizeBlankNodes(triples []Triple) []Triple {
	c := newBlankCanonicalizer()
	out := make([]Triple, len(triples))
	for i, t := range triples {
		out[i] = Triple{
			Subject:   c.canonicalize(t.Subject),
			Predicate: t.Predicate,
			Object:    c.canonicalize(t.Object),
		}
	}
	return out
}

// normalizedTriples sorts the triples by CompareTriples, canonicalizes
// blank nodes in that sorted order (see canonicalizeBlankNodes), and
// then sorts again with exact duplicates removed. Sorting before the
// renumbering makes the result independent of statement order and of
// duplicate statements. This is the heuristic IsomorphicTo uses in
// place of solving the general graph isomorphism problem: it is sound
// whenever each graph's blank nodes, renumbered in sorted-triple order,
// match the other's, which covers the common single- and
// few-blank-node cases, but not graphs needing a non-trivial bijection
// between their blank nodes to align.
func normalizedTriples(g Graph) []Triple {
	sorted := make([]Triple, len(g.triples))
	copy(sorted, g.triples)
	sort.Slice(sorted, func(i, j int) bool { return CompareTriples(sorted[i], sorted[j]) < 0 })
	out := canonicalizeBlankNodes(sorted)
	sort.Slice(out, func(i, j int) bool { return CompareTriples(out[i], out[j]) < 0 })
	deduped := out[:0]
	for i, t := range out {
		if i == 0 || !EqualTriples(t, deduped[len(deduped)-1]) {
			deduped = append(deduped, t)
		}
	}
	return deduped
}

// IsomorphicTo reports whether g and other normalize to the same
// sorted, deduplicated triple set after each graph's blank nodes are
// independently renumbered in sorted-triple order. It is insensitive to
// statement order, duplicate statements, and blank node identity within
// that renumbering scheme, but does not solve the general graph
// isomorphism problem; see normalizedTriples.
func (g Graph) IsomorphicTo(other Graph) bool {
	a, b := normalizedTriples(g), normalizedTriples(other)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualTriples(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Merge returns a new Graph containing the triples of g followed by the
// triples of other. Prefix mappings are combined via AddPrefixMappings
// with overwrite=false, so a prefix name bound in both graphs keeps g's
// binding. other's base URI takes precedence when set.
func (g Graph) Merge(other Graph) Graph {
	triples := make([]Triple, 0, len(g.triples)+len(other.triples))
	triples = append(triples, g.triples...)
	triples = append(triples, other.triples...)

	merged := g.AddPrefixMappings(other.prefix, false)

	base := g.base
	if other.base != nil {
		base = other.base
	}
	return Graph{triples: triples, base: base, prefix: merged.prefix}
}

// String renders the graph as one "subject predicate object ." line per
// triple, in parse order, using each Node's String form. It is meant for
// debugging and test failure output, not as a serialization format.
func (g Graph) String() string {
	var b strings.Builder
	for _, t := range g.triples {
		b.WriteString(t.Subject.String())
		b.WriteByte(' ')
		b.WriteString(t.Predicate.String())
		b.WriteByte(' ')
		b.WriteString(t.Object.String())
		b.WriteString(" .\n")
	}
	return b.String()
}
