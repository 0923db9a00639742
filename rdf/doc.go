// Package rdf parses Turtle documents into an in-memory RDF graph.
//
// The model is four closed Node variants — IRI, BlankNamed, BlankGen,
// and Literal — ordered by a single total order so graphs built from
// the same triples in different statement orders compare equal via
// Graph.IsomorphicTo. Literals carry one of three LValue shapes (plain,
// language-tagged, or datatype-typed); typed literals are canonicalised
// on construction, so "+007"^^xsd:integer and "7"^^xsd:integer produce
// the same Node.
//
// Parsing is whole-document, not streaming: TurtleParser reads the
// entire input before producing a Graph. Use NewTurtleParser to
// configure a base URI, document URI, and Options (size and nesting
// limits via WithMaxDocumentBytes/WithMaxDepth), then ParseString,
// ParseFile, or ParseURL.
//
//	p := rdf.NewTurtleParser("http://example.org/", "")
//	g, err := p.ParseString(`@prefix ex: <http://example.org/> . ex:s ex:p "o" .`)
//	if err != nil {
//	    // handle error
//	}
//	for _, t := range g.Triples() {
//	    // process t.Subject, t.Predicate, t.Object
//	}
//
// Errors are reported through ParseFailure, which wraps one of
// SyntaxError, ResolutionError, or a driver-level I/O error; use
// rdf.Code(err) for a short machine-readable class name, or errors.Is
// against the sentinels in errors.go. The triple constructor NewTriple
// panics with a *StructuralError on a shape violation (a literal used as
// a subject, for example) rather than returning one — a correctly
// written caller never triggers this on parsed input, so it signals a
// bug rather than a malformed document.
//
// TurtleWriter serializes a Graph back to Turtle text, abbreviating
// IRIs into PrefixedNames where the graph's prefix mappings allow it.
// ToJSONLD and FromJSONLD bridge to and from JSON-LD via json-gold.
package rdf
