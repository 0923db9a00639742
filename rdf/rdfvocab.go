package rdf

import "github.com/riverrdf/turtle/rdf/xsd"

const rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Vocabulary terms needed to desugar Turtle's "a" keyword and collection
// syntax into plain triples.
var (
	rdfType  = IRI{Text: rdfNS + "type"}
	rdfFirst = IRI{Text: rdfNS + "first"}
	rdfRest  = IRI{Text: rdfNS + "rest"}
	rdfNil   = IRI{Text: rdfNS + "nil"}
)

// Datatype IRIs for the Turtle grammar's numeric (integer, decimal,
// double) and boolean literal shorthands, which the parser builds
// directly without going through a
// "^^<IRI>" token.
var (
	xsdInteger = IRI{Text: xsd.Integer}
	xsdDecimal = IRI{Text: xsd.Decimal}
	xsdDouble  = IRI{Text: xsd.Double}
	xsdBoolean = IRI{Text: xsd.Boolean}
)
