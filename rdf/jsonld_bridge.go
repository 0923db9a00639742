package rdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piprate/json-gold/ld"
)

// ToJSONLDQuads renders g as an ld.RDFDataset, the intermediate form
// json-gold uses between N-Quads and JSON-LD. Every triple becomes a
// quad in the default graph, since Graph carries no named-graph
// concept.
func ToJSONLDQuads(g Graph) *ld.RDFDataset {
	dataset := ld.NewRDFDataset()
	quads := make([]*ld.Quad, 0, g.Len())
	for _, t := range g.Triples() {
		quads = append(quads, ld.NewQuad(toJSONLDNode(t.Subject), toJSONLDNode(t.Predicate), toJSONLDNode(t.Object), ""))
	}
	dataset.Graphs["@default"] = quads
	return dataset
}

func toJSONLDNode(n Node) ld.Node {
	switch v := n.(type) {
	case IRI:
		return ld.NewIRI(v.Text)
	case BlankNamed:
		return ld.NewBlankNode("_:" + v.Label)
	case BlankGen:
		return ld.NewBlankNode("_:g" + strconv.Itoa(v.ID))
	case Literal:
		return toJSONLDLiteral(v.Value)
	default:
		panic(fmt.Sprintf("rdf: cannot convert node of type %T to JSON-LD", n))
	}
}

func toJSONLDLiteral(v LValue) *ld.Literal {
	switch lv := v.(type) {
	case PlainValue:
		return ld.NewLiteral(lv.Lex, "", "")
	case PlainLangValue:
		return ld.NewLiteral(lv.Lex, "", lv.Lang)
	case TypedValue:
		return ld.NewLiteral(lv.Lex, lv.Datatype.Text, "")
	default:
		panic(fmt.Sprintf("rdf: cannot convert literal of type %T to JSON-LD", v))
	}
}

// ToJSONLD expands g to a JSON-LD document (a []interface{} of node
// objects, per the json-gold API) by converting it to an ld.RDFDataset
// (see ToJSONLDQuads) and handing that to json-gold's FromRDF:
// json-gold's dataset-to-JSON-LD path is quad-oriented, so this is the
// supported bridge direction rather than building JSON-LD object trees
// directly from a Graph.
func ToJSONLD(g Graph) (interface{}, error) {
	api := ld.NewJsonLdApi()
	opts := ld.NewJsonLdOptions("")
	dataset := ToJSONLDQuads(g)
	return api.FromRDF(dataset, opts)
}

// FromJSONLD flattens and converts a parsed JSON-LD document (as
// produced by encoding/json into map[string]interface{}/[]interface{})
// into N-Quads text using json-gold's processor, for callers that want
// to hand the result to ParseTurtle-style N-Triples-shaped tooling.
// Turtle syntax itself is never produced here; see TurtleWriter for
// that.
func FromJSONLD(doc interface{}) (string, error) {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	out, err := proc.ToRDF(doc, opts)
	if err != nil {
		return "", fmt.Errorf("rdf: converting JSON-LD to N-Quads: %w", err)
	}
	if s, ok := out.(string); ok {
		return s, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", out)
	return b.String(), nil
}
