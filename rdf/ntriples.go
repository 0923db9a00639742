package rdf

import (
	"bufio"
	"fmt"
	"strings"
)

// parseNTriplesFixture reads a minimal N-Triples subset — one triple per
// line, "#"-comments, blank lines ignored — into a triple slice. It
// exists for test fixtures that want to state an expected graph as
// N-Triples text rather than building Triple values by hand; it is not
// part of the public API and does not handle N-Triples' full escaping
// or quad/graph-label forms.
func parseNTriplesFixture(src string) ([]Triple, error) {
	var triples []Triple
	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseNTriplesLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		triples = append(triples, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return triples, nil
}

func parseNTriplesLine(line string) (Triple, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")
	line = strings.TrimSpace(line)
	lexer := newTurtleLexer(line)
	tokens, err := lexer.tokenize()
	if err != nil {
		return Triple{}, err
	}
	parser := newTurtleParser(append(tokens[:len(tokens)-1], token{kind: tokDot}, token{kind: tokEOF}), nil, nil, 0)
	if err := parser.parseSubject(); err != nil {
		return Triple{}, err
	}
	if err := parser.parseVerb(); err != nil {
		return Triple{}, err
	}
	if err := parser.parseObject(); err != nil {
		return Triple{}, err
	}
	if len(parser.tripleBuffer) != 1 {
		return Triple{}, fmt.Errorf("expected exactly one triple, got %d", len(parser.tripleBuffer))
	}
	return parser.tripleBuffer[0], nil
}
