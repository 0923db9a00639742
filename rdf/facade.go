package rdf

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// TurtleParser parses Turtle documents into Graph values under a fixed
// base URI, document URI, and set of Options. The zero value is not
// ready for use; construct one with NewTurtleParser.
type TurtleParser struct {
	baseUrl *BaseUrl
	docUrl  *BaseUrl
	opts    Options
}

// NewTurtleParser builds a TurtleParser. baseUrl and docUrl may be the
// empty string, meaning "none": baseUrl seeds the parser's initial base
// (an in-document "@base" directive overrides it for what follows), and
// docUrl is the document's own URI: a bare "#" reference resolves
// against it in preference to the base, and a first "@base" directive
// resolves against it when no base is set. ParseURL replaces docUrl with
// the fetched URL.
func NewTurtleParser(baseUrl, docUrl string, opts ...Option) *TurtleParser {
	p := &TurtleParser{opts: resolveOptions(opts)}
	if baseUrl != "" {
		b := NewBaseUrl(baseUrl)
		p.baseUrl = &b
	}
	if docUrl != "" {
		d := NewBaseUrl(docUrl)
		p.docUrl = &d
	}
	return p
}

// NewTurtleParserStrict is NewTurtleParser, but rejects a non-empty
// baseUrl or docUrl that fails ValidateIRI instead of accepting it
// silently and letting later resolution produce garbage.
func NewTurtleParserStrict(baseUrl, docUrl string, opts ...Option) (*TurtleParser, error) {
	if baseUrl != "" {
		if err := ValidateIRI(baseUrl); err != nil {
			return nil, fmt.Errorf("rdf: invalid base URI: %w", err)
		}
	}
	if docUrl != "" {
		if err := ValidateIRI(docUrl); err != nil {
			return nil, fmt.Errorf("rdf: invalid document URI: %w", err)
		}
	}
	return NewTurtleParser(baseUrl, docUrl, opts...), nil
}

// ParseString parses src as a standalone Turtle document.
func (p *TurtleParser) ParseString(src string) (Graph, error) {
	return p.parse(src)
}

// ParseReader reads all of r, honoring p's Options context for
// cancellation mid-read, and parses the result as Turtle.
func (p *TurtleParser) ParseReader(r io.Reader) (Graph, error) {
	cr := &contextReader{ctx: p.opts.ctx, r: r}
	data, err := io.ReadAll(cr)
	if err != nil {
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	if p.opts.maxDocumentBytes > 0 && int64(len(data)) > p.opts.maxDocumentBytes {
		return Graph{}, wrapParseError("turtle", 0, 0, ErrDocumentTooLarge)
	}
	return p.parse(string(data))
}

// ParseFile reads path and parses its contents as Turtle.
func (p *TurtleParser) ParseFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	if p.opts.maxDocumentBytes > 0 && int64(len(data)) > p.opts.maxDocumentBytes {
		return Graph{}, wrapParseError("turtle", 0, 0, ErrDocumentTooLarge)
	}
	return p.parse(string(data))
}

// ParseURL fetches url over HTTP, honoring cache headers, and parses the
// result as Turtle. The fetched URL becomes the document URI and, if the
// parser wasn't given an explicit base, the initial base URI too.
func (p *TurtleParser) ParseURL(url string) (Graph, error) {
	data, err := fetchDocument(p.opts.ctx, url)
	if err != nil {
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	if p.opts.maxDocumentBytes > 0 && int64(len(data)) > p.opts.maxDocumentBytes {
		return Graph{}, wrapParseError("turtle", 0, 0, ErrDocumentTooLarge)
	}
	doc := NewBaseUrl(url)
	effective := *p
	if effective.baseUrl == nil {
		effective.baseUrl = &doc
	}
	effective.docUrl = &doc
	return effective.parse(string(data))
}

func (p *TurtleParser) parse(src string) (Graph, error) {
	if err := checkDecodeContext(p.opts.ctx); err != nil {
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	if p.opts.maxDocumentBytes > 0 && int64(len(src)) > p.opts.maxDocumentBytes {
		return Graph{}, wrapParseError("turtle", 0, 0, ErrDocumentTooLarge)
	}
	lexer := newTurtleLexer(src)
	tokens, err := lexer.tokenize()
	if err != nil {
		var synErr *SyntaxError
		if errors.As(err, &synErr) {
			return Graph{}, wrapParseError("turtle", synErr.Line, synErr.Column, synErr)
		}
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	parser := newTurtleParser(tokens, p.baseUrl, p.docUrl, p.opts.maxDepth)
	if err := parser.parseDocument(); err != nil {
		var failure *ParseFailure
		if errors.As(err, &failure) {
			return Graph{}, err
		}
		return Graph{}, wrapParseError("turtle", 0, 0, err)
	}
	return buildGraph(parser.tripleBuffer, parser.baseUrl, parser.prefixMappings), nil
}

// ParseTurtle is a convenience wrapper around NewTurtleParser(baseUrl,
// "", opts...).ParseString(src) for callers that don't need a
// long-lived parser.
func ParseTurtle(src, baseUrl string, opts ...Option) (Graph, error) {
	return NewTurtleParser(baseUrl, "", opts...).ParseString(src)
}
