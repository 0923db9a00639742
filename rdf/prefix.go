package rdf

import "strings"

// BaseUrl wraps an absolute IRI used to resolve relative references
// during a parse.
type BaseUrl struct {
	IRI IRI
}

// NewBaseUrl wraps text as a BaseUrl without further validation; callers
// that need RFC 3987 checking should call ValidateIRI first.
func NewBaseUrl(text string) BaseUrl { return BaseUrl{IRI: IRI{Text: text}} }

// PrefixMappings maps a Turtle prefix name (the empty string for the
// default "@prefix : <...>" binding) to the absolute IRI it stands for.
type PrefixMappings map[string]IRI

// NewPrefixMappings returns an empty PrefixMappings ready for use.
func NewPrefixMappings() PrefixMappings { return make(PrefixMappings) }

// Clone returns a shallow copy, so callers can mutate the copy without
// affecting a shared Graph's mappings.
func (m PrefixMappings) Clone() PrefixMappings {
	out := make(PrefixMappings, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// absolutise resolves a lexeme taken from inside "<...>" into an
// absolute IRI string. The test for "is fragment already absolute" is
// deliberately the crude substring check described in the design notes
// (see DESIGN.md): any ':' anywhere in fragment is treated as already
// absolute. This misclassifies a QName-shaped string like "a:b" as
// absolute, but correctly passes through "urn:foo:bar" and every scheme
// form actually produced by the grammar's own IRI lexeme.
func absolutise(base *BaseUrl, doc *BaseUrl, fragment string) string {
	if strings.Contains(fragment, ":") {
		return fragment
	}
	if fragment == "#" {
		switch {
		case doc != nil:
			return doc.IRI.Text + fragment
		case base != nil:
			return base.IRI.Text + fragment
		default:
			return fragment
		}
	}
	switch {
	case base != nil:
		return base.IRI.Text + fragment
	case doc != nil:
		return fragment
	default:
		return fragment
	}
}

// resolveQName expands a Turtle prefix into the absolute IRI namespace
// it's bound to. An empty prefix falls back to the empty-key mapping,
// then to base, and is a ResolutionError if neither exists. A non-empty
// prefix with no matching mapping is always a ResolutionError.
func resolveQName(base *BaseUrl, prefix string, mappings PrefixMappings) (string, error) {
	if prefix == "" {
		if ns, ok := mappings[""]; ok {
			return ns.Text, nil
		}
		if base != nil {
			return base.IRI.Text, nil
		}
		return "", &ResolutionError{Message: "cannot resolve empty QName: no base URI and no default prefix binding"}
	}
	ns, ok := mappings[prefix]
	if !ok {
		return "", &ResolutionError{Message: "unresolved prefix: " + prefix}
	}
	return ns.Text, nil
}
