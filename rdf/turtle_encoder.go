package rdf

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FindMapping returns the prefix name bound to ns in mappings, and
// whether one exists. When more than one prefix is bound to the same
// namespace, the lexicographically smallest prefix name wins, so output
// is deterministic.
func FindMapping(mappings PrefixMappings, ns string) (string, bool) {
	best := ""
	found := false
	for prefix, iri := range mappings {
		if iri.Text != ns {
			continue
		}
		if !found || prefix < best {
			best = prefix
			found = true
		}
	}
	return best, found
}

// splitNamespace splits an IRI into a namespace and local part at the
// last '#' or, failing that, the last '/'. It returns ok=false if
// neither separator exists or the local part isn't a legal PN_LOCAL.
func splitNamespace(iri string) (ns, local string, ok bool) {
	idx := strings.LastIndexByte(iri, '#')
	if idx >= 0 {
		ns, local = iri[:idx+1], iri[idx+1:]
	} else {
		idx = strings.LastIndexByte(iri, '/')
		if idx < 0 {
			return "", "", false
		}
		ns, local = iri[:idx+1], iri[idx+1:]
	}
	if local == "" || !isPlainPNLocal(local) {
		return "", "", false
	}
	return ns, local, true
}

func isPlainPNLocal(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !isNameStartCharMinusUnderscore(r) && r != '_' {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// WriteIRI writes iri to w, abbreviated as a PrefixedName if mappings
// has a binding for its namespace, or as a full "<...>" reference
// otherwise.
func WriteIRI(w io.Writer, iri IRI, mappings PrefixMappings) error {
	if ns, local, ok := splitNamespace(iri.Text); ok {
		if prefix, found := FindMapping(mappings, ns); found {
			if prefix == "" {
				_, err := fmt.Fprintf(w, ":%s", local)
				return err
			}
			_, err := fmt.Fprintf(w, "%s:%s", prefix, local)
			return err
		}
	}
	_, err := fmt.Fprintf(w, "<%s>", escapeIRIRef(iri.Text))
	return err
}

func escapeIRIRef(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '>', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TurtleWriter serializes a Graph back to Turtle text: one "@prefix"
// line per mapping, then one "subject predicate object ." line per
// triple in the graph's stored order. It performs no predicate-object
// list or collection re-sugaring; every triple is written out in full.
type TurtleWriter struct {
	w io.Writer
}

// NewTurtleWriter wraps w for use with Write.
func NewTurtleWriter(w io.Writer) *TurtleWriter { return &TurtleWriter{w: w} }

// Write serializes g to the underlying writer.
func (tw *TurtleWriter) Write(g Graph) error {
	mappings := g.PrefixMappings()
	prefixes := make([]string, 0, len(mappings))
	for p := range mappings {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		if _, err := fmt.Fprintf(tw.w, "@prefix %s: <%s> .\n", p, escapeIRIRef(mappings[p].Text)); err != nil {
			return err
		}
	}
	if len(prefixes) > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	for _, t := range g.Triples() {
		if err := tw.writeNode(t.Subject, mappings); err != nil {
			return err
		}
		if _, err := fmt.Fprint(tw.w, " "); err != nil {
			return err
		}
		if err := tw.writeNode(t.Predicate, mappings); err != nil {
			return err
		}
		if _, err := fmt.Fprint(tw.w, " "); err != nil {
			return err
		}
		if err := tw.writeNode(t.Object, mappings); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw.w, " ."); err != nil {
			return err
		}
	}
	return nil
}

func (tw *TurtleWriter) writeNode(n Node, mappings PrefixMappings) error {
	switch v := n.(type) {
	case IRI:
		return WriteIRI(tw.w, v, mappings)
	case BlankNamed:
		_, err := fmt.Fprintf(tw.w, "_:%s", v.Label)
		return err
	case BlankGen:
		_, err := fmt.Fprintf(tw.w, "_:g%d", v.ID)
		return err
	case Literal:
		return tw.writeLiteral(v.Value, mappings)
	default:
		return fmt.Errorf("rdf: cannot serialize node of type %T", n)
	}
}

func (tw *TurtleWriter) writeLiteral(v LValue, mappings PrefixMappings) error {
	switch lv := v.(type) {
	case PlainValue:
		_, err := fmt.Fprintf(tw.w, "%q", lv.Lex)
		return err
	case PlainLangValue:
		_, err := fmt.Fprintf(tw.w, "%q@%s", lv.Lex, lv.Lang)
		return err
	case TypedValue:
		if _, err := fmt.Fprintf(tw.w, "%q^^", lv.Lex); err != nil {
			return err
		}
		return WriteIRI(tw.w, lv.Datatype, mappings)
	default:
		return fmt.Errorf("rdf: cannot serialize literal of type %T", v)
	}
}
