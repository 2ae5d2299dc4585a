package ucum

// The parser builds an AST before flattening it into a Term list (spec.md
// §2's "string → MainTerm AST; AST → flat Term list"), mirroring the
// teacher's ast.go/BinaryNode split between parse-time structure and the
// value the rest of the package operates on.

// mainTerm is the parse of main_term := '/' term | term.
type mainTerm struct {
	leadingSlash bool
	term         termNode
}

// termSep distinguishes the separator token joining a component onto a term.
type termSep int

const (
	sepNone termSep = iota
	sepDot
	sepSlash
)

// termNode is the parse of term := component ('.' term | '/' term)*, stored
// as a first component plus a left-to-right chain of (separator, component)
// tails rather than a right-recursive tree: spec.md §4.1's "Separators are
// left-associative" rule means each component's sign depends only on the
// separator immediately preceding it, not on how the remaining chain
// nests (see flattenTerm).
type termNode struct {
	first componentNode
	tails []termTail
}

type termTail struct {
	sep  termSep
	comp componentNode
}

// componentKind distinguishes the component alternatives in the grammar
// (spec.md §4.1): four alternatives in three kinds, since the bare
// annotation alternative is a componentSimple (see componentNode).
type componentKind int

const (
	componentSimple componentKind = iota // annotatable annotation?
	componentFactor                      // bare digit+ factor, no atom
	componentGroup                       // '(' term ')'
)

// componentNode is the parse of one component. Which fields are meaningful
// depends on kind: componentFactor only uses factor; componentGroup only
// uses group; componentSimple uses prefix/atom/exponent/annotation (an
// annotation-only component, the grammar's bare "annotation" alternative,
// is a componentSimple with no prefix/atom and exponent unset).
type componentNode struct {
	kind componentKind

	factor      uint64
	prefix      *PrefixEntry
	atom        *Atom
	exponent    int
	hasExponent bool
	annotation  string

	group termNode
}

// flattenMainTerm walks the AST into the flat Term list spec.md §4.1's
// "Output normalisation" describes: each Term's exponent already carries
// the sign implied by enclosing '/' separators and the leading slash.
func flattenMainTerm(m mainTerm) []Term {
	terms := flattenTerm(m.term)
	if m.leadingSlash {
		terms = negateAllTerms(terms)
	}
	return terms
}

func flattenTerm(t termNode) []Term {
	out := flattenComponent(t.first)
	for _, tail := range t.tails {
		comp := flattenComponent(tail.comp)
		if tail.sep == sepSlash {
			comp = negateAllTerms(comp)
		}
		out = append(out, comp...)
	}
	return out
}

func flattenComponent(c componentNode) []Term {
	switch c.kind {
	case componentGroup:
		return flattenTerm(c.group)
	case componentFactor:
		return []Term{{Factor: c.factor}}
	default:
		exp := 1
		if c.hasExponent {
			exp = c.exponent
		}
		return []Term{{
			Factor:     c.factor,
			Prefix:     c.prefix,
			Atom:       c.atom,
			Exponent:   exp,
			Annotation: c.annotation,
		}}
	}
}

func negateAllTerms(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = t.negated()
	}
	return out
}
