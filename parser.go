package ucum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// atomResolver is the lookup surface the parser needs from either a fully
// built Registry or the in-progress build of one (spec.md §4.1's
// disambiguation rule needs atom and prefix lookups; during registry
// construction the atom table isn't fully resolved yet, so atom.go's
// NewRegistry supplies its own implementation via buildResolver below).
type atomResolver interface {
	lookupAtomCode(code string) (*Atom, bool)
	lookupSecondaryCode(code string) (*Atom, bool)
	lookupPrefixCode(code string) (*PrefixEntry, bool)
	sortedPrefixCodes() []string
}

func (r *Registry) lookupAtomCode(code string) (*Atom, bool) {
	a, ok := r.atoms[code]
	return a, ok
}

func (r *Registry) lookupSecondaryCode(code string) (*Atom, bool) {
	a, ok := r.secondaryAtoms[foldCode(code)]
	return a, ok
}

func (r *Registry) lookupPrefixCode(code string) (*PrefixEntry, bool) {
	p, ok := r.prefixes[code]
	return p, ok
}

func (r *Registry) sortedPrefixCodes() []string {
	return r.sortedPrefixes
}

// buildResolver lets atom.go's NewRegistry parse a Dimensional atom's
// Expression field against the atom table while it is still being resolved:
// an atom lookup triggers resolve(id), which is memoised and cycle-guarded
// by the caller. Prefixes never depend on atom resolution, so those come
// straight from the package-level table.
type buildResolver struct {
	byCode      map[string]AtomID
	bySecondary map[string]AtomID
	resolve     func(AtomID) *Atom
}

func (b *buildResolver) lookupAtomCode(code string) (*Atom, bool) {
	id, ok := b.byCode[code]
	if !ok {
		return nil, false
	}
	return b.resolve(id), true
}

func (b *buildResolver) lookupSecondaryCode(code string) (*Atom, bool) {
	id, ok := b.bySecondary[foldCode(code)]
	if !ok {
		return nil, false
	}
	return b.resolve(id), true
}

func (b *buildResolver) lookupPrefixCode(code string) (*PrefixEntry, bool) {
	return PrefixByCode(code)
}

func (b *buildResolver) sortedPrefixCodes() []string {
	return sortedPrefixCodes
}

// parseExpressionAgainst parses a Dimensional/DimensionalSpecial atom's
// Expression field (e.g. "dm3", "mol/L") while the atom table that defines
// it is still being built (atom.go's NewRegistry).
func parseExpressionAgainst(expr string, raw map[AtomID]*Atom, resolve func(AtomID) *Atom) (Unit, error) {
	byCode := make(map[string]AtomID, len(raw))
	bySecondary := make(map[string]AtomID, len(raw))
	for id, a := range raw {
		byCode[a.PrimaryCode] = id
		if a.SecondaryCode != "" {
			bySecondary[foldCode(a.SecondaryCode)] = id
		}
	}
	res := &buildResolver{byCode: byCode, bySecondary: bySecondary, resolve: resolve}
	terms, err := parseUnitTerms(expr, res)
	if err != nil {
		return Unit{}, err
	}
	return Unit{Terms: terms}, nil
}

// Parse parses a UCUM unit-expression string against the standard registry
// (spec.md §4.1).
func Parse(input string) (Unit, error) {
	return Standard.Parse(input)
}

// MustParse is Parse, panicking on error. Use only when input is known
// valid (e.g. a compile-time constant).
func MustParse(input string) Unit {
	u, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse parses a UCUM unit-expression string against this registry's atom
// and prefix tables.
func (r *Registry) Parse(input string) (Unit, error) {
	if input == "" {
		return Unit{}, &UnknownUnitStringError{Input: input}
	}
	terms, err := parseUnitTerms(input, r)
	if err != nil {
		var pie *ParseIntError
		if errors.As(err, &pie) {
			return Unit{}, pie
		}
		return Unit{}, &UnknownUnitStringError{Input: input}
	}
	return Unit{Terms: terms}, nil
}

// parseUnitTerms is the grammar entry point shared by the public Parse
// methods and parseExpressionAgainst: tokenize, build the main_term AST,
// require the whole input be consumed, then flatten to a Term list
// (spec.md §4.1).
func parseUnitTerms(input string, res atomResolver) ([]Term, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	ts := &tokenStream{toks: toks}

	m, err := parseMainTerm(ts, res)
	if err != nil {
		return nil, err
	}
	if ts.peek().Kind != TokenEOF {
		return nil, fmt.Errorf("ucum: unexpected trailing input at byte %d", ts.peek().Pos)
	}
	return flattenMainTerm(m), nil
}

// parseMainTerm implements main_term := '/' term | term.
func parseMainTerm(ts *tokenStream, res atomResolver) (mainTerm, error) {
	leadingSlash := false
	if ts.peek().Kind == TokenSlash {
		ts.next()
		leadingSlash = true
	}
	t, err := parseTerm(ts, res)
	if err != nil {
		return mainTerm{}, err
	}
	return mainTerm{leadingSlash: leadingSlash, term: t}, nil
}

// parseTerm implements term := component ('.' term | '/' term)?, read as a
// left-to-right chain: each tail's sign depends only on the separator that
// introduces it (spec.md §4.1 "Separators are left-associative": a/b/c is
// (a/b)/c = a·b^-1·c^-1, i.e. every component after a '/' is inverted on
// its own, not by accumulating state across the chain).
func parseTerm(ts *tokenStream, res atomResolver) (termNode, error) {
	first, err := parseComponent(ts, res)
	if err != nil {
		return termNode{}, err
	}
	t := termNode{first: first}
	for {
		switch ts.peek().Kind {
		case TokenDot:
			ts.next()
			c, err := parseComponent(ts, res)
			if err != nil {
				return termNode{}, err
			}
			t.tails = append(t.tails, termTail{sep: sepDot, comp: c})
		case TokenSlash:
			ts.next()
			c, err := parseComponent(ts, res)
			if err != nil {
				return termNode{}, err
			}
			t.tails = append(t.tails, termTail{sep: sepSlash, comp: c})
		default:
			return t, nil
		}
	}
}

// parseComponent implements component := annotatable annotation? |
// annotation | factor | '(' term ')'.
func parseComponent(ts *tokenStream, res atomResolver) (componentNode, error) {
	tok := ts.peek()
	switch tok.Kind {
	case TokenLParen:
		ts.next()
		inner, err := parseTerm(ts, res)
		if err != nil {
			return componentNode{}, err
		}
		if ts.peek().Kind != TokenRParen {
			return componentNode{}, fmt.Errorf("ucum: expected ')' at byte %d", ts.peek().Pos)
		}
		ts.next()
		return componentNode{kind: componentGroup, group: inner}, nil

	case TokenAnnotation:
		ts.next()
		return componentNode{kind: componentSimple, annotation: tok.Value}, nil

	case TokenChunk:
		ts.next()
		if isAllDigits(tok.Value) {
			f, err := strconv.ParseUint(tok.Value, 10, 64)
			if err != nil {
				return componentNode{}, &ParseIntError{Input: tok.Value, Err: err}
			}
			// simple_unit's '1' alternative may carry an annotation ("1{rbc}").
			if tok.Value == "1" && ts.peek().Kind == TokenAnnotation {
				return componentNode{kind: componentSimple, factor: f, annotation: ts.next().Value}, nil
			}
			return componentNode{kind: componentFactor, factor: f}, nil
		}

		factor, prefix, atom, exp, hasExp, err := resolveAnnotatableChunk(tok.Value, res)
		if err != nil {
			return componentNode{}, err
		}
		c := componentNode{
			kind:        componentSimple,
			factor:      factor,
			prefix:      prefix,
			atom:        atom,
			exponent:    exp,
			hasExponent: hasExp,
		}
		if ts.peek().Kind == TokenAnnotation {
			c.annotation = ts.next().Value
		}
		return c, nil

	default:
		return componentNode{}, fmt.Errorf("ucum: unexpected token %v at byte %d", tok.Kind, tok.Pos)
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}

// resolveAnnotatableChunk parses a non-delimiter chunk as annotatable :=
// simple_unit exponent?, where simple_unit may itself carry a leading
// integer factor fused onto it without a separator (spec.md §4.1: "Factors
// (2m, 100km) must begin with a digit"; scenario 9 parses "2km-2" as one
// Term with factor 2, prefix kilo, atom meter, exponent -2).
func resolveAnnotatableChunk(s string, res atomResolver) (factor uint64, prefix *PrefixEntry, atom *Atom, exp int, hasExp bool, err error) {
	body, expStr, hasTrailingDigits := splitTrailingExponent(s)
	if hasTrailingDigits && body != "" {
		if f, p, a, ok := resolveSimpleUnitWithFactor(body, res); ok {
			e, convErr := strconv.Atoi(expStr)
			if convErr != nil {
				return 0, nil, nil, 0, false, &ParseIntError{Input: expStr, Err: convErr}
			}
			if e == 0 {
				return 0, nil, nil, 0, false, fmt.Errorf("ucum: exponent must be non-zero in %q", s)
			}
			return f, p, a, e, true, nil
		}
	}

	if f, p, a, ok := resolveSimpleUnitWithFactor(s, res); ok {
		return f, p, a, 1, false, nil
	}

	return 0, nil, nil, 0, false, fmt.Errorf("ucum: %q is not a valid prefix/atom combination", s)
}

// splitTrailingExponent splits a maximal trailing ('+'|'-')?digit+ run off
// the end of s. hasExp is false when s has no trailing digit at all.
func splitTrailingExponent(s string) (body, expStr string, hasExp bool) {
	k := len(s)
	m := k
	for m > 0 && isASCIIDigit(s[m-1]) {
		m--
	}
	if m == k {
		return s, "", false
	}
	start := m
	if start > 0 && (s[start-1] == '+' || s[start-1] == '-') {
		start--
	}
	return s[:start], s[start:], true
}

// resolveSimpleUnitWithFactor resolves simple_unit := '1' | prefix_symbol?
// atom_symbol, additionally allowing a leading integer factor fused onto
// the front without a separator (see resolveAnnotatableChunk).
func resolveSimpleUnitWithFactor(s string, res atomResolver) (factor uint64, prefix *PrefixEntry, atom *Atom, ok bool) {
	if p, a, found := splitSimpleUnit(s, res); found {
		return 1, p, a, true
	}

	i := 0
	for i < len(s) && isASCIIDigit(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, nil, nil, false
	}
	rest := s[i:]
	p, a, found := splitSimpleUnit(rest, res)
	if !found {
		return 0, nil, nil, false
	}
	f, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, nil, nil, false
	}
	return f, p, a, true
}

// splitSimpleUnit implements spec.md §4.1's disambiguation rule: the parse
// succeeds iff the longest leading substring that is a valid prefix leaves
// a remainder that is a valid metric atom (preferring longer prefixes);
// otherwise the whole token must be a valid atom, with no prefix.
func splitSimpleUnit(s string, res atomResolver) (*PrefixEntry, *Atom, bool) {
	if s == "" {
		return nil, nil, false
	}
	for _, code := range res.sortedPrefixCodes() {
		if len(code) >= len(s) || !strings.HasPrefix(s, code) {
			continue
		}
		remainder := s[len(code):]
		atom, ok := res.lookupAtomCode(remainder)
		if !ok || !atom.IsMetric {
			continue
		}
		prefix, _ := res.lookupPrefixCode(code)
		if prefix.Binary && atom.Property != PropertyInformation {
			continue
		}
		return prefix, atom, true
	}

	if atom, ok := res.lookupAtomCode(s); ok {
		return nil, atom, true
	}
	if atom, ok := res.lookupSecondaryCode(s); ok {
		return nil, atom, true
	}
	return nil, nil, false
}
