package ucum

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AtomID is an enumerated identifier for a UCUM atom, one per catalogue
// entry (spec.md §3). We key it by a readable Go-style name ("Meter",
// "DegreeCelsius") rather than an iota so the atom table (atomtable.go) can
// be read and extended like data, per spec.md §9's "table of records keyed
// by identifier" option.
type AtomID string

// DefinitionKind distinguishes the five shapes a UCUM atom's definition can
// take (spec.md §3).
type DefinitionKind int

const (
	// DefBase: the atom is itself a base unit; reduction value is 1.
	DefBase DefinitionKind = iota
	// DefDimensional: reduction yields Value times the reduced scalar of
	// Expression.
	DefDimensional
	// DefNonDimensional: reduction yields Value, dimensionless.
	DefNonDimensional
	// DefDimensionalSpecial: reduction follows Function; Expression fixes
	// the dimension.
	DefDimensionalSpecial
	// DefNonDimensionalSpecial: like DefDimensionalSpecial, dimensionless.
	DefNonDimensionalSpecial
)

// Definition is the sum type spec.md §3 describes for an atom's reduction
// rule. Which fields are meaningful depends on Kind; NewRegistry enforces
// the invariant that Function is set iff the atom's IsSpecial flag is set.
type Definition struct {
	Kind       DefinitionKind
	Value      decimal.Decimal
	Expression string
	Function   SpecialFunc
}

// Atom is a single entry in the UCUM atom catalogue (spec.md §3). Atom
// values returned from a Registry are fully resolved: Dimension already
// reflects the reduced dimension of Definition.Expression where applicable,
// so callers never need to walk the definition graph themselves.
type Atom struct {
	ID             AtomID
	PrimaryCode    string
	SecondaryCode  string
	Names          []string
	Classification Classification
	Property       Property
	Dimension      Dimension
	IsMetric       bool
	IsArbitrary    bool
	IsSpecial      bool
	Definition     Definition

	// exprUnit is the parsed form of Definition.Expression, resolved once
	// at registry-build time. Nil for DefBase/DefNonDimensional(Special).
	exprUnit *Unit
}

// Float64Value projects Definition.Value to the float64 the public
// reduction surface promises (spec.md §9).
func (a Atom) Float64Value() float64 {
	f, _ := a.Definition.Value.Float64()
	return f
}

// Registry is the immutable, process-wide atom and prefix catalogue
// (spec.md §3 "Lifecycle"). The zero value is not usable; construct one
// with NewRegistry or use Standard.
type Registry struct {
	atoms          map[string]*Atom // by primary code
	secondaryAtoms map[string]*Atom // by case-folded secondary code
	byID           map[AtomID]*Atom
	order          []*Atom // catalogue order, for stable iteration

	prefixes       map[string]*PrefixEntry
	sortedPrefixes []string
}

// RegistryOption configures a Registry under construction, following the
// teacher's functional-options pattern (formatter.go's FormatOptions,
// generalized here to construction-time options per SPEC_FULL.md §2.3).
type RegistryOption func(*registryBuild)

type registryBuild struct {
	atoms    []Atom
	prefixes []PrefixEntry
}

// WithAtom registers an additional atom beyond the built-in table. Used to
// extend a Registry with application-specific units.
func WithAtom(a Atom) RegistryOption {
	return func(b *registryBuild) {
		b.atoms = append(b.atoms, a)
	}
}

// WithPrefix registers an additional prefix beyond the built-in table.
func WithPrefix(p PrefixEntry) RegistryOption {
	return func(b *registryBuild) {
		b.prefixes = append(b.prefixes, p)
	}
}

// NewRegistry builds a Registry from the built-in atom and prefix tables
// plus any extensions supplied via options. It resolves every atom's
// dimension and (if applicable) parsed expression eagerly, so that Reduce
// and Convert never parse an expression at call time; they walk the
// already-parsed expressions (spec.md §5: no operation blocks or allocates
// beyond its output).
//
// NewRegistry panics on a malformed table: a duplicate atom id, a
// Dimensional expression that doesn't parse, a special flag without a
// function pair (or the reverse), or a cycle in the definition graph. These
// are programming errors (spec.md §7), not user errors. A duplicate atom or
// prefix code is logged as a warning and the later registration wins.
func NewRegistry(opts ...RegistryOption) *Registry {
	b := &registryBuild{
		atoms:    append([]Atom(nil), builtinAtoms...),
		prefixes: append([]PrefixEntry(nil), prefixTable...),
	}
	for _, opt := range opts {
		opt(b)
	}

	r := &Registry{
		atoms:          make(map[string]*Atom, len(b.atoms)),
		secondaryAtoms: make(map[string]*Atom, len(b.atoms)),
		byID:           make(map[AtomID]*Atom, len(b.atoms)),
		prefixes:       make(map[string]*PrefixEntry, len(b.prefixes)),
	}

	for i := range b.prefixes {
		p := b.prefixes[i]
		if _, dup := r.prefixes[p.PrimaryCode]; dup {
			logger.Warn().Str("code", p.PrimaryCode).Msg("ucum: duplicate prefix code, last registration wins")
		}
		r.prefixes[p.PrimaryCode] = &p
	}
	r.sortedPrefixes = sortByDescendingLength(keysOf(r.prefixes))

	raw := make(map[AtomID]*Atom, len(b.atoms))
	for i := range b.atoms {
		a := b.atoms[i]
		if _, dup := raw[a.ID]; dup {
			panic(fmt.Sprintf("ucum: duplicate atom id %q", a.ID))
		}
		cp := a
		raw[a.ID] = &cp
	}

	resolving := make(map[AtomID]bool)
	resolved := make(map[AtomID]bool)
	var resolve func(id AtomID) *Atom
	resolve = func(id AtomID) *Atom {
		a, ok := raw[id]
		if !ok {
			panic(fmt.Sprintf("ucum: atom table references unknown atom %q", id))
		}
		if resolved[id] {
			return a
		}
		if resolving[id] {
			panic(fmt.Sprintf("ucum: cycle in atom definition graph at %q", id))
		}
		resolving[id] = true

		switch a.Definition.Kind {
		case DefBase, DefNonDimensional, DefNonDimensionalSpecial:
			// Dimension is authored directly on the table entry.
		case DefDimensional, DefDimensionalSpecial:
			u, err := parseExpressionAgainst(a.Definition.Expression, raw, resolve)
			if err != nil {
				panic(fmt.Sprintf("ucum: atom %q has unparsable expression %q: %v", id, a.Definition.Expression, err))
			}
			a.exprUnit = &u
			a.Dimension = u.dimensionUnchecked()
		default:
			panic(fmt.Sprintf("ucum: atom %q has unknown definition kind %d", id, a.Definition.Kind))
		}

		if a.IsSpecial && a.Definition.Function == FuncNone {
			panic(fmt.Sprintf("ucum: special atom %q has no function pair", id))
		}
		if !a.IsSpecial && a.Definition.Function != FuncNone {
			panic(fmt.Sprintf("ucum: non-special atom %q carries a function pair", id))
		}

		resolving[id] = false
		resolved[id] = true
		return a
	}

	for id := range raw {
		resolve(id)
	}

	for i := range b.atoms {
		a := raw[b.atoms[i].ID]
		if _, dup := r.atoms[a.PrimaryCode]; dup {
			logger.Warn().Str("code", a.PrimaryCode).Msg("ucum: duplicate atom primary code, last registration wins")
		}
		r.atoms[a.PrimaryCode] = a
		if a.SecondaryCode != "" {
			r.secondaryAtoms[foldCode(a.SecondaryCode)] = a
		}
		r.byID[a.ID] = a
		r.order = append(r.order, a)
	}
	sortAtomsByPrimaryCode(r.order)

	return r
}

// Standard is the default Registry built from the built-in atom and prefix
// tables, analogous to the teacher's package-level Prefixes/SymbolicUnits
// maps (si.go) but immutable and fully resolved at init.
var Standard = NewRegistry()

// AtomByPrimaryCode looks up an atom by its exact, case-sensitive primary
// code (e.g. "m", "[in_i]").
func (r *Registry) AtomByPrimaryCode(code string) (Atom, bool) {
	a, ok := r.atoms[code]
	if !ok {
		return Atom{}, false
	}
	return *a, true
}

// AtomBySecondaryCode looks up an atom by its case-insensitive secondary
// code.
func (r *Registry) AtomBySecondaryCode(code string) (Atom, bool) {
	a, ok := r.secondaryAtoms[foldCode(code)]
	if !ok {
		return Atom{}, false
	}
	return *a, true
}

// AtomByID looks up an atom by its enumerated identifier.
func (r *Registry) AtomByID(id AtomID) (Atom, bool) {
	a, ok := r.byID[id]
	if !ok {
		return Atom{}, false
	}
	return *a, true
}

// Atoms returns every registered atom, ordered by primary code.
func (r *Registry) Atoms() []Atom {
	out := make([]Atom, len(r.order))
	for i, a := range r.order {
		out[i] = *a
	}
	return out
}

// PrefixByCode looks up a prefix in this registry by its exact primary
// code. Unlike the package-level PrefixByCode, this honors WithPrefix
// extensions.
func (r *Registry) PrefixByCode(code string) (PrefixEntry, bool) {
	p, ok := r.prefixes[code]
	if !ok {
		return PrefixEntry{}, false
	}
	return *p, true
}

func foldCode(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

func keysOf(m map[string]*PrefixEntry) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sortByDescendingLength(codes []string) []string {
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && len(codes[j]) > len(codes[j-1]); j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}

func sortAtomsByPrimaryCode(atoms []*Atom) {
	for i := 1; i < len(atoms); i++ {
		for j := i; j > 0 && atoms[j].PrimaryCode < atoms[j-1].PrimaryCode; j-- {
			atoms[j], atoms[j-1] = atoms[j-1], atoms[j]
		}
	}
}
