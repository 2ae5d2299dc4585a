package ucum

import "github.com/shopspring/decimal"

// Prefix identifies one of the 24 SI/binary prefixes (spec.md §3).
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixYotta
	PrefixZetta
	PrefixExa
	PrefixPeta
	PrefixTera
	PrefixGiga
	PrefixMega
	PrefixKilo
	PrefixHecto
	PrefixDeka
	PrefixDeci
	PrefixCenti
	PrefixMilli
	PrefixMicro
	PrefixNano
	PrefixPico
	PrefixFemto
	PrefixAtto
	PrefixZepto
	PrefixYocto
	PrefixKibi
	PrefixMebi
	PrefixGibi
	PrefixTebi
)

// PrefixEntry is one row of the static prefix table: the canonical codes
// and the decimal scalar the prefix multiplies an atom's value by.
type PrefixEntry struct {
	ID            Prefix
	PrimaryCode   string
	SecondaryCode string
	Name          string
	Value         decimal.Decimal
	// Binary reports whether this is a binary (base-1024) prefix, which may
	// only attach to information atoms (spec.md §3).
	Binary bool
}

// Float64 projects the prefix's exact decimal scalar to the float64 the
// public reduction surface promises (spec.md §9).
func (p PrefixEntry) Float64() float64 {
	f, _ := p.Value.Float64()
	return f
}

func decPow10(exp int32) decimal.Decimal {
	return decimal.New(1, exp)
}

func decPow2(exp int64) decimal.Decimal {
	return decimal.New(1, 0).Mul(decimal.NewFromInt(2).Pow(decimal.NewFromInt(exp)))
}

var prefixTable = []PrefixEntry{
	{PrefixYotta, "YA", "YA", "yotta", decPow10(24), false},
	{PrefixZetta, "ZA", "ZA", "zetta", decPow10(21), false},
	{PrefixExa, "EX", "EX", "exa", decPow10(18), false},
	{PrefixPeta, "PT", "PT", "peta", decPow10(15), false},
	{PrefixTera, "TR", "TR", "tera", decPow10(12), false},
	{PrefixGiga, "GA", "GA", "giga", decPow10(9), false},
	{PrefixMega, "MA", "MA", "mega", decPow10(6), false},
	{PrefixKilo, "k", "K", "kilo", decPow10(3), false},
	{PrefixHecto, "h", "H", "hecto", decPow10(2), false},
	{PrefixDeka, "da", "DA", "deka", decPow10(1), false},
	{PrefixDeci, "d", "D", "deci", decPow10(-1), false},
	{PrefixCenti, "c", "C", "centi", decPow10(-2), false},
	{PrefixMilli, "m", "M", "milli", decPow10(-3), false},
	{PrefixMicro, "u", "U", "micro", decPow10(-6), false},
	{PrefixNano, "n", "N", "nano", decPow10(-9), false},
	{PrefixPico, "p", "P", "pico", decPow10(-12), false},
	{PrefixFemto, "f", "F", "femto", decPow10(-15), false},
	{PrefixAtto, "a", "A", "atto", decPow10(-18), false},
	{PrefixZepto, "z", "ZO", "zepto", decPow10(-21), false},
	{PrefixYocto, "y", "YO", "yocto", decPow10(-24), false},
	{PrefixKibi, "Ki", "KIB", "kibi", decPow2(10), true},
	{PrefixMebi, "Mi", "MIB", "mebi", decPow2(20), true},
	{PrefixGibi, "Gi", "GIB", "gibi", decPow2(30), true},
	{PrefixTebi, "Ti", "TIB", "tebi", decPow2(40), true},
}

// prefixByPrimary indexes prefixTable by its case-sensitive primary code.
var prefixByPrimary = func() map[string]*PrefixEntry {
	m := make(map[string]*PrefixEntry, len(prefixTable))
	for i := range prefixTable {
		m[prefixTable[i].PrimaryCode] = &prefixTable[i]
	}
	return m
}()

// sortedPrefixCodes lists every primary prefix code, longest first, so the
// parser's longest-match rule (spec.md §4.1) can try longer prefixes before
// shorter ones that happen to be a leading substring (e.g. "da" before "d").
var sortedPrefixCodes = func() []string {
	codes := make([]string, 0, len(prefixTable))
	for _, p := range prefixTable {
		codes = append(codes, p.PrimaryCode)
	}
	// Insertion sort by descending length; the table is tiny (24 entries).
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && len(codes[j]) > len(codes[j-1]); j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}()

// PrefixByCode looks up a prefix by its exact primary code.
func PrefixByCode(code string) (PrefixEntry, bool) {
	if p, ok := prefixByPrimary[code]; ok {
		return *p, true
	}
	return PrefixEntry{}, false
}
