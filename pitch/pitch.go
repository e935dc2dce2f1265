// Package pitch holds the per-system symbol tables. Each notation
// system keeps its own independent table: Sargam "D" is degree 6 while
// Western "D" is degree 2, so classification must happen before lookup.
package pitch

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
)

// Both ASCII (#, b) and Unicode accidentals are accepted on input;
// canonical output uses ASCII.
var accidentals = []struct {
	Suffix string
	Offset int
}{
	{"", 0},
	{"##", 2}, {"#", 1},
	{"bb", -2}, {"b", -1},
	{"♯♯", 2}, {"♯", 1},
	{"♭♭", -2}, {"♭", -1},
}

func buildTable(letters [7]string) map[string]model.Degree {
	t := make(map[string]model.Degree)
	for step, base := range letters {
		for _, acc := range accidentals {
			t[base+acc.Suffix] = model.DegreeFrom(step, acc.Offset)
		}
	}
	return t
}

func buildCanonical(letters [7]string) map[model.Degree]string {
	suffixes := map[int]string{-2: "bb", -1: "b", 0: "", 1: "#", 2: "##"}
	t := make(map[model.Degree]string)
	for step, base := range letters {
		for off := -2; off <= 2; off++ {
			t[model.DegreeFrom(step, off)] = base + suffixes[off]
		}
	}
	return t
}

func tableFor(system model.NotationSystem) map[string]model.Degree {
	switch system {
	case model.SystemNumber:
		return numberTable
	case model.SystemWestern:
		return westernTable
	case model.SystemSargam:
		return sargamTable
	case model.SystemBhatkhande:
		return bhatkhandeTable
	case model.SystemTabla:
		return tablaTable
	}
	return nil
}

// Symbols returns every symbol the system accepts, sorted by length
// descending. The tokenizer relies on this order for longest-match:
// "Sbb" must be tried before "Sb" before "S".
func Symbols(system model.NotationSystem) []string {
	table := tableFor(system)
	syms := make([]string, 0, len(table))
	for s := range table {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(syms[i]), utf8.RuneCountInString(syms[j])
		if li != lj {
			return li > lj
		}
		return syms[i] < syms[j]
	})
	return syms
}

// Lookup resolves a symbol in one system's table.
func Lookup(symbol string, system model.NotationSystem) (model.Degree, bool) {
	d, ok := tableFor(system)[symbol]
	return d, ok
}

// ToString returns the canonical symbol for a degree. For Tabla it is
// defined only for the sentinel degree N1.
func ToString(d model.Degree, system model.NotationSystem) (string, bool) {
	if !d.Valid() {
		return "", false
	}
	switch system {
	case model.SystemNumber:
		s, ok := numberCanonical[d]
		return s, ok
	case model.SystemWestern:
		s, ok := westernCanonical[d]
		return s, ok
	case model.SystemSargam:
		s, ok := sargamCanonical[d]
		return s, ok
	case model.SystemBhatkhande:
		s, ok := bhatkhandeCanonical[d]
		return s, ok
	case model.SystemTabla:
		if d == model.N1 {
			return "dha", true
		}
	}
	return "", false
}

// The compiled per-system matchers are process-wide, immutable, and
// built on first use. They are the only globals beyond the tables.
var (
	matchers    [5]*regexp.Regexp
	matcherOnce [5]sync.Once
)

// Matcher returns a regexp anchored at the start of input whose
// alternation lists the system's symbols longest first, so a match is
// always the maximal munch.
func Matcher(system model.NotationSystem) *regexp.Regexp {
	i := int(system)
	matcherOnce[i].Do(func() {
		syms := Symbols(system)
		quoted := make([]string, len(syms))
		for j, s := range syms {
			quoted[j] = regexp.QuoteMeta(s)
		}
		matchers[i] = regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)`)
	})
	return matchers[i]
}
