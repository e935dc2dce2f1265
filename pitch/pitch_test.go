package pitch

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/model"
)

func TestRoundTripEveryDegree(t *testing.T) {
	assert := assert.New(t)
	systems := []model.NotationSystem{
		model.SystemNumber, model.SystemWestern, model.SystemSargam, model.SystemBhatkhande,
	}
	for _, sys := range systems {
		for d := model.Degree(0); d < model.NumDegrees; d++ {
			s, ok := ToString(d, sys)
			assert.True(ok, "%v should express %v", sys, d)
			back, ok := Lookup(s, sys)
			assert.True(ok, "%v should look up %q", sys, s)
			assert.Equal(d, back, "%v round-trip of %q", sys, s)
		}
	}
}

func TestTablaSentinelDegree(t *testing.T) {
	assert := assert.New(t)
	for _, bol := range []string{"dha", "dhin", "ta", "ka", "na", "ge", "trka", "terekita"} {
		d, ok := Lookup(bol, model.SystemTabla)
		assert.True(ok)
		assert.Equal(model.N1, d)
	}
	s, ok := ToString(model.N1, model.SystemTabla)
	assert.True(ok)
	assert.Equal("dha", s)
	_, ok = ToString(model.N2, model.SystemTabla)
	assert.False(ok)
}

func TestSymbolsSortedLongestFirst(t *testing.T) {
	assert := assert.New(t)
	for _, sys := range model.AllSystems() {
		syms := Symbols(sys)
		assert.NotEmpty(syms)
		for i := 1; i < len(syms); i++ {
			prev := utf8.RuneCountInString(syms[i-1])
			cur := utf8.RuneCountInString(syms[i])
			assert.GreaterOrEqual(prev, cur, "%v symbols out of order at %d", sys, i)
		}
	}
}

func TestSargamCaseSensitivity(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]model.Degree{
		"S": model.N1, "s": model.N1,
		"r": model.N2b, "R": model.N2,
		"g": model.N3b, "G": model.N3,
		"m": model.N4, "M": model.N4s,
		"P": model.N5, "p": model.N5,
		"d": model.N6b, "D": model.N6,
		"n": model.N7b, "N": model.N7,
		"M#": model.N4ss,
	}
	for sym, want := range cases {
		got, ok := Lookup(sym, model.SystemSargam)
		assert.True(ok, sym)
		assert.Equal(want, got, sym)
	}
}

func TestBhatkhandeDevanagari(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]model.Degree{
		"स": model.N1, "रे": model.N2, "ग": model.N3,
		"म": model.N4, "प": model.N5, "ध": model.N6, "नि": model.N7,
		"रे#": model.N2s, "धb": model.N6b,
	}
	for sym, want := range cases {
		got, ok := Lookup(sym, model.SystemBhatkhande)
		assert.True(ok, sym)
		assert.Equal(want, got, sym)
	}
}

func TestUnicodeAccidentals(t *testing.T) {
	assert := assert.New(t)
	d, ok := Lookup("1♯", model.SystemNumber)
	assert.True(ok)
	assert.Equal(model.N1s, d)
	d, ok = Lookup("B♭♭", model.SystemWestern)
	assert.True(ok)
	assert.Equal(model.N7bb, d)
}

func TestMatcherMaximalMunch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Sbb", Matcher(model.SystemSargam).FindString("Sbb R"))
	assert.Equal("1##", Matcher(model.SystemNumber).FindString("1##2"))
	assert.Equal("dhin", Matcher(model.SystemTabla).FindString("dhin ta"))
	assert.Equal("", Matcher(model.SystemWestern).FindString("x"))
}
