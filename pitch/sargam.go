package pitch

import "github.com/swaralipi/swaralipi/model"

// Sargam is case sensitive: uppercase is shuddha, lowercase komal,
// with the fixed exceptions s/S and p/P (aliases), m (shuddha Ma) and
// M (tivra Ma). Explicit accidentals extend the bare letters.
var sargamTable = buildSargamTable()

func buildSargamTable() map[string]model.Degree {
	t := map[string]model.Degree{
		"S": model.N1, "s": model.N1,
		"R": model.N2, "r": model.N2b,
		"G": model.N3, "g": model.N3b,
		"m": model.N4, "M": model.N4s,
		"P": model.N5, "p": model.N5,
		"D": model.N6, "d": model.N6b,
		"N": model.N7, "n": model.N7b,
	}
	// Accidentals attach to the uppercase letters (and to m for the
	// flat Ma variants). M# means tivra Ma raised again, i.e. 4##.
	withAccidentals := map[string]int{"S": 0, "R": 1, "G": 2, "P": 4, "D": 5, "N": 6}
	for letter, step := range withAccidentals {
		for _, acc := range accidentals {
			if acc.Offset == 0 {
				continue
			}
			t[letter+acc.Suffix] = model.DegreeFrom(step, acc.Offset)
		}
	}
	t["mb"] = model.N4b
	t["mbb"] = model.N4bb
	t["m♭"] = model.N4b
	t["m♭♭"] = model.N4bb
	t["M#"] = model.N4ss
	t["M♯"] = model.N4ss
	return t
}

var sargamCanonical = map[model.Degree]string{
	model.N1: "S", model.N1s: "S#", model.N1ss: "S##", model.N1b: "Sb", model.N1bb: "Sbb",
	model.N2: "R", model.N2s: "R#", model.N2ss: "R##", model.N2b: "r", model.N2bb: "Rbb",
	model.N3: "G", model.N3s: "G#", model.N3ss: "G##", model.N3b: "g", model.N3bb: "Gbb",
	model.N4: "m", model.N4s: "M", model.N4ss: "M#", model.N4b: "mb", model.N4bb: "mbb",
	model.N5: "P", model.N5s: "P#", model.N5ss: "P##", model.N5b: "Pb", model.N5bb: "Pbb",
	model.N6: "D", model.N6s: "D#", model.N6ss: "D##", model.N6b: "d", model.N6bb: "Dbb",
	model.N7: "N", model.N7s: "N#", model.N7ss: "N##", model.N7b: "n", model.N7bb: "Nbb",
}
