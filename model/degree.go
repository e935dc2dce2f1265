package model

import "fmt"

// Degree is a diatonic scale position (1..7) with an accidental offset
// in -2..+2. The zero value is N1 (natural tonic).
type Degree int

const (
	// 1 series (Do/Sa/C)
	N1bb Degree = iota
	N1b
	N1
	N1s
	N1ss
	// 2 series (Re/D)
	N2bb
	N2b
	N2
	N2s
	N2ss
	// 3 series (Mi/Ga/E)
	N3bb
	N3b
	N3
	N3s
	N3ss
	// 4 series (Fa/Ma/F)
	N4bb
	N4b
	N4
	N4s
	N4ss
	// 5 series (Sol/Pa/G)
	N5bb
	N5b
	N5
	N5s
	N5ss
	// 6 series (La/Dha/A)
	N6bb
	N6b
	N6
	N6s
	N6ss
	// 7 series (Ti/Ni/B)
	N7bb
	N7b
	N7
	N7s
	N7ss

	NumDegrees = 35
)

// DegreeFrom builds a degree from a diatonic step (0..6) and an
// accidental offset (-2..+2).
func DegreeFrom(step int, offset int) Degree {
	return Degree(step*5 + offset + 2)
}

// Step returns the diatonic position 0..6.
func (d Degree) Step() int {
	return int(d) / 5
}

// Offset returns the accidental offset -2..+2.
func (d Degree) Offset() int {
	return int(d)%5 - 2
}

func (d Degree) Valid() bool {
	return d >= 0 && d < NumDegrees
}

var offsetSuffixes = map[int]string{-2: "bb", -1: "b", 0: "", 1: "s", 2: "ss"}

func (d Degree) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Degree(%d)", int(d))
	}
	return fmt.Sprintf("N%d%s", d.Step()+1, offsetSuffixes[d.Offset()])
}

func (d Degree) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

var degreeNames = func() []string {
	names := make([]string, NumDegrees)
	for d := Degree(0); d < NumDegrees; d++ {
		names[d] = d.String()
	}
	return names
}()

func (d *Degree) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, degreeNames, "degree")
	if err != nil {
		return err
	}
	*d = Degree(i)
	return nil
}

// Semitones returns the chromatic distance from the natural tonic,
// used by the MIDI and LilyPond back ends.
func (d Degree) Semitones() int {
	base := []int{0, 2, 4, 5, 7, 9, 11}
	return base[d.Step()] + d.Offset()
}
