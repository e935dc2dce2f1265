// Package rhythm assigns exact rational durations to the beats of a
// parsed, spatially bound document. Each unmerged beat spans one
// quarter note; dashes extend the element before them, and a dash
// that opens a beat either continues the previous note as a tie or
// sounds as a rest.
package rhythm

import (
	"fmt"

	"github.com/swaralipi/swaralipi/model"
)

// Strict makes invariant violations panic instead of being logged.
// Tests enable it; the server leaves it off.
var Strict bool

// pitch is the tie identity: a degree at an octave.
type pitch struct {
	degree model.Degree
	octave int8
}

// analyzer state survives barlines, whitespace and stave boundaries;
// only a breath mark or a non-matching pitch clears the pending tie.
type analyzer struct {
	pending  *pitch
	lastNote *pitch // last element of the previous beat, when it was a note
}

// AnalyzeDocument runs the rhythm pass over every stave in order.
// Pending ties carry across staves.
func AnalyzeDocument(doc *model.Document) {
	a := &analyzer{}
	for _, s := range doc.Staves() {
		a.analyzeContent(s.Content())
	}
}

// AnalyzeStave analyzes a single stave in isolation.
func AnalyzeStave(stave *model.Stave) {
	(&analyzer{}).analyzeContent(stave.Content())
}

func (a *analyzer) analyzeContent(content *model.ContentLine) {
	if content == nil {
		return
	}
	var beats []*model.Beat
	for _, e := range content.Elements {
		if b, ok := e.(*model.Beat); ok {
			beats = append(beats, b)
		}
	}

	// Beats flagged by a beat-group indicator merge with their
	// successors into one analysis unit.
	for i := 0; i < len(beats); {
		j := i
		for j < len(beats)-1 && beats[j].GroupWithNext {
			j++
		}
		a.analyzeGroup(beats[i : j+1])
		i = j + 1
	}
}

func (a *analyzer) analyzeGroup(group []*model.Beat) {
	if len(group) == 1 && isBreathBeat(group[0]) {
		a.pending = nil
		a.lastNote = nil
		return
	}

	carriers := a.expand(group)
	if len(carriers) == 0 {
		return
	}

	divisions := 0
	for _, c := range carriers {
		divisions += c.subdivisions
	}

	head := group[0]
	head.Divisions = divisions
	head.TotalNum, head.TotalDen = 1, 4
	head.IsTuplet = len(carriers) > 1 && divisions > 1 && !isPowerOfTwo(divisions)
	if head.IsTuplet {
		head.TupletNum = divisions
		head.TupletDen = nextLowerPowerOfTwo(divisions)
	}
	for _, b := range group[1:] {
		b.Merged = true
	}

	sum := 0
	for _, c := range carriers {
		num, den := reduce(c.subdivisions, divisions*4)
		c.setDuration(num, den, c.subdivisions)
		sum += c.subdivisions
	}
	if sum != divisions {
		failInvariant("beat at line %d: subdivisions %d do not sum to divisions %d",
			head.Pos().Line, sum, divisions)
	}

	a.updatePending(group)
}

// carrier is a duration-bearing beat element. Internal dashes are not
// carriers; they only raise the subdivision count of the element
// before them.
type carrier struct {
	note         *model.Note
	dash         *model.Dash
	rest         *model.Rest
	subdivisions int
}

func (c *carrier) setDuration(num, den, subs int) {
	switch {
	case c.note != nil:
		c.note.Numerator, c.note.Denominator, c.note.Subdivisions = num, den, subs
	case c.dash != nil:
		c.dash.Numerator, c.dash.Denominator, c.dash.Subdivisions = num, den, subs
	case c.rest != nil:
		c.rest.Numerator, c.rest.Denominator, c.rest.Subdivisions = num, den, subs
	}
}

// expand walks the group's elements, turning them into carriers and
// resolving the tie state at the group boundary.
func (a *analyzer) expand(group []*model.Beat) []*carrier {
	var carriers []*carrier
	first := true

	for _, beat := range group {
		for _, e := range beat.Elements {
			switch el := e.(type) {
			case *model.Note:
				if first && a.pending != nil {
					if a.pending.degree == el.Degree && a.pending.octave == el.Octave {
						beat.TiedToPrevious = true
					}
					a.pending = nil
				}
				carriers = append(carriers, &carrier{note: el, subdivisions: 1})
			case *model.Dash:
				if len(carriers) == 0 {
					// A beat opened by a dash continues the previous
					// note when there is one, and rests otherwise.
					if a.lastNote != nil {
						el.Degree = &a.lastNote.degree
						el.Octave = a.lastNote.octave
						beat.TiedToPrevious = true
					}
					a.pending = nil
					carriers = append(carriers, &carrier{dash: el, subdivisions: 1})
				} else {
					carriers[len(carriers)-1].subdivisions++
				}
			case *model.Rest:
				if first {
					a.pending = nil
				}
				carriers = append(carriers, &carrier{rest: el, subdivisions: 1})
			case *model.BreathMark:
				a.pending = nil
			}
			first = false
		}
	}
	return carriers
}

// updatePending records the tie the group leaves behind: a trailing
// dash arms a pending tie on the group's final sounding pitch, and
// the last element being a note allows the next beat to open with a
// continuing dash.
func (a *analyzer) updatePending(group []*model.Beat) {
	last := group[len(group)-1]
	if len(last.Elements) == 0 {
		return
	}

	final := lastPitch(group)
	if _, endsOnDash := last.Elements[len(last.Elements)-1].(*model.Dash); endsOnDash {
		a.pending = final
	} else {
		a.pending = nil
	}

	if n, ok := last.Elements[len(last.Elements)-1].(*model.Note); ok {
		a.lastNote = &pitch{degree: n.Degree, octave: n.Octave}
	} else {
		a.lastNote = nil
	}
}

// lastPitch finds the group's final sounding pitch, looking through
// trailing dashes. A dash that itself continues an earlier note
// counts through its inherited pitch.
func lastPitch(group []*model.Beat) *pitch {
	for i := len(group) - 1; i >= 0; i-- {
		for j := len(group[i].Elements) - 1; j >= 0; j-- {
			switch el := group[i].Elements[j].(type) {
			case *model.Note:
				return &pitch{degree: el.Degree, octave: el.Octave}
			case *model.Dash:
				if el.Degree != nil {
					return &pitch{degree: *el.Degree, octave: el.Octave}
				}
			case *model.Rest:
				return nil
			}
		}
	}
	return nil
}

func isBreathBeat(b *model.Beat) bool {
	if len(b.Elements) != 1 {
		return false
	}
	_, ok := b.Elements[0].(*model.BreathMark)
	return ok
}

func failInvariant(format string, args ...any) {
	if Strict {
		panic(fmt.Sprintf(format, args...))
	}
	fmt.Printf("[rhythm] invariant violation: "+format+"\n", args...)
}
