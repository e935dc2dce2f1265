// Package lily renders a rhythm-analyzed document as LilyPond source.
// It consumes the frozen tree only and never mutates it.
package lily

import (
	"fmt"
	"io"
	"strings"

	"github.com/swaralipi/swaralipi/model"
)

// Convert streams one document to Output. Meta, when present, fills
// the extra header fields.
type Convert struct {
	Output io.Writer
	Meta   *model.TuneMetadata

	tokens   []string
	lastNote int // index of the last sounding token, -1 when none
	den      int // duration denominator of the group being rendered
}

// Render writes the whole document.
func Render(w io.Writer, doc *model.Document, meta *model.TuneMetadata) {
	c := &Convert{Output: w, Meta: meta}
	c.Document(doc)
}

func (c *Convert) pf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Output, format, args...)
}

func (c *Convert) Document(doc *model.Document) {
	c.pf("\\version \"2.24.0\"\n")
	c.header(doc)
	c.pf("\\score {\n")
	c.pf("  \\new Staff {\n")
	c.pf("    \\fixed c' {\n")
	c.lastNote = -1
	for _, stave := range doc.Staves() {
		c.stave(stave)
	}
	c.pf("      %s\n", strings.Join(c.tokens, " "))
	c.pf("    }\n")
	c.pf("  }\n")
	c.pf("}\n")
}

func (c *Convert) header(doc *model.Document) {
	c.pf("\\header {\n")
	if doc.Title != "" {
		c.pf("    title = %q\n", doc.Title)
	}
	if doc.Author != "" {
		c.pf("    composer = %q\n", doc.Author)
	}
	if c.Meta != nil {
		if c.Meta.Artist != "" {
			c.pf("    arranger = %q\n", c.Meta.Artist)
		}
		if c.Meta.Raga != "" {
			c.pf("    piece = %q\n", c.Meta.Raga)
		}
		if c.Meta.Year != 0 {
			c.pf("    copyright = \"%d\"\n", c.Meta.Year)
		}
	}
	c.pf("}\n")
}

func (c *Convert) stave(stave *model.Stave) {
	content := stave.Content()
	if content == nil {
		return
	}
	elements := content.Elements
	for i := 0; i < len(elements); i++ {
		switch el := elements[i].(type) {
		case *model.Beat:
			if el.Merged {
				continue // rendered with its group head
			}
			c.beatGroup(el, followers(elements, i))
		case *model.Barline:
			c.barline(el)
		}
	}
	c.push("\\break", false)
}

// followers returns the merged beats that belong to the group headed
// by the beat at index i.
func followers(elements []model.ContentElement, i int) []*model.Beat {
	var res []*model.Beat
	for j := i + 1; j < len(elements); j++ {
		b, ok := elements[j].(*model.Beat)
		if !ok {
			continue
		}
		if !b.Merged {
			break
		}
		res = append(res, b)
	}
	return res
}

func (c *Convert) push(token string, sounding bool) {
	c.tokens = append(c.tokens, token)
	if sounding {
		c.lastNote = len(c.tokens) - 1
	}
}

// tieBack marks the last sounding token as tied into what follows.
func (c *Convert) tieBack() {
	if c.lastNote >= 0 && !strings.HasSuffix(c.tokens[c.lastNote], "~") {
		c.tokens[c.lastNote] += "~"
	}
}

func (c *Convert) beatGroup(head *model.Beat, merged []*model.Beat) {
	if isBreathBeat(head) {
		c.push("\\breathe", false)
		return
	}
	if head.TiedToPrevious {
		c.tieBack()
	}
	c.den = head.Divisions
	if head.IsTuplet {
		c.den = head.TupletDen
	}
	if c.den == 0 {
		c.den = 1
	}
	if head.IsTuplet {
		c.push(fmt.Sprintf("\\tuplet %d/%d {", head.TupletNum, head.TupletDen), false)
	}
	c.beatElements(head)
	for _, b := range merged {
		c.beatElements(b)
	}
	if head.IsTuplet {
		c.push("}", false)
	}
}

// beatElements renders one structural beat's duration-carrying
// elements. Durations come from each element's subdivision count and
// the group head's analysis, already stored on the element.
func (c *Convert) beatElements(beat *model.Beat) {
	for _, e := range beat.Elements {
		switch el := e.(type) {
		case *model.Note:
			if el.Subdivisions == 0 {
				continue
			}
			c.push(pitchName(el.Degree, el.Octave)+c.displayDuration(el.Subdivisions)+noteDecorations(el), true)
		case *model.Dash:
			if el.Subdivisions == 0 {
				continue // internal extender, already counted
			}
			if el.Degree != nil {
				c.push(pitchName(*el.Degree, el.Octave)+c.displayDuration(el.Subdivisions), true)
			} else {
				c.push("r"+c.displayDuration(el.Subdivisions), false)
			}
		case *model.Rest:
			if el.Subdivisions > 0 {
				c.push("r"+c.displayDuration(el.Subdivisions), false)
			}
		}
	}
}

// displayDuration renders the engraved duration for a subdivision
// share of the current group: s/(4*P) inside a tuplet, s/(4*D)
// otherwise.
func (c *Convert) displayDuration(subdivisions int) string {
	num, den := reduce(subdivisions, c.den*4)
	return fractionToLily(num, den)
}

func noteDecorations(n *model.Note) string {
	var sb strings.Builder
	if n.Mordent {
		sb.WriteString("\\mordent")
	}
	if n.Chord != "" {
		sb.WriteString(fmt.Sprintf("^%q", n.Chord))
	}
	if n.Slur != nil {
		switch *n.Slur {
		case model.SlurStart:
			sb.WriteString("(")
		case model.SlurEnd:
			sb.WriteString(")")
		}
	}
	return sb.String()
}

// fractionToLily maps a reduced duration fraction onto LilyPond's
// power-of-two-plus-dots notation. Fractions that fit neither a plain
// value nor single or double dots fall back to the plain quarter.
func fractionToLily(num, den int) string {
	switch num {
	case 1:
		return fmt.Sprintf("%d", den)
	case 3:
		return fmt.Sprintf("%d.", den/2)
	case 7:
		return fmt.Sprintf("%d..", den/4)
	}
	return "4"
}

func (c *Convert) barline(bar *model.Barline) {
	switch bar.Style {
	case model.BarlineSingle:
		c.push("|", false)
	case model.BarlineDouble:
		c.push("\\bar \"||\"", false)
	case model.BarlineFinal:
		c.push("\\bar \"|.\"", false)
	case model.BarlineRepeatStart:
		c.push("\\bar \".|:\"", false)
	case model.BarlineRepeatEnd:
		c.push("\\bar \":|.\"", false)
	case model.BarlineRepeatBoth:
		c.push("\\bar \":|.|:\"", false)
	}
}

func isBreathBeat(b *model.Beat) bool {
	if len(b.Elements) != 1 {
		return false
	}
	_, ok := b.Elements[0].(*model.BreathMark)
	return ok
}

var stepNames = [7]string{"c", "d", "e", "f", "g", "a", "b"}
var offsetNames = map[int]string{-2: "eses", -1: "es", 0: "", 1: "is", 2: "isis"}

// pitchName is the Dutch note name at an absolute octave, with
// octave 0 sitting on c' (middle).
func pitchName(d model.Degree, octave int8) string {
	name := stepNames[d.Step()] + offsetNames[d.Offset()]
	marks := int(octave)
	if marks >= 0 {
		return name + strings.Repeat("'", marks)
	}
	return name + strings.Repeat(",", -marks)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func reduce(num, den int) (int, int) {
	if num == 0 {
		return 0, 1
	}
	g := gcd(num, den)
	return num / g, den / g
}
