package model

import "strings"

// BeatElement is one slot-holder inside a beat: Note, Dash, Rest or
// BreathMark.
type BeatElement interface {
	Text() string
	Pos() Position
	beatElement()
}

// ContentElement is one element of a content line: Beat, Barline,
// Whitespace or UnknownToken.
type ContentElement interface {
	Text() string
	Pos() Position
	contentElement()
}

// SlurPosition labels a note's place within a slur span.
type SlurPosition int

const (
	SlurStart SlurPosition = iota
	SlurMiddle
	SlurEnd
	SlurStartEnd
)

var slurNames = [...]string{"start", "middle", "end", "start_end"}

func (p SlurPosition) String() string { return slurNames[p] }

func (p SlurPosition) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *SlurPosition) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, slurNames[:], "slur position")
	if err != nil {
		return err
	}
	*p = SlurPosition(i)
	return nil
}

// BarlineType distinguishes the six barline glyphs.
type BarlineType int

const (
	BarlineSingle BarlineType = iota // |
	BarlineDouble                    // ||
	BarlineFinal                     // |.
	BarlineRepeatStart               // |:
	BarlineRepeatEnd                 // :|
	BarlineRepeatBoth                // :|:
)

var barlineNames = [...]string{"single", "double", "final", "repeat_start", "repeat_end", "repeat_both"}

func (t BarlineType) String() string { return barlineNames[t] }

func (t BarlineType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *BarlineType) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, barlineNames[:], "barline style")
	if err != nil {
		return err
	}
	*t = BarlineType(i)
	return nil
}

// Note is a pitched content event. Numerator/Denominator and
// Subdivisions are filled in by the rhythm pass; Octave, Slur,
// Ornament, Mordent, Chord and Syllable by the spatial binder.
type Note struct {
	Value        string            `json:"value"`
	Degree       Degree            `json:"degree"`
	Octave       int8              `json:"octave"`
	System       NotationSystem    `json:"notation_system"`
	Position     Position          `json:"position"`
	Numerator    int               `json:"numerator,omitempty"`
	Denominator  int               `json:"denominator,omitempty"`
	Subdivisions int               `json:"subdivisions,omitempty"`
	Slur         *SlurPosition     `json:"slur,omitempty"`
	Ornament     []Degree          `json:"ornament,omitempty"`
	Mordent      bool              `json:"mordent,omitempty"`
	Chord        string            `json:"chord,omitempty"`
	Syllable     string            `json:"syllable,omitempty"`
	Consumed     []ConsumedElement `json:"consumed_elements,omitempty"`
}

func (n *Note) Text() string  { return n.Value }
func (n *Note) Pos() Position { return n.Position }
func (n *Note) beatElement()  {}

// Dash is the extender token "-". A leading dash (starting a beat)
// carries a duration and, when it continues a previous note, the
// inherited pitch; internal dashes only stretch the element before
// them and keep zero duration fields.
type Dash struct {
	Value        string            `json:"value"`
	Position     Position          `json:"position"`
	Degree       *Degree           `json:"degree,omitempty"`
	Octave       int8              `json:"octave,omitempty"`
	Numerator    int               `json:"numerator,omitempty"`
	Denominator  int               `json:"denominator,omitempty"`
	Subdivisions int               `json:"subdivisions,omitempty"`
	Consumed     []ConsumedElement `json:"consumed_elements,omitempty"`
}

func (d *Dash) Text() string  { return d.Value }
func (d *Dash) Pos() Position { return d.Position }
func (d *Dash) beatElement()  {}

// Rest is the "," token.
type Rest struct {
	Value        string   `json:"value"`
	Position     Position `json:"position"`
	Numerator    int      `json:"numerator,omitempty"`
	Denominator  int      `json:"denominator,omitempty"`
	Subdivisions int      `json:"subdivisions,omitempty"`
}

func (r *Rest) Text() string  { return r.Value }
func (r *Rest) Pos() Position { return r.Position }
func (r *Rest) beatElement()  {}

// BreathMark is the "'" token. It terminates a beat and clears any
// pending tie.
type BreathMark struct {
	Value    string   `json:"value"`
	Position Position `json:"position"`
}

func (b *BreathMark) Text() string  { return b.Value }
func (b *BreathMark) Pos() Position { return b.Position }
func (b *BreathMark) beatElement()  {}

// Beat is a maximal whitespace-free run of beat elements. The rhythm
// pass fills in Divisions, the tuplet fields, TiedToPrevious and the
// total duration (always 1/4 for an unmerged beat).
type Beat struct {
	Elements []BeatElement `json:"elements"`
	Position Position      `json:"position"`

	Divisions      int               `json:"divisions,omitempty"`
	IsTuplet       bool              `json:"is_tuplet,omitempty"`
	TupletNum      int               `json:"tuplet_num,omitempty"`
	TupletDen      int               `json:"tuplet_den,omitempty"`
	TiedToPrevious bool              `json:"tied_to_previous,omitempty"`
	TotalNum       int               `json:"total_num,omitempty"`
	TotalDen       int               `json:"total_den,omitempty"`
	GroupWithNext  bool              `json:"group_with_next,omitempty"`
	Merged         bool              `json:"merged_with_previous,omitempty"`
	Consumed       []ConsumedElement `json:"consumed_elements,omitempty"`
}

func (b *Beat) Text() string {
	var sb strings.Builder
	for _, e := range b.Elements {
		sb.WriteString(e.Text())
	}
	return sb.String()
}

func (b *Beat) Pos() Position {
	if len(b.Elements) > 0 {
		return b.Elements[0].Pos()
	}
	return b.Position
}

func (b *Beat) contentElement() {}

// Barline separates measures. Tala is attached by the spatial binder
// when a tala marker sits above it.
type Barline struct {
	Style    BarlineType `json:"style"`
	Value    string      `json:"value"`
	Position Position    `json:"position"`
	Tala     *uint8      `json:"tala,omitempty"`
}

func (b *Barline) Text() string    { return b.Value }
func (b *Barline) Pos() Position   { return b.Position }
func (b *Barline) contentElement() {}

// Whitespace is a run of spaces acting as a beat separator.
type Whitespace struct {
	Value    string   `json:"value"`
	Position Position `json:"position"`
}

func (w *Whitespace) Text() string    { return w.Value }
func (w *Whitespace) Pos() Position   { return w.Position }
func (w *Whitespace) contentElement() {}

// UnknownToken preserves byte sequences the tokenizer could not
// classify. It never stops processing; editors highlight it.
type UnknownToken struct {
	Value    string   `json:"value"`
	Position Position `json:"position"`
}

func (u *UnknownToken) Text() string    { return u.Value }
func (u *UnknownToken) Pos() Position   { return u.Position }
func (u *UnknownToken) contentElement() {}
