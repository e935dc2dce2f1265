package model

import "strings"

// StaveLine is one classified line inside a stave.
type StaveLine interface {
	// LineText returns the original line text including its newline,
	// so that in-order concatenation reproduces the input.
	LineText() string
	staveLine()
}

// UpperElementKind enumerates the upper annotation vocabulary.
type UpperElementKind int

const (
	UpperOctaveMarker UpperElementKind = iota
	UpperSlur
	UpperOrnament
	UpperChord
	UpperMordent
	UpperTala
	UpperEnding
	UpperSpace
	UpperUnknown
)

var upperKindNames = [...]string{
	"octave_marker", "slur", "ornament", "chord", "mordent", "tala", "ending", "space", "unknown",
}

func (k UpperElementKind) String() string { return upperKindNames[k] }

func (k UpperElementKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *UpperElementKind) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, upperKindNames[:], "upper element kind")
	if err != nil {
		return err
	}
	*k = UpperElementKind(i)
	return nil
}

// UpperElement is one token of an upper annotation line. Consumed is
// set by the spatial binder once the token has been bound to a
// content event; the token stays here so the text round-trips.
type UpperElement struct {
	Kind     UpperElementKind `json:"kind"`
	Value    string           `json:"value"`
	Position Position         `json:"position"`
	Pitches  []Degree         `json:"pitches,omitempty"`
	Consumed bool             `json:"consumed,omitempty"`
}

// LowerElementKind enumerates the lower annotation vocabulary.
type LowerElementKind int

const (
	LowerOctaveMarker LowerElementKind = iota
	LowerBeatGroup
	LowerSyllable
	LowerKommal
	LowerSpace
	LowerUnknown
)

var lowerKindNames = [...]string{
	"octave_marker", "beat_group", "syllable", "kommal", "space", "unknown",
}

func (k LowerElementKind) String() string { return lowerKindNames[k] }

func (k LowerElementKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *LowerElementKind) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, lowerKindNames[:], "lower element kind")
	if err != nil {
		return err
	}
	*k = LowerElementKind(i)
	return nil
}

type LowerElement struct {
	Kind     LowerElementKind `json:"kind"`
	Value    string           `json:"value"`
	Position Position         `json:"position"`
	Consumed bool             `json:"consumed,omitempty"`
}

// ContentLine is the single musical line of a stave. The concatenation
// of its elements' text equals the original line body.
type ContentLine struct {
	Elements []ContentElement `json:"elements"`
	Position Position         `json:"position"`
	Newline  string           `json:"-"`
}

func (l *ContentLine) Body() string {
	var sb strings.Builder
	for _, e := range l.Elements {
		sb.WriteString(e.Text())
	}
	return sb.String()
}

func (l *ContentLine) LineText() string { return l.Body() + l.Newline }
func (l *ContentLine) staveLine()       {}

type UpperLine struct {
	Elements []UpperElement `json:"elements"`
	Position Position       `json:"position"`
	Newline  string         `json:"-"`
}

func (l *UpperLine) Body() string {
	var sb strings.Builder
	for _, e := range l.Elements {
		sb.WriteString(e.Value)
	}
	return sb.String()
}

func (l *UpperLine) LineText() string { return l.Body() + l.Newline }
func (l *UpperLine) staveLine()       {}

type LowerLine struct {
	Elements []LowerElement `json:"elements"`
	Position Position       `json:"position"`
	Newline  string         `json:"-"`
}

func (l *LowerLine) Body() string {
	var sb strings.Builder
	for _, e := range l.Elements {
		sb.WriteString(e.Value)
	}
	return sb.String()
}

func (l *LowerLine) LineText() string { return l.Body() + l.Newline }
func (l *LowerLine) staveLine()       {}

// LyricsLine carries hyphenated syllables. Spatially it behaves as a
// lower line.
type LyricsLine struct {
	Elements []LowerElement `json:"elements"`
	Position Position       `json:"position"`
	Newline  string         `json:"-"`
}

func (l *LyricsLine) Body() string {
	var sb strings.Builder
	for _, e := range l.Elements {
		sb.WriteString(e.Value)
	}
	return sb.String()
}

func (l *LyricsLine) LineText() string { return l.Body() + l.Newline }
func (l *LyricsLine) staveLine()       {}

// TextLine is a line that fits neither the content nor the annotation
// vocabularies.
type TextLine struct {
	Value    string   `json:"value"`
	Position Position `json:"position"`
	Newline  string   `json:"-"`
}

func (l *TextLine) LineText() string { return l.Value + l.Newline }
func (l *TextLine) staveLine()       {}
func (l *TextLine) docElement()      {}

// BlankLines is a run of empty or whitespace-only lines. Each entry
// keeps its raw text including the newline.
type BlankLines struct {
	Lines    []string `json:"lines"`
	Position Position `json:"position"`
}

func (b *BlankLines) Count() int { return len(b.Lines) }

func (b *BlankLines) LineText() string { return strings.Join(b.Lines, "") }
func (b *BlankLines) staveLine()       {}
func (b *BlankLines) docElement()      {}
