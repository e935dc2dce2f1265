package model

import "encoding/gob"

// The document tree crosses gob as interface values, so every
// concrete node type has to be registered.
func init() {
	gob.Register(&Stave{})
	gob.Register(&BlankLines{})
	gob.Register(&ContentLine{})
	gob.Register(&UpperLine{})
	gob.Register(&LowerLine{})
	gob.Register(&LyricsLine{})
	gob.Register(&TextLine{})
	gob.Register(&Beat{})
	gob.Register(&Barline{})
	gob.Register(&Whitespace{})
	gob.Register(&UnknownToken{})
	gob.Register(&Note{})
	gob.Register(&Dash{})
	gob.Register(&Rest{})
	gob.Register(&BreathMark{})
}
