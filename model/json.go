package model

import (
	"encoding/json"
	"fmt"
)

// The tree is full of interface-typed children, so every concrete node
// tags itself with a "type" field when marshaled. Downstream consumers
// (editor, renderers) dispatch on it.

// unmarshalName resolves a string-marshaled enum back to its index.
func unmarshalName(b []byte, names []string, what string) (int, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return 0, err
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}

func tagged(typ string, v any) ([]byte, error) {
	m := map[string]any{}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["type"] = typ
	return json.Marshal(m)
}

func (n *Note) MarshalJSON() ([]byte, error) {
	type alias Note
	return tagged("note", (*alias)(n))
}

func (d *Dash) MarshalJSON() ([]byte, error) {
	type alias Dash
	return tagged("dash", (*alias)(d))
}

func (r *Rest) MarshalJSON() ([]byte, error) {
	type alias Rest
	return tagged("rest", (*alias)(r))
}

func (b *BreathMark) MarshalJSON() ([]byte, error) {
	type alias BreathMark
	return tagged("breath_mark", (*alias)(b))
}

func (b *Beat) MarshalJSON() ([]byte, error) {
	type alias Beat
	return tagged("beat", (*alias)(b))
}

func (b *Barline) MarshalJSON() ([]byte, error) {
	type alias Barline
	return tagged("barline", (*alias)(b))
}

func (w *Whitespace) MarshalJSON() ([]byte, error) {
	type alias Whitespace
	return tagged("whitespace", (*alias)(w))
}

func (u *UnknownToken) MarshalJSON() ([]byte, error) {
	type alias UnknownToken
	return tagged("unknown", (*alias)(u))
}

func (l *ContentLine) MarshalJSON() ([]byte, error) {
	type alias ContentLine
	return tagged("content_line", (*alias)(l))
}

func (l *UpperLine) MarshalJSON() ([]byte, error) {
	type alias UpperLine
	return tagged("upper_line", (*alias)(l))
}

func (l *LowerLine) MarshalJSON() ([]byte, error) {
	type alias LowerLine
	return tagged("lower_line", (*alias)(l))
}

func (l *LyricsLine) MarshalJSON() ([]byte, error) {
	type alias LyricsLine
	return tagged("lyrics_line", (*alias)(l))
}

func (l *TextLine) MarshalJSON() ([]byte, error) {
	type alias TextLine
	return tagged("text_line", (*alias)(l))
}

func (b *BlankLines) MarshalJSON() ([]byte, error) {
	type alias BlankLines
	return tagged("blank_lines", (*alias)(b))
}

func (s *Stave) MarshalJSON() ([]byte, error) {
	type alias Stave
	return tagged("stave", (*alias)(s))
}
