package model

import (
	"fmt"
	"unicode/utf8"
)

// SyntaxSpan is the editor-overlay view of one token: a half-open
// character range plus a CSS-ish class and data attributes.
type SyntaxSpan struct {
	Start int               `json:"start"`
	End   int               `json:"end"`
	Type  string            `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
}

func span(start int, value, typ string, data map[string]string) SyntaxSpan {
	return SyntaxSpan{Start: start, End: start + utf8.RuneCountInString(value), Type: typ, Data: data}
}

// SyntaxSpans flattens the document into highlight spans ordered by
// start offset. Whitespace and blank lines are skipped.
func (d *Document) SyntaxSpans() []SyntaxSpan {
	var res []SyntaxSpan
	for _, l := range d.Header {
		res = append(res, span(l.Position.IndexInDoc, l.Value, "header", nil))
	}
	for _, el := range d.Elements {
		st, ok := el.(*Stave)
		if !ok {
			continue
		}
		for _, line := range st.Lines {
			switch l := line.(type) {
			case *ContentLine:
				res = append(res, contentSpans(l, st.System)...)
			case *UpperLine:
				for _, e := range l.Elements {
					if e.Kind == UpperSpace {
						continue
					}
					res = append(res, span(e.Position.IndexInDoc, e.Value, "upper_"+e.Kind.String(), consumedData(e.Consumed)))
				}
			case *LowerLine:
				for _, e := range l.Elements {
					if e.Kind == LowerSpace {
						continue
					}
					res = append(res, span(e.Position.IndexInDoc, e.Value, "lower_"+e.Kind.String(), consumedData(e.Consumed)))
				}
			case *LyricsLine:
				for _, e := range l.Elements {
					if e.Kind == LowerSpace {
						continue
					}
					res = append(res, span(e.Position.IndexInDoc, e.Value, "syllable", consumedData(e.Consumed)))
				}
			case *TextLine:
				res = append(res, span(l.Position.IndexInDoc, l.Value, "text", nil))
			}
		}
	}
	return res
}

func consumedData(consumed bool) map[string]string {
	if !consumed {
		return nil
	}
	return map[string]string{"consumed": "true"}
}

func contentSpans(l *ContentLine, system NotationSystem) []SyntaxSpan {
	var res []SyntaxSpan
	for _, ce := range l.Elements {
		switch e := ce.(type) {
		case *Beat:
			for _, be := range e.Elements {
				switch n := be.(type) {
				case *Note:
					data := map[string]string{
						"degree": n.Degree.String(),
						"octave": fmt.Sprintf("%d", n.Octave),
						"system": system.String(),
					}
					res = append(res, span(n.Position.IndexInDoc, n.Value, "note", data))
				case *Dash:
					res = append(res, span(n.Position.IndexInDoc, n.Value, "dash", nil))
				case *Rest:
					res = append(res, span(n.Position.IndexInDoc, n.Value, "rest", nil))
				case *BreathMark:
					res = append(res, span(n.Position.IndexInDoc, n.Value, "breath_mark", nil))
				}
			}
		case *Barline:
			res = append(res, span(e.Position.IndexInDoc, e.Value, "barline", map[string]string{"style": e.Style.String()}))
		case *UnknownToken:
			res = append(res, span(e.Position.IndexInDoc, e.Value, "unknown", nil))
		}
	}
	return res
}
