package model

import "strings"

// DocumentElement is either a Stave or a BlankLines run.
type DocumentElement interface {
	LineText() string
	docElement()
}

// Stave groups one content line with the annotation, lyrics and text
// lines vertically attached to it.
type Stave struct {
	System   NotationSystem `json:"notation_system"`
	Lines    []StaveLine    `json:"lines"`
	Position Position       `json:"position"`
}

// Content returns the stave's single content line.
func (s *Stave) Content() *ContentLine {
	for _, l := range s.Lines {
		if cl, ok := l.(*ContentLine); ok {
			return cl
		}
	}
	return nil
}

func (s *Stave) LineText() string {
	var sb strings.Builder
	for _, l := range s.Lines {
		sb.WriteString(l.LineText())
	}
	return sb.String()
}

func (s *Stave) docElement() {}

// Document is the typed tree the pipeline produces. Source holds the
// newline-normalized input; Header keeps the raw directive and title
// lines so the text still reconstructs byte for byte.
type Document struct {
	Title      string            `json:"title,omitempty"`
	Author     string            `json:"author,omitempty"`
	Directives map[string]string `json:"directives,omitempty"`
	Tonic      *Degree           `json:"tonic,omitempty"`
	Header     []*TextLine       `json:"header,omitempty"`
	Elements   []DocumentElement `json:"elements"`
	Source     string            `json:"-"`
}

// Text reconstructs the original (normalized) input by in-order
// concatenation of every line's text.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, l := range d.Header {
		sb.WriteString(l.LineText())
	}
	for _, e := range d.Elements {
		sb.WriteString(e.LineText())
	}
	return sb.String()
}

// Staves returns the document's staves in order.
func (d *Document) Staves() []*Stave {
	var res []*Stave
	for _, e := range d.Elements {
		if s, ok := e.(*Stave); ok {
			res = append(res, s)
		}
	}
	return res
}
