package model

// Position locates a lexical element in the source text. IndexInDoc is
// the zero-based character offset into the whole (newline-normalized)
// input; editor collaborators identify elements by it.
type Position struct {
	Line        int `json:"line"`
	Column      int `json:"column"`
	IndexInLine int `json:"index_in_line"`
	IndexInDoc  int `json:"index_in_doc"`
}

// ConsumedKind names the annotation token kinds that can be bound to a
// content-line host.
type ConsumedKind int

const (
	ConsumedUpperOctaveMarker ConsumedKind = iota
	ConsumedLowerOctaveMarker
	ConsumedSlurIndicator
	ConsumedBeatGroupIndicator
)

var consumedNames = [...]string{
	"upper_octave_marker", "lower_octave_marker", "slur_indicator", "beat_group_indicator",
}

func (k ConsumedKind) String() string { return consumedNames[k] }

func (k ConsumedKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *ConsumedKind) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, consumedNames[:], "consumed kind")
	if err != nil {
		return err
	}
	*k = ConsumedKind(i)
	return nil
}

// ConsumedElement is a back-reference recorded on a host (Note, Beat)
// naming an annotation token that was attached to it. The original
// token stays in its line for text reconstruction; identity is by
// char index, there are no back-pointers.
type ConsumedElement struct {
	Kind      ConsumedKind `json:"kind"`
	Value     string       `json:"value"`
	CharIndex int          `json:"char_index"`
}
