// Package midi writes a rhythm-analyzed document as a Standard MIDI
// File. Exact rational durations map onto metric ticks; tied beats
// extend the previous note instead of restriking it.
package midi

import (
	"io"
	"os"
	"strconv"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/swaralipi/swaralipi/constants"
	"github.com/swaralipi/swaralipi/model"
)

const middleC = 60
const velocity = 90

// event is one sounded note: an absolute start tick and a length.
type event struct {
	start uint32
	ticks uint32
	key   uint8
}

// Encode builds the single-track SMF for a document.
func Encode(doc *model.Document) *smf.SMF {
	s := smf.New()
	ticks := smf.MetricTicks(960)
	s.TimeFormat = ticks

	var tr smf.Track
	if doc.Title != "" {
		tr.Add(0, smf.MetaTrackSequenceName(doc.Title))
	}
	tr.Add(0, smf.MetaTempo(tempoOf(doc)))

	events := collectEvents(doc, ticks)
	clock := uint32(0)
	for _, ev := range events {
		tr.Add(ev.start-clock, gomidi.NoteOn(0, ev.key, velocity))
		tr.Add(ev.ticks, gomidi.NoteOff(0, ev.key))
		clock = ev.start + ev.ticks
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// WriteTo streams the encoded file.
func WriteTo(doc *model.Document, w io.Writer) error {
	_, err := Encode(doc).WriteTo(w)
	return err
}

// WriteFile writes the encoded file to path.
func WriteFile(doc *model.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTo(doc, f)
}

func tempoOf(doc *model.Document) float64 {
	if v, ok := doc.Directives["tempo"]; ok {
		if bpm, err := strconv.ParseFloat(v, 64); err == nil && bpm > 0 {
			return bpm
		}
	}
	return constants.DefaultTempo
}

// collectEvents walks the beats of every stave in order, turning
// carriers into note events. A tied beat head and a continuation dash
// both stretch the previous event rather than opening a new one.
func collectEvents(doc *model.Document, ticks smf.MetricTicks) []event {
	var events []event
	clock := uint32(0)

	for _, stave := range doc.Staves() {
		content := stave.Content()
		if content == nil {
			continue
		}
		for _, ce := range content.Elements {
			beat, ok := ce.(*model.Beat)
			if !ok {
				continue
			}
			first := true
			for _, be := range beat.Elements {
				switch el := be.(type) {
				case *model.Note:
					dur := durationTicks(ticks, el.Numerator, el.Denominator)
					if dur == 0 {
						continue
					}
					if first && beat.TiedToPrevious && len(events) > 0 {
						events[len(events)-1].ticks += dur
					} else {
						events = append(events, event{start: clock, ticks: dur, key: keyOf(el.Degree, el.Octave)})
					}
					clock += dur
					first = false
				case *model.Dash:
					dur := durationTicks(ticks, el.Numerator, el.Denominator)
					if dur == 0 {
						continue
					}
					if el.Degree != nil && len(events) > 0 {
						events[len(events)-1].ticks += dur
					}
					clock += dur
					first = false
				case *model.Rest:
					clock += durationTicks(ticks, el.Numerator, el.Denominator)
					first = false
				}
			}
		}
	}
	return events
}

// durationTicks converts a whole-note fraction to metric ticks: four
// quarters per whole.
func durationTicks(ticks smf.MetricTicks, num, den int) uint32 {
	if den == 0 {
		return 0
	}
	return uint32(num * 4 * int(ticks.Ticks4th()) / den)
}

func keyOf(d model.Degree, octave int8) uint8 {
	key := middleC + int(octave)*12 + d.Semitones()
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}
