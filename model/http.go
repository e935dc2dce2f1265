package model

import "encoding/json"

// Roundtrip reports whether in-order concatenation of the parsed
// tree reproduces the input, and if not, where it first diverged.
type Roundtrip struct {
	Works             bool   `json:"works"`
	ReconstructedText string `json:"reconstructed_text"`
	WhereItFailed     *int   `json:"where_it_failed,omitempty"`
}

// SystemScore is one classifier verdict.
type SystemScore struct {
	System NotationSystem `json:"system"`
	Score  float64        `json:"score"`
}

// ParseResponse is the /api/parse payload.
type ParseResponse struct {
	Success           bool            `json:"success"`
	ParsedDocument    json.RawMessage `json:"parsed_document,omitempty"`
	RhythmAnalyzedDoc json.RawMessage `json:"rhythm_analyzed_document,omitempty"`
	Roundtrip         *Roundtrip      `json:"roundtrip,omitempty"`
	DetectedSystems   []SystemScore   `json:"detected_notation_systems,omitempty"`
	SyntaxTokens      []SyntaxSpan    `json:"syntax_tokens,omitempty"`
	Error             string          `json:"error,omitempty"`
}

// TuneMetadata is the optional per-tune record looked up from the
// metadata table by the LilyPond renderer.
type TuneMetadata struct {
	Artist string
	Raga   string
	Tala   string
	Year   uint
}
