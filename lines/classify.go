// Package lines classifies raw text lines by the vocabulary of their
// tokens and parses annotation lines into typed elements. A line with
// only octave dots and spaces cannot be labeled upper or lower in
// isolation; that decision is deferred to stave assembly.
package lines

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/swaralipi/swaralipi/detect"
	"github.com/swaralipi/swaralipi/lexer"
	"github.com/swaralipi/swaralipi/model"
)

type Kind int

const (
	KindContent Kind = iota
	KindUpper
	KindLower
	KindLyrics
	KindBlank
	KindText
	KindAmbiguous
)

var kindNames = [...]string{"content", "upper", "lower", "lyrics", "blank", "text", "ambiguous"}

func (k Kind) String() string { return kindNames[k] }

var endingLineRe = regexp.MustCompile(`^\s*(?:[12]\.\s*)+$`)

// Classify labels one raw line in isolation. override forces the
// notation system used for the content check (from a system:
// directive); when nil the line is scored on its own. The returned
// system is only meaningful for KindContent.
func Classify(body string, override *model.NotationSystem) (Kind, model.NotationSystem) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return KindBlank, model.SystemNumber
	}

	if onlyDotsAndSpaces(body) {
		return KindAmbiguous, model.SystemNumber
	}

	if endingLineRe.MatchString(body) {
		return KindUpper, model.SystemNumber
	}

	verdict := detect.Detect(body)
	system := verdict.System
	if override != nil {
		system = *override
	}
	tokens := lexer.TokenizeLine(body, system, 0, 0)

	var hasBar, hasDash, hasRest, hasNote, unknownLetters bool
	for _, t := range tokens {
		switch t.Kind {
		case lexer.TokenBarline:
			hasBar = true
		case lexer.TokenDash:
			hasDash = true
		case lexer.TokenRest:
			hasRest = true
		case lexer.TokenNote:
			hasNote = true
		case lexer.TokenUnknown:
			for _, r := range t.Value {
				if unicode.IsLetter(r) {
					unknownLetters = true
				}
			}
		}
	}

	if hasBar {
		return KindContent, system
	}
	if !unknownLetters && (hasNote || hasDash || hasRest) && !hasUpperMarker(body) {
		return KindContent, system
	}
	if looksUpper(body) {
		return KindUpper, system
	}
	if k, ok := classifyLowerish(body); ok {
		return k, system
	}
	// Mostly-musical lines with stray unknown tokens are still
	// content; prose that happens to contain pitch letters is not.
	if hasStandaloneMusic(tokens) && verdict.Score >= 0.5 {
		return KindContent, system
	}
	return KindText, system
}

// hasStandaloneMusic reports whether some whitespace-separated chunk
// of the token stream carries a note, dash or rest with no unknown
// letters beside it. Pitch symbols split out of a prose word ("more"
// lexing as note m plus unknown "ore") are not musical evidence.
func hasStandaloneMusic(tokens []lexer.Token) bool {
	musical, tainted := false, false
	flush := func() bool {
		ok := musical && !tainted
		musical, tainted = false, false
		return ok
	}
	for _, t := range tokens {
		switch t.Kind {
		case lexer.TokenWhitespace, lexer.TokenBarline, lexer.TokenNewline:
			if flush() {
				return true
			}
		case lexer.TokenNote, lexer.TokenDash, lexer.TokenRest:
			musical = true
		case lexer.TokenUnknown:
			for _, r := range t.Value {
				if unicode.IsLetter(r) {
					tainted = true
				}
			}
		}
	}
	return flush()
}

func onlyDotsAndSpaces(body string) bool {
	marks := 0
	for _, r := range body {
		switch r {
		case '.', ':':
			marks++
		case ' ', '\t':
		default:
			return false
		}
	}
	return marks > 0
}

func hasUpperMarker(body string) bool {
	return strings.ContainsAny(body, ".:*~_[+")
}

// pitchLetters are the characters that may appear inside ornament
// pitch runs on an upper line, across all systems.
func isPitchChar(r rune) bool {
	if strings.ContainsRune("SRGMPDNsrgmpdnABCEF1234567#b", r) {
		return true
	}
	return r >= 0x0900 && r <= 0x097F // Devanagari block
}

func looksUpper(body string) bool {
	if !hasUpperMarker(body) {
		return false
	}
	for _, r := range body {
		switch r {
		case ' ', '\t', '.', ':', '*', '\'', '~', '_', '[', ']', '+', '♯', '♭':
			continue
		}
		if unicode.IsDigit(r) || isPitchChar(r) {
			continue
		}
		return false
	}
	return true
}

func classifyLowerish(body string) (Kind, bool) {
	elements := ParseLowerElements(body, 0, 0)
	var marks, hyphenated, syllables int
	for _, e := range elements {
		switch e.Kind {
		case model.LowerUnknown:
			return 0, false
		case model.LowerOctaveMarker, model.LowerBeatGroup, model.LowerKommal:
			marks++
		case model.LowerSyllable:
			syllables++
			if strings.Contains(e.Value, "-") {
				hyphenated++
			}
		}
	}
	if marks > 0 {
		return KindLower, true
	}
	if hyphenated > 0 {
		return KindLyrics, true
	}
	return 0, false
}
