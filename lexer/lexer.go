// Package lexer emits the maximal-munch token stream for a single
// line under one fixed notation system. It never fails: anything it
// cannot classify becomes an Unknown token that preserves its text.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/pitch"
)

type TokenKind int

const (
	TokenNote TokenKind = iota
	TokenDash
	TokenBarline
	TokenBreath
	TokenRest
	TokenWhitespace
	TokenUnknown
	TokenNewline
	TokenEOF
)

var tokenKindNames = [...]string{
	"note", "dash", "barline", "breath", "rest", "whitespace", "unknown", "newline", "eof",
}

func (k TokenKind) String() string { return tokenKindNames[k] }

// Token is one lexical element of a content line. Degree is valid for
// TokenNote, Bar for TokenBarline.
type Token struct {
	Kind   TokenKind
	Value  string
	Pos    model.Position
	Degree model.Degree
	Bar    model.BarlineType
}

// Barline glyphs, longest first: ":|:" must win over ":|" and "|:".
var barlineGlyphs = []struct {
	Text  string
	Style model.BarlineType
}{
	{":|:", model.BarlineRepeatBoth},
	{"|:", model.BarlineRepeatStart},
	{":|", model.BarlineRepeatEnd},
	{"||", model.BarlineDouble},
	{"|.", model.BarlineFinal},
	{"|", model.BarlineSingle},
}

// TokenizeLine is a single pass over one line (with or without its
// trailing newline). line is the zero-based line number; docIndex the
// character offset of the line start in the whole input.
func TokenizeLine(text string, system model.NotationSystem, line, docIndex int) []Token {
	var tokens []Token
	matcher := pitch.Matcher(system)

	idx := 0     // rune index in line
	byteOff := 0   // byte cursor
	var unknown strings.Builder
	unknownStart := -1

	pos := func(runeIdx int) model.Position {
		return model.Position{
			Line:        line,
			Column:      runeIdx + 1,
			IndexInLine: runeIdx,
			IndexInDoc:  docIndex + runeIdx,
		}
	}

	flushUnknown := func() {
		if unknown.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenUnknown, Value: unknown.String(), Pos: pos(unknownStart)})
		unknown.Reset()
		unknownStart = -1
	}

	emit := func(t Token) {
		flushUnknown()
		tokens = append(tokens, t)
	}

	for byteOff < len(text) {
		rest := text[byteOff:]
		r, sz := utf8.DecodeRuneInString(rest)

		if r == '\n' {
			emit(Token{Kind: TokenNewline, Value: "\n", Pos: pos(idx)})
			byteOff += sz
			idx++
			continue
		}

		// Pitch symbols first: longest match via the interned matcher.
		if m := matcher.FindString(rest); m != "" {
			d, _ := pitch.Lookup(m, system)
			emit(Token{Kind: TokenNote, Value: m, Pos: pos(idx), Degree: d})
			n := utf8.RuneCountInString(m)
			byteOff += len(m)
			idx += n
			continue
		}

		if bar, n := matchBarline(rest); n > 0 {
			emit(Token{Kind: TokenBarline, Value: rest[:n], Pos: pos(idx), Bar: bar})
			byteOff += n
			idx += n
			continue
		}

		switch r {
		case '-':
			emit(Token{Kind: TokenDash, Value: "-", Pos: pos(idx)})
			byteOff += sz
			idx++
			continue
		case '\'':
			emit(Token{Kind: TokenBreath, Value: "'", Pos: pos(idx)})
			byteOff += sz
			idx++
			continue
		case ',':
			emit(Token{Kind: TokenRest, Value: ",", Pos: pos(idx)})
			byteOff += sz
			idx++
			continue
		}

		if r == ' ' || r == '\t' {
			start := idx
			var sb strings.Builder
			for byteOff < len(text) {
				r2, sz2 := utf8.DecodeRuneInString(text[byteOff:])
				if r2 != ' ' && r2 != '\t' {
					break
				}
				sb.WriteRune(r2)
				byteOff += sz2
				idx++
			}
			emit(Token{Kind: TokenWhitespace, Value: sb.String(), Pos: pos(start)})
			continue
		}

		if r == '_' {
			// Slurs live on annotation lines; a run of underscores in
			// a content line is invalid and kept as one unknown token.
			start := idx
			var sb strings.Builder
			for byteOff < len(text) {
				r2, sz2 := utf8.DecodeRuneInString(text[byteOff:])
				if r2 != '_' {
					break
				}
				sb.WriteRune(r2)
				byteOff += sz2
				idx++
			}
			emit(Token{Kind: TokenUnknown, Value: sb.String(), Pos: pos(start)})
			continue
		}

		if unicode.IsLetter(r) {
			// Alphabetic run with no pitch match becomes one unknown.
			start := idx
			var sb strings.Builder
			for byteOff < len(text) {
				r2, sz2 := utf8.DecodeRuneInString(text[byteOff:])
				if !unicode.IsLetter(r2) {
					break
				}
				// Stop if a pitch starts mid-run, so "xS" lexes as
				// unknown "x" plus note "S".
				if sb.Len() > 0 && matcher.FindString(text[byteOff:]) != "" {
					break
				}
				sb.WriteRune(r2)
				byteOff += sz2
				idx++
			}
			emit(Token{Kind: TokenUnknown, Value: sb.String(), Pos: pos(start)})
			continue
		}

		// Anything else accumulates into an unknown run.
		if unknown.Len() == 0 {
			unknownStart = idx
		}
		unknown.WriteRune(r)
		byteOff += sz
		idx++
	}
	flushUnknown()
	return tokens
}

func matchBarline(rest string) (model.BarlineType, int) {
	for _, g := range barlineGlyphs {
		if strings.HasPrefix(rest, g.Text) {
			return g.Style, len(g.Text)
		}
	}
	return 0, 0
}

// JoinValues rebuilds the lexed text; the token stream must round-trip.
func JoinValues(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Value)
	}
	return sb.String()
}
