// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Converts Unicode rolang source text into a stream of tokens,
//          one codepoint of lookahead at a time. Recognises two-word
//          Romanian keywords, the diacritic-sensitive keyword table, the
//          cast-reference phrases consumed by citește, and the wide set
//          of assignment-arrow glyphs the language accepts.
// ==============================================================================================

package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xslendix/rolang/rolangerr"
	"github.com/xslendix/rolang/token"
)

var romanianLower = cases.Lower(language.Romanian)

// setArrows is the full set of assignment-arrow glyphs §4.1 lists
// beside the ASCII "<-" form. Each maps to a single-rune Set token.
var setArrows = map[rune]bool{
	'←': true, '🡐': true, '🠐': true, '🠔': true, '⭠': true,
	'🠀': true, '🠠': true, '🡠': true, '🡨': true,
}

// castPhrases is checked longest-first so "(număr natural)" is not
// shadowed by a premature match on "(număr)".
var castPhrases = []struct {
	phrase string
	kind   token.TokenType
}{
	{"(număr natural)", token.CAST_UNSIGNED_REF},
	{"(număr real)", token.CAST_FLOAT_REF},
	{"(număr)", token.CAST_FLOAT_REF},
	{"(ref)", token.CAST_REF},
}

// Lexer scans input one rune at a time, tracking line/column only to
// stamp them on each emitted Token; no lex error message includes them
// (source-location tracking in errors is explicitly out of scope).
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New constructs a Lexer positioned at the first rune of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// isBoxDrawing reports whether r is one of the guide glyphs that
// indentation-aware editors paste alongside Romanian pseudocode; §4.1
// treats them as pure whitespace.
func isBoxDrawing(r rune) bool {
	return r == '│' || r == '└' || r == '┌'
}

// isIdentStart matches ASCII letters, underscore, and the Romanian
// diacritic letters in both cases.
func isIdentStart(r rune) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return strings.ContainsRune("ăîțșâĂÎȚȘÂ", r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// skipWhitespace advances past Unicode whitespace and box-drawing
// guides. Newline and ';' are NOT skipped here — they are significant
// tokens (StatementSeparator), handled by the caller.
func (l *Lexer) skipWhitespace() {
	for l.ch != 0 {
		if l.ch == '\n' || l.ch == ';' {
			return
		}
		if unicode.IsSpace(l.ch) || isBoxDrawing(l.ch) {
			l.readChar()
			continue
		}
		return
	}
}

// NextToken scans and returns the next token, or a LexError describing
// why scanning failed.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: column}, nil

	case l.ch == '"' || l.ch == '\'':
		return l.readStringToken(line, column)

	case l.ch == ',':
		l.readChar()
		return token.Token{Type: token.COMMA, Literal: ",", Line: line, Column: column}, nil

	case l.ch == '+':
		l.readChar()
		return token.Token{Type: token.ADD, Literal: "+", Line: line, Column: column}, nil
	case l.ch == '-':
		l.readChar()
		return token.Token{Type: token.SUBTRACT, Literal: "-", Line: line, Column: column}, nil
	case l.ch == '*':
		l.readChar()
		return token.Token{Type: token.MULTIPLY, Literal: "*", Line: line, Column: column}, nil
	case l.ch == '/':
		l.readChar()
		return token.Token{Type: token.DIVIDE, Literal: "/", Line: line, Column: column}, nil
	case l.ch == '%':
		l.readChar()
		return token.Token{Type: token.MOD, Literal: "%", Line: line, Column: column}, nil

	case l.ch == '=':
		l.readChar()
		return token.Token{Type: token.EQUAL, Literal: "=", Line: line, Column: column}, nil
	case l.ch == '≠':
		l.readChar()
		return token.Token{Type: token.NOT_EQUAL, Literal: "≠", Line: line, Column: column}, nil
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.NOT_EQUAL, Literal: "!=", Line: line, Column: column}, nil
		}
		ch := l.ch
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: string(ch), Line: line, Column: column}, nil

	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.STATEMENT_SEPARATOR, Literal: ";", Line: line, Column: column}, nil
	case l.ch == '\n':
		l.readChar()
		return token.Token{Type: token.STATEMENT_SEPARATOR, Literal: "\n", Line: line, Column: column}, nil

	case l.ch == '■':
		l.readChar()
		return token.Token{Type: token.BLOCK_END, Literal: "■", Line: line, Column: column}, nil

	case l.ch == '[':
		if l.peekChar() == ']' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.BLOCK_END, Literal: "[]", Line: line, Column: column}, nil
		}
		l.readChar()
		return token.Token{Type: token.FLOOR_START, Literal: "[", Line: line, Column: column}, nil
	case l.ch == ']':
		l.readChar()
		return token.Token{Type: token.FLOOR_END, Literal: "]", Line: line, Column: column}, nil

	case l.ch == '(':
		return l.readParenToken(line, column)
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Line: line, Column: column}, nil

	case l.ch == '<':
		if l.peekChar() == '-' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.SET, Literal: "<-", Line: line, Column: column}, nil
		}
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.LESS_THAN_EQUAL, Literal: "<=", Line: line, Column: column}, nil
		}
		l.readChar()
		return token.Token{Type: token.LESS_THAN, Literal: "<", Line: line, Column: column}, nil
	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.GREATER_THAN_EQUAL, Literal: ">=", Line: line, Column: column}, nil
		}
		l.readChar()
		return token.Token{Type: token.GREATER_THAN, Literal: ">", Line: line, Column: column}, nil
	case l.ch == '≤':
		l.readChar()
		return token.Token{Type: token.LESS_THAN_EQUAL, Literal: "≤", Line: line, Column: column}, nil
	case l.ch == '≥':
		l.readChar()
		return token.Token{Type: token.GREATER_THAN_EQUAL, Literal: "≥", Line: line, Column: column}, nil

	case setArrows[l.ch]:
		ch := l.ch
		l.readChar()
		return token.Token{Type: token.SET, Literal: string(ch), Line: line, Column: column}, nil

	case isIdentStart(l.ch):
		return l.readIdentifierToken(line, column)

	case unicode.IsDigit(l.ch):
		return l.readNumberToken(line, column)

	default:
		ch := l.ch
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: string(ch), Line: line, Column: column},
			rolangerr.NewLexError("Caracter necunoscut: '" + string(ch) + "'")
	}
}

// readParenToken decides between a cast-reference phrase and a plain
// LParen by checking the longest matching phrase starting at '('.
func (l *Lexer) readParenToken(line, column int) (token.Token, error) {
	rest := l.input[l.position:]
	for _, cp := range castPhrases {
		if strings.HasPrefix(rest, cp.phrase) {
			for range []rune(cp.phrase) {
				l.readChar()
			}
			return token.Token{Type: cp.kind, Literal: cp.phrase, Line: line, Column: column}, nil
		}
	}
	l.readChar()
	return token.Token{Type: token.LPAREN, Literal: "(", Line: line, Column: column}, nil
}

func (l *Lexer) readStringToken(line, column int) (token.Token, error) {
	quote := l.ch
	var out strings.Builder
	l.readChar()
	for l.ch != quote {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Line: line, Column: column},
				rolangerr.NewLexError("Șir de caractere neterminat.")
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out.WriteRune('\n')
			case 'r':
				out.WriteRune('\r')
			case 't':
				out.WriteRune('\t')
			case 'e':
				out.WriteRune('\x1b')
			default:
				out.WriteRune(l.ch)
			}
		} else {
			out.WriteRune(l.ch)
		}
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: out.String(), Line: line, Column: column}, nil
}

func (l *Lexer) readNumberToken(line, column int) (token.Token, error) {
	start := l.position
	leadingZero := l.ch == '0'
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if leadingZero && l.position-start > 1 {
		lit := l.input[start:l.position]
		return token.Token{Type: token.ILLEGAL, Literal: lit, Line: line, Column: column},
			rolangerr.NewLexError("Numărul `" + lit + "` are un zero nesemnificativ la început.")
	}
	isFloat := false
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	lit := l.input[start:l.position]
	if isFloat {
		return token.Token{Type: token.FLOAT, Literal: lit, Line: line, Column: column}, nil
	}
	return token.Token{Type: token.INT, Literal: lit, Line: line, Column: column}, nil
}

// readIdentifierToken reads a maximal identifier run, folds it through
// the two-word keyword lookahead, enforces the diacritic table, and
// resolves the result to a keyword or Identifier token.
func (l *Lexer) readIdentifierToken(line, column int) (token.Token, error) {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.position]
	lower := romanianLower.String(word)

	combined, consumedSpace := l.tryTwoWordKeyword(lower)
	if combined != "" {
		lower = combined
	}
	_ = consumedSpace

	if msg, ok := token.DiacriticError(lower); ok {
		return token.Token{Type: token.ILLEGAL, Literal: lower, Line: line, Column: column},
			rolangerr.NewLexError(msg)
	}

	tt := token.LookupIdent(lower)
	if tt != token.IDENT {
		return token.Token{Type: tt, Literal: lower, Line: line, Column: column}, nil
	}
	return token.Token{Type: token.IDENT, Literal: word, Line: line, Column: column}, nil
}

// tryTwoWordKeyword implements §4.1's lookahead: "până/pâna/pană/pana"
// followed by spaces/tabs and "cand"/"când", or "cat"/"cât" followed by
// "timp", is joined into one word with a single space. Both words keep
// their scanned spelling (e.g. "pana cand"), so misspelled pairs reach
// the diacritic table instead of resolving to a keyword. On a miss, the
// lexer backtracks completely so the second word is re-scanned normally.
func (l *Lexer) tryTwoWordKeyword(first string) (combined string, consumed bool) {
	var second string
	switch first {
	case "până", "pâna", "pană", "pana":
		second = "când"
	case "cat", "cât":
		second = "timp"
	default:
		return "", false
	}

	savedPos, savedReadPos, savedCh := l.position, l.readPosition, l.ch
	savedLine, savedCol := l.line, l.column

	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	if isIdentStart(l.ch) {
		wordStart := l.position
		for isIdentPart(l.ch) {
			l.readChar()
		}
		word := romanianLower.String(l.input[wordStart:l.position])
		if second == "când" && (word == "cand" || word == "când") {
			return first + " " + word, true
		}
		if second == "timp" && word == "timp" {
			return first + " " + word, true
		}
	}

	l.position, l.readPosition, l.ch = savedPos, savedReadPos, savedCh
	l.line, l.column = savedLine, savedCol
	return "", false
}
