package scanner

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/gongahkia/yuho-sub002/token"
)

type stateFunc func(*Scanner) stateFunc

const (
	eof = -1

	quote      = '"'
	backslash  = '\\'
	underscore = '_'
	dollar     = '$'
	colon      = ':'
	semicolon  = ';'
	comma      = ','
	dash       = '-'
	dot        = '.'
	slash      = '/'
	star       = '*'
	pipe       = '|'
	eq         = '='
	gt         = '>'

	numDigits = "0123456789"
	hexDigits = "0123456789abcdefABCDEF"
)

// Scanner is in charge of extracting tokens from a source. Tokens are
// produced lazily and kept in an internal buffer, so consumers can peek
// and back up to a previously seen token.
type Scanner struct {
	source string
	input  []rune
	state  stateFunc

	pos       int
	start     int
	line      int
	col       int
	startLine int
	startCol  int

	tokens []*token.Token
	cursor int
}

// New creates a new scanner for the input.
func New(source string, input io.Reader) *Scanner {
	s := &Scanner{
		source:    source,
		state:     lexToken,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}

	bs, err := io.ReadAll(input)
	if err != nil {
		s.errorf("cannot read source: %s", err)
		s.state = nil
		return s
	}

	s.input = []rune(string(bs))
	return s
}

// Next returns the next token available in the scanner. After an Error
// or EOF token has been produced, Next keeps returning that same token.
func (s *Scanner) Next() *token.Token {
	t := s.Peek()
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
	return t
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() *token.Token {
	for s.cursor >= len(s.tokens) && s.state != nil {
		s.state = s.state(s)
	}

	if s.cursor < len(s.tokens) {
		return s.tokens[s.cursor]
	}
	return s.tokens[len(s.tokens)-1]
}

// Backup rewinds the scanner so the given token, which must have been
// produced by it, is the next one returned by Next.
func (s *Scanner) Backup(until *token.Token) {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		if s.tokens[i] == until {
			s.cursor = i
			return
		}
	}
}

// next returns the next rune in the input or eof if none is left.
func (s *Scanner) next() rune {
	if s.pos >= len(s.input) {
		s.pos++
		return eof
	}

	r := s.input[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// backup steps back to the latest consumed rune. It must not be used to
// step back over a line break.
func (s *Scanner) backup() {
	s.pos--
	if s.pos < len(s.input) {
		s.col--
	}
}

// peek returns the next rune without actually consuming it.
func (s *Scanner) peek() rune {
	return s.peekAt(0)
}

// peekAt returns the rune n positions ahead without consuming anything.
func (s *Scanner) peekAt(n int) rune {
	if s.pos+n >= len(s.input) {
		return eof
	}
	return s.input[s.pos+n]
}

func (s *Scanner) word() string {
	start, end := s.start, s.pos
	if end > len(s.input) {
		end = len(s.input)
	}
	return string(s.input[start:end])
}

// emit appends the pending input as a token of the given type.
func (s *Scanner) emit(t token.Type) {
	s.tokens = append(s.tokens, token.New(
		t,
		s.source,
		s.start,
		s.startCol,
		s.startLine,
		s.word(),
	))
	s.ignore()
}

// ignore skips over the pending input before this point.
func (s *Scanner) ignore() {
	s.start = s.pos
	if s.start > len(s.input) {
		s.start = len(s.input)
	}
	s.startLine = s.line
	s.startCol = s.col
}

// accept consumes a rune if it's from the valid set and reports whether
// it was accepted.
func (s *Scanner) accept(valid string) bool {
	if r := s.peek(); r != eof && strings.IndexRune(valid, r) >= 0 {
		s.next()
		return true
	}
	return false
}

// acceptRun consumes a run of runes from the valid set and returns how
// many were consumed.
func (s *Scanner) acceptRun(valid string) int {
	var n int
	for s.accept(valid) {
		n++
	}
	return n
}

// errorf emits an error token positioned at the start of the pending
// input and halts the scanner.
func (s *Scanner) errorf(format string, args ...interface{}) stateFunc {
	s.tokens = append(s.tokens, token.New(
		token.Error,
		s.source,
		s.start,
		s.startCol,
		s.startLine,
		fmt.Sprintf(format, args...),
	))
	return nil
}

// lexToken scans the next token in the input.
func lexToken(s *Scanner) stateFunc {
	r := s.next()

	switch {
	case r == eof:
		s.emit(token.EOF)
		return nil
	case r == '\n' || r == '\r' || r == ' ' || r == '\t':
		return lexSpaces
	case r == slash:
		switch s.peek() {
		case slash:
			return lexLineComment
		case star:
			return lexBlockComment
		}
		s.emit(token.Op)
		return lexToken
	case r == quote:
		return lexString
	case r == dollar:
		return lexMoney
	case isDigit(r):
		s.backup()
		return lexNumber
	case r == colon:
		if s.peek() == eq {
			s.next()
			s.emit(token.Assign)
		} else {
			s.emit(token.Colon)
		}
		return lexToken
	case r == semicolon:
		s.emit(token.Semicolon)
		return lexToken
	case r == comma:
		s.emit(token.Comma)
		return lexToken
	case r == dot:
		s.emit(token.Dot)
		return lexToken
	case r == '(':
		s.emit(token.LeftParen)
		return lexToken
	case r == ')':
		s.emit(token.RightParen)
		return lexToken
	case r == '[':
		s.emit(token.LeftBracket)
		return lexToken
	case r == ']':
		s.emit(token.RightBracket)
		return lexToken
	case r == '{':
		s.emit(token.LeftBrace)
		return lexToken
	case r == '}':
		s.emit(token.RightBrace)
		return lexToken
	case r == pipe:
		if s.peek() == pipe {
			s.next()
			s.emit(token.Op)
		} else {
			s.emit(token.Pipe)
		}
		return lexToken
	case r == dash:
		if s.peek() == gt {
			s.next()
			s.emit(token.Arrow)
		} else {
			s.emit(token.Op)
		}
		return lexToken
	case r == '&':
		if s.peek() != '&' {
			return s.errorf(`unexpected character "&", did you mean "&&"?`)
		}
		s.next()
		s.emit(token.Op)
		return lexToken
	case r == eq:
		if s.peek() != eq {
			return s.errorf(`unexpected character "=", declarations use ":="`)
		}
		s.next()
		s.emit(token.Op)
		return lexToken
	case r == '!' || r == '<' || r == gt:
		if s.peek() == eq {
			s.next()
		}
		s.emit(token.Op)
		return lexToken
	case r == '+' || r == star || r == '%':
		s.emit(token.Op)
		return lexToken
	case isIdentStart(r):
		return lexIdentifier
	default:
		return s.errorf("invalid syntax: %q", string(r))
	}
}

// lexSpaces skips a run of whitespace, including line breaks.
func lexSpaces(s *Scanner) stateFunc {
	for {
		r := s.peek()
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			break
		}
		s.next()
	}

	s.ignore()
	return lexToken
}

// lexLineComment scans a "//" comment. Comments are discarded, they are
// never emitted as tokens.
func lexLineComment(s *Scanner) stateFunc {
	for {
		r := s.peek()
		if r == '\n' || r == eof {
			break
		}
		s.next()
	}

	s.ignore()
	return lexToken
}

// lexBlockComment scans a "/* ... */" comment. An unterminated comment
// is a fatal error reported at the opening position.
func lexBlockComment(s *Scanner) stateFunc {
	s.next() // the "*"
	for {
		r := s.next()
		if r == eof {
			return s.errorf("block comment not closed")
		}

		if r == star && s.peek() == slash {
			s.next()
			s.ignore()
			return lexToken
		}
	}
}

// lexString scans a quoted string. The opening quote has already been
// scanned. Escape sequences are validated here so a malformed escape is
// reported at scan time instead of surfacing later.
func lexString(s *Scanner) stateFunc {
	for {
		r := s.next()
		switch r {
		case eof:
			return s.errorf("string literal not closed: %q", s.word())
		case quote:
			s.emit(token.String)
			return lexToken
		case backslash:
			if st := s.scanEscape(); st != nil {
				return st
			}
		}
	}
}

// scanEscape validates the escape sequence after a backslash.
func (s *Scanner) scanEscape() stateFunc {
	r := s.next()
	switch r {
	case backslash, quote, 'n', 't', 'r', '0':
		return nil
	case 'x':
		for i := 0; i < 2; i++ {
			if !s.accept(hexDigits) {
				return s.errorf(`invalid escape sequence: "\x" needs two hex digits`)
			}
		}
		return nil
	case 'u':
		if s.accept("{") {
			if s.acceptRun(hexDigits) == 0 {
				return s.errorf(`invalid escape sequence: "\u{}" needs at least one hex digit`)
			}
			if !s.accept("}") {
				return s.errorf(`invalid escape sequence: "\u{" not closed`)
			}
			return nil
		}

		for i := 0; i < 4; i++ {
			if !s.accept(hexDigits) {
				return s.errorf(`invalid escape sequence: "\u" needs four hex digits`)
			}
		}
		return nil
	default:
		return s.errorf(`unknown escape sequence "\%s"`, string(r))
	}
}

// lexMoney scans a money literal. The "$" has already been scanned.
// Money takes the whole "$1,234.56" form as a single token, it is never
// split into a prefix plus separate numbers.
func lexMoney(s *Scanner) stateFunc {
	if !isDigit(s.peek()) {
		return s.errorf("invalid money literal: %q", s.word())
	}

	s.acceptRun(numDigits)
	for s.peek() == comma && isDigit(s.peekAt(1)) {
		s.next()
		s.acceptRun(numDigits)
	}

	if s.peek() == dot && isDigit(s.peekAt(1)) {
		s.next()
		s.acceptRun(numDigits)
	}

	if isIdentStart(s.peek()) {
		return s.errorf("bad money syntax: %q", s.word())
	}

	s.emit(token.Money)
	return lexToken
}

// lexNumber scans everything that starts with a digit: integers, floats,
// percentages, dates and durations. The longest matching literal form
// wins, so "2024-01-31" is one date token and "5 days" is one duration
// token.
func lexNumber(s *Scanner) stateFunc {
	digits := s.acceptRun(numDigits)

	if digits == 4 && s.dateAhead() {
		for i := 0; i < 6; i++ {
			s.next()
		}
		s.emit(token.Date)
		return lexToken
	}

	var isFloat bool
	if s.peek() == dot && isDigit(s.peekAt(1)) {
		isFloat = true
		s.next()
		s.acceptRun(numDigits)
	}

	if s.peek() == '%' {
		s.next()
		s.emit(token.Percent)
		return lexToken
	}

	if isIdentStart(s.peek()) {
		return s.errorf("bad number syntax: %q", s.word())
	}

	if !isFloat && s.durationUnitAhead() {
		s.scanDuration()
		return lexToken
	}

	if isFloat {
		s.emit(token.Float)
	} else {
		s.emit(token.Int)
	}
	return lexToken
}

// dateAhead reports whether the input after a run of four digits
// continues with "-DD-DD", completing an ISO 8601 date.
func (s *Scanner) dateAhead() bool {
	if s.peek() != dash {
		return false
	}

	for i, want := range []bool{false, true, true, false, true, true} {
		r := s.peekAt(i)
		if want != isDigit(r) || (!want && i > 0 && r != dash) {
			return false
		}
	}

	// a trailing digit would make this something else, e.g. "2024-01-315"
	return !isDigit(s.peekAt(6))
}

var durationUnits = map[string]struct{}{
	"day": {}, "days": {},
	"week": {}, "weeks": {},
	"month": {}, "months": {},
	"year": {}, "years": {},
	"hour": {}, "hours": {},
	"minute": {}, "minutes": {},
	"second": {}, "seconds": {},
}

// durationUnitAhead reports whether the input continues with a duration
// unit keyword, separated from the number by spaces.
func (s *Scanner) durationUnitAhead() bool {
	_, ok := s.scanUnitAhead(0)
	return ok
}

// scanUnitAhead looks for spaces followed by a unit word starting n
// runes ahead and returns how many runes the whole thing takes.
func (s *Scanner) scanUnitAhead(n int) (int, bool) {
	k := n
	for s.peekAt(k) == ' ' || s.peekAt(k) == '\t' {
		k++
	}

	var word []rune
	for unicode.IsLetter(s.peekAt(k + len(word))) {
		word = append(word, s.peekAt(k+len(word)))
	}

	if _, ok := durationUnits[string(word)]; !ok {
		return 0, false
	}
	return k + len(word) - n, true
}

// scanDuration greedily consumes "<int> <unit>" groups joined by commas.
// The leading integer has already been consumed and the first unit is
// known to be ahead.
func (s *Scanner) scanDuration() {
	n, _ := s.scanUnitAhead(0)
	for i := 0; i < n; i++ {
		s.next()
	}

	for {
		n, ok := s.groupAhead()
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			s.next()
		}
	}

	s.emit(token.Duration)
}

// groupAhead looks for ", <int> <unit>" continuing a duration literal.
func (s *Scanner) groupAhead() (int, bool) {
	if s.peek() != comma {
		return 0, false
	}

	k := 1
	for s.peekAt(k) == ' ' || s.peekAt(k) == '\t' {
		k++
	}

	var digits int
	for isDigit(s.peekAt(k + digits)) {
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	n, ok := s.scanUnitAhead(k + digits)
	if !ok {
		return 0, false
	}
	return k + digits + n, true
}

// lexIdentifier scans an identifier or keyword. The first character has
// already been scanned.
func lexIdentifier(s *Scanner) stateFunc {
	for isIdent(s.peek()) {
		s.next()
	}

	word := s.word()
	switch {
	case keywords[word] != 0:
		s.emit(keywords[word])
	case typeNames[word]:
		s.emit(token.TypeName)
	default:
		s.emit(token.Identifier)
	}
	return lexToken
}

var keywords = map[string]token.Type{
	"scope":       token.Scope,
	"struct":      token.Struct,
	"enum":        token.Enum,
	"func":        token.Func,
	"match":       token.Match,
	"case":        token.Case,
	"consequence": token.Consequence,
	"referencing": token.Referencing,
	"from":        token.From,
	"where":       token.Where,
	"pass":        token.Pass,
	"TRUE":        token.True,
	"FALSE":       token.False,
}

var typeNames = map[string]bool{
	"int":      true,
	"float":    true,
	"bool":     true,
	"string":   true,
	"money":    true,
	"date":     true,
	"duration": true,
	"percent":  true,
}

// isDigit reports if the rune is a number.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart reports if the rune can start an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == underscore
}

// isIdent reports if the rune is allowed in an identifier.
func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == underscore
}
