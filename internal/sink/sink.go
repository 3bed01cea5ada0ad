// Package sink implements the minifier's token consumer: a stateful writer
// that inserts the minimum whitespace between tokens needed to preserve
// lexing, grounded on the Python ancestor's code_consumer.py. It remembers
// only the most recently emitted token, matching the design note that the
// sink needs no larger lookback window.
package sink

import (
	"bufio"
	"io"

	"github.com/jscompiler/jsmin/internal/token"
)

// Sink writes tokens to an underlying byte stream, inserting a single space
// before a token whenever the bare concatenation of the previous token's
// text and the new token's text would re-lex differently than the two
// tokens emitted separately. Most report methods share one rule (space
// between adjacent literal-class tokens); ReportUnaryOp and ReportPrefixOp
// additionally apply the `+`/`-` doubling rule, which is a property of
// which report method is producing the current token, not of the previous
// token's text — see their doc comments.
type Sink struct {
	w        *bufio.Writer
	lastKind token.Kind
	any      bool
}

// New wraps w in a Sink. The caller must call Close when generation is
// complete so any buffered output is flushed.
func New(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// ReportToken emits a generic token (used for string literals, where no
// whitespace rule keys off a more specific role).
func (s *Sink) ReportToken(kind token.Kind, text string) error {
	return s.emit(kind, text)
}

// ReportNumber emits a numeric literal.
func (s *Sink) ReportNumber(text string) error {
	return s.emit(token.DECIMAL, text)
}

// ReportKeyword emits a reserved-word token such as `return` or `function`.
func (s *Sink) ReportKeyword(kind token.Kind, text string) error {
	return s.emit(kind, text)
}

// ReportLiteral emits a single punctuation token such as `(` or `;`.
func (s *Sink) ReportLiteral(text string) error {
	kind, ok := token.LiteralKind[text]
	if !ok {
		kind = token.ILLEGAL
	}
	return s.emit(kind, text)
}

// ReportIdentifier emits an identifier reference or declaration name.
func (s *Sink) ReportIdentifier(text string) error {
	return s.emit(token.IDENTIFIER, text)
}

// ReportBinaryOp emits an infix operator. It never applies the doubling
// rule below: code_consumer.py's BaseConsumer.report_binary_op is a bare
// passthrough to report_token, with no last_was check, so a postfix `++`
// immediately followed by a binary `+` elides the space (`x+++y`, not
// `x++ +y` — both lex back to the same INC, ADD token pair).
func (s *Sink) ReportBinaryOp(kind token.Kind, text string) error {
	return s.emit(kind, text)
}

// ReportUnaryOp emits a unary prefix operator (`!`, `~`, `+`, `-`). A unary
// `+`/`-` immediately following another token of the same kind needs a
// separating space so the two don't merge into `++`/`--` (`+ +x`, `- -x`),
// mirroring code_consumer.py's report_unary_op last_was(ADD)/last_was(SUB)
// checks. This is a property of the *current* report method, not of the
// previous token's text: ReportBinaryOp and ReportPostfixOp never trigger it.
func (s *Sink) ReportUnaryOp(kind token.Kind, text string) error {
	doubles := (kind == token.ADD && s.lastKind == token.ADD) ||
		(kind == token.SUB && s.lastKind == token.SUB)
	return s.emitDoubling(kind, text, doubles)
}

// ReportPrefixOp emits prefix `++`/`--`. A prefix `++`/`--` immediately
// following a unary/binary `+`/`-` needs a separating space so the two
// don't merge into `+++`/`---` (`+ ++x`, `- --x`), mirroring
// code_consumer.py's report_prefix_op last_was(ADD)/last_was(SUB) checks.
func (s *Sink) ReportPrefixOp(kind token.Kind, text string) error {
	doubles := (kind == token.INC && s.lastKind == token.ADD) ||
		(kind == token.DEC && s.lastKind == token.SUB)
	return s.emitDoubling(kind, text, doubles)
}

// ReportPostfixOp emits postfix `++`/`--`. Like ReportBinaryOp, it never
// applies the doubling rule: code_consumer.py never overrides
// report_postfix_op, so it inherits BaseConsumer's bare passthrough.
func (s *Sink) ReportPostfixOp(kind token.Kind, text string) error {
	return s.emit(kind, text)
}

// ReportRegExp emits a regular-expression literal (pattern including its
// delimiting slashes) followed by its flags, if any, as an identifier.
func (s *Sink) ReportRegExp(pattern, flags string) error {
	if err := s.emit(token.REGEXP, pattern); err != nil {
		return err
	}
	if flags == "" {
		return nil
	}
	return s.emit(token.IDENTIFIER, flags)
}

// Close flushes any buffered output. It corresponds to the Python
// ancestor's trailing EOF report: the generator calls Close once the whole
// tree has been walked so a buffered writer's output actually reaches the
// underlying stream.
func (s *Sink) Close() error {
	return s.w.Flush()
}

func (s *Sink) emit(kind token.Kind, text string) error {
	return s.write(kind, text, s.needsLiteralSpace(kind))
}

// emitDoubling emits a token that additionally carries a caller-computed
// doubling requirement (see ReportUnaryOp and ReportPrefixOp), on top of the
// ordinary literal-class adjacency rule.
func (s *Sink) emitDoubling(kind token.Kind, text string, doubles bool) error {
	return s.write(kind, text, doubles || s.needsLiteralSpace(kind))
}

func (s *Sink) write(kind token.Kind, text string, space bool) error {
	if space && s.any && text != "" {
		if err := s.w.WriteByte(' '); err != nil {
			return err
		}
	}
	if _, err := s.w.WriteString(text); err != nil {
		return err
	}
	s.lastKind = kind
	s.any = true
	return nil
}

// needsLiteralSpace implements spec §4.3's literal-class adjacency rule: a
// space is required before a number/identifier/keyword whose predecessor is
// also in the literal class (so `return x` and `var x` don't collapse into
// `returnx`/`varx`). This rule applies uniformly regardless of which report
// method produces the current token.
func (s *Sink) needsLiteralSpace(kind token.Kind) bool {
	if !s.any {
		return false
	}
	return token.Literal[s.lastKind] && (kind == token.DECIMAL || token.Literal[kind])
}
