package sink

import (
	"bytes"
	"testing"

	"github.com/jscompiler/jsmin/internal/token"
)

func render(t *testing.T, fn func(s *Sink)) string {
	t.Helper()
	var buf bytes.Buffer
	s := New(&buf)
	fn(s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.String()
}

func TestSinkNoSpaceBetweenPunctuation(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportLiteral("(")
		s.ReportLiteral(")")
		s.ReportLiteral("{")
		s.ReportLiteral("}")
	})
	if got != "(){}"  {
		t.Fatalf("got %q, want %q", got, "(){}")
	}
}

func TestSinkSpaceBetweenAdjacentIdentifiers(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportKeyword(token.VAR, "var")
		s.ReportIdentifier("x")
	})
	if got != "var x" {
		t.Fatalf("got %q, want %q", got, "var x")
	}
}

func TestSinkSpaceBetweenKeywordAndNumber(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportKeyword(token.RETURN, "return")
		s.ReportNumber("5")
	})
	if got != "return 5" {
		t.Fatalf("got %q, want %q", got, "return 5")
	}
}

func TestSinkNoSpaceAfterAssignBeforeNumber(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportIdentifier("x")
		s.ReportLiteral("=")
		s.ReportNumber("1")
	})
	if got != "x=1" {
		t.Fatalf("got %q, want %q", got, "x=1")
	}
}

// These drive the sink the way internal/codegen actually does: unary `+`/`-`
// always goes through ReportUnaryOp, prefix/postfix `++`/`--` always go
// through ReportPrefixOp/ReportPostfixOp with kind INC/DEC, and a binary
// `+`/`-` always goes through ReportBinaryOp. ReportPrefixOp/ReportUnaryOp
// called with kind ADD/SUB is not a combination codegen ever produces.

func TestSinkUnaryPlusBeforePrefixIncrementNeedsSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportUnaryOp(token.ADD, "+")
		s.ReportPrefixOp(token.INC, "++")
		s.ReportIdentifier("x")
	})
	if got != "+ ++x" {
		t.Fatalf("got %q, want %q", got, "+ ++x")
	}
}

func TestSinkUnaryMinusBeforePrefixDecrementNeedsSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportUnaryOp(token.SUB, "-")
		s.ReportPrefixOp(token.DEC, "--")
		s.ReportIdentifier("x")
	})
	if got != "- --x" {
		t.Fatalf("got %q, want %q", got, "- --x")
	}
}

func TestSinkDoubleUnaryPlusNeedsSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportUnaryOp(token.ADD, "+")
		s.ReportUnaryOp(token.ADD, "+")
		s.ReportIdentifier("x")
	})
	if got != "+ +x" {
		t.Fatalf("got %q, want %q", got, "+ +x")
	}
}

func TestSinkDoubleUnaryMinusNeedsSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportUnaryOp(token.SUB, "-")
		s.ReportUnaryOp(token.SUB, "-")
		s.ReportIdentifier("x")
	})
	if got != "- -x" {
		t.Fatalf("got %q, want %q", got, "- -x")
	}
}

func TestSinkNoSpaceWhenSignsDiffer(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportUnaryOp(token.ADD, "+")
		s.ReportPrefixOp(token.DEC, "--")
		s.ReportIdentifier("x")
	})
	if got != "+--x" {
		t.Fatalf("got %q, want %q", got, "+--x")
	}
}

// TestSinkPostfixIncrementThenBinaryPlusNoSpace guards the bug where a
// PostfixCountOperation followed by a same-sign BinaryOperation (codegen's
// call sequence for source like "x++ + y") used to get a spurious space:
// ReportBinaryOp never applies the doubling rule, only ReportPrefixOp and
// ReportUnaryOp do, so "x++ + y" minifies to "x+++y" with no ambiguity.
func TestSinkPostfixIncrementThenBinaryPlusNoSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportIdentifier("x")
		s.ReportPostfixOp(token.INC, "++")
		s.ReportBinaryOp(token.ADD, "+")
		s.ReportIdentifier("y")
	})
	if got != "x+++y" {
		t.Fatalf("got %q, want %q", got, "x+++y")
	}
}

func TestSinkPostfixDecrementThenBinaryMinusNoSpace(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportIdentifier("x")
		s.ReportPostfixOp(token.DEC, "--")
		s.ReportBinaryOp(token.SUB, "-")
		s.ReportIdentifier("y")
	})
	if got != "x---y" {
		t.Fatalf("got %q, want %q", got, "x---y")
	}
}

func TestSinkRegExpFollowedByFlags(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportRegExp("/ab/", "gi")
	})
	if got != "/ab/gi" {
		t.Fatalf("got %q, want %q", got, "/ab/gi")
	}
}

func TestSinkFirstTokenNeverSpaced(t *testing.T) {
	got := render(t, func(s *Sink) {
		s.ReportIdentifier("x")
	})
	if got != "x" {
		t.Fatalf("got %q, want %q", got, "x")
	}
}
